package appointments

import "context"

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Listing, error)
	// ListToday devuelve las citas cuya fecha (sin hora) es hoy.
	ListToday(ctx context.Context) ([]Listing, error)
	// Create verifica que la mascota exista antes de insertar.
	Create(ctx context.Context, in CreateInput) (Appointment, error)
	SetStatus(ctx context.Context, id int64, status Status) (Appointment, error)
	Delete(ctx context.Context, id int64) error
}
