package pets

import "context"

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Listing, error)
	// Create verifica que el dueño exista antes de insertar.
	Create(ctx context.Context, in CreateInput) (Pet, error)
	Get(ctx context.Context, id int64) (Detail, error)
	Update(ctx context.Context, id int64, p Patch) (Pet, error)
	Delete(ctx context.Context, id int64) error
}
