package appointments

import (
	"context"
	"strings"

	"vetclinic/internal/apperr"
	"vetclinic/internal/record"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	PetID       int64
	OwnerID     int64
	ScheduledAt record.Timestamp
	Reason      string
	Notes       *string
	Details     *ConsultationDetails
}

// List filtra por estado y mascota. El estado se compara tal cual: un valor
// fuera del enum simplemente no encuentra filas.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Listing, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) ListToday(ctx context.Context) ([]Listing, error) {
	return s.repo.ListToday(ctx)
}

// Create agenda una cita en estado programada.
// Si la mascota o el dueño no existen devuelve apperr NotFound.
func (s *Service) Create(ctx context.Context, in CreateInput) (Appointment, error) {
	if in.ScheduledAt.IsZero() {
		return Appointment{}, apperr.BadRequest("fecha_hora is required")
	}
	in.Reason = strings.TrimSpace(in.Reason)
	if in.Reason == "" {
		return Appointment{}, apperr.BadRequest("motivo is required")
	}
	if in.Details == nil {
		d := DefaultConsultationDetails()
		in.Details = &d
	}
	return s.repo.Create(ctx, in)
}

// SetStatus cambia solo el estado. Valores fuera del enum => BadRequest.
func (s *Service) SetStatus(ctx context.Context, id int64, status string) (Appointment, error) {
	st, err := ParseStatus(status)
	if err != nil {
		return Appointment{}, err
	}
	return s.repo.SetStatus(ctx, id, st)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
