package pets

import (
	"context"
	"strings"

	"vetclinic/internal/apperr"
	"vetclinic/internal/record"

	"github.com/shopspring/decimal"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	OwnerID     int64
	Name        string
	Species     string
	Breed       *string
	BirthDate   *record.Date
	WeightKg    *decimal.Decimal
	MedicalInfo *MedicalInfo
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Listing, error) {
	filter.Species = strings.TrimSpace(filter.Species)
	return s.repo.List(ctx, filter)
}

// Create registra una mascota. Si el dueño no existe devuelve apperr NotFound.
func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Species = strings.TrimSpace(in.Species)
	if in.Name == "" {
		return Pet{}, apperr.BadRequest("nombre is required")
	}
	if in.Species == "" {
		return Pet{}, apperr.BadRequest("especie is required")
	}
	if in.WeightKg != nil {
		if err := checkWeight(*in.WeightKg); err != nil {
			return Pet{}, err
		}
	}
	if in.MedicalInfo == nil {
		mi := DefaultMedicalInfo()
		in.MedicalInfo = &mi
	}
	return s.repo.Create(ctx, in)
}

func (s *Service) Get(ctx context.Context, id int64) (Detail, error) {
	return s.repo.Get(ctx, id)
}

// Update aplica solo los campos presentes en el patch. Si la mascota no
// existe gana el 404, aunque el patch tampoco sea válido.
func (s *Service) Update(ctx context.Context, id int64, p Patch) (Pet, error) {
	if err := checkPatch(&p); err != nil {
		if _, gerr := s.repo.Get(ctx, id); gerr != nil {
			return Pet{}, gerr
		}
		return Pet{}, err
	}
	return s.repo.Update(ctx, id, p)
}

func checkPatch(p *Patch) error {
	if p.Name.Set {
		p.Name.Value = strings.TrimSpace(p.Name.Value)
		if p.Name.Null || p.Name.Value == "" {
			return apperr.BadRequest("nombre cannot be empty")
		}
	}
	if p.WeightKg.Set && !p.WeightKg.Null {
		if err := checkWeight(p.WeightKg.Value); err != nil {
			return err
		}
	}
	if p.MedicalInfo.Set && p.MedicalInfo.Null {
		return apperr.BadRequest("info_medica cannot be null")
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func checkWeight(w decimal.Decimal) error {
	if !w.IsPositive() || w.GreaterThan(MaxWeightKg) {
		return apperr.BadRequest("peso_kg must be greater than 0 and at most 999.99")
	}
	return nil
}
