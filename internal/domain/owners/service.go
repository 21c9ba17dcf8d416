package owners

import (
	"context"
	"strings"

	"vetclinic/internal/apperr"
	"vetclinic/internal/platform/validation"
)

type Service struct {
	repo Repository
	v    *validation.Validator
}

func NewService(repo Repository, v *validation.Validator) *Service {
	return &Service{repo: repo, v: v}
}

type CreateInput struct {
	Name        string
	Email       string
	Phone       *string
	Address     *string
	ContactInfo *ContactInfo
}

func (s *Service) List(ctx context.Context, search string) ([]Owner, error) {
	return s.repo.List(ctx, strings.TrimSpace(search))
}

// Create da de alta un dueño. Un email repetido devuelve apperr Conflict.
func (s *Service) Create(ctx context.Context, in CreateInput) (Owner, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" {
		return Owner{}, apperr.BadRequest("nombre is required")
	}
	if err := s.checkEmail(in.Email); err != nil {
		return Owner{}, err
	}
	in.Phone = trimOptional(in.Phone)
	in.Address = trimOptional(in.Address)
	if in.ContactInfo == nil {
		ci := DefaultContactInfo()
		in.ContactInfo = &ci
	}
	return s.repo.Create(ctx, in)
}

func (s *Service) Get(ctx context.Context, id int64) (Detail, error) {
	return s.repo.Get(ctx, id)
}

// Update aplica un patch parcial. Un patch vacío devuelve el dueño sin cambios.
// Si el patch no es válido y además el dueño no existe, gana el NotFound.
func (s *Service) Update(ctx context.Context, id int64, p Patch) (Owner, error) {
	if err := s.checkPatch(&p); err != nil {
		if _, gerr := s.repo.Get(ctx, id); gerr != nil {
			return Owner{}, gerr
		}
		return Owner{}, err
	}
	return s.repo.Update(ctx, id, p)
}

func (s *Service) checkPatch(p *Patch) error {
	if p.Name.Set {
		p.Name.Value = strings.TrimSpace(p.Name.Value)
		if p.Name.Null || p.Name.Value == "" {
			return apperr.BadRequest("nombre cannot be empty")
		}
	}
	if p.Email.Set {
		if p.Email.Null {
			return apperr.BadRequest("email cannot be null")
		}
		p.Email.Value = strings.TrimSpace(p.Email.Value)
		if err := s.checkEmail(p.Email.Value); err != nil {
			return err
		}
	}
	if p.ContactInfo.Set && p.ContactInfo.Null {
		return apperr.BadRequest("info_contacto cannot be null")
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) checkEmail(email string) error {
	if email == "" {
		return apperr.BadRequest("email is required")
	}
	if err := s.v.Var(email, "email"); err != nil {
		return apperr.BadRequest("email must be a valid email address")
	}
	return nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
