package memory

import (
	"context"
	"sort"

	"vetclinic/internal/domain/appointments"
	"vetclinic/internal/domain/pets"

	"github.com/shopspring/decimal"
)

type petRepo struct {
	s *Store
}

func (r *petRepo) List(ctx context.Context, filter pets.ListFilter) ([]pets.Listing, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Listing, 0)
	for _, p := range r.s.pets {
		if filter.Species != "" && !containsFold(p.Species, filter.Species) {
			continue
		}
		if filter.OwnerID != nil && p.OwnerID != *filter.OwnerID {
			continue
		}
		owner, ok := r.s.owners[p.OwnerID]
		if !ok {
			continue
		}
		out = append(out, pets.Listing{Pet: p, OwnerName: owner.Name})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *petRepo) Create(ctx context.Context, in pets.CreateInput) (pets.Pet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.owners[in.OwnerID]; !ok {
		return pets.Pet{}, pets.ErrOwnerMissing
	}

	r.s.petSeq++
	p := pets.Pet{
		ID:        r.s.petSeq,
		OwnerID:   in.OwnerID,
		Name:      in.Name,
		Species:   in.Species,
		Breed:     in.Breed,
		BirthDate: in.BirthDate,
		WeightKg:  nullDecimal(in.WeightKg),
		CreatedAt: r.s.timestamp(),
	}
	if in.MedicalInfo != nil {
		p.MedicalInfo = *in.MedicalInfo
	}
	r.s.pets[p.ID] = p
	return p, nil
}

func (r *petRepo) Get(ctx context.Context, id int64) (pets.Detail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return pets.Detail{}, pets.ErrNotFound
	}
	owner, ok := r.s.owners[p.OwnerID]
	if !ok {
		return pets.Detail{}, pets.ErrNotFound
	}

	d := pets.Detail{
		Pet:        p,
		OwnerName:  owner.Name,
		OwnerPhone: owner.Phone,
		History:    make([]appointments.Appointment, 0),
	}
	for _, a := range r.s.appts {
		if a.PetID == id {
			d.History = append(d.History, a)
		}
	}
	// más recientes primero
	sort.Slice(d.History, func(i, j int) bool {
		return d.History[i].ScheduledAt.After(d.History[j].ScheduledAt.Time)
	})
	return d, nil
}

func (r *petRepo) Update(ctx context.Context, id int64, patch pets.Patch) (pets.Pet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.pets[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}

	if patch.Name.Set {
		p.Name = patch.Name.Value
	}
	if patch.Breed.Set {
		p.Breed = patch.Breed.Ptr()
	}
	if patch.BirthDate.Set {
		p.BirthDate = patch.BirthDate.Ptr()
	}
	if patch.WeightKg.Set {
		p.WeightKg = nullDecimal(patch.WeightKg.Ptr())
	}
	if patch.MedicalInfo.Set {
		p.MedicalInfo = patch.MedicalInfo.Value
	}

	r.s.pets[id] = p
	return p, nil
}

func (r *petRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[id]; !ok {
		return pets.ErrNotFound
	}
	r.s.deletePetLocked(id)
	return nil
}

// nullDecimal redondea a 2 decimales como NUMERIC(5,2).
func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d.Round(2))
}
