package memory

import (
	"context"
	"sort"

	"vetclinic/internal/domain/appointments"
)

type appointmentRepo struct {
	s *Store
}

func (r *appointmentRepo) List(ctx context.Context, filter appointments.ListFilter) ([]appointments.Listing, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.listingsLocked(func(a appointments.Appointment) bool {
		if filter.Status != "" && a.Status != filter.Status {
			return false
		}
		if filter.PetID != nil && a.PetID != *filter.PetID {
			return false
		}
		return true
	}), nil
}

func (r *appointmentRepo) ListToday(ctx context.Context) ([]appointments.Listing, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	today := r.s.now()
	return r.listingsLocked(func(a appointments.Appointment) bool {
		return a.ScheduledAt.SameDay(today)
	}), nil
}

// listingsLocked arma el join cita-mascota-dueño ordenado por fecha_hora asc.
func (r *appointmentRepo) listingsLocked(keep func(appointments.Appointment) bool) []appointments.Listing {
	out := make([]appointments.Listing, 0)
	for _, a := range r.s.appts {
		if !keep(a) {
			continue
		}
		p, ok := r.s.pets[a.PetID]
		if !ok {
			continue
		}
		o, ok := r.s.owners[a.OwnerID]
		if !ok {
			continue
		}
		out = append(out, appointments.Listing{
			Appointment: a,
			PetName:     p.Name,
			Species:     p.Species,
			OwnerName:   o.Name,
			OwnerPhone:  o.Phone,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].ScheduledAt.Equal(out[j].ScheduledAt.Time) {
			return out[i].ID < out[j].ID
		}
		return out[i].ScheduledAt.Before(out[j].ScheduledAt.Time)
	})
	return out
}

func (r *appointmentRepo) Create(ctx context.Context, in appointments.CreateInput) (appointments.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[in.PetID]; !ok {
		return appointments.Appointment{}, appointments.ErrPetMissing
	}
	if _, ok := r.s.owners[in.OwnerID]; !ok {
		return appointments.Appointment{}, appointments.ErrOwnerMissing
	}

	r.s.apptSeq++
	a := appointments.Appointment{
		ID:          r.s.apptSeq,
		PetID:       in.PetID,
		OwnerID:     in.OwnerID,
		ScheduledAt: in.ScheduledAt,
		Reason:      in.Reason,
		Status:      appointments.StatusScheduled,
		Notes:       in.Notes,
		CreatedAt:   r.s.timestamp(),
	}
	if in.Details != nil {
		a.Details = *in.Details
	}
	r.s.appts[a.ID] = a
	return a, nil
}

func (r *appointmentRepo) SetStatus(ctx context.Context, id int64, status appointments.Status) (appointments.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.appts[id]
	if !ok {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	a.Status = status
	r.s.appts[id] = a
	return a, nil
}

func (r *appointmentRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.appts[id]; !ok {
		return appointments.ErrNotFound
	}
	delete(r.s.appts, id)
	return nil
}
