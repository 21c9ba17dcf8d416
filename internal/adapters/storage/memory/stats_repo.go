package memory

import (
	"context"
	"sort"

	"vetclinic/internal/domain/appointments"
	"vetclinic/internal/domain/stats"
)

type statsRepo struct {
	s *Store
}

func (r *statsRepo) Summary(ctx context.Context) (stats.Summary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	now := r.s.timestamp()
	sum := stats.Summary{
		Owners:       int64(len(r.s.owners)),
		Pets:         int64(len(r.s.pets)),
		Appointments: int64(len(r.s.appts)),
	}
	for _, a := range r.s.appts {
		if a.ScheduledAt.SameDay(now.Time) {
			sum.AppointmentsToday++
		}
		if a.Status == appointments.StatusScheduled && !a.ScheduledAt.Before(now.Time) {
			sum.Upcoming++
		}
	}

	bySpecies := make(map[string]int64)
	for _, p := range r.s.pets {
		bySpecies[p.Species]++
	}
	sum.BySpecies = make([]stats.SpeciesCount, 0, len(bySpecies))
	for sp, n := range bySpecies {
		sum.BySpecies = append(sum.BySpecies, stats.SpeciesCount{Species: sp, Total: n})
	}
	// total desc; a igualdad, por nombre para que sea determinista
	sort.Slice(sum.BySpecies, func(i, j int) bool {
		if sum.BySpecies[i].Total == sum.BySpecies[j].Total {
			return sum.BySpecies[i].Species < sum.BySpecies[j].Species
		}
		return sum.BySpecies[i].Total > sum.BySpecies[j].Total
	})
	return sum, nil
}
