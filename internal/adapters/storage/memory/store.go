package memory

import (
	"strings"
	"sync"
	"time"

	"vetclinic/internal/domain/appointments"
	"vetclinic/internal/domain/owners"
	"vetclinic/internal/domain/pets"
	"vetclinic/internal/domain/stats"
	"vetclinic/internal/record"
)

// Store guarda las tres tablas en memoria con las mismas reglas que
// Postgres: ids secuenciales, email único y borrado en cascada.
// Sirve para dev y para tests sin base de datos.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	owners map[int64]owners.Owner
	pets   map[int64]pets.Pet
	appts  map[int64]appointments.Appointment

	ownerSeq int64
	petSeq   int64
	apptSeq  int64
}

func NewStore() *Store {
	return &Store{
		now:    time.Now,
		owners: make(map[int64]owners.Owner),
		pets:   make(map[int64]pets.Pet),
		appts:  make(map[int64]appointments.Appointment),
	}
}

// WithClock fija el reloj usado para creado_en, "hoy" y "próximas".
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) Owners() owners.Repository             { return &ownerRepo{s: s} }
func (s *Store) Pets() pets.Repository                 { return &petRepo{s: s} }
func (s *Store) Appointments() appointments.Repository { return &appointmentRepo{s: s} }
func (s *Store) Stats() stats.Repository               { return &statsRepo{s: s} }

func (s *Store) timestamp() record.Timestamp {
	return record.NewTimestamp(s.now())
}

// deleteOwnerLocked borra el dueño y en cascada sus mascotas y citas.
func (s *Store) deleteOwnerLocked(id int64) {
	delete(s.owners, id)
	for pid, p := range s.pets {
		if p.OwnerID == id {
			s.deletePetLocked(pid)
		}
	}
	for aid, a := range s.appts {
		if a.OwnerID == id {
			delete(s.appts, aid)
		}
	}
}

func (s *Store) deletePetLocked(id int64) {
	delete(s.pets, id)
	for aid, a := range s.appts {
		if a.PetID == id {
			delete(s.appts, aid)
		}
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
