package memory

import (
	"context"
	"testing"
	"time"

	"vetclinic/internal/domain/appointments"
	"vetclinic/internal/domain/owners"
	"vetclinic/internal/domain/pets"
	"vetclinic/internal/patch"
	"vetclinic/internal/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)

type fixture struct {
	store   *Store
	ownerID int64
	petID   int64
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	s := NewStore().WithClock(func() time.Time { return fixedNow })

	ci := owners.DefaultContactInfo()
	o, err := s.Owners().Create(ctx, owners.CreateInput{Name: "Ana García", Email: "ana@x.com", ContactInfo: &ci})
	require.NoError(t, err)

	mi := pets.DefaultMedicalInfo()
	p, err := s.Pets().Create(ctx, pets.CreateInput{OwnerID: o.ID, Name: "Rex", Species: "perro", MedicalInfo: &mi})
	require.NoError(t, err)

	return fixture{store: s, ownerID: o.ID, petID: p.ID}
}

func (f fixture) book(t *testing.T, at time.Time) appointments.Appointment {
	t.Helper()
	d := appointments.DefaultConsultationDetails()
	a, err := f.store.Appointments().Create(context.Background(), appointments.CreateInput{
		PetID:       f.petID,
		OwnerID:     f.ownerID,
		ScheduledAt: record.NewTimestamp(at),
		Reason:      "Revisión",
		Details:     &d,
	})
	require.NoError(t, err)
	return a
}

func TestOwners_UniqueEmailIsCaseSensitive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := f.store.Owners()

	_, err := repo.Create(ctx, owners.CreateInput{Name: "Otra", Email: "ana@x.com"})
	assert.ErrorIs(t, err, owners.ErrDuplicateEmail)

	_, err = repo.Create(ctx, owners.CreateInput{Name: "Otra", Email: "ANA@x.com"})
	assert.NoError(t, err)

	_, err = repo.Update(ctx, f.ownerID, owners.Patch{Email: patch.Value("ANA@x.com")})
	assert.ErrorIs(t, err, owners.ErrDuplicateEmail)
}

func TestOwners_SearchNameOrEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := f.store.Owners()

	_, err := repo.Create(ctx, owners.CreateInput{Name: "Luis Pérez", Email: "luis@correo.es"})
	require.NoError(t, err)

	got, err := repo.List(ctx, "GARC")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ana García", got[0].Name)

	got, err = repo.List(ctx, "correo")
	require.NoError(t, err)
	require.Len(t, got, 1)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Greater(t, all[0].ID, all[1].ID)
}

func TestDeleteOwner_Cascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.book(t, fixedNow.Add(time.Hour))

	require.NoError(t, f.store.Owners().Delete(ctx, f.ownerID))

	_, err := f.store.Pets().Get(ctx, f.petID)
	assert.ErrorIs(t, err, pets.ErrNotFound)

	err = f.store.Appointments().Delete(ctx, a.ID)
	assert.ErrorIs(t, err, appointments.ErrNotFound)

	assert.ErrorIs(t, f.store.Owners().Delete(ctx, f.ownerID), owners.ErrNotFound)
}

func TestPetDetail_HistoryNewestFirst(t *testing.T) {
	f := newFixture(t)
	older := f.book(t, fixedNow.Add(-48*time.Hour))
	newer := f.book(t, fixedNow.Add(24*time.Hour))

	d, err := f.store.Pets().Get(context.Background(), f.petID)
	require.NoError(t, err)

	require.Len(t, d.History, 2)
	assert.Equal(t, newer.ID, d.History[0].ID)
	assert.Equal(t, older.ID, d.History[1].ID)
	assert.Equal(t, "Ana García", d.OwnerName)
}

func TestAppointments_CreateChecksPetAndOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := f.store.Appointments()
	at := record.NewTimestamp(fixedNow)

	_, err := repo.Create(ctx, appointments.CreateInput{PetID: 999, OwnerID: f.ownerID, ScheduledAt: at, Reason: "x"})
	assert.ErrorIs(t, err, appointments.ErrPetMissing)

	_, err = repo.Create(ctx, appointments.CreateInput{PetID: f.petID, OwnerID: 999, ScheduledAt: at, Reason: "x"})
	assert.ErrorIs(t, err, appointments.ErrOwnerMissing)
}

func TestAppointments_TodayAndOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	late := f.book(t, time.Date(2025, time.March, 15, 18, 0, 0, 0, time.UTC))
	early := f.book(t, time.Date(2025, time.March, 15, 8, 0, 0, 0, time.UTC))
	f.book(t, time.Date(2025, time.March, 16, 8, 0, 0, 0, time.UTC))

	today, err := f.store.Appointments().ListToday(ctx)
	require.NoError(t, err)
	require.Len(t, today, 2)
	assert.Equal(t, early.ID, today[0].ID)
	assert.Equal(t, late.ID, today[1].ID)
	assert.Equal(t, "Rex", today[0].PetName)
	assert.Equal(t, "perro", today[0].Species)

	_, err = f.store.Appointments().SetStatus(ctx, late.ID, appointments.StatusCancelled)
	require.NoError(t, err)

	cancelled, err := f.store.Appointments().List(ctx, appointments.ListFilter{Status: appointments.StatusCancelled})
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, late.ID, cancelled[0].ID)
}

func TestStats_Summary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	mi := pets.DefaultMedicalInfo()
	for _, name := range []string{"Michi", "Luna"} {
		_, err := f.store.Pets().Create(ctx, pets.CreateInput{OwnerID: f.ownerID, Name: name, Species: "gato", MedicalInfo: &mi})
		require.NoError(t, err)
	}

	f.book(t, fixedNow.Add(-time.Hour))   // hoy, ya pasada
	f.book(t, fixedNow.Add(2*time.Hour))  // hoy, próxima
	f.book(t, fixedNow.Add(72*time.Hour)) // próxima
	done := f.book(t, fixedNow.Add(96*time.Hour))
	_, err := f.store.Appointments().SetStatus(ctx, done.ID, appointments.StatusCompleted)
	require.NoError(t, err)

	sum, err := f.store.Stats().Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), sum.Owners)
	assert.Equal(t, int64(3), sum.Pets)
	assert.Equal(t, int64(4), sum.Appointments)
	assert.Equal(t, int64(2), sum.AppointmentsToday)
	assert.Equal(t, int64(2), sum.Upcoming)
	require.Len(t, sum.BySpecies, 2)
	assert.Equal(t, "gato", sum.BySpecies[0].Species)
	assert.Equal(t, int64(2), sum.BySpecies[0].Total)
}
