package postgres

import (
	"context"
	"database/sql"
	"math"
	"errors"
	"testing"
	"time"

	"vetclinic/internal/apperr"
	"vetclinic/internal/domain/appointments"
	"vetclinic/internal/domain/owners"
	"vetclinic/internal/domain/pets"
	"vetclinic/internal/patch"
	"vetclinic/internal/record"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpdate_OnlyPresentColumns(t *testing.T) {
	sets, err := petAssignments(pets.Patch{
		Name:     patch.Value("Rex"),
		WeightKg: patch.Value(decimal.RequireFromString("12.50")),
	})
	require.NoError(t, err)

	query, args := buildUpdate("mascotas", 7, sets, petColumns)

	assert.Equal(t, "UPDATE mascotas SET nombre = $1, peso_kg = $2 WHERE id = $3 RETURNING "+petColumns, query)
	assert.Equal(t, []any{"Rex", "12.5", int64(7)}, args)
}

func TestBuildUpdate_JSONBCastAndNulls(t *testing.T) {
	sets, err := petAssignments(pets.Patch{
		Breed:       patch.Null[string](),
		BirthDate:   patch.Value(record.NewDate(2020, time.May, 1)),
		MedicalInfo: patch.Value(pets.MedicalInfo{Allergies: []string{"polen"}}),
	})
	require.NoError(t, err)

	query, args := buildUpdate("mascotas", 3, sets, "id")

	assert.Equal(t, "UPDATE mascotas SET raza = $1, fecha_nac = $2, info_medica = $3::jsonb WHERE id = $4 RETURNING id", query)
	require.Len(t, args, 4)
	assert.Nil(t, args[0])
	assert.Equal(t, time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC), args[1])
	assert.JSONEq(t, `{"alergias":["polen"],"condiciones":[],"vacunas":[],"microchip":null,"esterilizado":null,"notas":null}`, args[2].(string))
	assert.Equal(t, int64(3), args[3])
}

func TestPetAssignments_EmptyPatch(t *testing.T) {
	sets, err := petAssignments(pets.Patch{})
	require.NoError(t, err)
	assert.Empty(t, sets)
}

func TestOwnerAssignments(t *testing.T) {
	sets, err := ownerAssignments(owners.Patch{
		Email: patch.Value("ana@x.com"),
		Phone: patch.Null[string](),
	})
	require.NoError(t, err)

	query, args := buildUpdate("duenos", 1, sets, "id")
	assert.Equal(t, "UPDATE duenos SET email = $1, telefono = $2 WHERE id = $3 RETURNING id", query)
	assert.Equal(t, []any{"ana@x.com", nil, int64(1)}, args)
}

func TestErrorTranslation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	fkPet := &pgconn.PgError{Code: "23503", ConstraintName: "citas_mascota_id_fkey"}
	fkOwner := &pgconn.PgError{Code: "23503", ConstraintName: "citas_dueno_id_fkey"}

	assert.True(t, isUniqueViolation(unique))
	assert.False(t, isUniqueViolation(fkPet))
	assert.True(t, isForeignKeyViolation(fkPet))
	assert.False(t, isUniqueViolation(errors.New("boom")))

	assert.Equal(t, appointments.ErrPetMissing, appointmentFKError(fkPet))
	assert.Equal(t, appointments.ErrOwnerMissing, appointmentFKError(fkOwner))

	err := notFoundOr(sql.ErrNoRows, pets.ErrNotFound)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, "Mascota no encontrada", err.Error())

	boom := errors.New("boom")
	assert.Same(t, boom, notFoundOr(boom, pets.ErrNotFound))
}

func TestWrapUnlessApp(t *testing.T) {
	assert.NoError(t, wrapUnlessApp(nil, "op"))

	assert.Same(t, owners.ErrNotFound, wrapUnlessApp(owners.ErrNotFound, "op"))

	err := wrapUnlessApp(sql.ErrConnDone, "delete owner")
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Equal(t, "delete owner: "+sql.ErrConnDone.Error(), err.Error())
}

func TestMigrateURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@h:5432/db", migrateURL("postgresql://u:p@h:5432/db"))
	assert.Equal(t, "pgx5://u:p@h/db", migrateURL("postgres://u:p@h/db"))
	assert.Equal(t, "pgx5://x", migrateURL("pgx5://x"))
}

func TestCloseNilDB(t *testing.T) {
	var d *DB
	assert.NoError(t, d.Close())
}

func TestSerialID(t *testing.T) {
	assert.True(t, serialID(1))
	assert.True(t, serialID(0))
	assert.True(t, serialID(math.MaxInt32))
	assert.True(t, serialID(math.MinInt32))
	assert.False(t, serialID(math.MaxInt32+1))
	assert.False(t, serialID(9999999999))
	assert.False(t, serialID(math.MinInt32-1))
}

// Fuera de int4 los repos responden sin tocar el pool: db no tiene conexión.
func TestRepos_IDsOutsideInt4AreNotFound(t *testing.T) {
	ctx := context.Background()
	db := &DB{}
	big := int64(9999999999)

	ownersRepo := NewOwnersRepo(db)
	_, err := ownersRepo.Get(ctx, big)
	assert.ErrorIs(t, err, owners.ErrNotFound)
	_, err = ownersRepo.Update(ctx, big, owners.Patch{Name: patch.Value("X")})
	assert.ErrorIs(t, err, owners.ErrNotFound)
	assert.ErrorIs(t, ownersRepo.Delete(ctx, -big), owners.ErrNotFound)

	petsRepo := NewPetsRepo(db)
	_, err = petsRepo.Get(ctx, big)
	assert.ErrorIs(t, err, pets.ErrNotFound)
	_, err = petsRepo.Update(ctx, big, pets.Patch{})
	assert.ErrorIs(t, err, pets.ErrNotFound)
	assert.ErrorIs(t, petsRepo.Delete(ctx, big), pets.ErrNotFound)
	_, err = petsRepo.Create(ctx, pets.CreateInput{OwnerID: big, Name: "Rex", Species: "perro"})
	assert.ErrorIs(t, err, pets.ErrOwnerMissing)
	petList, err := petsRepo.List(ctx, pets.ListFilter{OwnerID: &big})
	require.NoError(t, err)
	assert.Empty(t, petList)

	apptRepo := NewAppointmentsRepo(db)
	_, err = apptRepo.SetStatus(ctx, big, appointments.StatusCompleted)
	assert.ErrorIs(t, err, appointments.ErrNotFound)
	assert.ErrorIs(t, apptRepo.Delete(ctx, big), appointments.ErrNotFound)
	_, err = apptRepo.Create(ctx, appointments.CreateInput{PetID: big, OwnerID: 1, Reason: "x"})
	assert.ErrorIs(t, err, appointments.ErrPetMissing)
	_, err = apptRepo.Create(ctx, appointments.CreateInput{PetID: 1, OwnerID: big, Reason: "x"})
	assert.ErrorIs(t, err, appointments.ErrOwnerMissing)
	apptList, err := apptRepo.List(ctx, appointments.ListFilter{PetID: &big})
	require.NoError(t, err)
	assert.NotNil(t, apptList)
	assert.Empty(t, apptList)
}
