package pets_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"vetclinic/internal/adapters/storage/memory"
	"vetclinic/internal/apperr"
	"vetclinic/internal/domain/owners"
	"vetclinic/internal/domain/pets"
	"vetclinic/internal/patch"
	"vetclinic/internal/platform/validation"
	"vetclinic/internal/record"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixture(t *testing.T) (*pets.Service, int64) {
	t.Helper()
	store := memory.NewStore()

	o, err := owners.NewService(store.Owners(), validation.New()).Create(context.Background(), owners.CreateInput{
		Name:  "Ana García",
		Email: "ana@x.com",
	})
	require.NoError(t, err)

	return pets.NewService(store.Pets()), o.ID
}

func TestCreate_DefaultsMedicalInfo(t *testing.T) {
	svc, ownerID := newFixture(t)
	w := decimal.RequireFromString("25.5")

	p, err := svc.Create(context.Background(), pets.CreateInput{
		OwnerID:  ownerID,
		Name:     "Rex",
		Species:  "perro",
		WeightKg: &w,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{}, p.MedicalInfo.Allergies)
	assert.Equal(t, []string{}, p.MedicalInfo.Vaccines)
	assert.Nil(t, p.MedicalInfo.Sterilized)
	assert.True(t, p.WeightKg.Valid)
	assert.Equal(t, "25.5", p.WeightKg.Decimal.String())
}

func TestCreate_OwnerMissing(t *testing.T) {
	svc, _ := newFixture(t)

	_, err := svc.Create(context.Background(), pets.CreateInput{OwnerID: 999, Name: "Rex", Species: "perro"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, "El dueño especificado no existe", err.Error())
}

func TestCreate_WeightBounds(t *testing.T) {
	svc, ownerID := newFixture(t)

	for _, raw := range []string{"0", "-1", "1000"} {
		w := decimal.RequireFromString(raw)
		_, err := svc.Create(context.Background(), pets.CreateInput{OwnerID: ownerID, Name: "Rex", Species: "perro", WeightKg: &w})
		assert.ErrorIs(t, err, apperr.ErrBadRequest, raw)
	}
}

func TestList_FiltersSpeciesCaseInsensitive(t *testing.T) {
	svc, ownerID := newFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, pets.CreateInput{OwnerID: ownerID, Name: "Rex", Species: "Perro"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, pets.CreateInput{OwnerID: ownerID, Name: "Michi", Species: "gato"})
	require.NoError(t, err)

	items, err := svc.List(ctx, pets.ListFilter{Species: "PERR"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Rex", items[0].Name)
	assert.Equal(t, "Ana García", items[0].OwnerName)

	all, err := svc.List(ctx, pets.ListFilter{OwnerID: &ownerID})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Michi", all[0].Name, "id desc")
}

func TestUpdate_PartialAndNoop(t *testing.T) {
	svc, ownerID := newFixture(t)
	ctx := context.Background()
	breed := "Labrador"

	p, err := svc.Create(ctx, pets.CreateInput{OwnerID: ownerID, Name: "Rex", Species: "perro", Breed: &breed})
	require.NoError(t, err)

	same, err := svc.Update(ctx, p.ID, pets.Patch{})
	require.NoError(t, err)
	assert.Equal(t, p, same)

	birth := record.NewDate(2020, time.May, 1)
	updated, err := svc.Update(ctx, p.ID, pets.Patch{
		Breed:     patch.Null[string](),
		BirthDate: patch.Value(birth),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Breed)
	require.NotNil(t, updated.BirthDate)
	assert.Equal(t, "2020-05-01", updated.BirthDate.String())
	assert.Equal(t, "Rex", updated.Name)
}

func TestUpdate_Errors(t *testing.T) {
	svc, ownerID := newFixture(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, pets.CreateInput{OwnerID: ownerID, Name: "Rex", Species: "perro"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, p.ID, pets.Patch{Name: patch.Null[string]()})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)

	_, err = svc.Update(ctx, p.ID, pets.Patch{MedicalInfo: patch.Null[pets.MedicalInfo]()})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)

	_, err = svc.Update(ctx, 999, pets.Patch{Name: patch.Value("Toby")})
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestUpdate_MissingPetWinsOverInvalidPatch(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, 999, pets.Patch{Name: patch.Value("")})
	assert.ErrorIs(t, err, pets.ErrNotFound)

	_, err = svc.Update(ctx, 999, pets.Patch{WeightKg: patch.Value(decimal.RequireFromString("-1"))})
	assert.ErrorIs(t, err, pets.ErrNotFound)

	_, err = svc.Update(ctx, 0, pets.Patch{MedicalInfo: patch.Null[pets.MedicalInfo]()})
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestPatch_DecodeAllowListOnly(t *testing.T) {
	var p pets.Patch
	body := `{"especie": "gato", "dueno_id": 3, "peso_kg": 12.5, "info_medica": {"esterilizado": true}}`
	require.NoError(t, json.Unmarshal([]byte(body), &p))

	assert.False(t, p.Name.Set)
	assert.True(t, p.WeightKg.Set)
	assert.Equal(t, "12.5", p.WeightKg.Value.String())
	require.True(t, p.MedicalInfo.Set)
	require.NotNil(t, p.MedicalInfo.Value.Sterilized)
	assert.True(t, *p.MedicalInfo.Value.Sterilized)
	assert.Equal(t, []string{}, p.MedicalInfo.Value.Allergies)
}

func TestDelete_NotFound(t *testing.T) {
	svc, _ := newFixture(t)
	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
