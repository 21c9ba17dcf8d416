package owners

import (
	"context"
	"encoding/json"
	"testing"

	"vetclinic/internal/apperr"
	"vetclinic/internal/patch"
	"vetclinic/internal/platform/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (captura)
// -------------------------

type captureRepo struct {
	created *CreateInput
	patched *Patch
	search  string
}

func (r *captureRepo) List(ctx context.Context, search string) ([]Owner, error) {
	r.search = search
	return []Owner{}, nil
}

func (r *captureRepo) Create(ctx context.Context, in CreateInput) (Owner, error) {
	r.created = &in
	return Owner{ID: 1, Name: in.Name, Email: in.Email, ContactInfo: *in.ContactInfo}, nil
}

func (r *captureRepo) Get(ctx context.Context, id int64) (Detail, error) {
	if id == 1 {
		return Detail{Owner: Owner{ID: 1, Name: "Ana"}}, nil
	}
	return Detail{}, ErrNotFound
}

func (r *captureRepo) Update(ctx context.Context, id int64, p Patch) (Owner, error) {
	r.patched = &p
	return Owner{ID: id}, nil
}

func (r *captureRepo) Delete(ctx context.Context, id int64) error { return nil }

func TestCreate_AppliesContactDefaultAndTrims(t *testing.T) {
	repo := &captureRepo{}
	svc := NewService(repo, validation.New())

	o, err := svc.Create(context.Background(), CreateInput{Name: "  Ana García ", Email: " ana@x.com "})
	require.NoError(t, err)

	require.NotNil(t, repo.created)
	assert.Equal(t, "Ana García", repo.created.Name)
	assert.Equal(t, "ana@x.com", repo.created.Email)
	require.NotNil(t, o.ContactInfo.PreferredContact)
	assert.Equal(t, ContactPhone, *o.ContactInfo.PreferredContact)
	assert.Nil(t, o.ContactInfo.EmergencyPhone)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&captureRepo{}, validation.New())

	cases := map[string]CreateInput{
		"missing name":  {Email: "ana@x.com"},
		"missing email": {Name: "Ana"},
		"bad email":     {Name: "Ana", Email: "no-es-email"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), in)
			assert.ErrorIs(t, err, apperr.ErrBadRequest)
		})
	}
}

func TestList_TrimsSearch(t *testing.T) {
	repo := &captureRepo{}
	_, err := NewService(repo, validation.New()).List(context.Background(), "  garcia ")
	require.NoError(t, err)
	assert.Equal(t, "garcia", repo.search)
}

func TestUpdate_RejectsEmptyNameAndNullEmail(t *testing.T) {
	svc := NewService(&captureRepo{}, validation.New())
	ctx := context.Background()

	_, err := svc.Update(ctx, 1, Patch{Name: patch.Value("   ")})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)

	_, err = svc.Update(ctx, 1, Patch{Email: patch.Null[string]()})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)

	_, err = svc.Update(ctx, 1, Patch{ContactInfo: patch.Null[ContactInfo]()})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
}

func TestUpdate_MissingOwnerWinsOverInvalidPatch(t *testing.T) {
	repo := &captureRepo{}
	svc := NewService(repo, validation.New())

	_, err := svc.Update(context.Background(), 99, Patch{Name: patch.Value("")})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, repo.patched)

	_, err = svc.Update(context.Background(), 99, Patch{Email: patch.Value("no-es-email")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_PassesPresentFields(t *testing.T) {
	repo := &captureRepo{}
	svc := NewService(repo, validation.New())

	_, err := svc.Update(context.Background(), 4, Patch{
		Phone:   patch.Null[string](),
		Address: patch.Value("Calle Mayor 1"),
	})
	require.NoError(t, err)

	require.NotNil(t, repo.patched)
	assert.True(t, repo.patched.Phone.Set)
	assert.True(t, repo.patched.Phone.Null)
	assert.Equal(t, "Calle Mayor 1", repo.patched.Address.Value)
	assert.False(t, repo.patched.Name.Set)
}

func TestPatch_DecodeIgnoresUnknownKeys(t *testing.T) {
	var p Patch
	require.NoError(t, json.Unmarshal([]byte(`{"id": 99, "creado_en": "x", "telefono": null}`), &p))

	assert.True(t, p.Phone.Set)
	assert.True(t, p.Phone.Null)
	assert.False(t, p.Name.Set)

	var empty Patch
	require.NoError(t, json.Unmarshal([]byte(`{"id": 99}`), &empty))
	assert.Equal(t, Patch{}, empty)
}

func TestContactInfo_DefaultsOnlyOnDecode(t *testing.T) {
	var ci ContactInfo
	require.NoError(t, json.Unmarshal([]byte(`{"telefono_emergencia": "600111222"}`), &ci))
	require.NotNil(t, ci.PreferredContact)
	assert.Equal(t, "telefono", *ci.PreferredContact)
	assert.Equal(t, "600111222", *ci.EmergencyPhone)

	var stored ContactInfo
	require.NoError(t, stored.Scan([]byte(`{}`)))
	assert.Nil(t, stored.PreferredContact)
}
