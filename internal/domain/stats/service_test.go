package stats

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	sum Summary
	err error
}

func (r fakeRepo) Summary(ctx context.Context) (Summary, error) {
	return r.sum, r.err
}

func TestService_Get_NilSpeciesBecomesEmpty(t *testing.T) {
	svc := NewService(fakeRepo{sum: Summary{Owners: 2}})

	sum, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), sum.Owners)
	assert.NotNil(t, sum.BySpecies)
	assert.Empty(t, sum.BySpecies)
}

func TestService_Get_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(fakeRepo{err: boom})

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestHandler_WireNames(t *testing.T) {
	svc := NewService(fakeRepo{sum: Summary{
		Owners:            3,
		Pets:              4,
		Appointments:      5,
		AppointmentsToday: 1,
		Upcoming:          2,
		BySpecies:         []SpeciesCount{{Species: "perro", Total: 3}, {Species: "gato", Total: 1}},
	}})

	r := chi.NewRouter()
	RegisterRoutes(r, svc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/estadisticas", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 3, body["total_duenos"])
	assert.EqualValues(t, 4, body["total_mascotas"])
	assert.EqualValues(t, 5, body["total_citas"])
	assert.EqualValues(t, 1, body["citas_hoy"])
	assert.EqualValues(t, 2, body["proximas_citas"])
	assert.Equal(t, []any{
		map[string]any{"especie": "perro", "total": float64(3)},
		map[string]any{"especie": "gato", "total": float64(1)},
	}, body["mascotas_por_especie"])
}
