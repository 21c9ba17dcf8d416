package patch_test

import (
	"encoding/json"
	"testing"

	"vetclinic/internal/patch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type body struct {
	Name   patch.Field[string]  `json:"nombre"`
	Breed  patch.Field[string]  `json:"raza"`
	Weight patch.Field[float64] `json:"peso_kg"`
}

func TestField_DistinguishesAbsentNullAndValue(t *testing.T) {
	var b body
	require.NoError(t, json.Unmarshal([]byte(`{"raza": null, "peso_kg": 26.5, "especie": "gato"}`), &b))

	assert.False(t, b.Name.Set, "absent key must stay unset")

	assert.True(t, b.Breed.Set)
	assert.True(t, b.Breed.Null)
	assert.Nil(t, b.Breed.Ptr())

	assert.True(t, b.Weight.Set)
	assert.False(t, b.Weight.Null)
	require.NotNil(t, b.Weight.Ptr())
	assert.Equal(t, 26.5, *b.Weight.Ptr())
}

func TestField_InvalidTypeFails(t *testing.T) {
	var b body
	err := json.Unmarshal([]byte(`{"peso_kg": "mucho"}`), &b)
	assert.Error(t, err)
}

func TestConstructors(t *testing.T) {
	v := patch.Value("Rocky")
	assert.True(t, v.Set)
	assert.Equal(t, "Rocky", *v.Ptr())

	n := patch.Null[string]()
	assert.True(t, n.Set)
	assert.True(t, n.Null)
	assert.Nil(t, n.Ptr())
}
