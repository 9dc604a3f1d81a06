package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)
	require.NotNil(t, cat)

	assert.Equal(t, 12, cat.Len())

	healthy, ok := cat.Lookup(KeyHealthy)
	require.True(t, ok)
	assert.Equal(t, "Healthy Plant", healthy.DiseaseName)
}

func TestLookupIsStable(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)

	a, ok := cat.Lookup("tomato_early_blight")
	require.True(t, ok)
	b, ok := cat.Lookup("tomato_early_blight")
	require.True(t, ok)

	// same shared record, not a copy
	assert.Same(t, a, b)
	assert.Equal(t, "tomato", a.Crop)
	assert.NotEmpty(t, a.Treatments)
	assert.NotEmpty(t, a.Symptoms)
}

func TestLookupUnknownKey(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)

	_, ok := cat.Lookup("banana_wilt")
	assert.False(t, ok)
}

func TestDiseaseKeysExcludeHealthy(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)

	keys := cat.DiseaseKeys()
	assert.Len(t, keys, 11)
	for _, k := range keys {
		assert.NotEqual(t, KeyHealthy, k)
		rec, ok := cat.Lookup(k)
		require.True(t, ok, "key %s must resolve", k)
		assert.NotEmpty(t, rec.DiseaseName)
		assert.NotEmpty(t, rec.Description)
	}
}

func TestByCrop(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)

	tomato := cat.ByCrop("tomato")
	require.Len(t, tomato, 3)
	for _, rec := range tomato {
		assert.Equal(t, "tomato", rec.Crop)
	}

	// case-insensitive
	assert.Len(t, cat.ByCrop("Tomato"), 3)

	assert.Empty(t, cat.ByCrop("banana"))
}

func TestCropNamesNormalized(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)

	// crop doubles as a grouping key in the summary aggregation, so every
	// record must carry it lowercase regardless of how the data is written
	for _, rec := range cat.All() {
		assert.Equal(t, strings.ToLower(rec.Crop), rec.Crop, "key %s", rec.Key)
		assert.NotEmpty(t, rec.Crop, "key %s", rec.Key)
	}
}

func TestCropsSorted(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)

	crops := cat.Crops()
	assert.Equal(t, []string{"chili", "cotton", "onion", "potato", "rice", "tomato", "wheat"}, crops)
}

func TestEveryDiseaseHasTreatmentGuidance(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)

	for _, key := range cat.DiseaseKeys() {
		rec, _ := cat.Lookup(key)
		assert.NotEmpty(t, rec.Treatments, "key %s", key)
		assert.NotEmpty(t, rec.OrganicTreatments, "key %s", key)
		assert.NotEmpty(t, rec.Prevention, "key %s", key)
		assert.NotEmpty(t, rec.HindiName, "key %s", key)
	}
}
