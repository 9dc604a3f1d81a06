package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/bryanwahyu/fasal-drishti/internal/domain/diagnosis"
)

func TestParseVisionPlainJSON(t *testing.T) {
	raw := `{
		"crop": "Tomato",
		"is_healthy": false,
		"disease_key": "tomato_early_blight",
		"disease_name": "Early Blight",
		"confidence": 0.87,
		"severity": "moderate",
		"symptoms_observed": ["dark concentric spots"],
		"additional_notes": "lower leaves affected"
	}`

	res, err := ParseVision(raw)
	require.NoError(t, err)
	assert.Equal(t, "tomato", res.Crop)
	assert.Equal(t, "tomato_early_blight", res.DiseaseKey)
	assert.False(t, res.IsHealthy)
	assert.InDelta(t, 0.87, res.Confidence, 1e-9)
	assert.Equal(t, domain.SeverityModerate, res.Severity)
	assert.Equal(t, []string{"dark concentric spots"}, res.ObservedSymptoms)
}

func TestParseVisionCodeFence(t *testing.T) {
	raw := "```json\n{\"crop\": \"rice\", \"is_healthy\": false, \"disease_key\": \"rice_blast\", \"confidence\": 0.7, \"severity\": \"severe\"}\n```"

	res, err := ParseVision(raw)
	require.NoError(t, err)
	assert.Equal(t, "rice_blast", res.DiseaseKey)
	assert.Equal(t, domain.SeveritySevere, res.Severity)
}

func TestParseVisionProseWrapped(t *testing.T) {
	raw := `Here is my analysis of the image:
{"crop": "wheat", "is_healthy": false, "disease_key": "wheat_leaf_rust", "confidence": 0.65, "severity": "mild"}
Let me know if you need more detail.`

	res, err := ParseVision(raw)
	require.NoError(t, err)
	assert.Equal(t, "wheat_leaf_rust", res.DiseaseKey)
	assert.Equal(t, "wheat", res.Crop)
}

func TestParseVisionPercentConfidence(t *testing.T) {
	raw := `{"crop": "potato", "is_healthy": false, "disease_key": "potato_late_blight", "confidence": 87, "severity": "severe"}`

	res, err := ParseVision(raw)
	require.NoError(t, err)
	assert.InDelta(t, 0.87, res.Confidence, 1e-9)
}

func TestParseVisionConfidenceClamped(t *testing.T) {
	raw := `{"crop": "potato", "disease_key": "potato_late_blight", "confidence": -3, "severity": "mild"}`
	res, err := ParseVision(raw)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Confidence)
}

func TestParseVisionUnknownSeverity(t *testing.T) {
	raw := `{"crop": "chili", "disease_key": "chili_anthracnose", "confidence": 0.6, "severity": "catastrophic"}`

	res, err := ParseVision(raw)
	require.NoError(t, err)
	assert.Equal(t, domain.SeverityModerate, res.Severity)
}

func TestParseVisionMissingDiseaseKey(t *testing.T) {
	raw := `{"crop": "onion", "is_healthy": false, "disease_name": "Some Exotic Rot", "confidence": 0.55, "severity": "mild"}`

	res, err := ParseVision(raw)
	require.NoError(t, err)
	assert.Equal(t, domain.DiseaseKeyUnknown, res.DiseaseKey)
	assert.Equal(t, "Some Exotic Rot", res.DiseaseName)
}

func TestParseVisionHealthyOverridesKey(t *testing.T) {
	raw := `{"crop": "tomato", "is_healthy": true, "disease_key": "tomato_early_blight", "confidence": 0.9, "severity": "moderate"}`

	res, err := ParseVision(raw)
	require.NoError(t, err)
	assert.True(t, res.IsHealthy)
	assert.Equal(t, "healthy", res.DiseaseKey)
	assert.Equal(t, domain.SeverityNone, res.Severity)
}

func TestParseVisionMalformed(t *testing.T) {
	_, err := ParseVision("the plant looks sick but I cannot tell more")
	require.Error(t, err)

	_, err = ParseVision(`{"crop": "tomato", unterminated`)
	require.Error(t, err)
}

func TestExtractJSONNestedBraces(t *testing.T) {
	raw := `prefix {"a": {"b": "}"}, "c": 1} suffix`
	assert.Equal(t, `{"a": {"b": "}"}, "c": 1}`, ExtractJSON(raw))
}

func TestExtractJSONNone(t *testing.T) {
	assert.Equal(t, "", ExtractJSON("no object here"))
	assert.Equal(t, "", ExtractJSON("{broken"))
}

func TestSystemPromptNamesCatalogKeys(t *testing.T) {
	p := GetSystemPrompt()
	for _, key := range []string{
		"tomato_early_blight", "rice_blast", "wheat_yellow_rust",
		"cotton_bacterial_blight", "potato_late_blight", "chili_anthracnose",
		"onion_purple_blotch", "healthy",
	} {
		assert.Contains(t, p, key)
	}
}
