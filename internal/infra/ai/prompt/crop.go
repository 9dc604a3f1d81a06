package prompt

import (
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/bryanwahyu/fasal-drishti/internal/domain/catalog"
	domain "github.com/bryanwahyu/fasal-drishti/internal/domain/diagnosis"
)

// GetSystemPrompt provides strict directions and schema for JSON output.
func GetSystemPrompt() string {
	return `You are FasalDrishti, an expert AI agricultural pathologist specializing in Indian crop diseases.
You must produce one valid JSON object only (no markdown, no commentary, no code fences).

TASK: Analyze the provided crop image carefully and produce a detailed diagnosis.

STEP 1 - IDENTIFY THE CROP:
Look at leaf shape, size, color, stem structure, fruit/flower if visible.
Common Indian crops: Tomato, Rice (Paddy), Wheat, Cotton, Potato, Chili (Mirch), Onion,
Sugarcane, Maize, Soybean, Mustard, Groundnut, Mango, Banana, Grape.

STEP 2 - ASSESS PLANT HEALTH:
Is the plant Healthy or Diseased? If diseased, what visual symptoms do you observe?
(spots, lesions, discoloration, wilting, mold, deformation, necrosis, mosaic patterns)

STEP 3 - DIAGNOSE THE DISEASE:
Consider: fungal, bacterial, viral, nutrient deficiency, pest damage.

STEP 4 - RATE SEVERITY:
"none" = healthy plant; "mild" = early stage, <20% leaf area affected;
"moderate" = 20-50% affected, spreading; "severe" = >50% affected, yield loss likely.

STEP 5 - MATCH TO A KNOWN DATABASE KEY (if applicable):
tomato_early_blight, tomato_late_blight, tomato_leaf_curl,
rice_blast, rice_brown_spot,
wheat_leaf_rust, wheat_yellow_rust,
cotton_bacterial_blight,
potato_late_blight,
chili_anthracnose,
onion_purple_blotch,
healthy

If the disease does not match any above, use "unknown_disease" and provide the full name.

Schema (values are examples):
{
  "crop": "tomato",
  "is_healthy": false,
  "disease_key": "tomato_early_blight",
  "disease_name": "Early Blight",
  "disease_cause": "Fungal",
  "confidence": 0.87,
  "severity": "moderate",
  "symptoms_observed": ["symptom visible in image"],
  "additional_notes": "any extra observations"
}`
}

// GetUserPrompt builds the compact user message that accompanies the image.
func GetUserPrompt() string {
	return "Analyze this crop photo and respond with the JSON per schema."
}

// visionPayload mirrors the schema requested from the model. Confidence is a
// json.Number because models return both 0.87 and 87.
type visionPayload struct {
	Crop             string      `json:"crop"`
	IsHealthy        bool        `json:"is_healthy"`
	DiseaseKey       string      `json:"disease_key"`
	DiseaseName      string      `json:"disease_name"`
	DiseaseCause     string      `json:"disease_cause"`
	Confidence       json.Number `json:"confidence"`
	Severity         string      `json:"severity"`
	SymptomsObserved []string    `json:"symptoms_observed"`
	AdditionalNotes  string      `json:"additional_notes"`
}

// ParseVision normalizes a raw model response into an AnalysisResult.
// This is the strict schema-validation boundary: confidence is clamped,
// severity is mapped onto the allowed enum, and a missing disease key becomes
// the unknown sentinel. Malformed JSON is the only error.
func ParseVision(raw string) (domain.AnalysisResult, error) {
	text := ExtractJSON(raw)
	if text == "" {
		return domain.AnalysisResult{}, fmt.Errorf("no JSON object in model response")
	}

	var p visionPayload
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("decoding model response: %w", err)
	}

	conf, _ := p.Confidence.Float64()
	if conf > 1 {
		conf = conf / 100 // model answered in percent
	}
	if conf < 0 {
		conf = 0
	}
	if conf > 1 {
		conf = 1
	}

	sev, known := domain.NormalizeSeverity(strings.ToLower(strings.TrimSpace(p.Severity)))
	if !known {
		log.Printf("vision response has unknown severity %q, using %s", p.Severity, sev)
	}

	key := strings.TrimSpace(p.DiseaseKey)
	if key == "" {
		key = domain.DiseaseKeyUnknown
	}
	if p.IsHealthy {
		key = catalog.KeyHealthy
		sev = domain.SeverityNone
	}

	return domain.AnalysisResult{
		Crop:             strings.ToLower(strings.TrimSpace(p.Crop)),
		DiseaseKey:       key,
		DiseaseName:      strings.TrimSpace(p.DiseaseName),
		IsHealthy:        p.IsHealthy,
		Confidence:       conf,
		Severity:         sev,
		ObservedSymptoms: p.SymptomsObserved,
		Notes:            strings.TrimSpace(p.AdditionalNotes),
	}, nil
}

var fenceRe = regexp.MustCompile("^```(?:json)?\\s*|\\s*```$")

// ExtractJSON pulls the first balanced JSON object out of a model response,
// tolerating markdown code fences and surrounding prose.
func ExtractJSON(text string) string {
	text = strings.TrimSpace(text)
	text = fenceRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)

	if json.Valid([]byte(text)) && strings.HasPrefix(text, "{") {
		return text
	}

	depth := 0
	start := -1
	inString := false
	escaped := false
	for i, ch := range text {
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			depth--
			if depth == 0 && start >= 0 {
				candidate := text[start : i+1]
				if json.Valid([]byte(candidate)) {
					return candidate
				}
				start = -1
			}
		}
	}
	return ""
}
