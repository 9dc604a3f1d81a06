package labels

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bryanwahyu/fasal-drishti/internal/domain/catalog"
	"github.com/bryanwahyu/fasal-drishti/internal/domain/diagnosis"
)

// Label-based matching is inherently lower fidelity than the vision model, so
// its confidence is discounted and capped to never present as vision-grade
// certainty.
const (
	confidenceDiscount = 0.8
	confidenceCap      = 0.75
)

// Label is one detection from the label service, confidence in [0,1].
type Label struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// Client is the secondary analyzer: a generic image label-detection service
// whose labels are keyword-matched against the disease catalog.
type Client struct {
	endpoint      string
	apiKey        string
	maxLabels     int
	minConfidence float64
	catalog       *catalog.Catalog
	httpClient    *http.Client
}

func NewClient(endpoint, apiKey string, maxLabels int, minConfidence float64, timeout time.Duration, cat *catalog.Catalog) *Client {
	if maxLabels <= 0 {
		maxLabels = 25
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		endpoint:      strings.TrimRight(endpoint, "/"),
		apiKey:        apiKey,
		maxLabels:     maxLabels,
		minConfidence: minConfidence,
		catalog:       cat,
		httpClient:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Name() diagnosis.SourceEngine { return diagnosis.EngineSecondaryLabels }

func (c *Client) Infer(ctx context.Context, image []byte, mediaType string) (diagnosis.AnalysisResult, error) {
	labels, err := c.detect(ctx, image)
	if err != nil {
		return diagnosis.AnalysisResult{}, diagnosis.NewAnalyzerError(c.Name(), err)
	}

	result, ok := Match(c.catalog, labels)
	if !ok {
		return diagnosis.AnalysisResult{}, diagnosis.NewAnalyzerError(c.Name(),
			fmt.Errorf("labels did not identify a plant"))
	}
	result.SourceEngine = c.Name()
	return result, nil
}

func (c *Client) detect(ctx context.Context, image []byte) ([]Label, error) {
	body := map[string]any{
		"image":          base64.StdEncoding.EncodeToString(image),
		"max_labels":     c.maxLabels,
		"min_confidence": c.minConfidence,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1/labels", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("label service request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("label service status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed struct {
		Labels []Label `json:"labels"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding label response: %w", err)
	}

	out := make([]Label, 0, len(parsed.Labels))
	for _, l := range parsed.Labels {
		l.Name = strings.ToLower(strings.TrimSpace(l.Name))
		if l.Confidence > 1 {
			l.Confidence = l.Confidence / 100 // service answered in percent
		}
		if l.Name != "" {
			out = append(out, l)
		}
	}
	return out, nil
}

// extra synonyms on top of the catalog's own crop names
var cropSynonyms = map[string][]string{
	"tomato": {"solanum"},
	"rice":   {"paddy"},
	"wheat":  {"cereal"},
	"chili":  {"pepper", "capsicum"},
	"onion":  {"allium"},
}

var genericPlantLabels = map[string]bool{
	"plant": true, "leaf": true, "vegetation": true, "flora": true,
	"flower": true, "fruit": true, "crop": true,
}

var diseaseIndicators = map[string]bool{
	"spot": true, "blight": true, "rust": true, "mold": true, "wilt": true,
	"rot": true, "fungus": true, "lesion": true, "discoloration": true,
	"yellowing": true, "browning": true, "damage": true, "insect": true,
	"pest": true, "mildew": true, "necrosis": true,
}

// Match maps detected labels onto {crop, disease_key} via case-insensitive
// keyword matching against the catalog. The produced confidence is derived
// from the underlying label confidences and never exceeds them.
func Match(cat *catalog.Catalog, labels []Label) (diagnosis.AnalysisResult, bool) {
	crop, cropConf := identifyCrop(cat, labels)
	if crop == "" {
		if !hasGenericPlantLabel(labels) {
			return diagnosis.AnalysisResult{}, false
		}
		crop = "unknown"
	}

	indicators := indicatorLabels(labels)
	if len(indicators) == 0 {
		// plant identified, no disease cues
		return diagnosis.AnalysisResult{
			Crop:       crop,
			DiseaseKey: catalog.KeyHealthy,
			IsHealthy:  true,
			Confidence: discount(cropConf),
			Severity:   diagnosis.SeverityNone,
			Notes:      labelNotes(labels),
		}, true
	}

	key, conf := matchDisease(cat, crop, labels, indicators)
	symptoms := make([]string, 0, len(indicators))
	for _, l := range indicators {
		symptoms = append(symptoms, l.Name)
	}

	return diagnosis.AnalysisResult{
		Crop:             crop,
		DiseaseKey:       key,
		Confidence:       discount(conf),
		Severity:         diagnosis.SeverityModerate,
		ObservedSymptoms: symptoms,
		Notes:            labelNotes(labels),
	}, true
}

func identifyCrop(cat *catalog.Catalog, labels []Label) (string, float64) {
	for _, crop := range cat.Crops() {
		keywords := append([]string{crop}, cropSynonyms[crop]...)
		for _, l := range labels {
			for _, kw := range keywords {
				if strings.Contains(l.Name, kw) {
					return crop, l.Confidence
				}
			}
		}
	}
	return "", 0
}

func hasGenericPlantLabel(labels []Label) bool {
	for _, l := range labels {
		if genericPlantLabels[l.Name] {
			return true
		}
	}
	return false
}

func indicatorLabels(labels []Label) []Label {
	var out []Label
	for _, l := range labels {
		if diseaseIndicators[l.Name] {
			out = append(out, l)
		}
	}
	return out
}

// matchDisease prefers a catalog record whose image keywords overlap the
// labels; otherwise falls back to the first known disease for the crop.
func matchDisease(cat *catalog.Catalog, crop string, labels []Label, indicators []Label) (string, float64) {
	bestKey := ""
	bestConf := 0.0
	for _, rec := range cat.ByCrop(crop) {
		for _, kw := range rec.ImageKeywords {
			for _, l := range labels {
				if strings.Contains(kw, l.Name) || strings.Contains(l.Name, kw) {
					if l.Confidence > bestConf {
						bestKey = rec.Key
						bestConf = l.Confidence
					}
				}
			}
		}
	}
	if bestKey != "" {
		return bestKey, bestConf
	}

	strongest := 0.0
	for _, l := range indicators {
		if l.Confidence > strongest {
			strongest = l.Confidence
		}
	}
	if recs := cat.ByCrop(crop); len(recs) > 0 {
		return recs[0].Key, strongest
	}
	return diagnosis.DiseaseKeyUnknown, strongest
}

func discount(conf float64) float64 {
	conf = conf * confidenceDiscount
	if conf > confidenceCap {
		conf = confidenceCap
	}
	return conf
}

func labelNotes(labels []Label) string {
	names := make([]string, 0, 8)
	for i, l := range labels {
		if i == 8 {
			break
		}
		names = append(names, l.Name)
	}
	return "Identified via label detection. Labels: " + strings.Join(names, ", ")
}
