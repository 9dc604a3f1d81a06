package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// KeyHealthy is the reserved key for a plant with no detected disease.
const KeyHealthy = "healthy"

// Treatment value object (chemical treatment with dosage and cost).
// MethodTranslated is never set on catalog records; the pipeline fills it on
// its own copy when the caller asked for a non-English advisory.
type Treatment struct {
	Name             string `json:"name"`
	Dosage           string `json:"dosage"`
	Method           string `json:"method"`
	MethodTranslated string `json:"method_translated,omitempty"`
	Frequency        string `json:"frequency"`
	CostPerAcre      int    `json:"cost_per_acre"`
}

// DiseaseRecord is one static catalog entry. Records are loaded once at
// startup and never mutated afterwards.
type DiseaseRecord struct {
	Key                 string      `json:"key"`
	DiseaseName         string      `json:"disease_name"`
	HindiName           string      `json:"hindi_name"`
	ScientificName      string      `json:"scientific_name"`
	Crop                string      `json:"crop"`
	CropHindi           string      `json:"crop_hindi"`
	Category            string      `json:"category"`
	TypicalSeverity     string      `json:"severity_typical"`
	Description         string      `json:"description"`
	DescriptionHindi    string      `json:"description_hindi"`
	Symptoms            []string    `json:"symptoms"`
	Treatments          []Treatment `json:"treatments"`
	OrganicTreatments   []string    `json:"organic_treatments"`
	Prevention          []string    `json:"prevention"`
	FavorableConditions string      `json:"favorable_conditions"`
	ImageKeywords       []string    `json:"image_keywords,omitempty"`
}

// Catalog adalah lookup table penyakit, read-only setelah New().
type Catalog struct {
	records map[string]*DiseaseRecord
	order   []string
	byCrop  map[string][]string
}

// New builds the catalog from the embedded static data and validates key
// uniqueness. A duplicate key is the only hard startup failure in the system.
func New() (*Catalog, error) {
	c := &Catalog{
		records: make(map[string]*DiseaseRecord, len(diseaseData)),
		byCrop:  make(map[string][]string),
	}
	for i := range diseaseData {
		rec := &diseaseData[i]
		if strings.TrimSpace(rec.Key) == "" {
			return nil, fmt.Errorf("catalog entry %d has an empty key", i)
		}
		if _, dup := c.records[rec.Key]; dup {
			return nil, fmt.Errorf("duplicate catalog key: %s", rec.Key)
		}
		// crop is a grouping key everywhere (analyzers, summary group-by),
		// so it must be lowercase; display casing lives in CropHindi only
		rec.Crop = strings.ToLower(strings.TrimSpace(rec.Crop))
		c.records[rec.Key] = rec
		c.order = append(c.order, rec.Key)

		if rec.Key != KeyHealthy {
			c.byCrop[rec.Crop] = append(c.byCrop[rec.Crop], rec.Key)
		}
	}
	if _, ok := c.records[KeyHealthy]; !ok {
		return nil, fmt.Errorf("catalog is missing the %q record", KeyHealthy)
	}
	return c, nil
}

// Lookup returns the record for a key. Records are shared and must be
// treated as read-only by callers.
func (c *Catalog) Lookup(key string) (*DiseaseRecord, bool) {
	rec, ok := c.records[key]
	return rec, ok
}

// All returns every record in declaration order.
func (c *Catalog) All() []*DiseaseRecord {
	out := make([]*DiseaseRecord, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.records[k])
	}
	return out
}

// ByCrop returns the disease records known for a crop (healthy excluded).
func (c *Catalog) ByCrop(crop string) []*DiseaseRecord {
	keys := c.byCrop[strings.ToLower(crop)]
	out := make([]*DiseaseRecord, 0, len(keys))
	for _, k := range keys {
		out = append(out, c.records[k])
	}
	return out
}

// Crops returns the sorted list of crops with at least one disease entry.
func (c *Catalog) Crops() []string {
	out := make([]string, 0, len(c.byCrop))
	for crop := range c.byCrop {
		out = append(out, crop)
	}
	sort.Strings(out)
	return out
}

// DiseaseKeys returns every non-healthy key in declaration order. Used by the
// demo analyzer to pick a plausible record.
func (c *Catalog) DiseaseKeys() []string {
	out := make([]string, 0, len(c.order)-1)
	for _, k := range c.order {
		if k != KeyHealthy {
			out = append(out, k)
		}
	}
	return out
}

// Len total jumlah record.
func (c *Catalog) Len() int { return len(c.records) }
