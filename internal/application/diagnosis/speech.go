package diagnosis

import (
	"fmt"
	"strings"

	domain "github.com/bryanwahyu/fasal-drishti/internal/domain/diagnosis"
)

// SpeechText converts a diagnosis into a short spoken advisory. Hindi gets a
// native template; every other language uses the English template (the
// synthesizer voice handles the accent).
func SpeechText(d domain.Diagnosis, lang string) string {
	var b strings.Builder
	if lang == "hi" {
		b.WriteString("नमस्ते किसान भाई। फसल दृष्टि का विश्लेषण पूरा हुआ। ")
		if d.IsHealthy {
			fmt.Fprintf(&b, "आपकी %s की फसल स्वस्थ है। कोई बीमारी नहीं पाई गई। नियमित देखभाल जारी रखें।", d.Crop)
			return b.String()
		}
		name := d.HindiName
		if name == "" {
			name = d.DiseaseName
		}
		fmt.Fprintf(&b, "आपकी %s की फसल में %s बीमारी पाई गई है। गंभीरता का स्तर %s है। ", d.Crop, name, d.Severity)
		if len(d.Treatments) > 0 {
			t := d.Treatments[0]
			fmt.Fprintf(&b, "इलाज: %s का प्रयोग करें। मात्रा: %s। ", t.Name, t.Dosage)
		}
		if len(d.OrganicTreatments) > 0 {
			fmt.Fprintf(&b, "जैविक उपचार: %s। ", d.OrganicTreatments[0])
		}
		b.WriteString("कृपया जल्द से जल्द उपचार शुरू करें।")
		return b.String()
	}

	b.WriteString("Hello farmer. FasalDrishti analysis is complete. ")
	if d.IsHealthy {
		fmt.Fprintf(&b, "Your %s crop is healthy. No disease was detected. Continue regular care.", d.Crop)
		return b.String()
	}
	fmt.Fprintf(&b, "Your %s crop has been diagnosed with %s. Severity level is %s. Confidence of detection is %d percent. ",
		d.Crop, d.DiseaseName, d.Severity, int(d.Confidence*100))
	if len(d.Treatments) > 0 {
		t := d.Treatments[0]
		fmt.Fprintf(&b, "Recommended treatment: %s. Dosage: %s. ", t.Name, t.Dosage)
	}
	if len(d.OrganicTreatments) > 0 {
		fmt.Fprintf(&b, "Organic alternative: %s. ", d.OrganicTreatments[0])
	}
	b.WriteString("Please start treatment as soon as possible.")
	return b.String()
}
