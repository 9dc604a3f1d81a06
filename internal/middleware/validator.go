package middleware

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
)

// Input validation and sanitization utilities

var languagePattern = regexp.MustCompile(`^[a-z]{2}(-[A-Za-z]{2,4})?$`)

// ValidateLanguage checks BCP-47-ish language codes ("hi", "en", "pa-Guru")
func ValidateLanguage(lang string) error {
	if lang == "" {
		return nil // optional, service falls back to its default
	}
	if !languagePattern.MatchString(lang) {
		return fmt.Errorf("invalid language code: %s", lang)
	}
	return nil
}

// ValidateMediaType restricts uploads to image types the vision models accept
func ValidateMediaType(mediaType string) error {
	if mediaType == "" {
		return nil // defaults to image/jpeg downstream
	}
	allowed := map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/webp": true,
	}
	if !allowed[strings.ToLower(mediaType)] {
		return fmt.Errorf("unsupported media type: %s (allowed: image/jpeg, image/png, image/webp)", mediaType)
	}
	return nil
}

// ValidateImageBase64 checks the payload decodes and fits the size cap.
// Returns the decoded bytes so the handler doesn't decode twice.
func ValidateImageBase64(encoded string, maxBytes int64) ([]byte, error) {
	if strings.TrimSpace(encoded) == "" {
		return nil, fmt.Errorf("image payload cannot be empty")
	}
	// tolerate data URL prefixes from mobile clients
	if i := strings.Index(encoded, ","); i != -1 && strings.HasPrefix(encoded, "data:") {
		encoded = encoded[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 image payload: %w", err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("image too large: %d bytes (max %d)", len(data), maxBytes)
	}
	return data, nil
}

// ValidateScanID validates scan ID format (UUID)
func ValidateScanID(scanID string) error {
	if scanID == "" {
		return fmt.Errorf("scan ID cannot be empty")
	}
	pattern := `^[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12}$`
	matched, _ := regexp.MatchString(pattern, strings.ToLower(scanID))
	if !matched {
		return fmt.Errorf("invalid scan ID format")
	}
	return nil
}

// ValidateRequesterID validates requester ID format
func ValidateRequesterID(requester string) error {
	if requester == "" {
		return nil // anonymous scans are allowed
	}
	pattern := `^[a-zA-Z0-9_+-]{1,64}$`
	matched, _ := regexp.MatchString(pattern, requester)
	if !matched {
		return fmt.Errorf("invalid requester ID format (alphanumeric, dash, underscore only, max 64 chars)")
	}
	return nil
}

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")

	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}

// ValidateLimit validates pagination limit
func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 20 // default
	}
	if limit > 100 {
		return 100 // max limit
	}
	return limit
}

// ValidateDays validates days parameter
func ValidateDays(days int) int {
	if days <= 0 {
		return 7 // default
	}
	if days > 365 {
		return 365 // max 1 year
	}
	return days
}
