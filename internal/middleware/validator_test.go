package middleware

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLanguage(t *testing.T) {
	assert.NoError(t, ValidateLanguage(""))
	assert.NoError(t, ValidateLanguage("en"))
	assert.NoError(t, ValidateLanguage("hi"))
	assert.NoError(t, ValidateLanguage("pa-Guru"))

	assert.Error(t, ValidateLanguage("english"))
	assert.Error(t, ValidateLanguage("EN"))
	assert.Error(t, ValidateLanguage("h1"))
}

func TestValidateMediaType(t *testing.T) {
	assert.NoError(t, ValidateMediaType(""))
	assert.NoError(t, ValidateMediaType("image/jpeg"))
	assert.NoError(t, ValidateMediaType("image/PNG"))
	assert.NoError(t, ValidateMediaType("image/webp"))

	assert.Error(t, ValidateMediaType("image/gif"))
	assert.Error(t, ValidateMediaType("application/pdf"))
}

func TestValidateImageBase64(t *testing.T) {
	raw := []byte("fake-image-bytes")
	encoded := base64.StdEncoding.EncodeToString(raw)

	got, err := ValidateImageBase64(encoded, 1024)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestValidateImageBase64DataURL(t *testing.T) {
	raw := []byte("fake-image-bytes")
	encoded := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw)

	got, err := ValidateImageBase64(encoded, 1024)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestValidateImageBase64Rejects(t *testing.T) {
	_, err := ValidateImageBase64("", 1024)
	assert.Error(t, err)

	_, err = ValidateImageBase64("not-base64!!!", 1024)
	assert.Error(t, err)

	big := base64.StdEncoding.EncodeToString([]byte(strings.Repeat("x", 2048)))
	_, err = ValidateImageBase64(big, 1024)
	assert.Error(t, err)
}

func TestValidateScanID(t *testing.T) {
	assert.NoError(t, ValidateScanID("a1b2c3d4-e5f6-7890-abcd-ef0123456789"))
	// case-insensitive
	assert.NoError(t, ValidateScanID("A1B2C3D4-E5F6-7890-ABCD-EF0123456789"))

	assert.Error(t, ValidateScanID(""))
	assert.Error(t, ValidateScanID("not-a-uuid"))
	assert.Error(t, ValidateScanID("a1b2c3d4-e5f6-7890-abcd-ef0123456789-extra"))
}

func TestValidateRequesterID(t *testing.T) {
	assert.NoError(t, ValidateRequesterID(""))
	assert.NoError(t, ValidateRequesterID("farmer-42"))
	assert.NoError(t, ValidateRequesterID("web"))
	assert.NoError(t, ValidateRequesterID("+919876543210"))

	assert.Error(t, ValidateRequesterID("a b c"))
	assert.Error(t, ValidateRequesterID(strings.Repeat("x", 65)))
	assert.Error(t, ValidateRequesterID("drop;table"))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("  hello\x00 "))
	assert.Equal(t, "a\nb", SanitizeString("a\nb"))
	assert.Equal(t, "ab", SanitizeString("a\x01\x02b"))
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, ValidateLimit(0))
	assert.Equal(t, 20, ValidateLimit(-5))
	assert.Equal(t, 50, ValidateLimit(50))
	assert.Equal(t, 100, ValidateLimit(9999))
}

func TestValidateDays(t *testing.T) {
	assert.Equal(t, 7, ValidateDays(0))
	assert.Equal(t, 30, ValidateDays(30))
	assert.Equal(t, 365, ValidateDays(1000))
}

func TestTokenBucket(t *testing.T) {
	tb := NewTokenBucket(2, 1)
	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow(), "bucket exhausted")
}
