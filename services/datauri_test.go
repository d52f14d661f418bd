package services

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-site-backend/errs"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestEncodeDataURLSniffsContent(t *testing.T) {
	dataURL, mimeType := EncodeDataURL("photo.bin", pngHeader)
	assert.Equal(t, "image/png", mimeType)
	assert.True(t, strings.HasPrefix(dataURL, "data:image/png;base64,"))

	pdf := []byte("%PDF-1.7\n1 0 obj\n<<>>\nendobj\n")
	_, mimeType = EncodeDataURL("resume.pdf", pdf)
	assert.Equal(t, "application/pdf", mimeType)
}

func TestEncodeDataURLFallsBackToExtension(t *testing.T) {
	_, mimeType := EncodeDataURL("logo.svg", []byte{0x00, 0x01, 0x02, 0x03})
	assert.Equal(t, "image/svg+xml", mimeType)
}

func TestDataURLRoundTrip(t *testing.T) {
	dataURL, _ := EncodeDataURL("photo.png", pngHeader)

	mimeType, data, err := DecodeDataURL(dataURL)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.Equal(t, pngHeader, data)
}

func TestDecodeDataURLRejectsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no scheme", "image/png;base64,AAAA"},
		{"no comma", "data:image/png;base64"},
		{"not base64 encoded", "data:text/plain,hello"},
		{"bad payload", "data:image/png;base64,***"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeDataURL(tt.input)
			var apiErr *errs.ApiErr
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		})
	}
}
