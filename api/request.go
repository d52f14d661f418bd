package api

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/rpupo63/portfolio-site-backend/errs"
)

// maxJSONBody bounds JSON bodies that never carry file content
const maxJSONBody = 1 << 20

// contentBodyLimit bounds JSON bodies that may embed an uploaded file as a
// data URL: base64 grows the file by 4/3, plus room for the other fields.
func contentBodyLimit(maxUploadBytes int64) int64 {
	return maxUploadBytes*4/3 + 64<<10
}

// validator is implemented by every model the admin can submit
type validator interface {
	Validate() error
}

type normalizer interface {
	Normalize()
}

// decodeJSON reads a JSON body of at most limit bytes into dst, then
// normalizes and validates it when dst knows how
func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, payloadType string, dst any) error {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errs.NewMaxBodySizeExceededError(maxErr.Limit)
		}
		return errs.NewMalformedPayloadError(payloadType, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return errs.NewMalformedPayloadError(payloadType, err)
	}
	if n, ok := dst.(normalizer); ok {
		n.Normalize()
	}
	if v, ok := dst.(validator); ok {
		return v.Validate()
	}
	return nil
}

// idParam parses the numeric identity in the named path segment
func idParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid " + name)
	}
	return id, nil
}

// readUpload returns the name and bytes of the multipart field "file"
func readUpload(w http.ResponseWriter, r *http.Request, maxBytes int64) (string, []byte, error) {
	if mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mediaType != "multipart/form-data" {
		return "", nil, errs.NewUnsupportedMediaTypeError(r.Header.Get("Content-Type"), []string{"multipart/form-data"})
	}
	// room for the multipart framing around the file itself
	limit := maxBytes + 64<<10
	if r.ContentLength > limit {
		return "", nil, errs.NewMaxBodySizeExceededError(maxBytes)
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "", nil, errs.NewMaxBodySizeExceededError(maxBytes)
		}
		return "", nil, errs.NewMalformedPayloadError("multipart", err)
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		return "", nil, errs.NewMissingRequiredFieldError("file")
	}
	defer file.Close()

	if header.Size > maxBytes {
		return "", nil, errs.NewMaxBodySizeExceededError(maxBytes)
	}
	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return "", nil, errs.NewMalformedPayloadError("multipart", err)
	}
	if int64(len(data)) > maxBytes {
		return "", nil, errs.NewMaxBodySizeExceededError(maxBytes)
	}
	if len(data) == 0 {
		return "", nil, errs.NewInvalidFieldError("file", "empty upload")
	}
	return header.Filename, data, nil
}
