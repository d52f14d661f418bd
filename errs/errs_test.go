package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDatabaseErrorClassifiesCauses(t *testing.T) {
	tests := []struct {
		name       string
		cause      error
		wantStatus int
		wantIs     error
	}{
		{"storage fault", NewStorageFaultError("projects", errors.New("disk I/O error")), http.StatusInternalServerError, ErrStorageFault},
		{"quota inside storage fault", NewStorageFaultError("cv", errors.New("OOM command not allowed")), http.StatusInsufficientStorage, ErrStorageQuotaFull},
		{"bare quota", errors.New("exceeded the quota"), http.StatusInsufficientStorage, ErrStorageQuotaFull},
		{"connection refused", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable, ErrDatabaseConnection},
		{"anything else", errors.New("syntax error"), http.StatusInternalServerError, ErrDatabaseQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDatabaseError("update", "project", tt.cause)
			assert.Equal(t, tt.wantStatus, err.StatusCode)
			assert.ErrorIs(t, err, tt.wantIs)
			assert.Contains(t, err.GetFullError(), tt.cause.Error())
		})
	}
}

func TestAuthErrorsAreUnauthorized(t *testing.T) {
	for _, err := range []error{
		NewMissingTokenError(),
		NewInvalidTokenError(errors.New("expired")),
		NewSessionRevokedError(),
		NewWrongPasswordError(),
	} {
		assert.True(t, IsUnauthorized(err), err.Error())
	}
	assert.True(t, IsSessionRevokedError(NewSessionRevokedError()))
	assert.False(t, IsUnauthorized(NewAuthNotConfiguredError()))
}

func TestGetFullErrorFollowsNestedApiErrs(t *testing.T) {
	inner := NewStorageFaultError("skills", errors.New("readonly database"))
	outer := NewInternalErrorWithCause("save skill", inner)

	assert.Equal(t,
		"save skill: internal server error -> storage fault: Failed to persist skills -> readonly database",
		outer.GetFullError())
	assert.True(t, IsInternal(outer))
	assert.True(t, IsNotFound(NewNotFoundError("project not found")))
	assert.True(t, IsBadRequest(NewBadRequestError("invalid projectID")))
}

func TestStorageFaultDetailsNameTheDirection(t *testing.T) {
	read := NewStorageReadFaultError("projects", errors.New("i/o timeout"))
	write := NewStorageFaultError("projects", errors.New("i/o timeout"))

	assert.Equal(t, "Failed to read projects", read.Details)
	assert.Equal(t, "Failed to persist projects", write.Details)
	assert.True(t, IsStorageFaultError(read))
	assert.True(t, IsStorageFaultError(write))
}

func TestRequestAndServiceErrorCheckers(t *testing.T) {
	assert.True(t, IsMissingRequiredFieldError(NewMissingRequiredFieldError("title")))
	assert.True(t, IsInvalidFieldError(NewInvalidFieldError("role", "unknown role")))
	assert.True(t, IsMaxBodySizeExceededError(NewMaxBodySizeExceededError(1024)))
	assert.True(t, IsConfigError(NewConfigError("JWT_SECRET", errors.New("too short"))))
	assert.True(t, IsServiceUnreachableError(NewServiceUnreachableError("resend", errors.New("timeout"))))
	assert.True(t, IsPartialFailureError(NewPartialFailureError("inquiry alert", []string{"sms: timeout"})))
	assert.True(t, IsDataURLError(NewDataURLError("missing data: scheme")))
	assert.False(t, IsDataURLError(NewBase64DecodeError("data URL", errors.New("illegal base64"))))

	unsupported := NewUnsupportedMediaTypeError("text/plain", []string{"multipart/form-data"})
	assert.Equal(t, http.StatusUnsupportedMediaType, unsupported.StatusCode)
	assert.ErrorIs(t, unsupported, ErrUnsupportedMediaType)
}
