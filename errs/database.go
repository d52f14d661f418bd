package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
	ErrStorageFault       = errors.New("storage fault")
	ErrStorageQuotaFull   = errors.New("storage quota full")
	ErrUnknownBackend     = errors.New("unknown storage backend")
)

// NewStorageFaultError reports a backend that refused to persist a slot
func NewStorageFaultError(key string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrStorageFault,
		Details:    fmt.Sprintf("Failed to persist %s", key),
		Cause:      cause,
		Field:      "storage",
	}
}

// NewStorageReadFaultError reports a backend that could not return a slot
func NewStorageReadFaultError(key string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrStorageFault,
		Details:    fmt.Sprintf("Failed to read %s", key),
		Cause:      cause,
		Field:      "storage",
	}
}

func NewStorageQuotaFullError(operation string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInsufficientStorage,
		err:        ErrStorageQuotaFull,
		Details:    fmt.Sprintf("Storage quota full during %s", operation),
		Field:      "storage",
	}
}

func NewUnknownBackendError(name string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrUnknownBackend,
		Details:    fmt.Sprintf("STORE_BACKEND=%q is not one of postgres, sqlite, redis, memory", name),
	}
}

// NewDatabaseError creates a new database error with details about the operation
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	var apiErr *ApiErr
	if errors.As(cause, &apiErr) && errors.Is(apiErr, ErrStorageFault) {
		if isQuotaMessage(apiErr.GetFullError()) {
			quota := NewStorageQuotaFullError(operation)
			quota.Cause = cause
			return quota
		}
		return &ApiErr{
			StatusCode: http.StatusInternalServerError,
			err:        ErrStorageFault,
			Details:    details,
			Cause:      cause,
		}
	}

	if cause != nil {
		errStr := cause.Error()
		switch {
		case isQuotaMessage(errStr):
			quota := NewStorageQuotaFullError(operation)
			quota.Cause = cause
			return quota
		case strings.Contains(errStr, "connection"):
			return &ApiErr{
				StatusCode: http.StatusServiceUnavailable,
				err:        ErrDatabaseConnection,
				Details:    "Unable to connect to database",
				Cause:      cause,
			}
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    details,
		Cause:      cause,
	}
}

func isQuotaMessage(s string) bool {
	s = strings.ToLower(s)
	return strings.Contains(s, "quota") || strings.Contains(s, "disk full") || strings.Contains(s, "oom command not allowed")
}

func IsStorageFaultError(err error) bool {
	return errors.Is(err, ErrStorageFault)
}

func IsStorageQuotaFullError(err error) bool {
	return errors.Is(err, ErrStorageQuotaFull)
}
