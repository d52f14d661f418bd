package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Configuration & Environment Errors
var (
	ErrConfigMissing       = errors.New("configuration missing")
	ErrEnvironmentVariable = errors.New("environment variable error")
)

// Third-party delivery errors
var (
	ErrServiceUnreachable = errors.New("service unreachable")
	ErrPartialFailure     = errors.New("partial failure")
)

// Serialization & Encoding Errors
var (
	ErrBase64Decode = errors.New("base64 decode error")
	ErrDataURL      = errors.New("malformed data URL")
)

func NewConfigError(configName string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrConfigMissing,
		Details:    fmt.Sprintf("Configuration error: %s", configName),
		Cause:      cause,
		Field:      "config",
	}
}

func NewEnvironmentVariableError(varName string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrEnvironmentVariable,
		Details:    fmt.Sprintf("Environment variable %s is required", varName),
		Field:      varName,
	}
}

func NewServiceUnreachableError(service string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrServiceUnreachable,
		Details:    fmt.Sprintf("Service %s is unreachable", service),
		Cause:      cause,
		Field:      "service",
	}
}

func NewPartialFailureError(operation string, failedSteps []string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusMultiStatus,
		err:        ErrPartialFailure,
		Details:    fmt.Sprintf("Partial failure in %s: %s", operation, strings.Join(failedSteps, "; ")),
		Field:      "partial_failure",
	}
}

func NewBase64DecodeError(operation string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrBase64Decode,
		Details:    fmt.Sprintf("Base64 decode error in %s", operation),
		Cause:      cause,
		Field:      "base64",
	}
}

func NewDataURLError(reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrDataURL,
		Details:    reason,
		Field:      "base64",
	}
}

func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfigMissing)
}

func IsServiceUnreachableError(err error) bool {
	return errors.Is(err, ErrServiceUnreachable)
}

func IsPartialFailureError(err error) bool {
	return errors.Is(err, ErrPartialFailure)
}

func IsDataURLError(err error) bool {
	return errors.Is(err, ErrDataURL)
}
