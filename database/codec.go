package database

import (
	"errors"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/errs"
)

// Slot names. Every persisted value lives under one of these keys.
const (
	KeyProjects    = "projects"
	KeyMessages    = "messages"
	KeyExperiences = "experiences"
	KeySkills      = "skills"
	KeyMetadata    = "metadata"
	KeyCV          = "cv"
	KeySeedVersion = "seed-version"
	KeyIsAdmin     = "is-admin"
)

// readList decodes the JSON array stored under key. An absent slot or text
// that is not an array of T yields an empty slice; only backend faults error.
func readList[T any](s *store, key string) ([]T, error) {
	raw, found, err := s.backend.Get(s.key(key))
	if err != nil {
		return nil, errs.NewStorageReadFaultError(key, err)
	}
	if !found {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("Unparseable slot treated as empty")
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// readValue is the singleton counterpart of readList; found is false for an
// absent or unparseable slot.
func readValue[T any](s *store, key string) (value T, found bool, err error) {
	raw, ok, err := s.backend.Get(s.key(key))
	if err != nil {
		return value, false, errs.NewStorageReadFaultError(key, err)
	}
	if !ok {
		return value, false, nil
	}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("Unparseable slot treated as absent")
		var zero T
		return zero, false, nil
	}
	return value, true, nil
}

func writeList[T any](s *store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	return writeValue(s, key, items)
}

// writeValue replaces the slot with the JSON encoding of v
func writeValue(s *store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errs.NewStorageFaultError(key, err)
	}
	if err := s.backend.Set(s.key(key), string(data)); err != nil {
		return errs.NewStorageFaultError(key, err)
	}
	return nil
}

func deleteSlot(s *store, key string) error {
	if err := s.backend.Delete(s.key(key)); err != nil {
		return errs.NewStorageFaultError(key, err)
	}
	return nil
}

// errUnchanged aborts a mutation that found nothing to write
var errUnchanged = errors.New("unchanged")
