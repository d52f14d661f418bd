package database

import (
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/errs"
)

// SessionRepo persists the flag that unlocks the admin surface. The flag
// alone authenticates nobody; the API pairs it with a signed token.
type SessionRepo struct {
	s *store
}

func NewSessionRepo(s *store) *SessionRepo {
	return &SessionRepo{s}
}

func (r *SessionRepo) Grant() error {
	if err := r.s.backend.Set(r.s.key(KeyIsAdmin), "true"); err != nil {
		return errs.NewStorageFaultError(KeyIsAdmin, err)
	}
	log.Info().Msg("Admin session granted")
	return nil
}

func (r *SessionRepo) Revoke() error {
	if err := r.s.backend.Delete(r.s.key(KeyIsAdmin)); err != nil {
		return errs.NewStorageFaultError(KeyIsAdmin, err)
	}
	log.Info().Msg("Admin session revoked")
	return nil
}

func (r *SessionRepo) IsGranted() (bool, error) {
	v, found, err := r.s.backend.Get(r.s.key(KeyIsAdmin))
	if err != nil {
		return false, errs.NewStorageReadFaultError(KeyIsAdmin, err)
	}
	return found && v == "true", nil
}
