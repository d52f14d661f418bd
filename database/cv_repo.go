package database

import "github.com/rpupo63/portfolio-site-backend/models"

// CVRepo holds the singleton downloadable CV
type CVRepo struct {
	s *store
}

func NewCVRepo(s *store) *CVRepo {
	return &CVRepo{s}
}

// Get returns nil when no CV has been uploaded
func (r *CVRepo) Get() (*models.CVData, error) {
	cv, found, err := readValue[models.CVData](r.s, KeyCV)
	if err != nil || !found {
		return nil, err
	}
	return &cv, nil
}

func (r *CVRepo) Save(cv models.CVData) error {
	return r.s.mutate(func() error {
		return writeValue(r.s, KeyCV, cv)
	})
}

// Clear removes the CV so Get reports it absent again
func (r *CVRepo) Clear() error {
	return r.s.mutate(func() error {
		return deleteSlot(r.s, KeyCV)
	})
}
