package database

import "github.com/rpupo63/portfolio-site-backend/models"

// MetadataRepo holds the singleton owner profile
type MetadataRepo struct {
	s *store
}

func NewMetadataRepo(s *store) *MetadataRepo {
	return &MetadataRepo{s}
}

// Get returns the stored profile, or the defaults with no hero image when
// nothing usable is stored yet
func (r *MetadataRepo) Get() (models.PortfolioMetadata, error) {
	meta, found, err := readValue[models.PortfolioMetadata](r.s, KeyMetadata)
	if err != nil {
		return models.PortfolioMetadata{}, err
	}
	if !found {
		meta = DefaultMetadata()
		meta.HeroImageURL = ""
	}
	return meta, nil
}

// Update replaces the profile wholesale
func (r *MetadataRepo) Update(meta models.PortfolioMetadata) error {
	return r.s.mutate(func() error {
		return writeValue(r.s, KeyMetadata, meta)
	})
}
