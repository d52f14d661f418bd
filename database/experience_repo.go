package database

import "github.com/rpupo63/portfolio-site-backend/models"

type ExperienceRepo struct {
	c collection[models.Experience]
}

func NewExperienceRepo(s *store) *ExperienceRepo {
	return &ExperienceRepo{collection[models.Experience]{
		s:      s,
		key:    KeyExperiences,
		idOf:   func(e models.Experience) int64 { return e.ID },
		setID:  func(e *models.Experience, id int64) { e.ID = id },
		atHead: true,
	}}
}

// FindAll returns the timeline, newest entry first
func (r *ExperienceRepo) FindAll() ([]models.Experience, error) {
	return r.c.findAll()
}

func (r *ExperienceRepo) FindByID(id int64) (*models.Experience, error) {
	return r.c.findByID(id)
}

func (r *ExperienceRepo) Add(experience models.Experience) (models.Experience, error) {
	experience.Normalize()
	return r.c.add(experience, nil)
}

func (r *ExperienceRepo) Update(experience models.Experience) (bool, error) {
	experience.Normalize()
	return r.c.update(experience)
}

func (r *ExperienceRepo) Delete(id int64) error {
	return r.c.delete(id)
}
