package database

import "github.com/rpupo63/portfolio-site-backend/models"

type ProjectRepo struct {
	c collection[models.Project]
}

func NewProjectRepo(s *store) *ProjectRepo {
	return &ProjectRepo{collection[models.Project]{
		s:      s,
		key:    KeyProjects,
		idOf:   func(p models.Project) int64 { return p.ID },
		setID:  func(p *models.Project, id int64) { p.ID = id },
		atHead: true,
	}}
}

// FindAll returns all projects, most recently created first
func (r *ProjectRepo) FindAll() ([]models.Project, error) {
	return r.c.findAll()
}

// FindByID returns a project by its ID, nil when absent
func (r *ProjectRepo) FindByID(id int64) (*models.Project, error) {
	return r.c.findByID(id)
}

// Add assigns a new ID and inserts the project at the head of the list
func (r *ProjectRepo) Add(project models.Project) (models.Project, error) {
	project.Normalize()
	return r.c.add(project, nil)
}

// Update replaces the project with the same ID; found is false when there is none
func (r *ProjectRepo) Update(project models.Project) (bool, error) {
	project.Normalize()
	return r.c.update(project)
}

// Delete removes a project by id
func (r *ProjectRepo) Delete(id int64) error {
	return r.c.delete(id)
}
