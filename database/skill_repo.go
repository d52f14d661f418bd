package database

import "github.com/rpupo63/portfolio-site-backend/models"

// SkillRepo keeps skills in creation order, new ones appended at the tail
type SkillRepo struct {
	c collection[models.Skill]
}

func NewSkillRepo(s *store) *SkillRepo {
	return &SkillRepo{collection[models.Skill]{
		s:     s,
		key:   KeySkills,
		idOf:  func(sk models.Skill) int64 { return sk.ID },
		setID: func(sk *models.Skill, id int64) { sk.ID = id },
	}}
}

func (r *SkillRepo) FindAll() ([]models.Skill, error) {
	return r.c.findAll()
}

func (r *SkillRepo) FindByID(id int64) (*models.Skill, error) {
	return r.c.findByID(id)
}

func (r *SkillRepo) Add(skill models.Skill) (models.Skill, error) {
	return r.c.add(skill, nil)
}

func (r *SkillRepo) Update(skill models.Skill) (bool, error) {
	return r.c.update(skill)
}

func (r *SkillRepo) Delete(id int64) error {
	return r.c.delete(id)
}
