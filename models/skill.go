package models

import "fmt"

// SkillCategory groups skills on the skills section
type SkillCategory string

const (
	SkillCategoryFrontend SkillCategory = "Frontend"
	SkillCategoryBackend  SkillCategory = "Backend"
	SkillCategoryTools    SkillCategory = "Tools"
	SkillCategoryAI       SkillCategory = "AI"
)

var SkillCategories = []SkillCategory{
	SkillCategoryFrontend,
	SkillCategoryBackend,
	SkillCategoryTools,
	SkillCategoryAI,
}

func (c SkillCategory) Valid() bool {
	for _, known := range SkillCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Skill is a named proficiency shown as a 0-100 bar
type Skill struct {
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	Level    int           `json:"level"`
	Category SkillCategory `json:"category"`
}

func (s Skill) Validate() error {
	if s.Name == "" {
		return missingField("name")
	}
	if s.Level < 0 || s.Level > 100 {
		return invalidField("level", fmt.Sprintf("%d is outside 0..100", s.Level))
	}
	if !s.Category.Valid() {
		return invalidField("category", "unknown category "+string(s.Category))
	}
	return nil
}
