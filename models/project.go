package models

import "strings"

// Project represents a portfolio project card and its detail page
type Project struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	Tags            []string `json:"tags"`
	TechStack       []string `json:"techStack"`
	ImageURL        string   `json:"imageUrl"`
	Link            string   `json:"link"`
	GithubURL       *string  `json:"githubUrl,omitempty"`
}

// Normalize turns omitted lists into empty ones so they encode as []
func (p *Project) Normalize() {
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
}

// HasTag reports whether tag is one of the project's tags, ignoring case
func (p Project) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Validate checks the fields the admin form must provide
func (p Project) Validate() error {
	if p.Title == "" {
		return missingField("title")
	}
	return nil
}
