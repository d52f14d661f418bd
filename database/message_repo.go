package database

import (
	"time"

	"github.com/rpupo63/portfolio-site-backend/models"
)

// MessageRepo is the contact form inbox. Submissions are never edited.
type MessageRepo struct {
	c collection[models.ContactSubmission]
}

func NewMessageRepo(s *store) *MessageRepo {
	return &MessageRepo{collection[models.ContactSubmission]{
		s:      s,
		key:    KeyMessages,
		idOf:   func(m models.ContactSubmission) int64 { return m.ID },
		setID:  func(m *models.ContactSubmission, id int64) { m.ID = id },
		atHead: true,
	}}
}

// FindAll returns the inbox, newest first
func (r *MessageRepo) FindAll() ([]models.ContactSubmission, error) {
	return r.c.findAll()
}

// Add stamps the identity and submission time, then stores the message first
func (r *MessageRepo) Add(msg models.ContactSubmission) (models.ContactSubmission, error) {
	return r.c.add(msg, func(m *models.ContactSubmission, now time.Time) {
		m.Timestamp = models.FormatTimestamp(now)
	})
}

func (r *MessageRepo) Delete(id int64) error {
	return r.c.delete(id)
}
