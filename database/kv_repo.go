package database

import (
	"errors"

	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRepo stores slots as rows of the kv_entries table
type KVRepo struct {
	db *gorm.DB
}

// NewKVRepo migrates kv_entries and returns a Backend over it
func NewKVRepo(db *gorm.DB) (*KVRepo, error) {
	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		return nil, err
	}
	return &KVRepo{db}, nil
}

// GetDB returns the underlying database connection for debugging purposes
func (r *KVRepo) GetDB() *gorm.DB {
	return r.db
}

// Get returns the slot value, found=false when the row does not exist
func (r *KVRepo) Get(key string) (string, bool, error) {
	var entry models.KVEntry
	err := r.db.Where(keyIs(key)).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set upserts the slot in a single statement
func (r *KVRepo) Set(key, value string) error {
	entry := models.KVEntry{Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// Delete removes the slot; deleting an absent slot is not an error
func (r *KVRepo) Delete(key string) error {
	return r.db.Where(keyIs(key)).Delete(&models.KVEntry{}).Error
}

// keyIs lets gorm quote the column, since key is reserved in some dialects
func keyIs(key string) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: "key"}, Value: key}
}
