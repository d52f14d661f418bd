package models

import "time"

// KVEntry is one named storage slot holding a JSON document as text
type KVEntry struct {
	Key       string    `json:"key" db:"key" gorm:"primaryKey;size:100"`
	Value     string    `json:"value" db:"value" gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM.
func (KVEntry) TableName() string {
	return "kv_entries"
}
