package schema

import "time"

// KeyValue represents the key_value_store table - small operational markers,
// e.g. "season_recompute:2025-09:last_at"
type KeyValue struct {
	Key       string    `gorm:"column:key;primaryKey;type:text"`
	Value     string    `gorm:"column:value;not null;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the KeyValue model
func (KeyValue) TableName() string {
	return "key_value_store"
}
