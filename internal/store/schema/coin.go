package schema

import "time"

// Coin represents the coins table - display metadata for a swipeable coin
type Coin struct {
	// CoinID is the stable external identifier (e.g. "bitcoin")
	CoinID string `gorm:"column:coin_id;primaryKey;type:text"`
	// Symbol is the uppercased ticker
	Symbol string `gorm:"column:symbol;not null;type:text"`
	// Name is the display name
	Name string `gorm:"column:name;not null;type:text"`
	// Category is an optional classification label
	Category *string `gorm:"column:category;type:text"`
	// CreatedAt is the timestamp when the coin was first seen
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the latest metadata write
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Coin model
func (Coin) TableName() string {
	return "coins"
}
