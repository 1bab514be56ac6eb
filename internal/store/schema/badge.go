package schema

import "time"

// Badge represents the badges table - seeded achievement definitions
type Badge struct {
	// ID is a UUID assigned at seed time
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// Key is the unique slug, e.g. "like_10_24h"
	Key string `gorm:"column:key;not null;uniqueIndex;type:text"`
	// Name is the display name
	Name string `gorm:"column:name;not null;type:text"`
	// Description explains how to earn the badge
	Description string `gorm:"column:description;not null;type:text"`
	// Target is the challenge count that unlocks the badge
	Target int `gorm:"column:target;not null"`
	// WindowHours is the challenge window the target applies to
	WindowHours int `gorm:"column:window_hours;not null;index"`
	// Icon is a display hint for clients
	Icon string `gorm:"column:icon;not null;type:text"`
	// CreatedAt is the timestamp when the badge was first seeded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the latest seed
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Badge model
func (Badge) TableName() string {
	return "badges"
}

// UserBadge represents the user_badges table - one row per unlocked (user, badge)
type UserBadge struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	UserID     string    `gorm:"column:user_id;not null;type:text;uniqueIndex:uq_user_badges_user_badge,priority:1"`
	BadgeID    string    `gorm:"column:badge_id;not null;type:uuid;uniqueIndex:uq_user_badges_user_badge,priority:2"`
	UnlockedAt time.Time `gorm:"column:unlocked_at;not null;type:timestamptz"`

	Badge Badge `gorm:"foreignKey:BadgeID;references:ID"`
}

// TableName specifies the table name for the UserBadge model
func (UserBadge) TableName() string {
	return "user_badges"
}
