package schema

import "time"

// ChallengeProgress represents the challenge_progress table - a per-user fixed-window counter
type ChallengeProgress struct {
	ID     uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	UserID string `gorm:"column:user_id;not null;type:text;uniqueIndex:uq_challenge_progress_user_key,priority:1"`
	Key    string `gorm:"column:key;not null;type:text;uniqueIndex:uq_challenge_progress_user_key,priority:2"`
	Count  int    `gorm:"column:count;not null;default:0"`
	// PeriodStart anchors the current window
	PeriodStart time.Time `gorm:"column:period_start;not null;type:timestamptz"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ChallengeProgress model
func (ChallengeProgress) TableName() string {
	return "challenge_progress"
}
