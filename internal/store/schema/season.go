package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Season represents the seasons table - one row per UTC calendar month
type Season struct {
	ID       uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Key      string    `gorm:"column:key;not null;uniqueIndex;type:varchar(7)"`
	Name     string    `gorm:"column:name;not null;type:text"`
	StartsAt time.Time `gorm:"column:starts_at;not null;type:timestamptz"`
	EndsAt   time.Time `gorm:"column:ends_at;not null;type:timestamptz"`
}

// TableName specifies the table name for the Season model
func (Season) TableName() string {
	return "seasons"
}

// SeasonLike represents the season_likes table - per-season, per-coin like counters
type SeasonLike struct {
	ID       uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	SeasonID uint64 `gorm:"column:season_id;not null;uniqueIndex:uq_season_likes_season_coin,priority:1"`
	CoinID   string `gorm:"column:coin_id;not null;type:text;uniqueIndex:uq_season_likes_season_coin,priority:2"`
	Likes    int    `gorm:"column:likes;not null;default:0"`
}

// TableName specifies the table name for the SeasonLike model
func (SeasonLike) TableName() string {
	return "season_likes"
}

// SeasonRecomputeRun represents the season_recompute_runs table - an audit log of batch rebuilds
type SeasonRecomputeRun struct {
	ID       uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	SeasonID uint64 `gorm:"column:season_id;not null;index"`
	// Source is "ledger" or "snapshot"
	Source string `gorm:"column:source;not null;type:varchar(16)"`
	// Updated is the number of season_likes rows written
	Updated int `gorm:"column:updated;not null"`
	// Details holds run statistics such as scanned documents and skipped entries
	Details    datatypes.JSON `gorm:"column:details;type:jsonb"`
	StartedAt  time.Time      `gorm:"column:started_at;not null;type:timestamptz"`
	FinishedAt time.Time      `gorm:"column:finished_at;not null;type:timestamptz"`
}

// TableName specifies the table name for the SeasonRecomputeRun model
func (SeasonRecomputeRun) TableName() string {
	return "season_recompute_runs"
}
