package schema

import (
	"time"

	"github.com/swipto/swipto-api/internal/domain"
)

// Swipe represents the swipes table - the append-only ledger of user actions
type Swipe struct {
	// ID is a ULID so ids sort by creation time
	ID string `gorm:"column:id;primaryKey;type:varchar(26)"`
	// UserID is the identifier issued by the auth provider
	UserID string `gorm:"column:user_id;not null;type:text;index:idx_swipes_user_created,priority:1"`
	// CoinID references coins.coin_id
	CoinID string `gorm:"column:coin_id;not null;type:text;index:idx_swipes_coin_action,priority:1"`
	// Action is one of like, superlike, dislike
	Action domain.Action `gorm:"column:action;not null;type:varchar(16);index:idx_swipes_coin_action,priority:2"`
	// CreatedAt is the ingestion time
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamptz;index:idx_swipes_user_created,priority:2;index:idx_swipes_created_at"`
}

// TableName specifies the table name for the Swipe model
func (Swipe) TableName() string {
	return "swipes"
}
