package season

import (
	"context"
	"fmt"
	"time"

	"github.com/swipto/swipto-api/internal/domain"
	"github.com/swipto/swipto-api/internal/providers/vendors/firestore"
	"github.com/swipto/swipto-api/internal/store"
	"github.com/swipto/swipto-api/internal/store/schema"
)

const (
	SourceLedger   = "ledger"
	SourceSnapshot = "snapshot"
)

// Tally is the per-coin like count of a season plus scan statistics
type Tally struct {
	Counts map[string]int `json:"-"`
	// Documents is the number of user documents read (snapshot only)
	Documents int `json:"documents"`
	// Entries is the number of likes counted
	Entries int `json:"entries"`
	// Skipped is the number of like entries dropped for a bad timestamp or missing coin id
	Skipped int `json:"skipped"`
}

// Source counts the likes of a season from some system of record
//
//go:generate mockgen -source=source.go -destination=../mocks/season_source.go -package=mocks -mock_names=Source=MockSeasonSource
type Source interface {
	Name() string
	// Transactional reports whether Count reads the store it is given.
	// Such sources are counted inside the season lock so no live increment lands between count and replace.
	Transactional() bool
	Count(ctx context.Context, st store.Store, s *schema.Season) (*Tally, error)
}

type ledgerSource struct{}

// NewLedgerSource counts likes from the swipe ledger
func NewLedgerSource() Source {
	return &ledgerSource{}
}

func (l *ledgerSource) Name() string {
	return SourceLedger
}

func (l *ledgerSource) Transactional() bool {
	return true
}

func (l *ledgerSource) Count(ctx context.Context, st store.Store, s *schema.Season) (*Tally, error) {
	start, next := domain.MonthWindow(s.StartsAt)
	rows, err := st.CountSwipesByCoinBetween(ctx, []domain.Action{domain.ActionLike}, start, next)
	if err != nil {
		return nil, fmt.Errorf("failed to count ledger likes: %w", err)
	}

	tally := &Tally{Counts: make(map[string]int, len(rows))}
	for _, row := range rows {
		tally.Counts[row.CoinID] = row.Count
		tally.Entries += row.Count
	}

	return tally, nil
}

type snapshotSource struct {
	client firestore.Client
}

// NewSnapshotSource counts likes from the swipedCryptos arrays of Firestore user documents
func NewSnapshotSource(client firestore.Client) Source {
	return &snapshotSource{client: client}
}

func (f *snapshotSource) Name() string {
	return SourceSnapshot
}

func (f *snapshotSource) Transactional() bool {
	return false
}

func (f *snapshotSource) Count(ctx context.Context, _ store.Store, s *schema.Season) (*Tally, error) {
	tally := &Tally{Counts: make(map[string]int)}
	start, next := domain.MonthWindow(s.StartsAt)

	err := f.client.Snapshots(ctx, func(user firestore.UserSnapshot) error {
		tally.Documents++
		for _, swipe := range user.Swipes {
			if !domain.Action(swipe.SwipeType).IsLike() {
				continue
			}

			ts, err := time.Parse(time.RFC3339Nano, swipe.Timestamp)
			if err != nil {
				tally.Skipped++
				continue
			}
			if ts.Before(start) || !ts.Before(next) {
				continue
			}

			coinID := swipe.Key()
			if coinID == "" {
				tally.Skipped++
				continue
			}

			tally.Counts[coinID]++
			tally.Entries++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read user snapshots: %w", err)
	}

	return tally, nil
}
