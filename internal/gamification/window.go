package gamification

import (
	"time"

	"github.com/swipto/swipto-api/internal/store/schema"
)

// Progress is a user's counter for one challenge window
type Progress struct {
	Key         string
	Count       int
	PeriodStart time.Time
}

// Decision is the outcome of evaluating a qualifying event against the current window
type Decision struct {
	// Reset is true when the event starts a fresh window
	Reset bool
}

// Evaluate decides whether an event at `at` belongs to the current fixed window.
// The window is [periodStart, periodStart+window); an event exactly at the end starts a new one.
// An event before periodStart also starts a new window.
func Evaluate(progress *Progress, at time.Time, window time.Duration) Decision {
	if progress == nil {
		return Decision{Reset: true}
	}

	elapsed := at.Sub(progress.PeriodStart)
	if elapsed < 0 || elapsed >= window {
		return Decision{Reset: true}
	}

	return Decision{Reset: false}
}

// Active reports whether the window of progress is still open at `at`
func Active(progress *Progress, at time.Time, window time.Duration) bool {
	return !Evaluate(progress, at, window).Reset
}

func progressFromSchema(p *schema.ChallengeProgress) *Progress {
	if p == nil {
		return nil
	}
	return &Progress{
		Key:         p.Key,
		Count:       p.Count,
		PeriodStart: p.PeriodStart,
	}
}
