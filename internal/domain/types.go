package domain

import (
	"fmt"
	"strings"
	"time"
)

// Action represents a user's swipe decision on a coin
type Action string

const (
	ActionLike      Action = "like"
	ActionSuperlike Action = "superlike"
	ActionDislike   Action = "dislike"
)

// ParseAction validates and normalizes a raw action string
func ParseAction(raw string) (Action, error) {
	action := Action(strings.ToLower(strings.TrimSpace(raw)))
	if !action.IsValid() {
		return "", NewValidationError("invalid action %q: must be one of like, superlike, dislike", raw)
	}
	return action, nil
}

// IsValid checks if an action is a supported swipe action
func (a Action) IsValid() bool {
	return a == ActionLike || a == ActionSuperlike || a == ActionDislike
}

// IsLike reports whether the action counts toward gamification
func (a Action) IsLike() bool {
	return a == ActionLike
}

// LeaderboardActions returns the actions counted by the public leaderboard
func LeaderboardActions(includeSuperlike bool) []Action {
	if includeSuperlike {
		return []Action{ActionLike, ActionSuperlike}
	}
	return []Action{ActionLike}
}

// Challenge describes a fixed-window counter fed by one action type
type Challenge struct {
	Key         string
	Action      Action
	WindowHours int
}

// Window returns the challenge window as a duration
func (c Challenge) Window() time.Duration {
	return time.Duration(c.WindowHours) * time.Hour
}

// DefaultChallenge is the 24h like challenge that badges are evaluated against
var DefaultChallenge = Challenge{
	Key:         DEFAULT_CHALLENGE_KEY,
	Action:      ActionLike,
	WindowHours: DEFAULT_CHALLENGE_WINDOW_HOURS,
}

// CoinMetadata holds optional display metadata supplied alongside a swipe
type CoinMetadata struct {
	Symbol   string
	Name     string
	Category *string
}

// NormalizeSymbol uppercases a ticker, falling back to the coin id
func NormalizeSymbol(symbol, coinID string) string {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		symbol = coinID
	}
	return strings.ToUpper(symbol)
}

// CoinFallback returns the metadata used for coins without a directory entry
func CoinFallback(coinID string) CoinMetadata {
	return CoinMetadata{
		Symbol: strings.ToUpper(coinID),
		Name:   coinID,
	}
}

// MonthKey returns the UTC "YYYY-MM" season key for t
func MonthKey(t time.Time) string {
	return t.UTC().Format(SEASON_KEY_LAYOUT)
}

// MonthRange returns the first and last instants (millisecond precision) of t's UTC month.
// The end is a display bound; use MonthWindow to test membership.
func MonthRange(t time.Time) (time.Time, time.Time) {
	start, next := MonthWindow(t)
	return start, next.Add(-time.Millisecond)
}

// MonthWindow returns the half-open [start, next) bounds of t's UTC month
func MonthWindow(t time.Time) (time.Time, time.Time) {
	u := t.UTC()
	start := time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// ParseMonthKey validates a season key and returns the first instant of its month
func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(SEASON_KEY_LAYOUT, key, time.UTC)
	if err != nil || len(key) != len(SEASON_KEY_LAYOUT) {
		return time.Time{}, NewValidationError("invalid season key %q: expected YYYY-MM", key)
	}
	return t, nil
}

// SeasonName returns the display label for a season key
func SeasonName(key string) string {
	return fmt.Sprintf("Season %s", key)
}
