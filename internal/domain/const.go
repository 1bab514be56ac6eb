package domain

const (
	// Challenge constants
	DEFAULT_CHALLENGE_KEY          = "like_24h"
	DEFAULT_CHALLENGE_WINDOW_HOURS = 24

	// Leaderboard constants
	DEFAULT_LEADERBOARD_LIMIT = 20
	MAX_LEADERBOARD_LIMIT     = 100

	// CURRENT_SEASON_KEY selects the season containing now
	CURRENT_SEASON_KEY = "current"

	// Season key layout (UTC calendar month)
	SEASON_KEY_LAYOUT = "2006-01"
)
