package services

import "time"

const (
	KeyUserSession         = "user:%d:session:%s"
	KeyUserInfo            = "user:%d:info"
	KeyPlayerStats         = "player:%s:stats"
	KeyLeaderboard         = "leaderboard:winnings"
	KeyLeaderboardWinnings = "leaderboard:winnings:wei"
	KeyLeaderboardNames    = "leaderboard:names"
	KeyRateLimit           = "ratelimit:%d:%s"
	KeyGuessLock           = "lock:guess:%s:%d"

	TTLUserSession = 24 * time.Hour
	TTLUserInfo    = 30 * 24 * time.Hour // 30 days
	TTLPlayerStats = 30 * time.Second
	TTLGuessLock   = 2 * time.Minute

	DefaultRateLimitGuesses = 10 // Max 10 guesses per minute
	DefaultRateLimitAdmin   = 20
	DefaultLeaderboardSize  = 10
	MaxLeaderboardSize      = 100
)
