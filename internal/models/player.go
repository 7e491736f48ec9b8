package models

import (
	"time"

	"github.com/chevoisiatesalvati/guess-what/internal/contract"
	"github.com/chevoisiatesalvati/guess-what/internal/units"
)

// PlayerStats is the API view of the contract's per-player counters.
type PlayerStats struct {
	Address        string    `json:"address"`
	GamesPlayed    uint64    `json:"games_played"`
	GuessesPlayed  uint64    `json:"guesses_played"`
	CorrectGuesses uint64    `json:"correct_guesses"`
	TotalWinnings  string    `json:"total_winnings"`
	Accuracy       float64   `json:"accuracy"`
	FetchedAt      time.Time `json:"fetched_at"`
}

func NewPlayerStats(address string, stats *contract.PlayerStats, fetchedAt time.Time) *PlayerStats {
	if stats == nil {
		return &PlayerStats{Address: address, TotalWinnings: "0", FetchedAt: fetchedAt}
	}

	return &PlayerStats{
		Address:        address,
		GamesPlayed:    stats.GamesPlayed,
		GuessesPlayed:  stats.GuessesPlayed,
		CorrectGuesses: stats.CorrectGuesses,
		TotalWinnings:  units.FormatEther(stats.TotalWinnings),
		Accuracy:       stats.AccuracyPercent(),
		FetchedAt:      fetchedAt,
	}
}

// LocalPlayerStats accumulates across demo rounds in one process.
type LocalPlayerStats struct {
	GamesPlayed    int           `json:"games_played"`
	CorrectGuesses int           `json:"correct_guesses"`
	TotalWinnings  string        `json:"total_winnings"`
	Accuracy       float64       `json:"accuracy"`
	AverageTime    time.Duration `json:"average_time"`
}

type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	Address       string `json:"address"`
	Username      string `json:"username,omitempty"`
	TotalWinnings string `json:"total_winnings"`
}
