package services

import (
	"context"
	"fmt"
	"math/big"
	"math/rand"
	"sync"
	"time"

	"github.com/decred/slog"

	"github.com/chevoisiatesalvati/guess-what/internal/logging"
	"github.com/chevoisiatesalvati/guess-what/internal/models"
	"github.com/chevoisiatesalvati/guess-what/internal/units"
	"github.com/chevoisiatesalvati/guess-what/internal/words"
)

const DefaultLocalTimeLimit = 30 * time.Second

type LocalBackendConfig struct {
	EntryFee  *big.Int
	TimeLimit time.Duration
	Category  string
	// Pick overrides the word picker.
	Pick  func(rng *rand.Rand, category string) words.Triple
	Clock Clock
	Rand  *rand.Rand
	Log   slog.Logger
}

// LocalBackend runs demo rounds from the built-in word database. Nothing is
// paid; wrong guesses only grow the displayed pot.
type LocalBackend struct {
	entryFee  *big.Int
	timeLimit time.Duration
	category  string
	pick      func(rng *rand.Rand, category string) words.Triple
	clock     Clock
	log       slog.Logger

	mu      sync.Mutex
	rng     *rand.Rand
	current *models.LocalGameState
	stats   localStats
}

type localStats struct {
	gamesPlayed    int
	correctGuesses int
	totalWinnings  *big.Int
	totalTime      time.Duration
}

func NewLocalBackend(cfg LocalBackendConfig) *LocalBackend {
	b := &LocalBackend{
		entryFee:  cfg.EntryFee,
		timeLimit: cfg.TimeLimit,
		category:  cfg.Category,
		pick:      cfg.Pick,
		clock:     clockOrReal(cfg.Clock),
		log:       logging.OrDisabled(cfg.Log),
		rng:       cfg.Rand,
		stats:     localStats{totalWinnings: new(big.Int)},
	}
	if b.entryFee == nil {
		b.entryFee = big.NewInt(1_000_000_000_000_000)
	}
	if b.timeLimit <= 0 {
		b.timeLimit = DefaultLocalTimeLimit
	}
	if b.pick == nil {
		b.pick = words.GenerateGameWords
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return b
}

func (b *LocalBackend) Start(context.Context) (*Round, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.clock.Now()
	triple := b.pick(b.rng, b.category)
	if !words.Guessable(triple.Middle) {
		return nil, fmt.Errorf("middle word %q cannot be typed as a guess", triple.Middle)
	}
	b.current = &models.LocalGameState{
		ID:         models.GenerateLocalGameID(now),
		Words:      triple,
		Hint:       words.Hint(triple.Middle),
		StartedAt:  now,
		TimeLimit:  b.timeLimit,
		EntryFee:   new(big.Int).Set(b.entryFee),
		TotalPrize: new(big.Int).Set(b.entryFee),
		IsActive:   true,
	}

	b.log.Debugf("Started local game %s", b.current.ID)
	return roundFromLocal(b.current), nil
}

func (b *LocalBackend) Guess(_ context.Context, round *Round, guess string) (*GuessOutcome, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	state := b.current
	if state == nil || round == nil || state.ID != round.ID || !state.IsActive {
		return nil, ErrGameNotActive
	}

	now := b.clock.Now()
	if state.Expired(now) {
		state.IsActive = false
		state.IsCompleted = true
		return nil, ErrGameExpired
	}

	normalized := words.Normalize(guess)
	if normalized == "" {
		return nil, ErrEmptyGuess
	}

	correct := words.Matches(normalized, state.Words.Middle)
	state.PlayerGuess = normalized
	state.IsCorrect = &correct
	b.stats.gamesPlayed++

	outcome := &GuessOutcome{Correct: correct}
	if correct {
		elapsed := now.Sub(state.StartedAt)
		outcome.BonusPoints = words.TimeBonus(elapsed, state.TimeLimit)
		outcome.Prize = new(big.Int).Set(state.TotalPrize)

		state.IsActive = false
		state.IsCompleted = true

		b.stats.correctGuesses++
		b.stats.totalWinnings.Add(b.stats.totalWinnings, state.TotalPrize)
		b.stats.totalTime += elapsed
	} else {
		state.TotalPrize.Add(state.TotalPrize, state.EntryFee)
	}

	outcome.Round = roundFromLocal(state)
	return outcome, nil
}

func (b *LocalBackend) End(_ context.Context, round *Round) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == nil || round == nil || b.current.ID != round.ID {
		return ErrGameNotActive
	}
	b.current.IsActive = false
	b.current.IsCompleted = true
	return nil
}

// Current returns the round in progress, if any.
func (b *LocalBackend) Current() (*Round, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == nil {
		return nil, false
	}
	return roundFromLocal(b.current), true
}

func (b *LocalBackend) Stats() models.LocalPlayerStats {
	b.mu.Lock()
	defer b.mu.Unlock()

	stats := models.LocalPlayerStats{
		GamesPlayed:    b.stats.gamesPlayed,
		CorrectGuesses: b.stats.correctGuesses,
		TotalWinnings:  units.FormatEther(b.stats.totalWinnings),
	}
	if b.stats.gamesPlayed > 0 {
		stats.Accuracy = float64(b.stats.correctGuesses) / float64(b.stats.gamesPlayed) * 100
	}
	if b.stats.gamesPlayed > 0 {
		stats.AverageTime = b.stats.totalTime / time.Duration(b.stats.gamesPlayed)
	}
	return stats
}

// Reset drops the round in progress. Stats are kept.
func (b *LocalBackend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.current = nil
}
