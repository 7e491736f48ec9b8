package services

import (
	"context"
	"errors"
	"math/big"
	"strconv"
	"time"

	"github.com/chevoisiatesalvati/guess-what/internal/contract"
	"github.com/chevoisiatesalvati/guess-what/internal/models"
	"github.com/chevoisiatesalvati/guess-what/internal/words"
)

var (
	ErrNoActiveGames       = errors.New("no active games")
	ErrGameNotActive       = errors.New("game is not active")
	ErrGameExpired         = errors.New("time is up for this game")
	ErrGuessInFlight       = errors.New("a guess is already being submitted")
	ErrEmptyGuess          = errors.New("guess must not be empty")
	ErrAccessDenied        = errors.New("access denied")
	ErrSignerMismatch      = errors.New("transaction signer does not match the signed in wallet")
	ErrUnexpectedMethod    = errors.New("transaction calls an unexpected contract method")
	ErrGameMismatch        = errors.New("transaction targets a different game")
	ErrInsufficientFee     = errors.New("transaction value is below the entry fee")
	ErrWalletNotConnected  = contract.ErrWalletNotConnected
	ErrQuickAuthNotEnabled = errors.New("quick auth is not configured")
	ErrTreasuryShort       = errors.New("treasury cannot cover the base prize")
)

// Clock is swapped out in tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func clockOrReal(c Clock) Clock {
	if c == nil {
		return realClock{}
	}
	return c
}

// Round is the game a player is currently looking at, whichever backend
// it came from.
type Round struct {
	ID               string
	Source           models.GameSource
	TopWord          string
	BottomWord       string
	MiddleWordLength int
	Hint             string
	EntryFee         *big.Int
	TotalPrize       *big.Int
	Active           bool
	Deadline         time.Time
	Game             *models.Game
}

// ChainID returns the on-chain id of a chain round.
func (r *Round) ChainID() (uint64, error) {
	if r.Source != models.GameSourceChain {
		return 0, ErrGameNotActive
	}
	return strconv.ParseUint(r.ID, 10, 64)
}

func roundFromInfo(info *contract.GameInfo) *Round {
	return &Round{
		ID:               strconv.FormatUint(info.GameID, 10),
		Source:           models.GameSourceChain,
		TopWord:          info.TopWord,
		BottomWord:       info.BottomWord,
		MiddleWordLength: info.MiddleWordLength,
		EntryFee:         info.EntryFee,
		TotalPrize:       info.TotalPrize,
		Active:           info.Available(),
		Game:             models.NewGame(info),
	}
}

func roundFromLocal(state *models.LocalGameState) *Round {
	return &Round{
		ID:               state.ID,
		Source:           models.GameSourceLocal,
		TopWord:          state.Words.Top,
		BottomWord:       state.Words.Bottom,
		MiddleWordLength: words.Length(state.Words.Middle),
		Hint:             state.Hint,
		EntryFee:         new(big.Int).Set(state.EntryFee),
		TotalPrize:       new(big.Int).Set(state.TotalPrize),
		Active:           state.IsActive,
		Deadline:         state.Deadline(),
		Game:             state.View(),
	}
}

// GuessOutcome is what a backend reports after a guess settles.
type GuessOutcome struct {
	Correct     bool
	Round       *Round
	Prize       *big.Int
	BonusPoints int
	Tx          *contract.TxResult
}

// GameBackend supplies rounds and settles guesses. RemoteBackend plays
// against the contract; LocalBackend is an in-process demo.
type GameBackend interface {
	Start(ctx context.Context) (*Round, error)
	Guess(ctx context.Context, round *Round, guess string) (*GuessOutcome, error)
	End(ctx context.Context, round *Round) error
}
