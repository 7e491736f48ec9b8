package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/decred/slog"

	"github.com/chevoisiatesalvati/guess-what/internal/logging"
	"github.com/chevoisiatesalvati/guess-what/internal/models"
	"github.com/chevoisiatesalvati/guess-what/internal/words"
)

type ViewState string

const (
	ViewLoading       ViewState = "loading"
	ViewConnectWallet ViewState = "connect_wallet"
	ViewNoGames       ViewState = "no_games"
	ViewPlaying       ViewState = "playing"
	ViewSubmitting    ViewState = "submitting"
	ViewWon           ViewState = "won"
	ViewFailed        ViewState = "failed"
)

const (
	WinRedirectDelay = 5 * time.Second
	MessageTTL       = 3 * time.Second
)

type GameViewConfig struct {
	Backend  GameBackend
	Resolver *PrizeResolver
	Player   string
	Clock    Clock
	Log      slog.Logger
}

// GameView drives one player's screen: pick a round, collect letters,
// submit, then show the win or let them try again.
type GameView struct {
	backend  GameBackend
	resolver *PrizeResolver
	player   string
	clock    Clock
	log      slog.Logger

	mu           sync.Mutex
	state        ViewState
	round        *Round
	input        string
	message      string
	messageUntil time.Time
	result       *models.GuessResult
	redirectAt   time.Time
}

// ViewSnapshot is a point-in-time copy of the view for rendering.
type ViewSnapshot struct {
	State        ViewState           `json:"state"`
	Game         *models.Game        `json:"game,omitempty"`
	Board        string              `json:"board,omitempty"`
	Input        string              `json:"input"`
	InputEnabled bool                `json:"input_enabled"`
	CanSubmit    bool                `json:"can_submit"`
	Message      string              `json:"message,omitempty"`
	Result       *models.GuessResult `json:"result,omitempty"`
	RedirectIn   time.Duration       `json:"redirect_in,omitempty"`
}

func NewGameView(cfg GameViewConfig) *GameView {
	resolver := cfg.Resolver
	if resolver == nil {
		resolver = &PrizeResolver{}
	}
	return &GameView{
		backend:  cfg.Backend,
		resolver: resolver,
		player:   cfg.Player,
		clock:    clockOrReal(cfg.Clock),
		log:      logging.OrDisabled(cfg.Log),
		state:    ViewLoading,
	}
}

// Load asks the backend for a round and settles into the matching state.
func (v *GameView) Load(ctx context.Context) error {
	v.mu.Lock()
	v.state = ViewLoading
	v.round = nil
	v.input = ""
	v.result = nil
	v.mu.Unlock()

	round, err := v.backend.Start(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	switch {
	case errors.Is(err, ErrWalletNotConnected):
		v.state = ViewConnectWallet
		return nil
	case errors.Is(err, ErrNoActiveGames):
		v.state = ViewNoGames
		return nil
	case err != nil:
		v.state = ViewFailed
		v.setMessage(err.Error())
		return err
	}

	v.round = round
	v.state = ViewPlaying
	return nil
}

// Type appends a letter. Input is capped at the middle word's length and
// ignored unless a guess can be made.
func (v *GameView) Type(r rune) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.inputEnabled() || !unicode.IsLetter(r) {
		return false
	}
	if len([]rune(v.input)) >= v.round.MiddleWordLength {
		return false
	}
	v.input += string(unicode.ToLower(r))
	return true
}

func (v *GameView) Backspace() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.inputEnabled() {
		return
	}
	if runes := []rune(v.input); len(runes) > 0 {
		v.input = string(runes[:len(runes)-1])
	}
}

// SetInput replaces the input with the letters of s, truncated to the word
// length.
func (v *GameView) SetInput(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.inputEnabled() {
		return
	}

	var b strings.Builder
	n := 0
	for _, r := range s {
		if n >= v.round.MiddleWordLength {
			break
		}
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
			n++
		}
	}
	v.input = b.String()
}

// Submit sends the current input as a guess. While a guess is pending the
// input is locked and further submits fail with ErrGuessInFlight. A failed
// submit keeps the input so the player can retry.
func (v *GameView) Submit(ctx context.Context) (*models.GuessResult, error) {
	v.mu.Lock()
	switch {
	case v.state == ViewSubmitting:
		v.mu.Unlock()
		return nil, ErrGuessInFlight
	case v.state != ViewPlaying || v.round == nil || !v.round.Active:
		v.mu.Unlock()
		return nil, ErrGameNotActive
	}

	guess := words.Normalize(v.input)
	if guess == "" {
		v.mu.Unlock()
		return nil, ErrEmptyGuess
	}

	round := v.round
	v.state = ViewSubmitting
	v.mu.Unlock()

	outcome, err := v.backend.Guess(ctx, round, guess)
	if err != nil {
		v.mu.Lock()
		defer v.mu.Unlock()

		v.log.Warnf("Guess on game %s failed: %v", round.ID, err)
		if errors.Is(err, ErrGameExpired) {
			v.state = ViewFailed
		} else {
			v.state = ViewPlaying
		}
		v.setMessage(err.Error())
		return nil, err
	}

	result := v.resolver.Resolve(ctx, outcome, v.player)

	v.mu.Lock()
	defer v.mu.Unlock()

	v.round = outcome.Round
	if outcome.Correct {
		v.state = ViewWon
		v.result = result
		v.redirectAt = v.clock.Now().Add(WinRedirectDelay)
		v.log.Infof("Game %s won, prize %s", result.GameID, result.TotalPrize)
		return result, nil
	}

	v.input = ""
	v.state = ViewPlaying
	v.setMessage(MessageIncorrect)
	return result, nil
}

// Next starts another round. After a win the view sends the player on once
// the redirect delay has passed.
func (v *GameView) Next(ctx context.Context) error {
	v.mu.Lock()
	round := v.round
	v.mu.Unlock()

	if round != nil {
		if err := v.backend.End(ctx, round); err != nil && !errors.Is(err, ErrGameNotActive) {
			v.log.Warnf("Failed to end game %s: %v", round.ID, err)
		}
	}
	return v.Load(ctx)
}

// RedirectDue reports whether a won view should move on.
func (v *GameView) RedirectDue() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.state == ViewWon && !v.clock.Now().Before(v.redirectAt)
}

func (v *GameView) Snapshot() ViewSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.clock.Now()
	snap := ViewSnapshot{
		State:        v.state,
		Input:        v.input,
		InputEnabled: v.inputEnabled(),
		Result:       v.result,
	}
	if v.round != nil {
		snap.Game = v.round.Game
		snap.Board = words.Mask(v.round.MiddleWordLength, v.input)
		snap.CanSubmit = snap.InputEnabled && v.input != ""
	}
	if now.Before(v.messageUntil) {
		snap.Message = v.message
	}
	if v.state == ViewWon && now.Before(v.redirectAt) {
		snap.RedirectIn = v.redirectAt.Sub(now)
	}
	return snap
}

func (v *GameView) inputEnabled() bool {
	return v.state == ViewPlaying && v.round != nil && v.round.Active
}

func (v *GameView) setMessage(msg string) {
	v.message = msg
	v.messageUntil = v.clock.Now().Add(MessageTTL)
}
