package services

import (
	"context"
	"fmt"

	"github.com/decred/slog"

	"github.com/chevoisiatesalvati/guess-what/internal/logging"
)

type RemoteBackend struct {
	contract *ContractService
	log      slog.Logger
}

func NewRemoteBackend(c *ContractService, log slog.Logger) *RemoteBackend {
	return &RemoteBackend{contract: c, log: logging.OrDisabled(log)}
}

// Start picks a random active game. It needs a connected wallet and never
// asks for a random game when none are active.
func (b *RemoteBackend) Start(ctx context.Context) (*Round, error) {
	if _, err := b.contract.WalletAddress(ctx); err != nil {
		return nil, ErrWalletNotConnected
	}

	if count := b.contract.GetActiveGamesCount(ctx); count == 0 {
		return nil, ErrNoActiveGames
	}

	id := b.contract.GetRandomActiveGame(ctx)
	info, err := b.contract.GetGameInfo(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load game %d: %w", id, err)
	}

	b.log.Debugf("Selected game %d (%s / %s)", info.GameID, info.TopWord, info.BottomWord)
	return roundFromInfo(info), nil
}

// Guess pays the entry fee and waits for the guess to confirm. A game that
// is no longer active afterwards was won by this guess.
func (b *RemoteBackend) Guess(ctx context.Context, round *Round, guess string) (*GuessOutcome, error) {
	id, err := round.ChainID()
	if err != nil {
		return nil, err
	}

	tx, err := b.contract.SubmitGuess(ctx, id, guess, round.EntryFee)
	if err != nil {
		return nil, err
	}

	info, err := b.contract.GetGameInfo(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh game %d: %w", id, err)
	}

	return &GuessOutcome{
		Correct: !info.IsActive,
		Round:   roundFromInfo(info),
		Prize:   info.TotalPrize,
		Tx:      tx,
	}, nil
}

// End is a no-op: a chain game stays open for other players.
func (b *RemoteBackend) End(context.Context, *Round) error {
	return nil
}
