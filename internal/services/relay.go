package services

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/decred/slog"
	"github.com/ethereum/go-ethereum/common"

	"github.com/chevoisiatesalvati/guess-what/internal/contract"
	"github.com/chevoisiatesalvati/guess-what/internal/logging"
	"github.com/chevoisiatesalvati/guess-what/internal/models"
	"github.com/chevoisiatesalvati/guess-what/internal/units"
)

type GuessLocker interface {
	AcquireGuessLock(ctx context.Context, player string, gameID uint64, ttl time.Duration) (string, bool, error)
	ReleaseGuessLock(ctx context.Context, player string, gameID uint64, token string) error
}

type WinningsRecorder interface {
	RecordWinnings(ctx context.Context, address string, totalWinnings *big.Int) error
	InvalidatePlayerStats(ctx context.Context, address string) error
}

type GuessRelayConfig struct {
	Contract    *ContractService
	Locks       GuessLocker
	Winnings    WinningsRecorder
	Resolver    *PrizeResolver
	Broadcaster Broadcaster
	Log         slog.Logger
}

// GuessRelay plays chain games for browser wallets. The server packs the
// call, the wallet signs it, and the signed transaction comes back here to
// be checked and sent.
type GuessRelay struct {
	contract    *ContractService
	locks       GuessLocker
	winnings    WinningsRecorder
	resolver    *PrizeResolver
	broadcaster Broadcaster
	log         slog.Logger
}

func NewGuessRelay(cfg GuessRelayConfig) *GuessRelay {
	resolver := cfg.Resolver
	if resolver == nil {
		resolver = &PrizeResolver{}
	}
	return &GuessRelay{
		contract:    cfg.Contract,
		locks:       cfg.Locks,
		winnings:    cfg.Winnings,
		resolver:    resolver,
		broadcaster: broadcasterOrNoop(cfg.Broadcaster),
		log:         logging.OrDisabled(cfg.Log),
	}
}

// Prepare packs a submitGuess call for gameID paying its entry fee.
func (r *GuessRelay) Prepare(ctx context.Context, gameID uint64, guess string) (*contract.CallData, error) {
	info, err := r.contract.GetGameInfo(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !info.Available() {
		return nil, ErrGameNotActive
	}
	return r.contract.PackSubmitGuess(gameID, guess, info.EntryFee)
}

// Submit relays a signed guess from player on gameID and waits for it to
// confirm.
func (r *GuessRelay) Submit(ctx context.Context, player common.Address, gameID uint64, raw []byte) (*models.GuessResult, error) {
	call, err := r.contract.DecodeSignedTx(raw)
	if err != nil {
		return nil, err
	}
	if call.Method != "submitGuess" {
		return nil, ErrUnexpectedMethod
	}
	if call.From != player {
		return nil, ErrSignerMismatch
	}
	if id, err := call.GameID(); err != nil || id != gameID {
		return nil, ErrGameMismatch
	}

	info, err := r.contract.GetGameInfo(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !info.Available() {
		return nil, ErrGameNotActive
	}
	if call.Value().Cmp(info.EntryFee) < 0 {
		return nil, ErrInsufficientFee
	}

	if r.locks != nil {
		token, ok, err := r.locks.AcquireGuessLock(ctx, player.Hex(), gameID, TTLGuessLock)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrGuessInFlight
		}
		defer func() {
			if err := r.locks.ReleaseGuessLock(context.WithoutCancel(ctx), player.Hex(), gameID, token); err != nil {
				r.log.Warnf("Failed to release guess lock for %s on game %d: %v", player.Hex(), gameID, err)
			}
		}()
	}

	tx, err := r.contract.RelaySignedTx(ctx, call, contract.GuessConfirmations)
	if err != nil {
		return nil, err
	}

	refreshed, err := r.contract.GetGameInfo(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh game %d: %w", gameID, err)
	}

	outcome := &GuessOutcome{
		Correct: !refreshed.IsActive,
		Round:   roundFromInfo(refreshed),
		Prize:   refreshed.TotalPrize,
		Tx:      tx,
	}
	result := r.resolver.Resolve(ctx, outcome, player.Hex())

	if outcome.Correct {
		r.log.Infof("Game %d won by %s, prize %s ETH", gameID, player.Hex(), result.TotalPrize)
		r.broadcaster.BroadcastGameWon(gameID, player.Hex(), result.TotalPrize)
		r.recordWinnings(ctx, player)
	} else {
		r.broadcaster.BroadcastGameUpdate(gameID, units.FormatEther(refreshed.TotalPrize))
	}

	return result, nil
}

func (r *GuessRelay) recordWinnings(ctx context.Context, player common.Address) {
	if r.winnings == nil {
		return
	}

	stats := r.contract.GetPlayerStats(ctx, player)
	if err := r.winnings.RecordWinnings(ctx, player.Hex(), stats.TotalWinnings); err != nil {
		r.log.Warnf("Failed to update leaderboard for %s: %v", player.Hex(), err)
	}
	if err := r.winnings.InvalidatePlayerStats(ctx, player.Hex()); err != nil {
		r.log.Warnf("Failed to drop cached stats for %s: %v", player.Hex(), err)
	}
}
