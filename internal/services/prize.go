package services

import (
	"context"

	"github.com/decred/slog"

	"github.com/chevoisiatesalvati/guess-what/internal/logging"
	"github.com/chevoisiatesalvati/guess-what/internal/models"
	"github.com/chevoisiatesalvati/guess-what/internal/sharing"
	"github.com/chevoisiatesalvati/guess-what/internal/units"
)

const (
	MessageCorrect   = "Correct! You won the prize!"
	MessageIncorrect = "Incorrect guess. Try again!"
)

// FeeSource reports the contract's platform fee. ok is false when the fee
// could not be read.
type FeeSource interface {
	GetPlatformFee(ctx context.Context) (fee uint64, ok bool)
}

// PrizeResolver turns a settled guess into what the player sees. The
// displayed prize is net of the configured display fee; the contract's own
// fee is surfaced next to it and a disagreement is flagged.
type PrizeResolver struct {
	DisplayFeePercent uint64
	Fees              FeeSource
	Sharing           *sharing.Builder
	Log               slog.Logger
}

func (r *PrizeResolver) Resolve(ctx context.Context, outcome *GuessOutcome, player string) *models.GuessResult {
	log := logging.OrDisabled(r.Log)

	result := &models.GuessResult{
		Correct:           outcome.Correct,
		Message:           MessageIncorrect,
		BonusPoints:       outcome.BonusPoints,
		DisplayFeePercent: r.DisplayFeePercent,
	}
	if outcome.Round != nil {
		result.GameID = outcome.Round.ID
		result.Game = outcome.Round.Game
		result.TotalPrize = units.FormatEther(outcome.Round.TotalPrize)
	}
	if outcome.Tx != nil {
		result.TxHash = outcome.Tx.Hash.Hex()
		result.Confirmations = outcome.Tx.Confirmations
	}

	if !outcome.Correct {
		return result
	}

	result.Message = MessageCorrect
	result.TotalPrize = units.FormatEther(outcome.Prize)
	result.DisplayedPrize = units.FormatEther(units.NetOfFee(outcome.Prize, r.DisplayFeePercent))

	if r.Fees != nil {
		if fee, ok := r.Fees.GetPlatformFee(ctx); ok {
			result.ContractFeePercent = &fee
			if fee != r.DisplayFeePercent {
				result.FeeMismatch = true
				log.Warnf("Display fee %d%% differs from contract fee %d%% for game %s",
					r.DisplayFeePercent, fee, result.GameID)
			}
		}
	}

	if r.Sharing != nil {
		links := r.Sharing.Links(sharing.Data{
			Kind:   sharing.KindGameWin,
			GameID: result.GameID,
			Prize:  result.DisplayedPrize,
			Player: player,
		})
		result.Share = &models.Share{
			Text:       links.Text,
			URL:        links.URL,
			OGImageURL: links.OGImageURL,
			ComposeURL: links.ComposeURL,
		}
	}

	return result
}
