package models

import (
	"math/big"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chevoisiatesalvati/guess-what/internal/contract"
	"github.com/chevoisiatesalvati/guess-what/internal/units"
	"github.com/chevoisiatesalvati/guess-what/internal/words"
)

type GameSource string

const (
	GameSourceChain GameSource = "chain"
	GameSourceLocal GameSource = "local"
)

// Game is the API view of a game. Amounts are decimal ETH strings.
type Game struct {
	ID               string     `json:"id"`
	Source           GameSource `json:"source"`
	TopWord          string     `json:"top_word"`
	MiddleWordLength int        `json:"middle_word_length"`
	MaskedWord       string     `json:"masked_word"`
	Hint             string     `json:"hint,omitempty"`
	BottomWord       string     `json:"bottom_word"`
	EntryFee         string     `json:"entry_fee"`
	TotalPrize       string     `json:"total_prize"`
	BasePrizeAmount  string     `json:"base_prize_amount,omitempty"`
	StartTime        time.Time  `json:"start_time"`
	Deadline         *time.Time `json:"deadline,omitempty"`
	IsActive         bool       `json:"is_active"`
	IsCompleted      bool       `json:"is_completed"`
	Winner           string     `json:"winner,omitempty"`
}

func NewGame(info *contract.GameInfo) *Game {
	if info == nil {
		return nil
	}

	g := &Game{
		ID:               strconv.FormatUint(info.GameID, 10),
		Source:           GameSourceChain,
		TopWord:          info.TopWord,
		MiddleWordLength: info.MiddleWordLength,
		MaskedWord:       words.Mask(info.MiddleWordLength, ""),
		BottomWord:       info.BottomWord,
		EntryFee:         units.FormatEther(info.EntryFee),
		TotalPrize:       units.FormatEther(info.TotalPrize),
		BasePrizeAmount:  units.FormatEther(info.BasePrizeAmount),
		StartTime:        info.StartTime,
		IsActive:         info.IsActive,
		IsCompleted:      info.IsCompleted,
	}
	if info.HasWinner() {
		g.Winner = info.Winner.Hex()
	}
	return g
}

// LocalGameState is an in-memory demo round. It never touches the chain.
type LocalGameState struct {
	ID          string        `json:"id"`
	Words       words.Triple  `json:"-"`
	Hint        string        `json:"hint"`
	PlayerGuess string        `json:"player_guess"`
	IsCorrect   *bool         `json:"is_correct"`
	StartedAt   time.Time     `json:"started_at"`
	TimeLimit   time.Duration `json:"time_limit"`
	EntryFee    *big.Int      `json:"entry_fee"`
	TotalPrize  *big.Int      `json:"total_prize"`
	IsActive    bool          `json:"is_active"`
	IsCompleted bool          `json:"is_completed"`
}

func (s *LocalGameState) Deadline() time.Time {
	return s.StartedAt.Add(s.TimeLimit)
}

// TimeRemaining is clamped at zero.
func (s *LocalGameState) TimeRemaining(now time.Time) time.Duration {
	remaining := s.Deadline().Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (s *LocalGameState) Expired(now time.Time) bool {
	return s.TimeRemaining(now) <= 0
}

func (s *LocalGameState) View() *Game {
	deadline := s.Deadline()
	return &Game{
		ID:               s.ID,
		Source:           GameSourceLocal,
		TopWord:          s.Words.Top,
		MiddleWordLength: words.Length(s.Words.Middle),
		MaskedWord:       words.Mask(words.Length(s.Words.Middle), ""),
		Hint:             s.Hint,
		BottomWord:       s.Words.Bottom,
		EntryFee:         units.FormatEther(s.EntryFee),
		TotalPrize:       units.FormatEther(s.TotalPrize),
		StartTime:        s.StartedAt,
		Deadline:         &deadline,
		IsActive:         s.IsActive,
		IsCompleted:      s.IsCompleted,
	}
}

// GuessResult is the outcome of one resolved guess as shown to the player.
type GuessResult struct {
	GameID  string `json:"game_id"`
	Correct bool   `json:"correct"`
	Message string `json:"message"`

	// TotalPrize is the gross prize; DisplayedPrize is net of the display
	// fee. Both are decimal ETH.
	TotalPrize     string `json:"total_prize"`
	DisplayedPrize string `json:"displayed_prize,omitempty"`
	BonusPoints    int    `json:"bonus_points,omitempty"`

	DisplayFeePercent  uint64  `json:"display_fee_percent"`
	ContractFeePercent *uint64 `json:"contract_fee_percent,omitempty"`
	FeeMismatch        bool    `json:"fee_mismatch"`

	TxHash        string `json:"tx_hash,omitempty"`
	Confirmations uint64 `json:"confirmations,omitempty"`

	Game  *Game  `json:"game,omitempty"`
	Share *Share `json:"share,omitempty"`
}

// Share carries the links a win can be shared with.
type Share struct {
	Text       string `json:"text"`
	URL        string `json:"url"`
	OGImageURL string `json:"og_image_url"`
	ComposeURL string `json:"compose_url"`
}

func AddressOrEmpty(addr common.Address) string {
	if addr == (common.Address{}) {
		return ""
	}
	return addr.Hex()
}
