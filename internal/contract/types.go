package contract

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// GameInfo is the decoded getGameInfo tuple. Amounts are wei.
type GameInfo struct {
	GameID           uint64
	TopWord          string
	MiddleWordLength int
	BottomWord       string
	EntryFee         *big.Int
	TotalPrize       *big.Int
	BasePrizeAmount  *big.Int
	StartTime        time.Time
	IsActive         bool
	IsCompleted      bool
	Winner           common.Address
}

// Available reports whether the game still accepts guesses.
func (g *GameInfo) Available() bool {
	return g != nil && g.IsActive && !g.IsCompleted
}

func (g *GameInfo) HasWinner() bool {
	return g != nil && g.Winner != (common.Address{})
}

type PlayerStats struct {
	GamesPlayed    uint64
	GuessesPlayed  uint64
	CorrectGuesses uint64
	TotalWinnings  *big.Int
	// AccuracyBasisPoints is correct/played scaled by 10000.
	AccuracyBasisPoints uint64
}

// AccuracyPercent converts the on-chain basis points to a percentage.
func (s *PlayerStats) AccuracyPercent() float64 {
	if s == nil {
		return 0
	}
	return float64(s.AccuracyBasisPoints) / 100
}

// CreateGameInput carries the committed form of a new game. MiddleWordHash
// and MiddleWordLength come from the normalized secret word.
type CreateGameInput struct {
	TopWord          string
	MiddleWordHash   common.Hash
	MiddleWordLength int
	BottomWord       string
	EntryFee         *big.Int
}

// GameCreatedEvent mirrors the GameCreated log. Field names follow the
// event's argument names so UnpackLog can fill it.
type GameCreatedEvent struct {
	GameId          *big.Int
	TopWord         string
	BottomWord      string
	EntryFee        *big.Int
	BasePrizeAmount *big.Int
	Raw             types.Log
}

// CallData is an unsigned contract call for an external wallet to sign.
type CallData struct {
	To    common.Address
	Data  []byte
	Value *big.Int
}

// TxResult summarizes a mined transaction.
type TxResult struct {
	Hash          common.Hash
	BlockNumber   uint64
	GasUsed       uint64
	Confirmations uint64
	Receipt       *types.Receipt
}
