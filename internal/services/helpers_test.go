package services_test

import (
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chevoisiatesalvati/guess-what/internal/contract"
)

var (
	testPlayer   = common.HexToAddress("0x1111111111111111111111111111111111111111")
	testEntryFee = big.NewInt(100_000_000_000_000) // 0.0001 ETH
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func activeGame(id uint64, prize int64) *contract.GameInfo {
	return &contract.GameInfo{
		GameID:           id,
		TopWord:          "Coca",
		MiddleWordLength: 4,
		BottomWord:       "Pepsi",
		EntryFee:         new(big.Int).Set(testEntryFee),
		TotalPrize:       big.NewInt(prize),
		BasePrizeAmount:  big.NewInt(1_000_000_000_000_000),
		StartTime:        time.Unix(1_700_000_000, 0),
		IsActive:         true,
	}
}

func wonGame(id uint64, prize int64, winner common.Address) *contract.GameInfo {
	info := activeGame(id, prize)
	info.IsActive = false
	info.IsCompleted = true
	info.Winner = winner
	return info
}

func txResult(confirmations uint64) *contract.TxResult {
	return &contract.TxResult{
		Hash:          common.HexToHash("0xabc0000000000000000000000000000000000000000000000000000000000001"),
		BlockNumber:   100,
		GasUsed:       21000,
		Confirmations: confirmations,
	}
}
