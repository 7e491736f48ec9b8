package services

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/decred/slog"
	"github.com/ethereum/go-ethereum/common"

	"github.com/chevoisiatesalvati/guess-what/internal/contract"
	"github.com/chevoisiatesalvati/guess-what/internal/logging"
	"github.com/chevoisiatesalvati/guess-what/internal/models"
	"github.com/chevoisiatesalvati/guess-what/internal/units"
	"github.com/chevoisiatesalvati/guess-what/internal/words"
)

// ContractState is the shared loading and error state of a ContractService.
type ContractState struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// ContractService wraps the contract client with shared loading and error
// state. Writes record the error and return it. Reads record the error and
// return a zero value so a failed read never aborts a page; GetGameInfo is
// the exception because nothing sensible can stand in for a game.
type ContractService struct {
	contract contract.GameContract
	log      slog.Logger

	mu      sync.Mutex
	pending int
	lastErr string
}

func NewContractService(c contract.GameContract, log slog.Logger) *ContractService {
	return &ContractService{
		contract: c,
		log:      logging.OrDisabled(log),
	}
}

func (s *ContractService) State() ContractState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ContractState{Loading: s.pending > 0, Error: s.lastErr}
}

func (s *ContractService) begin() {
	s.mu.Lock()
	s.pending++
	s.mu.Unlock()
}

func (s *ContractService) end(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending--
	if err != nil {
		s.lastErr = err.Error()
	} else {
		s.lastErr = ""
	}
}

// read runs fn under the shared state and logs failures.
func (s *ContractService) read(op string, fn func() error) bool {
	s.begin()
	err := fn()
	s.end(err)

	if err != nil {
		s.log.Warnf("Read %s failed, using default: %v", op, err)
		return false
	}
	return true
}

func (s *ContractService) write(op string, fn func() error) error {
	s.begin()
	err := fn()
	s.end(err)

	if err != nil {
		s.log.Errorf("Write %s failed: %v", op, err)
	}
	return err
}

func (s *ContractService) WalletAddress(ctx context.Context) (common.Address, error) {
	return s.contract.WalletAddress(ctx)
}

func (s *ContractService) GetGameInfo(ctx context.Context, gameID uint64) (*contract.GameInfo, error) {
	s.begin()
	info, err := s.contract.GetGameInfo(ctx, gameID)
	s.end(err)
	if err != nil {
		return nil, err
	}
	return info, nil
}

func (s *ContractService) IsGameAvailable(ctx context.Context, gameID uint64) bool {
	var available bool
	s.read("isGameAvailable", func() (err error) {
		available, err = s.contract.IsGameAvailable(ctx, gameID)
		return err
	})
	return available
}

func (s *ContractService) GetActiveGamesCount(ctx context.Context) uint64 {
	var count uint64
	s.read("getActiveGamesCount", func() (err error) {
		count, err = s.contract.GetActiveGamesCount(ctx)
		return err
	})
	return count
}

func (s *ContractService) GetRandomActiveGame(ctx context.Context) uint64 {
	var id uint64
	s.read("getRandomActiveGame", func() (err error) {
		id, err = s.contract.GetRandomActiveGame(ctx)
		return err
	})
	return id
}

func (s *ContractService) NextGameID(ctx context.Context) uint64 {
	var id uint64
	s.read("nextGameId", func() (err error) {
		id, err = s.contract.NextGameID(ctx)
		return err
	})
	return id
}

func (s *ContractService) GetPlayerStats(ctx context.Context, player common.Address) *contract.PlayerStats {
	stats, _ := s.LookupPlayerStats(ctx, player)
	return stats
}

// LookupPlayerStats is GetPlayerStats reporting whether the read succeeded,
// so callers can tell real zeros from the default.
func (s *ContractService) LookupPlayerStats(ctx context.Context, player common.Address) (stats *contract.PlayerStats, ok bool) {
	stats = &contract.PlayerStats{TotalWinnings: new(big.Int)}
	ok = s.read("getPlayerStats", func() error {
		got, err := s.contract.GetPlayerStats(ctx, player)
		if err == nil {
			stats = got
		}
		return err
	})
	return stats, ok
}

func (s *ContractService) IsPlayerInGame(ctx context.Context, gameID uint64, player common.Address) bool {
	var in bool
	s.read("isPlayerInGame", func() (err error) {
		in, err = s.contract.IsPlayerInGame(ctx, gameID, player)
		return err
	})
	return in
}

func (s *ContractService) HasPlayerGuessed(ctx context.Context, gameID uint64, player common.Address) bool {
	var guessed bool
	s.read("hasPlayerGuessed", func() (err error) {
		guessed, err = s.contract.HasPlayerGuessed(ctx, gameID, player)
		return err
	})
	return guessed
}

func (s *ContractService) GetPlayerGuess(ctx context.Context, gameID uint64, player common.Address) string {
	var guess string
	s.read("getPlayerGuess", func() (err error) {
		guess, err = s.contract.GetPlayerGuess(ctx, gameID, player)
		return err
	})
	return guess
}

func (s *ContractService) IsOwner(ctx context.Context, addr common.Address) bool {
	var owner bool
	s.read("isOwner", func() (err error) {
		owner, err = s.contract.IsOwner(ctx, addr)
		return err
	})
	return owner
}

func (s *ContractService) IsAdmin(ctx context.Context, addr common.Address) bool {
	var admin bool
	s.read("isAdmin", func() (err error) {
		admin, err = s.contract.IsAdmin(ctx, addr)
		return err
	})
	return admin
}

func (s *ContractService) Owner(ctx context.Context) common.Address {
	var owner common.Address
	s.read("owner", func() (err error) {
		owner, err = s.contract.Owner(ctx)
		return err
	})
	return owner
}

func (s *ContractService) GetAdminList(ctx context.Context) []common.Address {
	admins := []common.Address{}
	s.read("getAdminList", func() error {
		got, err := s.contract.GetAdminList(ctx)
		if err == nil && got != nil {
			admins = got
		}
		return err
	})
	return admins
}

func (s *ContractService) GetAdminCount(ctx context.Context) uint64 {
	var count uint64
	s.read("getAdminCount", func() (err error) {
		count, err = s.contract.GetAdminCount(ctx)
		return err
	})
	return count
}

// GetTreasuryBalanceWei returns the treasury balance, or zero.
func (s *ContractService) GetTreasuryBalanceWei(ctx context.Context) *big.Int {
	balance := new(big.Int)
	s.read("getTreasuryBalance", func() error {
		got, err := s.contract.GetTreasuryBalance(ctx)
		if err == nil && got != nil {
			balance = got
		}
		return err
	})
	return balance
}

// GetTreasuryBalance returns the treasury balance in ETH.
func (s *ContractService) GetTreasuryBalance(ctx context.Context) string {
	return units.FormatEther(s.GetTreasuryBalanceWei(ctx))
}

func (s *ContractService) GetPrizeMultiplier(ctx context.Context) uint64 {
	var multiplier uint64
	s.read("defaultPrizeMultiplier", func() (err error) {
		multiplier, err = s.contract.GetPrizeMultiplier(ctx)
		return err
	})
	return multiplier
}

// GetPlatformFee returns the contract's fee percentage. ok is false when the
// read failed and the zero default was returned.
func (s *ContractService) GetPlatformFee(ctx context.Context) (fee uint64, ok bool) {
	ok = s.read("platformFeePercent", func() (err error) {
		fee, err = s.contract.GetPlatformFee(ctx)
		return err
	})
	return fee, ok
}

// CreateGame commits the normalized middle word and returns the new id.
func (s *ContractService) CreateGame(ctx context.Context, topWord, middleWord, bottomWord, entryFee string) (uint64, error) {
	var id uint64
	err := s.write("createGame", func() error {
		input, err := NewCreateGameInput(topWord, middleWord, bottomWord, entryFee)
		if err != nil {
			return err
		}
		id, err = s.contract.CreateGame(ctx, input)
		return err
	})
	return id, err
}

// NewCreateGameInput hashes the middle word and parses the entry fee.
func NewCreateGameInput(topWord, middleWord, bottomWord, entryFee string) (*contract.CreateGameInput, error) {
	req := models.CreateGameRequest{TopWord: topWord, MiddleWord: middleWord, BottomWord: bottomWord, EntryFee: entryFee}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	fee, err := units.ParseEther(entryFee)
	if err != nil {
		return nil, err
	}

	return &contract.CreateGameInput{
		TopWord:          strings.TrimSpace(topWord),
		MiddleWordHash:   words.Hash(middleWord),
		MiddleWordLength: words.Length(middleWord),
		BottomWord:       strings.TrimSpace(bottomWord),
		EntryFee:         fee,
	}, nil
}

// SubmitGuess pays entryFee wei and returns once the guess has two
// confirmations.
func (s *ContractService) SubmitGuess(ctx context.Context, gameID uint64, guess string, entryFee *big.Int) (*contract.TxResult, error) {
	var res *contract.TxResult
	err := s.write("submitGuess", func() (err error) {
		res, err = s.contract.SubmitGuess(ctx, gameID, words.Normalize(guess), entryFee)
		return err
	})
	return res, err
}

func (s *ContractService) AddAdmin(ctx context.Context, address string) (*contract.TxResult, error) {
	var res *contract.TxResult
	err := s.write("addAdmin", func() error {
		addr, err := models.ParseAddress(address)
		if err != nil {
			return err
		}
		res, err = s.contract.AddAdmin(ctx, addr)
		return err
	})
	return res, err
}

func (s *ContractService) RemoveAdmin(ctx context.Context, address string) (*contract.TxResult, error) {
	var res *contract.TxResult
	err := s.write("removeAdmin", func() error {
		addr, err := models.ParseAddress(address)
		if err != nil {
			return err
		}
		res, err = s.contract.RemoveAdmin(ctx, addr)
		return err
	})
	return res, err
}

func (s *ContractService) FundTreasury(ctx context.Context, amount string) (*contract.TxResult, error) {
	var res *contract.TxResult
	err := s.write("fundTreasury", func() error {
		wei, err := positiveEther(amount)
		if err != nil {
			return err
		}
		res, err = s.contract.FundTreasury(ctx, wei)
		return err
	})
	return res, err
}

func (s *ContractService) WithdrawFromTreasury(ctx context.Context, amount string) (*contract.TxResult, error) {
	var res *contract.TxResult
	err := s.write("withdrawFromTreasury", func() error {
		wei, err := positiveEther(amount)
		if err != nil {
			return err
		}
		res, err = s.contract.WithdrawFromTreasury(ctx, wei)
		return err
	})
	return res, err
}

func (s *ContractService) SetPrizeMultiplier(ctx context.Context, multiplier uint64) (*contract.TxResult, error) {
	var res *contract.TxResult
	err := s.write("setPrizeMultiplier", func() (err error) {
		if multiplier == 0 {
			return fmt.Errorf("prize multiplier must be positive")
		}
		res, err = s.contract.SetPrizeMultiplier(ctx, multiplier)
		return err
	})
	return res, err
}

func (s *ContractService) SetPlatformFee(ctx context.Context, percent uint64) (*contract.TxResult, error) {
	var res *contract.TxResult
	err := s.write("setPlatformFee", func() (err error) {
		if percent > 100 {
			return fmt.Errorf("platform fee must be at most 100%%, got %d", percent)
		}
		res, err = s.contract.SetPlatformFee(ctx, percent)
		return err
	})
	return res, err
}

func (s *ContractService) PackSubmitGuess(gameID uint64, guess string, entryFee *big.Int) (*contract.CallData, error) {
	return s.contract.PackSubmitGuess(gameID, guess, entryFee)
}

func (s *ContractService) PackCreateGame(in *contract.CreateGameInput) (*contract.CallData, error) {
	return s.contract.PackCreateGame(in)
}

func (s *ContractService) DecodeSignedTx(raw []byte) (*contract.SignedCall, error) {
	return s.contract.DecodeSignedTx(raw)
}

// RelaySignedTx counts as a write: it records failures and returns them.
func (s *ContractService) RelaySignedTx(ctx context.Context, call *contract.SignedCall, confirmations uint64) (*contract.TxResult, error) {
	var res *contract.TxResult
	err := s.write("relay", func() (err error) {
		res, err = s.contract.RelaySignedTx(ctx, call, confirmations)
		return err
	})
	return res, err
}

func (s *ContractService) GameIDFromReceipt(res *contract.TxResult) (uint64, error) {
	return s.contract.GameIDFromReceipt(res)
}

func positiveEther(amount string) (*big.Int, error) {
	wei, err := units.ParseEther(amount)
	if err != nil {
		return nil, err
	}
	if wei.Sign() == 0 {
		return nil, fmt.Errorf("amount must be greater than zero")
	}
	return wei, nil
}
