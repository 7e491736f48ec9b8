package services

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/decred/slog"
	"github.com/ethereum/go-ethereum/common"

	"github.com/chevoisiatesalvati/guess-what/internal/contract"
	"github.com/chevoisiatesalvati/guess-what/internal/logging"
	"github.com/chevoisiatesalvati/guess-what/internal/models"
	"github.com/chevoisiatesalvati/guess-what/internal/units"
)

// treasuryTopUpBuffer is added on top of ten entry fees when the game
// creation script funds the treasury.
var treasuryTopUpBuffer = big.NewInt(1_000_000_000_000_000)

type AdminService struct {
	contract    *ContractService
	broadcaster Broadcaster
	log         slog.Logger
}

func NewAdminService(c *ContractService, b Broadcaster, log slog.Logger) *AdminService {
	return &AdminService{
		contract:    c,
		broadcaster: broadcasterOrNoop(b),
		log:         logging.OrDisabled(log),
	}
}

// Access derives what an address may do from its roles. Admins create games
// and fund or withdraw from the treasury; the prize multiplier, platform fee
// and admin list are the owner's.
func Access(addr common.Address, isOwner, isAdmin bool) *models.AdminAccess {
	return &models.AdminAccess{
		Address:          addr.Hex(),
		IsOwner:          isOwner,
		IsAdmin:          isAdmin,
		CanCreateGames:   isOwner || isAdmin,
		CanFundTreasury:  isOwner || isAdmin,
		CanSetParameters: isOwner,
		CanManageAdmins:  isOwner,
	}
}

// parallel runs the reads together. Facade reads never fail, they fall back
// to defaults, so there is nothing to collect.
func parallel(reads ...func()) {
	var wg sync.WaitGroup
	wg.Add(len(reads))
	for _, read := range reads {
		go func(read func()) {
			defer wg.Done()
			read()
		}(read)
	}
	wg.Wait()
}

func (s *AdminService) ResolveAccess(ctx context.Context, addr common.Address) *models.AdminAccess {
	var isOwner, isAdmin bool
	parallel(
		func() { isOwner = s.contract.IsOwner(ctx, addr) },
		func() { isAdmin = s.contract.IsAdmin(ctx, addr) },
	)
	return Access(addr, isOwner, isAdmin)
}

func (s *AdminService) Admins(ctx context.Context) *models.AdminSet {
	var (
		owner  common.Address
		admins []common.Address
		count  uint64
	)

	parallel(
		func() { owner = s.contract.Owner(ctx) },
		func() { admins = s.contract.GetAdminList(ctx) },
		func() { count = s.contract.GetAdminCount(ctx) },
	)

	set := &models.AdminSet{Owner: models.AddressOrEmpty(owner), Admins: make([]string, 0, len(admins)), Count: count}
	for _, a := range admins {
		set.Admins = append(set.Admins, a.Hex())
	}
	return set
}

func (s *AdminService) Treasury(ctx context.Context) *models.TreasuryOverview {
	overview := &models.TreasuryOverview{}

	parallel(
		func() { overview.Balance = s.contract.GetTreasuryBalance(ctx) },
		func() { overview.PrizeMultiplier = s.contract.GetPrizeMultiplier(ctx) },
		func() { overview.PlatformFeePercent, _ = s.contract.GetPlatformFee(ctx) },
	)

	return overview
}

func (s *AdminService) CreateGame(ctx context.Context, access *models.AdminAccess, req models.CreateGameRequest) (uint64, error) {
	if !access.CanCreateGames {
		return 0, ErrAccessDenied
	}

	req = req.Trimmed()
	id, err := s.contract.CreateGame(ctx, req.TopWord, req.MiddleWord, req.BottomWord, req.EntryFee)
	if err != nil {
		return 0, err
	}

	s.log.Infof("Game %d created by %s: %s / %s", id, access.Address, req.TopWord, req.BottomWord)
	s.broadcaster.BroadcastGameCreated(id, req.TopWord, req.BottomWord, req.EntryFee)
	return id, nil
}

// CreateGameCallData packs a createGame call for a browser wallet to sign.
func (s *AdminService) CreateGameCallData(access *models.AdminAccess, req models.CreateGameRequest) (*contract.CallData, error) {
	if !access.CanCreateGames {
		return nil, ErrAccessDenied
	}

	req = req.Trimmed()
	input, err := NewCreateGameInput(req.TopWord, req.MiddleWord, req.BottomWord, req.EntryFee)
	if err != nil {
		return nil, err
	}
	return s.contract.PackCreateGame(input)
}

// FundTreasury deposits amount ETH and returns the refreshed balance.
func (s *AdminService) FundTreasury(ctx context.Context, access *models.AdminAccess, amount string) (string, error) {
	if !access.CanFundTreasury {
		return "", ErrAccessDenied
	}
	if _, err := s.contract.FundTreasury(ctx, amount); err != nil {
		return "", err
	}
	return s.contract.GetTreasuryBalance(ctx), nil
}

func (s *AdminService) WithdrawFromTreasury(ctx context.Context, access *models.AdminAccess, amount string) (string, error) {
	if !access.CanFundTreasury {
		return "", ErrAccessDenied
	}
	if _, err := s.contract.WithdrawFromTreasury(ctx, amount); err != nil {
		return "", err
	}
	return s.contract.GetTreasuryBalance(ctx), nil
}

func (s *AdminService) SetPrizeMultiplier(ctx context.Context, access *models.AdminAccess, multiplier uint64) (*models.TreasuryOverview, error) {
	if !access.CanSetParameters {
		return nil, ErrAccessDenied
	}
	if _, err := s.contract.SetPrizeMultiplier(ctx, multiplier); err != nil {
		return nil, err
	}
	return s.Treasury(ctx), nil
}

func (s *AdminService) SetPlatformFee(ctx context.Context, access *models.AdminAccess, percent uint64) (*models.TreasuryOverview, error) {
	if !access.CanSetParameters {
		return nil, ErrAccessDenied
	}
	if _, err := s.contract.SetPlatformFee(ctx, percent); err != nil {
		return nil, err
	}
	return s.Treasury(ctx), nil
}

func (s *AdminService) AddAdmin(ctx context.Context, access *models.AdminAccess, address string) (*models.AdminSet, error) {
	if !access.CanManageAdmins {
		return nil, ErrAccessDenied
	}
	if _, err := s.contract.AddAdmin(ctx, address); err != nil {
		return nil, err
	}
	return s.Admins(ctx), nil
}

func (s *AdminService) RemoveAdmin(ctx context.Context, access *models.AdminAccess, address string) (*models.AdminSet, error) {
	if !access.CanManageAdmins {
		return nil, ErrAccessDenied
	}
	if _, err := s.contract.RemoveAdmin(ctx, address); err != nil {
		return nil, err
	}
	return s.Admins(ctx), nil
}

// EnsureTreasury checks the treasury can cover the base prize of a game with
// entryFee. When it cannot and fund is set, it deposits ten entry fees plus
// a small buffer and checks again. It reports whether a deposit was made.
func (s *AdminService) EnsureTreasury(ctx context.Context, access *models.AdminAccess, entryFee *big.Int, fund bool) (bool, error) {
	multiplier := s.contract.GetPrizeMultiplier(ctx)
	required := units.MulUint(entryFee, multiplier)
	balance := s.contract.GetTreasuryBalanceWei(ctx)

	if balance.Cmp(required) >= 0 {
		return false, nil
	}
	if !fund {
		return false, fmt.Errorf("%w: treasury holds %s ETH but %s ETH is needed per game",
			ErrTreasuryShort, units.FormatEther(balance), units.FormatEther(required))
	}

	topUp := units.MulUint(entryFee, 10)
	topUp.Add(topUp, treasuryTopUpBuffer)
	refreshed, err := s.FundTreasury(ctx, access, units.FormatEther(topUp))
	if err != nil {
		return false, fmt.Errorf("failed to fund treasury: %w", err)
	}
	s.log.Infof("Treasury topped up with %s ETH", units.FormatEther(topUp))

	if balance, err = units.ParseEther(refreshed); err != nil {
		return true, fmt.Errorf("failed to read treasury balance: %w", err)
	}
	if balance.Cmp(required) < 0 {
		return true, fmt.Errorf("%w: treasury holds %s ETH after funding but %s ETH is needed per game",
			ErrTreasuryShort, units.FormatEther(balance), units.FormatEther(required))
	}
	return true, nil
}

// AdminTxResult is what a relayed admin transaction changed.
type AdminTxResult struct {
	Method    string                   `json:"method"`
	Tx        *contract.TxResult       `json:"-"`
	GameID    uint64                   `json:"game_id,omitempty"`
	Treasury  *models.TreasuryOverview `json:"treasury,omitempty"`
	AdminList *models.AdminSet         `json:"admins,omitempty"`
}

// RelayAdminTx validates an admin transaction signed in the browser and
// sends it. The signer must be the session's wallet and hold the role the
// method needs.
func (s *AdminService) RelayAdminTx(ctx context.Context, access *models.AdminAccess, raw []byte) (*AdminTxResult, error) {
	call, err := s.contract.DecodeSignedTx(raw)
	if err != nil {
		return nil, err
	}
	if call.From.Hex() != access.Address {
		return nil, ErrSignerMismatch
	}

	var allowed bool
	switch call.Method {
	case "createGame":
		allowed = access.CanCreateGames
	case "fundTreasury", "withdrawFromTreasury":
		allowed = access.CanFundTreasury
	case "setPrizeMultiplier", "setPlatformFee":
		allowed = access.CanSetParameters
	case "addAdmin", "removeAdmin":
		allowed = access.CanManageAdmins
	default:
		return nil, ErrUnexpectedMethod
	}
	if !allowed {
		return nil, ErrAccessDenied
	}

	tx, err := s.contract.RelaySignedTx(ctx, call, 1)
	if err != nil {
		return nil, err
	}

	result := &AdminTxResult{Method: call.Method, Tx: tx}
	switch call.Method {
	case "createGame":
		id, err := s.contract.GameIDFromReceipt(tx)
		if err != nil {
			return nil, err
		}
		result.GameID = id
		if info, err := s.contract.GetGameInfo(ctx, id); err == nil {
			s.broadcaster.BroadcastGameCreated(id, info.TopWord, info.BottomWord, units.FormatEther(info.EntryFee))
		}
	case "fundTreasury", "withdrawFromTreasury", "setPrizeMultiplier", "setPlatformFee":
		result.Treasury = s.Treasury(ctx)
	case "addAdmin", "removeAdmin":
		result.AdminList = s.Admins(ctx)
	}

	s.log.Infof("Relayed %s from %s in %s", call.Method, access.Address, tx.Hash.Hex())
	return result, nil
}
