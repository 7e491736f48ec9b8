package contract

import (
	"context"
	_ "embed"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/decred/slog"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/chevoisiatesalvati/guess-what/internal/logging"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_game_contract.go github.com/chevoisiatesalvati/guess-what/internal/contract GameContract

//go:embed guesswhat.abi.json
var defaultABI string

const (
	// GuessConfirmations is how deep a guess must be buried before its
	// effect on the game is read back.
	GuessConfirmations = 2

	defaultPollInterval = 2 * time.Second
)

// Backend is the chain access the client needs. *ethclient.Client
// satisfies it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	BlockNumber(ctx context.Context) (uint64, error)
}

// GameContract is the typed surface of the GuessWhatGame contract.
type GameContract interface {
	GetGameInfo(ctx context.Context, gameID uint64) (*GameInfo, error)
	IsGameAvailable(ctx context.Context, gameID uint64) (bool, error)
	GetPlayerStats(ctx context.Context, player common.Address) (*PlayerStats, error)
	IsPlayerInGame(ctx context.Context, gameID uint64, player common.Address) (bool, error)
	HasPlayerGuessed(ctx context.Context, gameID uint64, player common.Address) (bool, error)
	GetPlayerGuess(ctx context.Context, gameID uint64, player common.Address) (string, error)
	NextGameID(ctx context.Context) (uint64, error)
	GetRandomActiveGame(ctx context.Context) (uint64, error)
	GetActiveGamesCount(ctx context.Context) (uint64, error)
	IsOwner(ctx context.Context, addr common.Address) (bool, error)
	Owner(ctx context.Context) (common.Address, error)
	IsAdmin(ctx context.Context, addr common.Address) (bool, error)
	GetAdminList(ctx context.Context) ([]common.Address, error)
	GetAdminCount(ctx context.Context) (uint64, error)
	GetTreasuryBalance(ctx context.Context) (*big.Int, error)
	GetPrizeMultiplier(ctx context.Context) (uint64, error)
	GetPlatformFee(ctx context.Context) (uint64, error)

	WalletAddress(ctx context.Context) (common.Address, error)
	CreateGame(ctx context.Context, in *CreateGameInput) (uint64, error)
	SubmitGuess(ctx context.Context, gameID uint64, guess string, entryFee *big.Int) (*TxResult, error)
	AddAdmin(ctx context.Context, addr common.Address) (*TxResult, error)
	RemoveAdmin(ctx context.Context, addr common.Address) (*TxResult, error)
	FundTreasury(ctx context.Context, amount *big.Int) (*TxResult, error)
	WithdrawFromTreasury(ctx context.Context, amount *big.Int) (*TxResult, error)
	SetPrizeMultiplier(ctx context.Context, multiplier uint64) (*TxResult, error)
	SetPlatformFee(ctx context.Context, percent uint64) (*TxResult, error)

	PackSubmitGuess(gameID uint64, guess string, entryFee *big.Int) (*CallData, error)
	PackCreateGame(in *CreateGameInput) (*CallData, error)
	DecodeSignedTx(raw []byte) (*SignedCall, error)
	RelaySignedTx(ctx context.Context, call *SignedCall, confirmations uint64) (*TxResult, error)
	GameIDFromReceipt(receipt *TxResult) (uint64, error)
}

type Config struct {
	Backend Backend
	Address common.Address
	ChainID *big.Int
	// ABI overrides the embedded contract ABI.
	ABI          *abi.ABI
	Wallet       WalletProvider
	PollInterval time.Duration
	Log          slog.Logger
}

type Client struct {
	backend      Backend
	address      common.Address
	chainID      *big.Int
	abi          abi.ABI
	contract     *bind.BoundContract
	wallet       WalletProvider
	pollInterval time.Duration
	log          slog.Logger
}

var _ GameContract = (*Client)(nil)

// ParseABI parses the embedded contract ABI.
func ParseABI() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(defaultABI))
}

// LoadABI reads an ABI JSON file, falling back to the embedded ABI when
// path is empty.
func LoadABI(path string) (abi.ABI, error) {
	if path == "" {
		return ParseABI()
	}

	f, err := os.Open(path)
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failed to open abi: %w", err)
	}
	defer f.Close()

	parsed, err := abi.JSON(f)
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failed to parse abi %s: %w", path, err)
	}
	return parsed, nil
}

// Dial connects to an RPC endpoint.
func Dial(ctx context.Context, rpcURL string) (*ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", rpcURL, err)
	}
	return client, nil
}

// New builds a client. A missing backend or address is not an error here;
// every call reports it instead.
func New(cfg Config) (*Client, error) {
	var parsed abi.ABI
	if cfg.ABI != nil {
		parsed = *cfg.ABI
	} else {
		var err error
		parsed, err = ParseABI()
		if err != nil {
			return nil, fmt.Errorf("failed to parse embedded abi: %w", err)
		}
	}

	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	c := &Client{
		backend:      cfg.Backend,
		address:      cfg.Address,
		chainID:      cfg.ChainID,
		abi:          parsed,
		wallet:       cfg.Wallet,
		pollInterval: pollInterval,
		log:          logging.OrDisabled(cfg.Log),
	}

	if cfg.Backend != nil {
		c.contract = bind.NewBoundContract(cfg.Address, parsed, cfg.Backend, cfg.Backend, cfg.Backend)
	}
	return c, nil
}

func (c *Client) Address() common.Address {
	return c.address
}

func (c *Client) ChainID() *big.Int {
	if c.chainID == nil {
		return nil
	}
	return new(big.Int).Set(c.chainID)
}

func (c *Client) ready() error {
	if c == nil || c.backend == nil || c.contract == nil {
		return ErrClientNotInitialized
	}
	if c.address == (common.Address{}) {
		return ErrContractAddressNotSet
	}
	return nil
}

func (c *Client) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}
	return out, nil
}

func (c *Client) callOne(ctx context.Context, method string, args ...interface{}) (interface{}, error) {
	out, err := c.call(ctx, method, args...)
	if err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("%s: %w: got %d values", method, ErrUnexpectedOutput, len(out))
	}
	return out[0], nil
}

func (c *Client) callBool(ctx context.Context, method string, args ...interface{}) (bool, error) {
	v, err := c.callOne(ctx, method, args...)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%s: %w: %T", method, ErrUnexpectedOutput, v)
	}
	return b, nil
}

func (c *Client) callBig(ctx context.Context, method string, args ...interface{}) (*big.Int, error) {
	v, err := c.callOne(ctx, method, args...)
	if err != nil {
		return nil, err
	}
	n, ok := v.(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%s: %w: %T", method, ErrUnexpectedOutput, v)
	}
	return n, nil
}

func (c *Client) callUint(ctx context.Context, method string, args ...interface{}) (uint64, error) {
	n, err := c.callBig(ctx, method, args...)
	if err != nil {
		return 0, err
	}
	return toUint64(method, n)
}

func toUint64(field string, n *big.Int) (uint64, error) {
	if n == nil || n.Sign() < 0 || !n.IsUint64() {
		return 0, fmt.Errorf("%s: %w: %v out of range", field, ErrUnexpectedOutput, n)
	}
	return n.Uint64(), nil
}

func gameIDArg(gameID uint64) *big.Int {
	return new(big.Int).SetUint64(gameID)
}

func (c *Client) GetGameInfo(ctx context.Context, gameID uint64) (*GameInfo, error) {
	out, err := c.call(ctx, "getGameInfo", gameIDArg(gameID))
	if err != nil {
		return nil, err
	}
	if len(out) != 11 {
		return nil, fmt.Errorf("getGameInfo: %w: got %d values", ErrUnexpectedOutput, len(out))
	}

	id, ok0 := out[0].(*big.Int)
	topWord, ok1 := out[1].(string)
	middleLength, ok2 := out[2].(*big.Int)
	bottomWord, ok3 := out[3].(string)
	entryFee, ok4 := out[4].(*big.Int)
	totalPrize, ok5 := out[5].(*big.Int)
	basePrize, ok6 := out[6].(*big.Int)
	startTime, ok7 := out[7].(*big.Int)
	isActive, ok8 := out[8].(bool)
	isCompleted, ok9 := out[9].(bool)
	winner, ok10 := out[10].(common.Address)
	if !(ok0 && ok1 && ok2 && ok3 && ok4 && ok5 && ok6 && ok7 && ok8 && ok9 && ok10) {
		return nil, fmt.Errorf("getGameInfo: %w", ErrUnexpectedOutput)
	}

	decodedID, err := toUint64("gameId", id)
	if err != nil {
		return nil, err
	}
	length, err := toUint64("middleWordLength", middleLength)
	if err != nil {
		return nil, err
	}
	started, err := toUint64("startTime", startTime)
	if err != nil {
		return nil, err
	}

	return &GameInfo{
		GameID:           decodedID,
		TopWord:          topWord,
		MiddleWordLength: int(length),
		BottomWord:       bottomWord,
		EntryFee:         entryFee,
		TotalPrize:       totalPrize,
		BasePrizeAmount:  basePrize,
		StartTime:        time.Unix(int64(started), 0).UTC(),
		IsActive:         isActive,
		IsCompleted:      isCompleted,
		Winner:           winner,
	}, nil
}

func (c *Client) IsGameAvailable(ctx context.Context, gameID uint64) (bool, error) {
	info, err := c.GetGameInfo(ctx, gameID)
	if err != nil {
		return false, err
	}
	return info.Available(), nil
}

func (c *Client) GetPlayerStats(ctx context.Context, player common.Address) (*PlayerStats, error) {
	out, err := c.call(ctx, "getPlayerStats", player)
	if err != nil {
		return nil, err
	}
	if len(out) != 5 {
		return nil, fmt.Errorf("getPlayerStats: %w: got %d values", ErrUnexpectedOutput, len(out))
	}

	values := make([]*big.Int, len(out))
	for i, v := range out {
		n, ok := v.(*big.Int)
		if !ok {
			return nil, fmt.Errorf("getPlayerStats: %w: %T", ErrUnexpectedOutput, v)
		}
		values[i] = n
	}

	stats := &PlayerStats{TotalWinnings: values[3]}
	counters := []struct {
		name string
		dst  *uint64
		src  *big.Int
	}{
		{"gamesPlayed", &stats.GamesPlayed, values[0]},
		{"guessesPlayed", &stats.GuessesPlayed, values[1]},
		{"correctGuesses", &stats.CorrectGuesses, values[2]},
		{"accuracy", &stats.AccuracyBasisPoints, values[4]},
	}
	for _, counter := range counters {
		if *counter.dst, err = toUint64(counter.name, counter.src); err != nil {
			return nil, err
		}
	}
	return stats, nil
}

func (c *Client) IsPlayerInGame(ctx context.Context, gameID uint64, player common.Address) (bool, error) {
	return c.callBool(ctx, "isPlayerInGame", gameIDArg(gameID), player)
}

func (c *Client) HasPlayerGuessed(ctx context.Context, gameID uint64, player common.Address) (bool, error) {
	return c.callBool(ctx, "hasPlayerGuessed", gameIDArg(gameID), player)
}

func (c *Client) GetPlayerGuess(ctx context.Context, gameID uint64, player common.Address) (string, error) {
	v, err := c.callOne(ctx, "getPlayerGuess", gameIDArg(gameID), player)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("getPlayerGuess: %w: %T", ErrUnexpectedOutput, v)
	}
	return s, nil
}

func (c *Client) NextGameID(ctx context.Context) (uint64, error) {
	return c.callUint(ctx, "nextGameId")
}

func (c *Client) GetRandomActiveGame(ctx context.Context) (uint64, error) {
	return c.callUint(ctx, "getRandomActiveGame")
}

func (c *Client) GetActiveGamesCount(ctx context.Context) (uint64, error) {
	return c.callUint(ctx, "getActiveGamesCount")
}

func (c *Client) IsOwner(ctx context.Context, addr common.Address) (bool, error) {
	return c.callBool(ctx, "isOwner", addr)
}

func (c *Client) Owner(ctx context.Context) (common.Address, error) {
	v, err := c.callOne(ctx, "owner")
	if err != nil {
		return common.Address{}, err
	}
	addr, ok := v.(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("owner: %w: %T", ErrUnexpectedOutput, v)
	}
	return addr, nil
}

func (c *Client) IsAdmin(ctx context.Context, addr common.Address) (bool, error) {
	return c.callBool(ctx, "isAdmin", addr)
}

func (c *Client) GetAdminList(ctx context.Context) ([]common.Address, error) {
	v, err := c.callOne(ctx, "getAdminList")
	if err != nil {
		return nil, err
	}
	admins, ok := v.([]common.Address)
	if !ok {
		return nil, fmt.Errorf("getAdminList: %w: %T", ErrUnexpectedOutput, v)
	}
	return admins, nil
}

func (c *Client) GetAdminCount(ctx context.Context) (uint64, error) {
	return c.callUint(ctx, "getAdminCount")
}

func (c *Client) GetTreasuryBalance(ctx context.Context) (*big.Int, error) {
	return c.callBig(ctx, "getTreasuryBalance")
}

func (c *Client) GetPrizeMultiplier(ctx context.Context) (uint64, error) {
	return c.callUint(ctx, "defaultPrizeMultiplier")
}

func (c *Client) GetPlatformFee(ctx context.Context) (uint64, error) {
	return c.callUint(ctx, "platformFeePercent")
}

// BlockNumber returns the current head.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	if err := c.ready(); err != nil {
		return 0, err
	}
	return c.backend.BlockNumber(ctx)
}
