package contract

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/chevoisiatesalvati/guess-what/internal/words"
)

// WalletAddress returns the address of the connected wallet.
func (c *Client) WalletAddress(ctx context.Context) (common.Address, error) {
	w, err := c.activeWallet(ctx)
	if err != nil {
		return common.Address{}, err
	}
	return w.Address(), nil
}

func (c *Client) activeWallet(ctx context.Context) (Wallet, error) {
	if c == nil || c.wallet == nil {
		return nil, ErrWalletNotConnected
	}

	w, err := c.wallet(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWalletNotConnected, err)
	}
	if w == nil {
		return nil, ErrWalletNotConnected
	}
	return w, nil
}

func (c *Client) transactor(ctx context.Context) (*bind.TransactOpts, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	if c.chainID == nil {
		return nil, ErrClientNotInitialized
	}

	w, err := c.activeWallet(ctx)
	if err != nil {
		return nil, err
	}
	return w.Transactor(ctx, c.chainID)
}

// transact sends method and blocks until the transaction has the requested
// number of confirmations. action is used in error messages.
func (c *Client) transact(ctx context.Context, action string, value *big.Int, confirmations uint64, method string, args ...interface{}) (*TxResult, error) {
	opts, err := c.transactor(ctx)
	if err != nil {
		return nil, err
	}
	opts.Value = value

	tx, err := c.contract.Transact(opts, method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", action, err)
	}
	c.log.Debugf("Sent %s from %s: %s", method, opts.From.Hex(), tx.Hash().Hex())

	res, err := c.waitMined(ctx, tx.Hash(), confirmations)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", action, err)
	}
	c.log.Infof("%s mined in block %d (%s)", method, res.BlockNumber, tx.Hash().Hex())
	return res, nil
}

// waitMined polls for the receipt, then for the head to reach the requested
// depth. A confirmation depth of 1 means the inclusion block itself.
func (c *Client) waitMined(ctx context.Context, hash common.Hash, confirmations uint64) (*TxResult, error) {
	if confirmations == 0 {
		confirmations = 1
	}

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	var receipt *types.Receipt
	for {
		if receipt == nil {
			r, err := c.backend.TransactionReceipt(ctx, hash)
			switch {
			case err == nil && r != nil:
				if r.Status != types.ReceiptStatusSuccessful {
					return nil, fmt.Errorf("%w: %s", ErrTransactionReverted, hash.Hex())
				}
				receipt = r
			case err != nil && !errors.Is(err, ethereum.NotFound):
				c.log.Debugf("Receipt lookup for %s failed: %v", hash.Hex(), err)
			}
		}

		if receipt != nil {
			mined := receipt.BlockNumber.Uint64()
			if confirmations == 1 {
				return newTxResult(receipt, 1), nil
			}

			head, err := c.backend.BlockNumber(ctx)
			if err != nil {
				c.log.Debugf("Head lookup failed while waiting for %s: %v", hash.Hex(), err)
			} else if head >= mined && head-mined+1 >= confirmations {
				return newTxResult(receipt, head-mined+1), nil
			}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func newTxResult(receipt *types.Receipt, confirmations uint64) *TxResult {
	return &TxResult{
		Hash:          receipt.TxHash,
		BlockNumber:   receipt.BlockNumber.Uint64(),
		GasUsed:       receipt.GasUsed,
		Confirmations: confirmations,
		Receipt:       receipt,
	}
}

// CreateGame commits a new game and returns the id from its GameCreated
// event.
func (c *Client) CreateGame(ctx context.Context, in *CreateGameInput) (uint64, error) {
	if in == nil {
		return 0, errors.New("failed to create game: missing input")
	}

	res, err := c.transact(ctx, "create game", nil, 1, "createGame",
		in.TopWord,
		[32]byte(in.MiddleWordHash),
		big.NewInt(int64(in.MiddleWordLength)),
		in.BottomWord,
		amountArg(in.EntryFee),
	)
	if err != nil {
		return 0, err
	}

	id, err := c.GameIDFromReceipt(res)
	if err != nil {
		return 0, fmt.Errorf("failed to create game: %w", err)
	}
	return id, nil
}

// SubmitGuess pays the entry fee and waits for GuessConfirmations blocks so
// that a following read sees the guess applied.
func (c *Client) SubmitGuess(ctx context.Context, gameID uint64, guess string, entryFee *big.Int) (*TxResult, error) {
	return c.transact(ctx, "submit guess", amountArg(entryFee), GuessConfirmations,
		"submitGuess", gameIDArg(gameID), words.Normalize(guess))
}

func (c *Client) AddAdmin(ctx context.Context, addr common.Address) (*TxResult, error) {
	return c.transact(ctx, "add admin", nil, 1, "addAdmin", addr)
}

func (c *Client) RemoveAdmin(ctx context.Context, addr common.Address) (*TxResult, error) {
	return c.transact(ctx, "remove admin", nil, 1, "removeAdmin", addr)
}

func (c *Client) FundTreasury(ctx context.Context, amount *big.Int) (*TxResult, error) {
	return c.transact(ctx, "fund treasury", amountArg(amount), 1, "fundTreasury")
}

func (c *Client) WithdrawFromTreasury(ctx context.Context, amount *big.Int) (*TxResult, error) {
	return c.transact(ctx, "withdraw from treasury", nil, 1, "withdrawFromTreasury", amountArg(amount))
}

func (c *Client) SetPrizeMultiplier(ctx context.Context, multiplier uint64) (*TxResult, error) {
	return c.transact(ctx, "set prize multiplier", nil, 1, "setPrizeMultiplier", new(big.Int).SetUint64(multiplier))
}

func (c *Client) SetPlatformFee(ctx context.Context, percent uint64) (*TxResult, error) {
	return c.transact(ctx, "set platform fee", nil, 1, "setPlatformFee", new(big.Int).SetUint64(percent))
}

// GameIDFromReceipt finds the GameCreated log emitted by this contract.
func (c *Client) GameIDFromReceipt(res *TxResult) (uint64, error) {
	if c == nil || res == nil || res.Receipt == nil {
		return 0, ErrCreationEventNotFound
	}

	event, ok := c.abi.Events["GameCreated"]
	if !ok {
		return 0, ErrCreationEventNotFound
	}

	for _, l := range res.Receipt.Logs {
		if l == nil || l.Address != c.address || len(l.Topics) < 2 || l.Topics[0] != event.ID {
			continue
		}

		created, err := c.unpackGameCreated(*l)
		if err != nil {
			// The id is the first indexed argument regardless of how the
			// data section is laid out.
			c.log.Warnf("Falling back to topic decoding for GameCreated in %s: %v", l.TxHash.Hex(), err)
			return toUint64("gameId", new(big.Int).SetBytes(l.Topics[1].Bytes()))
		}
		return toUint64("gameId", created.GameId)
	}
	return 0, ErrCreationEventNotFound
}

func (c *Client) unpackGameCreated(l types.Log) (*GameCreatedEvent, error) {
	if c.contract == nil {
		return nil, ErrClientNotInitialized
	}

	created := new(GameCreatedEvent)
	if err := c.contract.UnpackLog(created, "GameCreated", l); err != nil {
		return nil, err
	}
	created.Raw = l
	return created, nil
}

// FilterGameCreated returns the games created between two blocks,
// inclusive.
func (c *Client) FilterGameCreated(ctx context.Context, fromBlock, toBlock uint64) ([]*GameCreatedEvent, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	event, ok := c.abi.Events["GameCreated"]
	if !ok {
		return nil, errors.New("abi has no GameCreated event")
	}

	logs, err := c.backend.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{c.address},
		Topics:    [][]common.Hash{{event.ID}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to filter GameCreated logs: %w", err)
	}

	events := make([]*GameCreatedEvent, 0, len(logs))
	for _, l := range logs {
		created, err := c.unpackGameCreated(l)
		if err != nil {
			c.log.Warnf("Skipping undecodable GameCreated log %s: %v", l.TxHash.Hex(), err)
			continue
		}
		events = append(events, created)
	}
	return events, nil
}

func amountArg(amount *big.Int) *big.Int {
	if amount == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(amount)
}
