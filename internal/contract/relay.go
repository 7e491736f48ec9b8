package contract

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/chevoisiatesalvati/guess-what/internal/words"
)

// SignedCall is a decoded, signed transaction addressed to the contract.
type SignedCall struct {
	Tx     *types.Transaction
	From   common.Address
	Method string
	Args   []interface{}
}

func (s *SignedCall) Value() *big.Int {
	if s == nil || s.Tx == nil {
		return new(big.Int)
	}
	return s.Tx.Value()
}

// GameID returns the first argument of submitGuess.
func (s *SignedCall) GameID() (uint64, error) {
	if s == nil || len(s.Args) == 0 {
		return 0, errors.New("call has no arguments")
	}
	id, ok := s.Args[0].(*big.Int)
	if !ok {
		return 0, fmt.Errorf("%s: %w: %T", s.Method, ErrUnexpectedOutput, s.Args[0])
	}
	return toUint64("gameId", id)
}

// PackSubmitGuess builds the calldata a browser wallet signs for a guess.
// The guess is normalized here like every other guess path.
func (c *Client) PackSubmitGuess(gameID uint64, guess string, entryFee *big.Int) (*CallData, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	data, err := c.abi.Pack("submitGuess", gameIDArg(gameID), words.Normalize(guess))
	if err != nil {
		return nil, fmt.Errorf("failed to pack guess: %w", err)
	}
	return &CallData{To: c.address, Data: data, Value: amountArg(entryFee)}, nil
}

func (c *Client) PackCreateGame(in *CreateGameInput) (*CallData, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	if in == nil {
		return nil, errors.New("failed to pack game: missing input")
	}

	data, err := c.abi.Pack("createGame",
		in.TopWord,
		[32]byte(in.MiddleWordHash),
		big.NewInt(int64(in.MiddleWordLength)),
		in.BottomWord,
		amountArg(in.EntryFee),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to pack game: %w", err)
	}
	return &CallData{To: c.address, Data: data, Value: new(big.Int)}, nil
}

// DecodeSignedTx parses a raw signed transaction, recovers its sender and
// decodes the contract call it carries.
func (c *Client) DecodeSignedTx(raw []byte) (*SignedCall, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	if c.chainID == nil {
		return nil, ErrClientNotInitialized
	}

	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(raw); err != nil {
		return nil, fmt.Errorf("failed to decode transaction: %w", err)
	}
	if tx.To() == nil || *tx.To() != c.address {
		return nil, ErrForeignTransaction
	}
	if tx.ChainId() != nil && tx.ChainId().Sign() != 0 && tx.ChainId().Cmp(c.chainID) != 0 {
		return nil, fmt.Errorf("transaction is for chain %s, expected %s", tx.ChainId(), c.chainID)
	}

	from, err := types.Sender(types.LatestSignerForChainID(c.chainID), tx)
	if err != nil {
		return nil, fmt.Errorf("failed to recover sender: %w", err)
	}

	method, err := c.abi.MethodById(tx.Data())
	if err != nil {
		return nil, fmt.Errorf("failed to decode call: %w", err)
	}
	args, err := method.Inputs.Unpack(tx.Data()[4:])
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s arguments: %w", method.Name, err)
	}

	return &SignedCall{Tx: tx, From: from, Method: method.Name, Args: args}, nil
}

// RelaySignedTx broadcasts a transaction signed elsewhere and waits for the
// requested confirmation depth.
func (c *Client) RelaySignedTx(ctx context.Context, call *SignedCall, confirmations uint64) (*TxResult, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	if call == nil || call.Tx == nil {
		return nil, errors.New("failed to relay transaction: nothing to send")
	}

	if err := c.backend.SendTransaction(ctx, call.Tx); err != nil {
		return nil, fmt.Errorf("failed to relay %s: %w", call.Method, err)
	}
	c.log.Debugf("Relayed %s from %s: %s", call.Method, call.From.Hex(), call.Tx.Hash().Hex())

	res, err := c.waitMined(ctx, call.Tx.Hash(), confirmations)
	if err != nil {
		return nil, fmt.Errorf("failed to relay %s: %w", call.Method, err)
	}
	return res, nil
}
