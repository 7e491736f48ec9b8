package contract

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Wallet signs transactions for one account.
type Wallet interface {
	Address() common.Address
	Transactor(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error)
}

// WalletProvider returns the active wallet, or nil when none is connected.
// It is consulted on every write so a wallet can connect after the client
// was built.
type WalletProvider func(ctx context.Context) (Wallet, error)

// StaticWallet always returns w.
func StaticWallet(w Wallet) WalletProvider {
	return func(context.Context) (Wallet, error) {
		return w, nil
	}
}

// KeyedWallet signs with an in-process private key. Used by the operator
// CLI and tests; browser wallets sign on the client side instead.
type KeyedWallet struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

func NewKeyedWallet(key *ecdsa.PrivateKey) *KeyedWallet {
	return &KeyedWallet{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}
}

// KeyedWalletFromHex parses a hex private key, with or without 0x.
func KeyedWalletFromHex(hexKey string) (*KeyedWallet, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	return NewKeyedWallet(key), nil
}

func (w *KeyedWallet) Address() common.Address {
	return w.address
}

func (w *KeyedWallet) Transactor(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(w.key, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to build transactor: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}
