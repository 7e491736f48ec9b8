package services

import (
	"context"
	"fmt"

	"github.com/decred/slog"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/chevoisiatesalvati/guess-what/internal/config"
	"github.com/chevoisiatesalvati/guess-what/internal/contract"
	"github.com/chevoisiatesalvati/guess-what/internal/network"
)

// ResolveNetwork picks the chain for cfg.Env and applies the RPC and
// contract address overrides.
func ResolveNetwork(cfg *config.Config) (network.Network, error) {
	return network.ForEnv(cfg.Env).WithOverrides(cfg.RPCURL, cfg.ContractAddress)
}

// DialContract connects to the network's RPC endpoint and builds the
// contract client. With PRIVATE_KEY set the client signs as that key;
// otherwise writes fail with ErrWalletNotConnected.
func DialContract(ctx context.Context, cfg *config.Config, net network.Network, log slog.Logger) (*contract.Client, *ethclient.Client, error) {
	parsed, err := contract.LoadABI(cfg.ContractABIPath)
	if err != nil {
		return nil, nil, err
	}

	var wallet contract.WalletProvider
	if cfg.PrivateKey != "" {
		w, err := contract.KeyedWalletFromHex(cfg.PrivateKey)
		if err != nil {
			return nil, nil, err
		}
		wallet = contract.StaticWallet(w)
	}

	eth, err := contract.Dial(ctx, net.RPCURL)
	if err != nil {
		return nil, nil, err
	}

	rpcChain, err := eth.ChainID(ctx)
	if err != nil {
		eth.Close()
		return nil, nil, fmt.Errorf("failed to read chain id: %w", err)
	}
	if rpcChain.Int64() != net.ChainID {
		eth.Close()
		name := rpcChain.String()
		if other, err := network.ByChainID(rpcChain.Int64()); err == nil {
			name = other.Name
		}
		return nil, nil, fmt.Errorf("%s serves %s, expected %s", net.RPCURL, name, net.Name)
	}

	client, err := contract.New(contract.Config{
		Backend: eth,
		Address: net.ContractAddress,
		ChainID: net.ChainIDBig(),
		ABI:     &parsed,
		Wallet:  wallet,
		Log:     log,
	})
	if err != nil {
		eth.Close()
		return nil, nil, fmt.Errorf("failed to create contract client: %w", err)
	}
	return client, eth, nil
}
