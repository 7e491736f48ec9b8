package network

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

type Network struct {
	Name            string
	ChainID         int64
	RPCURL          string
	ExplorerURL     string
	ContractAddress common.Address
}

var (
	BaseMainnet = Network{
		Name:            "Base",
		ChainID:         8453,
		RPCURL:          "https://mainnet.base.org",
		ExplorerURL:     "https://basescan.org",
		ContractAddress: common.HexToAddress("0xC85Dc6C4a2d1b2f8e4842D8737DE06425E35919A"),
	}

	BaseSepolia = Network{
		Name:            "Base Sepolia",
		ChainID:         84532,
		RPCURL:          "https://base-sepolia.drpc.org",
		ExplorerURL:     "https://sepolia.basescan.org",
		ContractAddress: common.HexToAddress("0xf4F689091F30EB77Ea9575Be919A762b418E12c7"),
	}
)

// ForEnv picks mainnet for production deployments and the test chain for
// everything else.
func ForEnv(env string) Network {
	if strings.EqualFold(strings.TrimSpace(env), "production") {
		return BaseMainnet
	}
	return BaseSepolia
}

func ByChainID(chainID int64) (Network, error) {
	for _, n := range []Network{BaseMainnet, BaseSepolia} {
		if n.ChainID == chainID {
			return n, nil
		}
	}
	return Network{}, fmt.Errorf("unsupported chain id %d", chainID)
}

func (n Network) ChainIDBig() *big.Int {
	return big.NewInt(n.ChainID)
}

// WithOverrides replaces the RPC endpoint and contract address when set.
func (n Network) WithOverrides(rpcURL, contractAddress string) (Network, error) {
	if rpcURL != "" {
		n.RPCURL = rpcURL
	}
	if contractAddress != "" {
		if !common.IsHexAddress(contractAddress) {
			return n, fmt.Errorf("invalid contract address %q", contractAddress)
		}
		n.ContractAddress = common.HexToAddress(contractAddress)
	}
	return n, nil
}

func (n Network) TxURL(hash common.Hash) string {
	return fmt.Sprintf("%s/tx/%s", n.ExplorerURL, hash.Hex())
}

func (n Network) AddressURL(addr common.Address) string {
	return fmt.Sprintf("%s/address/%s", n.ExplorerURL, addr.Hex())
}
