package network_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chevoisiatesalvati/guess-what/internal/network"
)

func TestForEnv(t *testing.T) {
	assert.Equal(t, int64(8453), network.ForEnv("production").ChainID)
	assert.Equal(t, int64(8453), network.ForEnv(" Production ").ChainID)
	assert.Equal(t, int64(84532), network.ForEnv("development").ChainID)
	assert.Equal(t, int64(84532), network.ForEnv("").ChainID)
}

func TestWithOverrides(t *testing.T) {
	n, err := network.BaseSepolia.WithOverrides("http://localhost:8545", "0x0000000000000000000000000000000000000001")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8545", n.RPCURL)
	assert.Equal(t, common.HexToAddress("0x1"), n.ContractAddress)

	unchanged, err := network.BaseMainnet.WithOverrides("", "")
	require.NoError(t, err)
	assert.Equal(t, network.BaseMainnet, unchanged)

	_, err = network.BaseMainnet.WithOverrides("", "not-an-address")
	assert.Error(t, err)
}

func TestByChainID(t *testing.T) {
	n, err := network.ByChainID(84532)
	require.NoError(t, err)
	assert.Equal(t, "Base Sepolia", n.Name)

	_, err = network.ByChainID(1)
	assert.Error(t, err)
}
