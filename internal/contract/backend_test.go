package contract_test

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/chevoisiatesalvati/guess-what/internal/contract"
)

// fakeChain answers contract calls from canned outputs and mines every sent
// transaction into the current head block. The head advances by one each
// time it is queried.
type fakeChain struct {
	contract.Backend

	mu       sync.Mutex
	abi      abi.ABI
	address  common.Address
	outputs  map[string][]interface{}
	calls    map[string]int
	head     uint64
	sent     []*types.Transaction
	receipts map[common.Hash]*types.Receipt
	logs     []types.Log
	revert   bool
	// logsFor returns the logs emitted by a transaction.
	logsFor func(tx *types.Transaction) []*types.Log
}

func newFakeChain(parsed abi.ABI, address common.Address) *fakeChain {
	return &fakeChain{
		abi:      parsed,
		address:  address,
		outputs:  make(map[string][]interface{}),
		calls:    make(map[string]int),
		head:     100,
		receipts: make(map[common.Hash]*types.Receipt),
	}
}

func (f *fakeChain) set(method string, values ...interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outputs[method] = values
}

func (f *fakeChain) callCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeChain) CallContract(ctx context.Context, msg ethereum.CallMsg, block *big.Int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	method, err := f.abi.MethodById(msg.Data)
	if err != nil {
		return nil, err
	}
	f.calls[method.Name]++

	values, ok := f.outputs[method.Name]
	if !ok {
		return nil, fmt.Errorf("execution reverted: no output for %s", method.Name)
	}
	return method.Outputs.Pack(values...)
}

func (f *fakeChain) CodeAt(ctx context.Context, account common.Address, block *big.Int) ([]byte, error) {
	return []byte{0x60}, nil
}

func (f *fakeChain) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return []byte{0x60}, nil
}

func (f *fakeChain) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &types.Header{Number: new(big.Int).SetUint64(f.head)}, nil
}

func (f *fakeChain) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint64(len(f.sent)), nil
}

func (f *fakeChain) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (f *fakeChain) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000), nil
}

func (f *fakeChain) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	return 150_000, nil
}

func (f *fakeChain) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sent = append(f.sent, tx)

	status := types.ReceiptStatusSuccessful
	if f.revert {
		status = types.ReceiptStatusFailed
	}

	var logs []*types.Log
	if f.logsFor != nil {
		logs = f.logsFor(tx)
	}
	f.receipts[tx.Hash()] = &types.Receipt{
		Status:      status,
		TxHash:      tx.Hash(),
		BlockNumber: new(big.Int).SetUint64(f.head),
		GasUsed:     90_000,
		Logs:        logs,
	}
	return nil
}

func (f *fakeChain) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.receipts[hash]
	if !ok {
		return nil, ethereum.NotFound
	}
	return r, nil
}

func (f *fakeChain) BlockNumber(ctx context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.head++
	return f.head, nil
}

func (f *fakeChain) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []types.Log
	for _, l := range f.logs {
		if q.FromBlock != nil && l.BlockNumber < q.FromBlock.Uint64() {
			continue
		}
		if q.ToBlock != nil && l.BlockNumber > q.ToBlock.Uint64() {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeChain) lastSent() *types.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.sent) == 0 {
		return nil
	}
	return f.sent[len(f.sent)-1]
}

// gameCreatedLog builds the log the contract emits for a new game.
func gameCreatedLog(parsed abi.ABI, address common.Address, gameID int64, block uint64) *types.Log {
	event := parsed.Events["GameCreated"]
	data, err := event.Inputs.NonIndexed().Pack("cat", "dog", big.NewInt(100_000_000_000_000), big.NewInt(1_000_000_000_000_000))
	if err != nil {
		panic(err)
	}
	return &types.Log{
		Address:     address,
		Topics:      []common.Hash{event.ID, common.BigToHash(big.NewInt(gameID))},
		Data:        data,
		BlockNumber: block,
	}
}
