package models

import (
	"github.com/chevoisiatesalvati/guess-what/internal/contract"
)

type Transaction struct {
	Hash          string `json:"hash"`
	BlockNumber   uint64 `json:"block_number"`
	GasUsed       uint64 `json:"gas_used"`
	Confirmations uint64 `json:"confirmations"`
	ExplorerURL   string `json:"explorer_url,omitempty"`
}

func NewTransaction(res *contract.TxResult, explorerURL string) *Transaction {
	if res == nil {
		return nil
	}
	return &Transaction{
		Hash:          res.Hash.Hex(),
		BlockNumber:   res.BlockNumber,
		GasUsed:       res.GasUsed,
		Confirmations: res.Confirmations,
		ExplorerURL:   explorerURL,
	}
}

// CallDataResponse is an unsigned call for the player's wallet to sign.
type CallDataResponse struct {
	To      string `json:"to"`
	Data    string `json:"data"`
	Value   string `json:"value"`
	ChainID int64  `json:"chain_id"`
}
