package contract

type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrClientNotInitialized  Error = "contract client not initialized"
	ErrContractAddressNotSet Error = "contract address not set"
	ErrWalletNotConnected    Error = "wallet not connected"
	ErrCreationEventNotFound Error = "game creation event not found"
	ErrTransactionReverted   Error = "transaction reverted"
	ErrUnexpectedOutput      Error = "unexpected contract output"
	ErrForeignTransaction    Error = "transaction does not target the game contract"
)
