package services

// Broadcaster pushes game events to connected clients. Amounts are decimal
// ETH strings.
type Broadcaster interface {
	BroadcastGameCreated(gameID uint64, topWord, bottomWord, entryFee string)
	BroadcastGameUpdate(gameID uint64, totalPrize string)
	BroadcastGameWon(gameID uint64, winner, prize string)
}

type noopBroadcaster struct{}

func (noopBroadcaster) BroadcastGameCreated(uint64, string, string, string) {}
func (noopBroadcaster) BroadcastGameUpdate(uint64, string)                  {}
func (noopBroadcaster) BroadcastGameWon(uint64, string, string)             {}

func broadcasterOrNoop(b Broadcaster) Broadcaster {
	if b == nil {
		return noopBroadcaster{}
	}
	return b
}
