package services

import (
	"context"
	"time"

	"github.com/decred/slog"

	"github.com/chevoisiatesalvati/guess-what/internal/contract"
	"github.com/chevoisiatesalvati/guess-what/internal/logging"
	"github.com/chevoisiatesalvati/guess-what/internal/units"
)

const DefaultWatchInterval = 15 * time.Second

// maxWatchSpan bounds one log query so a long outage does not ask the node
// for an unbounded range.
const maxWatchSpan = 5000

type GameEventSource interface {
	BlockNumber(ctx context.Context) (uint64, error)
	FilterGameCreated(ctx context.Context, fromBlock, toBlock uint64) ([]*contract.GameCreatedEvent, error)
}

// GameWatcher follows GameCreated events and broadcasts them.
type GameWatcher struct {
	source      GameEventSource
	broadcaster Broadcaster
	interval    time.Duration
	log         slog.Logger

	lastBlock uint64
}

func NewGameWatcher(source GameEventSource, b Broadcaster, interval time.Duration, log slog.Logger) *GameWatcher {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	return &GameWatcher{
		source:      source,
		broadcaster: broadcasterOrNoop(b),
		interval:    interval,
		log:         logging.OrDisabled(log),
	}
}

func (w *GameWatcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Infof("Watching for new games every %v", w.interval)
	for {
		if _, err := w.Poll(ctx); err != nil {
			w.log.Warnf("Game watch failed: %v", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Poll broadcasts games created since the last poll. The first poll only
// records the chain head.
func (w *GameWatcher) Poll(ctx context.Context) (int, error) {
	head, err := w.source.BlockNumber(ctx)
	if err != nil {
		return 0, err
	}

	if w.lastBlock == 0 {
		w.lastBlock = head
		return 0, nil
	}
	if head <= w.lastBlock {
		return 0, nil
	}

	from := w.lastBlock + 1
	to := head
	if to-from >= maxWatchSpan {
		to = from + maxWatchSpan - 1
	}

	events, err := w.source.FilterGameCreated(ctx, from, to)
	if err != nil {
		return 0, err
	}

	for _, ev := range events {
		id := ev.GameId.Uint64()
		w.log.Infof("New game %d: %s / %s", id, ev.TopWord, ev.BottomWord)
		w.broadcaster.BroadcastGameCreated(id, ev.TopWord, ev.BottomWord, units.FormatEther(ev.EntryFee))
	}

	w.lastBlock = to
	return len(events), nil
}
