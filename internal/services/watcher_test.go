package services_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chevoisiatesalvati/guess-what/internal/contract"
	"github.com/chevoisiatesalvati/guess-what/internal/services"
)

type fakeEventSource struct {
	head   uint64
	events map[uint64]*contract.GameCreatedEvent
	ranges [][2]uint64
}

func (f *fakeEventSource) BlockNumber(context.Context) (uint64, error) {
	return f.head, nil
}

func (f *fakeEventSource) FilterGameCreated(_ context.Context, from, to uint64) ([]*contract.GameCreatedEvent, error) {
	f.ranges = append(f.ranges, [2]uint64{from, to})

	var out []*contract.GameCreatedEvent
	for block := from; block <= to; block++ {
		if ev, ok := f.events[block]; ok {
			out = append(out, ev)
		}
	}
	return out, nil
}

func TestGameWatcherPoll(t *testing.T) {
	source := &fakeEventSource{
		head: 100,
		events: map[uint64]*contract.GameCreatedEvent{
			95:  {GameId: big.NewInt(1), TopWord: "old", BottomWord: "game", EntryFee: big.NewInt(1)},
			103: {GameId: big.NewInt(2), TopWord: "Coca", BottomWord: "Pepsi", EntryFee: big.NewInt(100_000_000_000_000)},
		},
	}
	broadcaster := &recordingBroadcaster{}
	watcher := services.NewGameWatcher(source, broadcaster, 0, nil)
	ctx := context.Background()

	n, err := watcher.Poll(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, source.ranges)

	n, err = watcher.Poll(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	source.head = 105
	n, err = watcher.Poll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, [][2]uint64{{101, 105}}, source.ranges)
	assert.Equal(t, []uint64{2}, broadcaster.created)
}
