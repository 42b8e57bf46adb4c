package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiwiorbit/speechive-7.1/internal/clock"
	"github.com/kiwiorbit/speechive-7.1/internal/domain"
	"github.com/kiwiorbit/speechive-7.1/internal/event"
	"github.com/kiwiorbit/speechive-7.1/internal/store"
)

func newTestService(t *testing.T) (Service, *store.MemoryStore, *event.MemoryBus) {
	t.Helper()

	st := store.NewMemoryStore()
	clk := clock.NewSimulatedClock(time.Date(2025, 6, 14, 10, 0, 0, 0, time.Local))
	svc, err := NewService(context.Background(), st, clk)
	require.NoError(t, err)

	bus := event.NewMemoryBus()
	svc.Subscribe(bus)
	return svc, st, bus
}

func TestFreshFeedSeedsWelcomeEntries(t *testing.T) {
	svc, _, _ := newTestService(t)

	feed := svc.List()
	require.Len(t, feed, 3)
	assert.Equal(t, "Welcome to Speechive! We're glad you're here.", feed[0].Text)
	for _, n := range feed {
		assert.Equal(t, KindWelcome, n.Kind)
		assert.False(t, n.Read)
	}
}

func TestFeedPersistsAcrossRestart(t *testing.T) {
	svc, st, bus := newTestService(t)
	ctx := context.Background()

	require.NoError(t, bus.Publish(ctx, event.NewBadgeClaimedEvent(3, domain.BadgeReward)))
	require.Len(t, svc.List(), 4)

	clk := clock.NewSimulatedClock(time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local))
	reloaded, err := NewService(ctx, st, clk)
	require.NoError(t, err)

	feed := reloaded.List()
	require.Len(t, feed, 4)
	assert.Equal(t, "Badge for Day 3 claimed! +33 Honey Drops earned.", feed[0].Text)
}

func TestActivityCompletedPrepends(t *testing.T) {
	svc, _, bus := newTestService(t)
	ctx := context.Background()

	e := event.NewActivityCompletedEvent(
		domain.CategoryExpansion, 1, "exp-d1-a1", "Reading Book Together",
		domain.ActivityReward, time.Now())
	require.NoError(t, bus.Publish(ctx, e))

	feed := svc.List()
	require.Len(t, feed, 4)
	assert.Equal(t, "'Reading Book Together' complete! +33 Honey Drops earned.", feed[0].Text)
	assert.Equal(t, KindActivity, feed[0].Kind)
}

func TestDayCompletedPrepends(t *testing.T) {
	svc, _, bus := newTestService(t)

	require.NoError(t, bus.Publish(context.Background(),
		event.NewDayCompletedEvent(domain.CategoryRecast, 2)))

	feed := svc.List()
	assert.Equal(t, "Day 2 complete! You've unlocked a new badge.", feed[0].Text)
	assert.Equal(t, KindDay, feed[0].Kind)
}

func TestMarkAllRead(t *testing.T) {
	svc, _, _ := newTestService(t)

	require.NoError(t, svc.MarkAllRead(context.Background()))

	for _, n := range svc.List() {
		assert.True(t, n.Read)
	}
}

func TestClearAllEmptiesWithoutReseeding(t *testing.T) {
	svc, _, _ := newTestService(t)

	require.NoError(t, svc.ClearAll(context.Background()))
	assert.Empty(t, svc.List())
}

func TestProgressResetReseedsWelcome(t *testing.T) {
	svc, _, bus := newTestService(t)
	ctx := context.Background()

	require.NoError(t, bus.Publish(ctx, event.NewBadgeClaimedEvent(1, domain.BadgeReward)))
	require.NoError(t, svc.MarkAllRead(ctx))

	require.NoError(t, bus.Publish(ctx, event.NewProgressResetEvent()))

	feed := svc.List()
	require.Len(t, feed, 3)
	for _, n := range feed {
		assert.Equal(t, KindWelcome, n.Kind)
		assert.False(t, n.Read)
	}
}

func TestIDsKeepIncreasing(t *testing.T) {
	svc, _, bus := newTestService(t)
	ctx := context.Background()

	require.NoError(t, bus.Publish(ctx, event.NewBadgeClaimedEvent(1, domain.BadgeReward)))
	require.NoError(t, bus.Publish(ctx, event.NewBadgeClaimedEvent(2, domain.BadgeReward)))

	feed := svc.List()
	assert.Greater(t, feed[0].ID, feed[1].ID)
}

// failingStore serves reads from the embedded store but refuses every write.
type failingStore struct {
	*store.MemoryStore
}

func (f *failingStore) Set(ctx context.Context, key string, value []byte) error {
	return errors.New("disk full")
}

func TestFeedSurvivesStoreWriteFailure(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewSimulatedClock(time.Date(2025, 6, 14, 10, 0, 0, 0, time.Local))

	svc, err := NewService(ctx, &failingStore{store.NewMemoryStore()}, clk)
	require.NoError(t, err)

	bus := event.NewMemoryBus()
	svc.Subscribe(bus)

	require.NoError(t, bus.Publish(ctx, event.NewDayCompletedEvent(domain.CategoryExpansion, 1)))

	// The in-memory feed stays authoritative when persistence is down.
	feed := svc.List()
	require.Len(t, feed, 4)
	assert.Equal(t, "Day 1 complete! You've unlocked a new badge.", feed[0].Text)

	require.NoError(t, svc.MarkAllRead(ctx))
	assert.True(t, svc.List()[0].Read)
}
