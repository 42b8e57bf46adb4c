package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiwiorbit/speechive-7.1/internal/catalog"
	"github.com/kiwiorbit/speechive-7.1/internal/clock"
	"github.com/kiwiorbit/speechive-7.1/internal/domain"
	"github.com/kiwiorbit/speechive-7.1/internal/event"
	"github.com/kiwiorbit/speechive-7.1/internal/store"
)

// eventRecorder captures every published event for assertions.
type eventRecorder struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *eventRecorder) subscribeAll(bus event.Bus) {
	types := []event.Type{
		event.ActivityCompleted, event.DayCompleted, event.BadgeClaimed,
		event.CurrencyChanged, event.QuotaExceeded, event.RedemptionRejected,
		event.VoucherIssued, event.ProgressReset,
	}
	for _, t := range types {
		bus.Subscribe(t, func(_ context.Context, e event.Event) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.events = append(r.events, e)
			return nil
		})
	}
}

func (r *eventRecorder) ofType(t event.Type) []event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func testCatalog() *catalog.Config {
	return &catalog.Config{
		Version: "1.0",
		Challenges: []catalog.ChallengeDef{
			{
				Type:  domain.CategoryExpansion,
				Title: "Expansion",
				Days: []catalog.DayDef{
					{Day: 1, Activities: []catalog.ActivityDef{
						{ID: "exp-d1-a1", Title: "Reading Book Together", RecommendedTime: 10},
						{ID: "exp-d1-a2", Title: "Playing with Blocks", RecommendedTime: 15},
						{ID: "exp-d1-a3", Title: "Meal Time", RecommendedTime: 5},
					}},
					{Day: 2, Activities: []catalog.ActivityDef{
						{ID: "exp-d2-a1", Title: "Outdoor Fun", RecommendedTime: 15},
					}},
				},
			},
			{
				Type:  domain.CategoryRecast,
				Title: "Recast",
				Days: []catalog.DayDef{
					{Day: 1, Activities: []catalog.ActivityDef{
						{ID: "rec-d1-a1", Title: "Story Time Corrections", RecommendedTime: 10},
					}},
				},
			},
		},
	}
}

type testRig struct {
	svc      Service
	clk      *clock.SimulatedClock
	store    *store.MemoryStore
	bus      *event.MemoryBus
	recorder *eventRecorder
}

func newTestRig(t *testing.T, opts ...Option) *testRig {
	t.Helper()

	clk := clock.NewSimulatedClock(time.Date(2025, 6, 14, 10, 0, 0, 0, time.Local))
	st := store.NewMemoryStore()
	bus := event.NewMemoryBus()
	recorder := &eventRecorder{}
	recorder.subscribeAll(bus)

	svc, err := NewService(context.Background(), st, bus, clk, testCatalog(), opts...)
	require.NoError(t, err)

	return &testRig{svc: svc, clk: clk, store: st, bus: bus, recorder: recorder}
}

// completeActivity runs a full start/advance/stop cycle.
func (r *testRig) completeActivity(t *testing.T, c domain.Category, day int, id string, d time.Duration) *StopResult {
	t.Helper()
	ctx := context.Background()

	_, err := r.svc.StartTimer(ctx, c, day, id)
	require.NoError(t, err)
	r.clk.Advance(d)
	result, err := r.svc.StopTimer(ctx)
	require.NoError(t, err)
	return result
}

func TestFirstCompletionAwardsHoneyDrops(t *testing.T) {
	rig := newTestRig(t)

	result := rig.completeActivity(t, domain.CategoryExpansion, 1, "exp-d1-a1", 90*time.Second)

	assert.True(t, result.FirstCompletion)
	assert.Equal(t, int64(90), result.ElapsedSeconds)
	assert.Equal(t, domain.ActivityReward, result.Reward)
	assert.Equal(t, domain.ActivityReward, result.Balance)
	assert.Equal(t, domain.ActivityReward, rig.svc.Balance())

	act := rig.svc.CompletionLog().FindActivity(domain.CategoryExpansion, 1, "exp-d1-a1")
	require.NotNil(t, act)
	assert.True(t, act.Completed)
	require.NotNil(t, act.CompletionDate)
	assert.Equal(t, domain.ActivityReward, act.HoneyDropsEarned)

	assert.Len(t, rig.recorder.ofType(event.ActivityCompleted), 1)
	assert.Len(t, rig.recorder.ofType(event.CurrencyChanged), 1)
}

func TestRepeatSessionAccruesDurationWithoutReward(t *testing.T) {
	rig := newTestRig(t)

	first := rig.completeActivity(t, domain.CategoryExpansion, 1, "exp-d1-a1", 60*time.Second)
	firstDate := rig.svc.CompletionLog().FindActivity(domain.CategoryExpansion, 1, "exp-d1-a1").CompletionDate

	rig.clk.Advance(time.Hour)
	second := rig.completeActivity(t, domain.CategoryExpansion, 1, "exp-d1-a1", 45*time.Second)

	assert.False(t, second.FirstCompletion)
	assert.Zero(t, second.Reward)
	assert.Equal(t, int64(105), second.TotalSeconds)
	assert.Equal(t, first.Balance, second.Balance)

	act := rig.svc.CompletionLog().FindActivity(domain.CategoryExpansion, 1, "exp-d1-a1")
	assert.Equal(t, firstDate, act.CompletionDate)
	assert.Len(t, rig.recorder.ofType(event.ActivityCompleted), 1)
}

func TestElapsedRoundsToNearestSecond(t *testing.T) {
	rig := newTestRig(t)

	result := rig.completeActivity(t, domain.CategoryExpansion, 1, "exp-d1-a1", 1500*time.Millisecond)
	assert.Equal(t, int64(2), result.ElapsedSeconds)
}

func TestStartWhileRunningIsRejected(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()

	_, err := rig.svc.StartTimer(ctx, domain.CategoryExpansion, 1, "exp-d1-a1")
	require.NoError(t, err)

	_, err = rig.svc.StartTimer(ctx, domain.CategoryExpansion, 1, "exp-d1-a2")
	assert.ErrorIs(t, err, domain.ErrTimerAlreadyRunning)
}

func TestStopWithoutSessionIsRejected(t *testing.T) {
	rig := newTestRig(t)

	_, err := rig.svc.StopTimer(context.Background())
	assert.ErrorIs(t, err, domain.ErrTimerNotRunning)
}

func TestStartUnknownTargets(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()

	_, err := rig.svc.StartTimer(ctx, "mystery", 1, "exp-d1-a1")
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)

	_, err = rig.svc.StartTimer(ctx, domain.CategoryExpansion, 9, "exp-d1-a1")
	assert.ErrorIs(t, err, domain.ErrUnknownActivity)

	_, err = rig.svc.StartTimer(ctx, domain.CategoryExpansion, 1, "nope")
	assert.ErrorIs(t, err, domain.ErrUnknownActivity)
}

func TestActiveSessionReportsElapsed(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()

	_, _, running := rig.svc.ActiveSession()
	assert.False(t, running)

	_, err := rig.svc.StartTimer(ctx, domain.CategoryExpansion, 1, "exp-d1-a1")
	require.NoError(t, err)
	rig.clk.Advance(42 * time.Second)

	sess, elapsed, running := rig.svc.ActiveSession()
	require.True(t, running)
	assert.Equal(t, "exp-d1-a1", sess.ActivityID)
	assert.Equal(t, int64(42), elapsed)
}

func TestQuotaBlocksFourthStart(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()

	rig.completeActivity(t, domain.CategoryExpansion, 1, "exp-d1-a1", time.Minute)
	rig.completeActivity(t, domain.CategoryExpansion, 1, "exp-d1-a2", time.Minute)
	rig.completeActivity(t, domain.CategoryExpansion, 1, "exp-d1-a3", time.Minute)

	_, err := rig.svc.StartTimer(ctx, domain.CategoryExpansion, 2, "exp-d2-a1")
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)

	// Already-completed activities are gated too.
	_, err = rig.svc.StartTimer(ctx, domain.CategoryExpansion, 1, "exp-d1-a1")
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)

	assert.Len(t, rig.recorder.ofType(event.QuotaExceeded), 2)
}

func TestQuotaResetsAtMidnight(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()

	rig.completeActivity(t, domain.CategoryExpansion, 1, "exp-d1-a1", time.Minute)
	rig.completeActivity(t, domain.CategoryExpansion, 1, "exp-d1-a2", time.Minute)
	rig.completeActivity(t, domain.CategoryExpansion, 1, "exp-d1-a3", time.Minute)

	rig.clk.Advance(24 * time.Hour)

	_, err := rig.svc.StartTimer(ctx, domain.CategoryExpansion, 2, "exp-d2-a1")
	assert.NoError(t, err)
	assert.Zero(t, rig.svc.CompletedToday(rig.clk.Now()))
}

func TestMinSessionFloorKeepsSessionRunning(t *testing.T) {
	rig := newTestRig(t, WithMinSessionSeconds(60))
	ctx := context.Background()

	_, err := rig.svc.StartTimer(ctx, domain.CategoryExpansion, 1, "exp-d1-a1")
	require.NoError(t, err)

	rig.clk.Advance(30 * time.Second)
	_, err = rig.svc.StopTimer(ctx)
	assert.ErrorIs(t, err, domain.ErrSessionTooShort)

	_, _, running := rig.svc.ActiveSession()
	assert.True(t, running)

	rig.clk.Advance(30 * time.Second)
	result, err := rig.svc.StopTimer(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(60), result.ElapsedSeconds)
}

func TestDayCompletedFiresOnNewlyCompletingStopOnly(t *testing.T) {
	rig := newTestRig(t)

	result := rig.completeActivity(t, domain.CategoryRecast, 1, "rec-d1-a1", time.Minute)
	assert.True(t, result.DayCompleted)
	assert.Len(t, rig.recorder.ofType(event.DayCompleted), 1)

	again := rig.completeActivity(t, domain.CategoryRecast, 1, "rec-d1-a1", time.Minute)
	assert.False(t, again.DayCompleted)
	assert.Len(t, rig.recorder.ofType(event.DayCompleted), 1)
}

func TestStateSurvivesRestart(t *testing.T) {
	rig := newTestRig(t)

	rig.completeActivity(t, domain.CategoryExpansion, 1, "exp-d1-a1", 2*time.Minute)

	reloaded, err := NewService(context.Background(), rig.store, rig.bus, rig.clk, testCatalog())
	require.NoError(t, err)

	act := reloaded.CompletionLog().FindActivity(domain.CategoryExpansion, 1, "exp-d1-a1")
	require.NotNil(t, act)
	assert.True(t, act.Completed)
	assert.Equal(t, int64(120), act.Duration)
	assert.Equal(t, domain.ActivityReward, reloaded.Balance())
}

func TestSaveProfilePreservesBalance(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()

	rig.completeActivity(t, domain.CategoryExpansion, 1, "exp-d1-a1", time.Minute)

	require.NoError(t, rig.svc.SaveProfile(ctx, domain.Profile{
		CaregiverName: "Ana",
		ChildName:     "Rui",
		HoneyDrops:    9999,
	}))

	p, ok := rig.svc.Profile()
	require.True(t, ok)
	assert.Equal(t, "Ana", p.CaregiverName)
	assert.Equal(t, domain.ActivityReward, p.HoneyDrops)
}

// failingStore serves reads from the embedded store but refuses every write.
type failingStore struct {
	*store.MemoryStore
}

func (f *failingStore) Set(ctx context.Context, key string, value []byte) error {
	return errors.New("disk full")
}

func (f *failingStore) Delete(ctx context.Context, keys ...string) error {
	return errors.New("disk full")
}

func TestEngineSurvivesStoreWriteFailure(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewSimulatedClock(time.Date(2025, 6, 14, 10, 0, 0, 0, time.Local))
	bus := event.NewMemoryBus()

	svc, err := NewService(ctx, &failingStore{store.NewMemoryStore()}, bus, clk, testCatalog())
	require.NoError(t, err)

	_, err = svc.StartTimer(ctx, domain.CategoryExpansion, 1, "exp-d1-a1")
	require.NoError(t, err)
	clk.Advance(90 * time.Second)

	result, err := svc.StopTimer(ctx)
	require.NoError(t, err)
	assert.True(t, result.FirstCompletion)
	assert.Equal(t, int64(90), result.ElapsedSeconds)
	assert.Equal(t, domain.ActivityReward, result.Balance)

	// In-memory state stays authoritative when persistence is down.
	assert.Equal(t, domain.ActivityReward, svc.Balance())
	act := svc.CompletionLog().FindActivity(domain.CategoryExpansion, 1, "exp-d1-a1")
	require.NotNil(t, act)
	assert.True(t, act.Completed)
	assert.Equal(t, int64(90), act.Duration)

	require.NoError(t, svc.SaveProfile(ctx, domain.Profile{CaregiverName: "Ana", ChildName: "Rui"}))
	_, ok := svc.Profile()
	assert.True(t, ok)

	require.NoError(t, svc.Reset(ctx))
	assert.Equal(t, 0, svc.Balance())
}

func TestStopTimerRejectsVanishedActivity(t *testing.T) {
	rig := newTestRig(t)

	// Plant a session pointing at an activity the log does not carry.
	s, ok := rig.svc.(*service)
	require.True(t, ok)
	s.mu.Lock()
	s.session = &Session{
		Category:   domain.CategoryExpansion,
		Day:        9,
		ActivityID: "ghost",
		StartedAt:  rig.clk.Now(),
	}
	s.mu.Unlock()

	_, err := rig.svc.StopTimer(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnknownActivity)

	_, _, running := rig.svc.ActiveSession()
	assert.False(t, running)
}
