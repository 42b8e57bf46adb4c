package handler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kiwiorbit/speechive-7.1/internal/analytics"
	"github.com/kiwiorbit/speechive-7.1/internal/catalog"
	"github.com/kiwiorbit/speechive-7.1/internal/clock"
	"github.com/kiwiorbit/speechive-7.1/internal/domain"
	"github.com/kiwiorbit/speechive-7.1/internal/engine"
	"github.com/kiwiorbit/speechive-7.1/internal/event"
	"github.com/kiwiorbit/speechive-7.1/internal/notification"
	"github.com/kiwiorbit/speechive-7.1/internal/store"
)

// handlerRig wires real services over in-memory infrastructure for
// endpoint tests.
type handlerRig struct {
	engine        engine.Service
	analytics     analytics.Service
	notifications notification.Service
	clk           *clock.SimulatedClock
}

func newHandlerRig(t *testing.T) *handlerRig {
	t.Helper()

	clk := clock.NewSimulatedClock(time.Date(2025, 6, 14, 10, 0, 0, 0, time.Local))
	st := store.NewMemoryStore()
	bus := event.NewMemoryBus()

	cat := &catalog.Config{
		Version: "1.0",
		Challenges: []catalog.ChallengeDef{
			{
				Type:  domain.CategoryExpansion,
				Title: "Expansion",
				Days: []catalog.DayDef{
					{Day: 1, Activities: []catalog.ActivityDef{
						{ID: "exp-d1-a1", Title: "Reading Book Together", RecommendedTime: 10},
						{ID: "exp-d1-a2", Title: "Playing with Blocks", RecommendedTime: 15},
					}},
				},
			},
		},
	}

	eng, err := engine.NewService(context.Background(), st, bus, clk, cat)
	require.NoError(t, err)

	notif, err := notification.NewService(context.Background(), st, clk)
	require.NoError(t, err)
	notif.Subscribe(bus)

	return &handlerRig{
		engine:        eng,
		analytics:     analytics.NewService(eng, clk),
		notifications: notif,
		clk:           clk,
	}
}
