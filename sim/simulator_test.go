package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator(t *testing.T, cfg Config) *Simulator {
	t.Helper()
	s, err := NewSimulator(&cfg)
	require.NoError(t, err)
	return s
}

func TestSimulator_ReferenceScenario(t *testing.T) {
	// Horizon 120, review interval 1, policy (20,40), fixed seed
	cfg := validConfig()
	s := newTestSimulator(t, cfg)

	report, err := s.Run()
	require.NoError(t, err)

	// Terminates exactly at the horizon end
	assert.Equal(t, 120.0, s.Clock)
	assert.Equal(t, 120.0, s.Costs.LastUpdateTime())

	// Non-negative averages summing to the total
	assert.GreaterOrEqual(t, report.AvgOrderingCost, 0.0)
	assert.GreaterOrEqual(t, report.AvgHoldingCost, 0.0)
	assert.GreaterOrEqual(t, report.AvgShortageCost, 0.0)
	sum := report.AvgOrderingCost + report.AvgHoldingCost + report.AvgShortageCost
	assert.InDelta(t, sum, report.AvgTotalCost, 1e-9)

	// A 120-unit horizon with demands every 0.1 places plenty of orders
	assert.NotEmpty(t, s.PlacedOrders)
}

func TestSimulator_RejectsInvalidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Policy = Policy{ReorderPoint: 40, OrderUpTo: 40}
	_, err := NewSimulator(&cfg)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestSimulator_CannotRunTwice(t *testing.T) {
	s := newTestSimulator(t, validConfig())
	_, err := s.Run()
	require.NoError(t, err)

	_, err = s.Run()
	assert.ErrorIs(t, err, ErrInvariant)
}

func TestSimulator_EmptyScheduleIsFatal(t *testing.T) {
	s := newTestSimulator(t, validConfig())

	// Drain the seeded events behind the engine's back
	for s.Queue.Len() > 0 {
		s.Queue.PopNext()
	}

	_, err := s.Run()
	assert.ErrorIs(t, err, ErrEmptySchedule)
}

func TestSimulator_PastEventIsFatal(t *testing.T) {
	s := newTestSimulator(t, validConfig())
	s.Clock = 10 // pretend time already advanced
	s.Schedule(NewDemandEvent(5.0, 999))

	_, err := s.Run()
	assert.ErrorIs(t, err, ErrInvariant)
}

func TestSimulator_TimeIntegralMatchesTrace(t *testing.T) {
	// Reconstruct the on-hand step function from the trace and integrate
	// |level|; it must equal the accumulated holding + shortage areas.
	s := newTestSimulator(t, validConfig())
	_, err := s.Run()
	require.NoError(t, err)

	var holding, shortage float64
	for i := 1; i < len(s.Trace); i++ {
		dt := s.Trace[i].Time - s.Trace[i-1].Time
		require.GreaterOrEqual(t, dt, 0.0)
		level := s.Trace[i-1].OnHand
		if level > 0 {
			holding += float64(level) * dt
		} else if level < 0 {
			shortage -= float64(level) * dt
		}
	}

	assert.InDelta(t, holding, s.Costs.HoldingArea, 1e-9)
	assert.InDelta(t, shortage, s.Costs.ShortageArea, 1e-9)
	assert.InDelta(t, holding+shortage, s.Costs.HoldingArea+s.Costs.ShortageArea, 1e-9)
}

func TestSimulator_OrderingCostInvariant(t *testing.T) {
	cfg := validConfig()
	s := newTestSimulator(t, cfg)
	_, err := s.Run()
	require.NoError(t, err)
	require.NotEmpty(t, s.PlacedOrders)

	total := 0.0
	spread := cfg.Policy.OrderUpTo - cfg.Policy.ReorderPoint
	for _, order := range s.PlacedOrders {
		// Cost charged at placement equals setup + incremental * quantity
		assert.InDelta(t, cfg.SetupCost+cfg.IncrementalCost*float64(order.Quantity), order.Cost, 1e-12)
		// Quantity is S - onHandAtReview with onHandAtReview < s
		assert.Greater(t, order.Quantity, spread)
		total += order.Cost
	}
	assert.InDelta(t, total, s.Costs.OrderingCostTotal, 1e-9)
}

func TestSimulator_AlwaysOrderingBoundary(t *testing.T) {
	// With s far above any reachable level, every review that finds no
	// outstanding order places one. Lead times in [0.5, 1.0] with unit
	// review spacing mean each order lands before the next review.
	cfg := validConfig()
	cfg.Policy = Policy{ReorderPoint: 1000, OrderUpTo: 2000}
	cfg.Horizon = DistSpec{Type: "constant", Params: map[string]float64{"value": 50}}

	s := newTestSimulator(t, cfg)
	_, err := s.Run()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(s.PlacedOrders), 50, "expected an order at essentially every review epoch")
}

func TestSimulator_WideSpreadDrivesShortageTowardZero(t *testing.T) {
	cfg := validConfig()
	cfg.Policy = Policy{ReorderPoint: 60, OrderUpTo: 500}

	s := newTestSimulator(t, cfg)
	report, err := s.Run()
	require.NoError(t, err)

	assert.Less(t, report.AvgShortageCost, 0.5)
}

func TestSimulator_ShortageTrendAcrossPolicies(t *testing.T) {
	// Directional sanity check from the reference table: (60,100) should
	// show materially lower shortage cost than (20,40) under identical
	// demand and lead-time draws.
	cfg := DefaultConfig()
	results, err := RunPolicies(cfg, []Policy{
		{ReorderPoint: 20, OrderUpTo: 40},
		{ReorderPoint: 60, OrderUpTo: 100},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	tight := results[0].Report.AvgShortageCost
	loose := results[1].Report.AvgShortageCost
	assert.Less(t, loose, tight)
}

func TestSimulator_DrawnHorizon(t *testing.T) {
	cfg := validConfig()
	cfg.Horizon = DistSpec{Type: "exponential", Params: map[string]float64{"mean": 100}}

	s := newTestSimulator(t, cfg)
	require.Greater(t, s.Horizon, 0.0)

	report, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, s.Horizon, s.Clock)
	assert.False(t, math.IsNaN(report.AvgTotalCost))
}

func TestSimulator_SeedsThreeEvents(t *testing.T) {
	s := newTestSimulator(t, validConfig())
	assert.Equal(t, 3, s.Queue.Len())

	// First out is the review at t=0 (kind priority beats the first demand
	// even if the interdemand draw were 0)
	first := s.Queue.PopNext()
	assert.Equal(t, KindInventoryReview, first.Kind())
	assert.Equal(t, 0.0, first.Timestamp())
}
