package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// LevelSample records the on-hand level right after an event executed.
// The sequence of samples reconstructs the inventory step function.
type LevelSample struct {
	Time   float64
	OnHand int
}

// OrderRecord logs one placed order.
type OrderRecord struct {
	Time     float64
	Quantity int
	Cost     float64
}

// Simulator owns the full mutable state of one (s,S) inventory run: the
// virtual clock, the event heap, the inventory position, the cost
// accumulator, and the variate streams. Runs are strictly sequential; the
// currently dispatched handler is the only writer.
type Simulator struct {
	Config *Config

	Clock   float64
	Horizon float64

	Queue    *EventHeap
	State    *InventoryState
	Costs    *CostAccumulator
	Variates *VariateSource
	RNG      *PartitionedRNG

	// Trace and PlacedOrders are observability logs consumed by tests and
	// debug output; they do not influence the run.
	Trace        []LevelSample
	PlacedOrders []OrderRecord

	nextEventID uint64
	finished    bool
}

// NewSimulator validates the configuration, draws the horizon length, and
// seeds the three initial events: the first inventory review at time 0, the
// first demand one interdemand draw later, and the single horizon end.
func NewSimulator(cfg *Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := NewPartitionedRNG(cfg.Seed)
	variates, err := NewVariateSource(cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	// The horizon stream is consumed first so the demand and lead-time
	// streams stay aligned whether the horizon is fixed or drawn.
	horizon := variates.NextHorizonLength()
	if horizon <= 0 {
		return nil, fmt.Errorf("%w: horizon length must be positive, drew %v", ErrConfig, horizon)
	}

	s := &Simulator{
		Config:   cfg,
		Horizon:  horizon,
		Queue:    NewEventHeap(),
		State:    &InventoryState{OnHand: cfg.InitialInventory},
		Costs:    &CostAccumulator{},
		Variates: variates,
		RNG:      rng,
	}

	s.Schedule(NewInventoryReviewEvent(0, s.newEventID()))
	s.Schedule(NewDemandEvent(variates.NextInterdemandTime(), s.newEventID()))
	s.Schedule(NewHorizonEndEvent(horizon, s.newEventID()))

	s.Trace = append(s.Trace, LevelSample{Time: 0, OnHand: s.State.OnHand})

	return s, nil
}

// Schedule adds an event to the queue.
func (s *Simulator) Schedule(e Event) {
	s.Queue.Schedule(e)
}

// newEventID generates the next per-simulator event ID. Per-run counters
// keep tie-breaking reproducible across independent simulators.
func (s *Simulator) newEventID() uint64 {
	s.nextEventID++
	return s.nextEventID
}

// Run drives the event loop until the horizon end pops, then finalizes the
// cost report. Any invariant violation aborts the run with a wrapped
// ErrInvariant; an empty queue before the horizon end is ErrEmptySchedule.
func (s *Simulator) Run() (*CostReport, error) {
	if s.finished {
		return nil, fmt.Errorf("%w: simulator already ran to completion", ErrInvariant)
	}

	for {
		event := s.Queue.PopNext()
		if event == nil {
			// The horizon end is seeded at construction, so this can only
			// mean the engine consumed it without stopping.
			return nil, fmt.Errorf("%w: no horizon end event pending", ErrEmptySchedule)
		}

		if event.Timestamp() < s.Clock {
			return nil, fmt.Errorf("%w: clock would move backwards from %v to %v",
				ErrInvariant, s.Clock, event.Timestamp())
		}
		s.Clock = event.Timestamp()

		// Weight the elapsed interval by the level that held over it,
		// before the handler mutates anything.
		if err := s.Costs.Advance(s.Clock, s.State.OnHand); err != nil {
			return nil, err
		}

		if err := event.Execute(s); err != nil {
			return nil, err
		}

		s.Trace = append(s.Trace, LevelSample{Time: s.Clock, OnHand: s.State.OnHand})

		if event.Kind() == KindHorizonEnd {
			s.finished = true
			break
		}
	}

	report := s.Costs.Finalize(s.Horizon, s.Config.HoldingCostRate, s.Config.ShortageCostRate)
	return &report, nil
}

// handleDemand withdraws a drawn demand size (backorders allowed, so the
// level may go negative) and schedules the next demand arrival.
func (s *Simulator) handleDemand(e *DemandEvent) error {
	size := s.Variates.NextDemandSize()
	s.State.Withdraw(size)
	logrus.Debugf("<< Demand of %d at t=%.4f, on hand now %d", size, e.Timestamp(), s.State.OnHand)

	next := s.Clock + s.Variates.NextInterdemandTime()
	s.Schedule(NewDemandEvent(next, s.newEventID()))
	return nil
}

// handleInventoryReview applies the (s,S) policy: order up to S when the
// level is below s and nothing is in flight. The ordering cost is charged
// here, at placement, not at delivery. The next review is always scheduled;
// a review past the horizon is simply never processed.
func (s *Simulator) handleInventoryReview(e *InventoryReviewEvent) error {
	policy := s.Config.Policy
	if s.State.OnHand < policy.ReorderPoint && !s.State.OrderOutstanding() {
		qty := policy.OrderUpTo - s.State.OnHand
		if err := s.State.PlaceOrder(qty); err != nil {
			return err
		}
		cost := s.Costs.AddOrderingCost(s.Config.SetupCost, s.Config.IncrementalCost, qty)
		s.PlacedOrders = append(s.PlacedOrders, OrderRecord{Time: s.Clock, Quantity: qty, Cost: cost})

		arrival := s.Clock + s.Variates.NextLeadTime()
		s.Schedule(NewOrderArrivalEvent(arrival, qty, s.newEventID()))
		logrus.Debugf("<< Review at t=%.4f: ordered %d (arrives t=%.4f), cost %.2f", e.Timestamp(), qty, arrival, cost)
	} else {
		logrus.Debugf("<< Review at t=%.4f: no order (on hand %d, outstanding %v)",
			e.Timestamp(), s.State.OnHand, s.State.OrderOutstanding())
	}

	s.Schedule(NewInventoryReviewEvent(s.Clock+s.Config.ReviewInterval, s.newEventID()))
	return nil
}

// handleOrderArrival delivers the payload quantity. No cost effect: the
// ordering cost was charged at placement.
func (s *Simulator) handleOrderArrival(e *OrderArrivalEvent) error {
	s.State.Receive(e.Quantity)
	logrus.Debugf("<< Order of %d arrived at t=%.4f, on hand now %d", e.Quantity, e.Timestamp(), s.State.OnHand)
	return nil
}

// handleHorizonEnd is a no-op: the loop stops after it pops, and the cost
// integrals were already advanced to the horizon timestamp.
func (s *Simulator) handleHorizonEnd(e *HorizonEndEvent) error {
	logrus.Debugf("<< Horizon end at t=%.4f", e.Timestamp())
	return nil
}
