package sim

import "fmt"

// CostAccumulator tracks the running cost statistics of a single run:
// event-count-weighted ordering cost plus time-weighted holding and
// shortage areas.
//
// Advance must be called with the *previous* inventory level before a
// handler mutates it, so each interval [lastUpdateTime, now) is weighted by
// the level that actually held over it.
type CostAccumulator struct {
	OrderingCostTotal float64
	HoldingArea       float64 // ∫ max(onHand, 0) dt
	ShortageArea      float64 // ∫ max(-onHand, 0) dt

	lastUpdateTime float64
}

// Advance accumulates the areas for the elapsed interval and moves
// lastUpdateTime forward. A negative elapsed time means the scheduler
// delivered events out of order and the run must abort.
func (c *CostAccumulator) Advance(now float64, onHand int) error {
	dt := now - c.lastUpdateTime
	if dt < 0 {
		return fmt.Errorf("%w: time moved backwards from %v to %v", ErrInvariant, c.lastUpdateTime, now)
	}
	if onHand > 0 {
		c.HoldingArea += float64(onHand) * dt
	} else if onHand < 0 {
		c.ShortageArea -= float64(onHand) * dt
	}
	c.lastUpdateTime = now
	return nil
}

// AddOrderingCost charges setup + incremental * qty at order placement.
func (c *CostAccumulator) AddOrderingCost(setup, incremental float64, qty int) float64 {
	cost := setup + incremental*float64(qty)
	c.OrderingCostTotal += cost
	return cost
}

// LastUpdateTime returns the timestamp the integrals are advanced to.
func (c *CostAccumulator) LastUpdateTime() float64 {
	return c.lastUpdateTime
}

// CostReport holds the finalized per-unit-time averages of a run.
type CostReport struct {
	AvgOrderingCost float64
	AvgHoldingCost  float64
	AvgShortageCost float64
	AvgTotalCost    float64
}

// Finalize converts the accumulated totals into time averages over the
// horizon, applying the holding and shortage cost rates to the raw areas.
func (c *CostAccumulator) Finalize(horizon, holdingRate, shortageRate float64) CostReport {
	r := CostReport{
		AvgOrderingCost: c.OrderingCostTotal / horizon,
		AvgHoldingCost:  c.HoldingArea * holdingRate / horizon,
		AvgShortageCost: c.ShortageArea * shortageRate / horizon,
	}
	r.AvgTotalCost = r.AvgOrderingCost + r.AvgHoldingCost + r.AvgShortageCost
	return r
}
