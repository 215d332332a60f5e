// Package sim provides the core discrete-event simulation engine for the
// single-product (s,S) periodic-review inventory model.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - event.go: Event kinds that drive the simulation (Demand, OrderArrival, InventoryReview, HorizonEnd)
//   - simulator.go: The event loop, the per-kind handlers, and the invariant checks
//   - costs.go: Time-weighted holding/shortage integrals and run finalization
//
// # Architecture
//
// A Simulator owns its entire mutable state: the event heap, the inventory
// level, the cost accumulator, and the random variate streams. Nothing is
// shared between simulators, so independent policy runs (see report.go) can
// be created side by side without interfering with one another.
//
// Simulated time is a float64 virtual clock that advances only when the next
// event is popped from the heap. Events scheduled at equal timestamps are
// ordered by a fixed kind priority (review, then order arrival, then demand,
// then horizon end), then by creation order. This ordering is a tested
// contract, not incidental behavior: it is what makes two runs with the same
// seed produce bit-identical cost reports.
package sim
