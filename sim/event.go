package sim

// EventKind identifies the four event types the engine dispatches on.
type EventKind string

const (
	KindInventoryReview EventKind = "InventoryReview"
	KindOrderArrival    EventKind = "OrderArrival"
	KindDemand          EventKind = "Demand"
	KindHorizonEnd      EventKind = "HorizonEnd"
)

// KindPriority orders simultaneous events deterministically.
// Lower values are processed first: a review at t sees the inventory level
// before any demand at the same instant, and the horizon end always runs
// after every other event scheduled at the horizon timestamp.
var KindPriority = map[EventKind]int{
	KindInventoryReview: 1,
	KindOrderArrival:    2,
	KindDemand:          3,
	KindHorizonEnd:      4,
}

// Event is a scheduled state transition. Events are immutable once
// scheduled; handlers supersede stale future events through state checks
// rather than queue removal.
type Event interface {
	Timestamp() float64
	EventID() uint64
	Kind() EventKind
	Execute(s *Simulator) error
}

// BaseEvent provides the common ordering fields.
type BaseEvent struct {
	timestamp float64
	eventID   uint64
	kind      EventKind
}

func newBaseEvent(timestamp float64, kind EventKind, id uint64) BaseEvent {
	return BaseEvent{
		timestamp: timestamp,
		eventID:   id,
		kind:      kind,
	}
}

func (e *BaseEvent) Timestamp() float64 {
	return e.timestamp
}

func (e *BaseEvent) EventID() uint64 {
	return e.eventID
}

func (e *BaseEvent) Kind() EventKind {
	return e.kind
}

// DemandEvent withdraws a freshly drawn demand size from inventory and
// schedules the next demand arrival.
type DemandEvent struct {
	BaseEvent
}

func NewDemandEvent(timestamp float64, id uint64) *DemandEvent {
	return &DemandEvent{BaseEvent: newBaseEvent(timestamp, KindDemand, id)}
}

func (e *DemandEvent) Execute(s *Simulator) error {
	return s.handleDemand(e)
}

// OrderArrivalEvent delivers an outstanding replenishment order.
// Quantity is fixed at placement time; it is the event's payload.
type OrderArrivalEvent struct {
	BaseEvent
	Quantity int
}

func NewOrderArrivalEvent(timestamp float64, quantity int, id uint64) *OrderArrivalEvent {
	return &OrderArrivalEvent{
		BaseEvent: newBaseEvent(timestamp, KindOrderArrival, id),
		Quantity:  quantity,
	}
}

func (e *OrderArrivalEvent) Execute(s *Simulator) error {
	return s.handleOrderArrival(e)
}

// InventoryReviewEvent evaluates the (s,S) policy at a fixed review epoch.
type InventoryReviewEvent struct {
	BaseEvent
}

func NewInventoryReviewEvent(timestamp float64, id uint64) *InventoryReviewEvent {
	return &InventoryReviewEvent{BaseEvent: newBaseEvent(timestamp, KindInventoryReview, id)}
}

func (e *InventoryReviewEvent) Execute(s *Simulator) error {
	return s.handleInventoryReview(e)
}

// HorizonEndEvent terminates the run. Exactly one is seeded per simulation;
// everything still pending when it pops is discarded unprocessed.
type HorizonEndEvent struct {
	BaseEvent
}

func NewHorizonEndEvent(timestamp float64, id uint64) *HorizonEndEvent {
	return &HorizonEndEvent{BaseEvent: newBaseEvent(timestamp, KindHorizonEnd, id)}
}

func (e *HorizonEndEvent) Execute(s *Simulator) error {
	return s.handleHorizonEnd(e)
}
