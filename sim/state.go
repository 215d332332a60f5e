package sim

import "fmt"

// InventoryState is the on-hand/on-order position, mutated only by event
// handlers. Negative OnHand represents backorders: unmet demand is filled
// when the next order arrives, never lost.
type InventoryState struct {
	OnHand int

	outstanding    bool
	outstandingQty int
}

// Withdraw removes a demand's worth of stock. OnHand may go negative.
func (st *InventoryState) Withdraw(qty int) {
	st.OnHand -= qty
}

// PlaceOrder records a single outstanding order of qty units. At most one
// order may be in flight at a time; a second placement is an engine bug.
func (st *InventoryState) PlaceOrder(qty int) error {
	if st.outstanding {
		return fmt.Errorf("%w: order of %d placed while %d units already on order",
			ErrInvariant, qty, st.outstandingQty)
	}
	st.outstanding = true
	st.outstandingQty = qty
	return nil
}

// Receive delivers the outstanding order and clears the on-order flag.
func (st *InventoryState) Receive(qty int) {
	st.OnHand += qty
	st.outstanding = false
	st.outstandingQty = 0
}

// OrderOutstanding reports whether an order is currently in flight.
func (st *InventoryState) OrderOutstanding() bool {
	return st.outstanding
}

// OutstandingQuantity returns the in-flight order size, 0 if none.
func (st *InventoryState) OutstandingQuantity() int {
	return st.outstandingQty
}
