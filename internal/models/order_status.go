package models

// OrderStatus is the kitchen lifecycle of an order
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// orderTransitions lists the states reachable from each state.
// completed and cancelled are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderPreparing, OrderCancelled},
	OrderPreparing: {OrderCompleted, OrderCancelled},
	OrderCompleted: {},
	OrderCancelled: {},
}

// Valid reports whether s is a known order status
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransitionTo reports whether an order in state s may move to next.
// Re-applying the current state is accepted as a no-op.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return s.Valid()
	}
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}
