package domain

import "strings"

type OrderStatus string

const (
	StatusInCart    OrderStatus = "IN_CART"
	StatusPending   OrderStatus = "PENDING"
	StatusPayed     OrderStatus = "PAYED"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// orderTransitions is the kitchen flow. READY and COMPLETED are listed for
// reference only: the ready and complete operations are accepted from any
// status.
var orderTransitions = map[OrderStatus][]OrderStatus{
	StatusInCart:    {StatusPayed, StatusCancelled},
	StatusPending:   {StatusPayed, StatusConfirmed, StatusCancelled},
	StatusPayed:     {StatusConfirmed, StatusPreparing, StatusReady, StatusCancelled},
	StatusConfirmed: {StatusPreparing, StatusReady, StatusCancelled},
	StatusPreparing: {StatusReady},
	StatusReady:     {StatusCompleted},
}

func NextStatuses(from OrderStatus) []OrderStatus {
	return orderTransitions[from]
}

func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckTransition returns an InvalidState error naming the allowed targets.
func CheckTransition(from, to OrderStatus) error {
	if CanTransition(from, to) {
		return nil
	}
	nexts := NextStatuses(from)
	if len(nexts) == 0 {
		return InvalidStatef("order status %s is terminal, cannot move to %s", from, to)
	}
	allowed := make([]string, 0, len(nexts))
	for _, s := range nexts {
		allowed = append(allowed, string(s))
	}
	return InvalidStatef("invalid transition %s -> %s, allowed: %s", from, to, strings.Join(allowed, ", "))
}
