package models

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReady, StatusCompleted:
		return true
	}
	return false
}

// Prev returns the status an order must currently hold for a transition into s.
// Transitions only ever move forward one step: pending → ready → completed.
func (s OrderStatus) Prev() (OrderStatus, bool) {
	switch s {
	case StatusReady:
		return StatusPending, true
	case StatusCompleted:
		return StatusReady, true
	}
	return "", false
}

// OrderItem is a submission-time snapshot of a cart line. It carries the name
// and price rather than a catalog reference so historical orders stay
// meaningful after menu changes.
type OrderItem struct {
	Name     string  `json:"name" bson:"name"`
	Quantity int     `json:"quantity" bson:"quantity"`
	Price    float64 `json:"price" bson:"price"`
	Size     string  `json:"size,omitempty" bson:"size,omitempty"`
}

// Order is a finalized click-and-collect order. Created once at submission,
// mutated only through status transitions, never deleted.
type Order struct {
	OrderID       string      `json:"id" bson:"orderId"`
	CustomerName  string      `json:"customerName" bson:"customerName"`
	CustomerPhone string      `json:"customerPhone" bson:"customerPhone"`
	PickupTime    string      `json:"pickupTime" bson:"pickupTime"`
	Items         []OrderItem `json:"items" bson:"items"`
	Total         float64     `json:"total" bson:"total"`
	CreatedAt     time.Time   `json:"createdAt" bson:"createdAt"`
	Status        OrderStatus `json:"status" bson:"status"`
}

// OrderEvent is what the live feed carries: a change action plus the full
// order row after the change.
type OrderEvent struct {
	Action string `json:"action"` // "created" or "status"
	Order  Order  `json:"order"`
}

const (
	EventCreated = "created"
	EventStatus  = "status"
)
