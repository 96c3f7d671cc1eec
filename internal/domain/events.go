package domain

import "time"

const (
	EventOrderCreated       = "order_created"
	EventOrderPaid          = "order_paid"
	EventOrderStatusChanged = "order_status_changed"
	EventNewRating          = "new_rating"
)

type EventItem struct {
	MenuID   string `json:"menu_id"`
	Quantity int    `json:"quantity"`
}

// KafkaMessage is the envelope published on the cafeteria events topic.
type KafkaMessage struct {
	Type      string      `json:"type"`
	OrderID   string      `json:"order_id,omitempty"`
	UserID    string      `json:"user_id,omitempty"`
	TableID   string      `json:"table_id,omitempty"`
	MenuID    string      `json:"menu_id,omitempty"`
	Status    OrderStatus `json:"status,omitempty"`
	Rating    int         `json:"rating,omitempty"`
	Items     []EventItem `json:"items,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Key picks the partition key: ratings are keyed by menu, everything else
// by order.
func (m KafkaMessage) Key() string {
	if m.Type == EventNewRating {
		return m.MenuID
	}
	return m.OrderID
}

func OrderEvent(eventType string, order *Order) KafkaMessage {
	items := make([]EventItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, EventItem{MenuID: item.MenuID, Quantity: item.Quantity})
	}
	return KafkaMessage{
		Type:      eventType,
		OrderID:   order.ID,
		UserID:    order.UserID,
		TableID:   order.TableID,
		Status:    order.Status,
		Items:     items,
		Timestamp: time.Now(),
	}
}

// PopularMenu is one leaderboard entry.
type PopularMenu struct {
	MenuID string  `json:"menu_id"`
	Score  float64 `json:"score"`
}

// RatingSummary is the cached aggregate for one menu.
type RatingSummary struct {
	MenuID    string  `json:"menu_id"`
	AvgRating float64 `json:"avg_rating"`
	Count     int     `json:"count"`
}
