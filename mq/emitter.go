package mq

import (
	"context"
	"encoding/json"
	"log"

	"dorata/feed"
	"dorata/models"
	"dorata/notifier"
	"dorata/rdx"
)

const orderChannel = "order-events"

// Emit publishes an order change to Redis so every running instance —
// not just the one that handled the request — pushes it to its admins.
func Emit(ctx context.Context, event models.OrderEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, orderChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish event to Redis: %v", err)
	}
}

// StartOrderRelay subscribes to the order channel and forwards each event to
// the local hub. New orders additionally go through the notifier, which
// guarantees at most one chime per order id however many times the event is
// observed.
func StartOrderRelay(ctx context.Context, hub *feed.Hub, n *notifier.Notifier) {
	sub := rdx.Conn.Subscribe(ctx, orderChannel)
	ch := sub.Channel()

	log.Println("[OrderRelay] Listening for order events...")

	for msg := range ch {
		var event models.OrderEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[OrderRelay] Failed to parse event: %v", err)
			continue
		}

		hub.Broadcast([]byte(msg.Payload))

		if event.Action == models.EventCreated && n.NotifyNewOrder(event.Order.OrderID) {
			alert := notifier.NewOrderAlert(event.Order.OrderID)
			if data, err := json.Marshal(alert); err == nil {
				hub.Broadcast(data)
			}
		}
	}
}
