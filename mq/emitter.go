package mq

import (
	"context"
	"encoding/json"
	"log"

	"arone/models"
	"arone/rdx"
)

// Channel carrying change events. Anything that needs to react to admin
// mutations (currency rates updated, records seeded) subscribes here; this
// replaces ambient in-process globals with an explicit broadcast contract.
const eventsChannel = "arone-events"

type Event struct {
	Name    string       `json:"name"`
	Content models.Index `json:"content"`
}

// Emit publishes a change event on the bus. Failures are logged, never
// surfaced to the caller; the mutation itself already succeeded.
func Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(Event{Name: eventName, Content: content})
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, eventsChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %q: %v", eventName, err)
	}
}

// Subscribe delivers bus events to fn until ctx is cancelled. Run it in its
// own goroutine.
func Subscribe(ctx context.Context, fn func(Event)) {
	sub := rdx.Conn.Subscribe(ctx, eventsChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Printf("[Subscribe] Failed to parse event: %v", err)
				continue
			}
			fn(ev)
		}
	}
}
