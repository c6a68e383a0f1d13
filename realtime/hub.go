// Copyright (c) 2026 LivePoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package realtime

import (
	"sync"

	"github.com/livepoll/livepoll/models"
)

// Hub maps poll ids to the outbound channels of the clients currently
// subscribed to them. It is process-local and ephemeral: entries live only
// as long as the connections behind them.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan models.ServerMessage]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan models.ServerMessage]struct{})}
}

// Join subscribes a channel to a poll. Idempotent; one channel may hold
// subscriptions to several polls at once.
func (h *Hub) Join(pollID string, ch chan models.ServerMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.subs[pollID]
	if !ok {
		set = make(map[chan models.ServerMessage]struct{})
		h.subs[pollID] = set
	}
	set[ch] = struct{}{}
}

// Leave removes a channel from every poll it joined. Called once when the
// connection behind it closes; after Leave returns, no Publish will touch
// the channel again, so the caller may close it.
func (h *Hub) Leave(ch chan models.ServerMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for pollID, set := range h.subs {
		delete(set, ch)
		if len(set) == 0 {
			delete(h.subs, pollID)
		}
	}
}

// Publish sends a poll snapshot to every subscriber of that poll.
// Delivery is fire-and-forget: a subscriber whose buffer is full misses
// this update and catches up on the next one. Publish never blocks, so a
// slow subscriber cannot stall the vote that triggered it.
func (h *Hub) Publish(pollID string, poll *models.Poll) {
	msg := models.ServerMessage{Type: models.MessagePollUpdate, Poll: poll}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[pollID] {
		select {
		case ch <- msg:
		default:
			// Drop the frame for a lagging subscriber.
		}
	}
}

// SubscriberCount returns how many channels are subscribed to a poll.
func (h *Hub) SubscriberCount(pollID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[pollID])
}
