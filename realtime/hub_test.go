// Copyright (c) 2026 LivePoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package realtime

import (
	"testing"
	"time"

	"github.com/livepoll/livepoll/models"
)

func TestJoinAndPublish(t *testing.T) {
	hub := NewHub()
	ch := make(chan models.ServerMessage, 1)

	hub.Join("poll-1", ch)

	poll := &models.Poll{ID: "poll-1", Question: "Color?"}
	hub.Publish("poll-1", poll)

	select {
	case msg := <-ch:
		if msg.Type != models.MessagePollUpdate {
			t.Errorf("Expected type %q, got %q", models.MessagePollUpdate, msg.Type)
		}
		if msg.Poll == nil || msg.Poll.ID != "poll-1" {
			t.Errorf("Expected poll-1 snapshot, got %+v", msg.Poll)
		}
	default:
		t.Fatal("Expected a pollUpdate frame, got none")
	}
}

func TestJoinIsIdempotent(t *testing.T) {
	hub := NewHub()
	ch := make(chan models.ServerMessage, 2)

	hub.Join("poll-1", ch)
	hub.Join("poll-1", ch)

	if n := hub.SubscriberCount("poll-1"); n != 1 {
		t.Errorf("Expected 1 subscriber after double join, got %d", n)
	}

	hub.Publish("poll-1", &models.Poll{ID: "poll-1"})

	if len(ch) != 1 {
		t.Errorf("Expected exactly 1 frame after double join, got %d", len(ch))
	}
}

func TestPublishOnlyReachesSubscribers(t *testing.T) {
	hub := NewHub()
	subscribed := make(chan models.ServerMessage, 1)
	other := make(chan models.ServerMessage, 1)

	hub.Join("poll-1", subscribed)
	hub.Join("poll-2", other)

	hub.Publish("poll-1", &models.Poll{ID: "poll-1"})

	if len(subscribed) != 1 {
		t.Errorf("Expected subscriber of poll-1 to receive a frame, got %d", len(subscribed))
	}
	if len(other) != 0 {
		t.Errorf("Expected subscriber of poll-2 to receive nothing, got %d frames", len(other))
	}
}

func TestChannelMayJoinMultiplePolls(t *testing.T) {
	hub := NewHub()
	ch := make(chan models.ServerMessage, 4)

	hub.Join("poll-1", ch)
	hub.Join("poll-2", ch)

	hub.Publish("poll-1", &models.Poll{ID: "poll-1"})
	hub.Publish("poll-2", &models.Poll{ID: "poll-2"})

	if len(ch) != 2 {
		t.Errorf("Expected frames from both polls, got %d", len(ch))
	}
}

func TestLeaveRemovesAllSubscriptions(t *testing.T) {
	hub := NewHub()
	ch := make(chan models.ServerMessage, 4)

	hub.Join("poll-1", ch)
	hub.Join("poll-2", ch)
	hub.Leave(ch)

	if n := hub.SubscriberCount("poll-1"); n != 0 {
		t.Errorf("Expected 0 subscribers on poll-1 after leave, got %d", n)
	}
	if n := hub.SubscriberCount("poll-2"); n != 0 {
		t.Errorf("Expected 0 subscribers on poll-2 after leave, got %d", n)
	}

	hub.Publish("poll-1", &models.Poll{ID: "poll-1"})
	if len(ch) != 0 {
		t.Errorf("Expected no frames after leave, got %d", len(ch))
	}
}

// A subscriber with a full buffer is skipped, never blocked on.
func TestPublishDropsWhenBufferFull(t *testing.T) {
	hub := NewHub()
	full := make(chan models.ServerMessage, 1)
	healthy := make(chan models.ServerMessage, 1)

	hub.Join("poll-1", full)
	hub.Join("poll-1", healthy)

	full <- models.ServerMessage{Type: models.MessagePollUpdate}

	done := make(chan struct{})
	go func() {
		hub.Publish("poll-1", &models.Poll{ID: "poll-1"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full subscriber buffer")
	}

	if len(healthy) != 1 {
		t.Errorf("Expected healthy subscriber to receive the frame, got %d", len(healthy))
	}
}

func TestPublishOrderPreservedPerPoll(t *testing.T) {
	hub := NewHub()
	ch := make(chan models.ServerMessage, 8)
	hub.Join("poll-1", ch)

	for votes := 1; votes <= 5; votes++ {
		hub.Publish("poll-1", &models.Poll{
			ID:      "poll-1",
			Options: []models.Option{{Text: "Red", Votes: votes}},
		})
	}

	for votes := 1; votes <= 5; votes++ {
		msg := <-ch
		if got := msg.Poll.Options[0].Votes; got != votes {
			t.Fatalf("Expected frame %d in order, got votes=%d", votes, got)
		}
	}
}
