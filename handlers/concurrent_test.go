// Copyright (c) 2026 LivePoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/livepoll/livepoll/realtime"
	"github.com/livepoll/livepoll/store"
	"github.com/livepoll/livepoll/testutil"
)

// TestConcurrentVotesFromDistinctIdentities fires 100 simultaneous vote
// requests from 100 different addresses at the same option and verifies
// that no increment is lost.
func TestConcurrentVotesFromDistinctIdentities(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	polls := store.New(db)
	votingHandler := NewVotingHandler(polls, realtime.NewHub())

	userID := testutil.CreateTestUser(t, db, "creator")
	pollID := testutil.CreateTestPoll(t, db, userID, "Color?", []string{"Red", "Blue"})

	numVoters := 100
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			w := castVote(votingHandler, pollID, fmt.Sprintf("10.1.%d.%d", n/256, n%256), 0)
			if w.Code == http.StatusOK {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numVoters {
		t.Errorf("Expected %d accepted votes, got %d", numVoters, successCount.Load())
	}

	var votes int
	err := db.QueryRow("SELECT votes FROM poll_option WHERE poll_id = $1 AND idx = 0", pollID).Scan(&votes)
	if err != nil {
		t.Fatalf("Failed to read tally: %v", err)
	}
	if votes != numVoters {
		t.Errorf("Lost updates: expected %d votes, got %d", numVoters, votes)
	}

	var identities int
	err = db.QueryRow("SELECT COUNT(*) FROM poll_voter WHERE poll_id = $1", pollID).Scan(&identities)
	if err != nil {
		t.Fatalf("Failed to count identities: %v", err)
	}
	if identities != numVoters {
		t.Errorf("Expected %d counted identities, got %d", numVoters, identities)
	}
}

// TestConcurrentVotesFromSameIdentity races the same address against
// itself; exactly one request may win.
func TestConcurrentVotesFromSameIdentity(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	polls := store.New(db)
	votingHandler := NewVotingHandler(polls, realtime.NewHub())

	userID := testutil.CreateTestUser(t, db, "creator")
	pollID := testutil.CreateTestPoll(t, db, userID, "Color?", []string{"Red", "Blue"})

	numAttempts := 10
	var successCount atomic.Int32
	var rejectedCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			w := castVote(votingHandler, pollID, "1.2.3.4", 0)
			switch w.Code {
			case http.StatusOK:
				successCount.Add(1)
			case http.StatusBadRequest:
				rejectedCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("Expected exactly 1 accepted vote, got %d", successCount.Load())
	}
	if int(rejectedCount.Load()) != numAttempts-1 {
		t.Errorf("Expected %d rejections, got %d", numAttempts-1, rejectedCount.Load())
	}

	poll, err := polls.GetByID(context.Background(), pollID)
	if err != nil {
		t.Fatalf("Failed to reload poll: %v", err)
	}
	if poll.Options[0].Votes != 1 {
		t.Errorf("Expected 1 vote for option 0, got %d", poll.Options[0].Votes)
	}
	if len(poll.VotedIdentities) != 1 {
		t.Errorf("Expected 1 counted identity, got %v", poll.VotedIdentities)
	}
}

// Votes on different polls do not interfere with each other.
func TestConcurrentVotesAcrossPolls(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	polls := store.New(db)
	votingHandler := NewVotingHandler(polls, realtime.NewHub())

	userID := testutil.CreateTestUser(t, db, "creator")
	pollA := testutil.CreateTestPoll(t, db, userID, "A?", []string{"Yes", "No"})
	pollB := testutil.CreateTestPoll(t, db, userID, "B?", []string{"Yes", "No"})

	numVoters := 20
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			identity := fmt.Sprintf("10.2.0.%d", n)
			castVote(votingHandler, pollA, identity, 0)
			castVote(votingHandler, pollB, identity, 1)
		}(i)
	}

	wg.Wait()

	for _, tc := range []struct {
		pollID string
		idx    int
	}{{pollA, 0}, {pollB, 1}} {
		var votes int
		err := db.QueryRow("SELECT votes FROM poll_option WHERE poll_id = $1 AND idx = $2", tc.pollID, tc.idx).Scan(&votes)
		if err != nil {
			t.Fatalf("Failed to read tally: %v", err)
		}
		if votes != numVoters {
			t.Errorf("Poll %s: expected %d votes, got %d", tc.pollID, numVoters, votes)
		}
	}

	poll, err := polls.GetByID(context.Background(), pollA)
	if err != nil {
		t.Fatalf("Failed to reload poll: %v", err)
	}
	if len(poll.VotedIdentities) != numVoters {
		t.Errorf("Expected %d identities on poll A, got %d", numVoters, len(poll.VotedIdentities))
	}
}
