// Copyright (c) 2026 LivePoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/livepoll/livepoll/middleware"
	"github.com/livepoll/livepoll/models"
	"github.com/livepoll/livepoll/realtime"
	"github.com/livepoll/livepoll/store"
)

type VotingHandler struct {
	polls *store.PollStore
	hub   *realtime.Hub
}

func NewVotingHandler(polls *store.PollStore, hub *realtime.Hub) *VotingHandler {
	return &VotingHandler{polls: polls, hub: hub}
}

// Vote handles POST /polls/{id}/vote.
//
// Voting is anonymous: the voter identity is the client's network address,
// not an account. One vote per address per poll, ever.
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	voterIdentity := middleware.GetClientIP(r)

	poll, err := h.polls.CastVote(r.Context(), pollID, voterIdentity, req.OptionIndex)
	switch err {
	case nil:
	case store.ErrNotFound:
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	case store.ErrAlreadyVoted:
		middleware.ErrorResponse(w, http.StatusBadRequest, "You have already voted on this poll")
		return
	case store.ErrInvalidOption:
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid option")
		return
	default:
		// Nothing was committed; the client may safely retry.
		slog.Error("failed to cast vote", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	// The vote is durable at this point. Fan-out is best-effort and its
	// failures never reach the voter.
	h.hub.Publish(pollID, poll)

	slog.Info("vote accepted", "poll_id", pollID, "option_index", req.OptionIndex)

	middleware.JSONResponse(w, http.StatusOK, poll)
}
