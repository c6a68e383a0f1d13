// Copyright (c) 2026 LivePoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/livepoll/livepoll/cliparse"
	"github.com/livepoll/livepoll/middleware"
	"github.com/livepoll/livepoll/models"
	"github.com/livepoll/livepoll/store"
)

type PollHandler struct {
	polls *store.PollStore
	cfg   cliparse.Config
}

func NewPollHandler(polls *store.PollStore, cfg cliparse.Config) *PollHandler {
	return &PollHandler{polls: polls, cfg: cfg}
}

// CreatePoll handles POST /polls. Requires a valid bearer token.
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r, h.cfg.JWTSecret)
	if !ok {
		return
	}

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	options := make([]string, len(req.Options))
	for i, opt := range req.Options {
		options[i] = opt.Text
	}

	poll, err := h.polls.Create(r.Context(), req.Question, options, userID)
	if err != nil {
		var verr *store.ValidationError
		if errors.As(err, &verr) {
			middleware.ErrorResponse(w, http.StatusBadRequest, verr.Reason)
			return
		}
		slog.Error("failed to create poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", poll.ID, "creator", userID, "options", len(poll.Options))

	middleware.JSONResponse(w, http.StatusCreated, poll)
}

// ListPolls handles GET /polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.polls.ListAll(r.Context())
	if err != nil {
		slog.Error("failed to list polls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, polls)
}

// GetPoll handles GET /polls/{id}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	poll, err := h.polls.GetByID(r.Context(), pollID)
	if err == store.ErrNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to get poll", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, poll)
}
