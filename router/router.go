// Copyright (c) 2026 LivePoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/livepoll/livepoll/cliparse"
	"github.com/livepoll/livepoll/handlers"
	"github.com/livepoll/livepoll/middleware"
	"github.com/livepoll/livepoll/realtime"
	"github.com/livepoll/livepoll/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, hub *realtime.Hub) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	polls := store.New(db)
	authHandler := handlers.NewAuthHandler(db, cfg)
	pollHandler := handlers.NewPollHandler(polls, cfg)
	votingHandler := handlers.NewVotingHandler(polls, hub)
	liveHandler := handlers.NewLiveHandler(hub)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Identity
	mux.HandleFunc("POST /auth/register", middleware.WithLogging(authHandler.Register))
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(authHandler.Login))

	// Polls
	mux.HandleFunc("POST /polls", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("GET /polls", middleware.WithLogging(pollHandler.ListPolls))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(pollHandler.GetPoll))

	// Voting (public, deduplicated by client address)
	mux.HandleFunc("POST /polls/{id}/vote", middleware.WithLogging(votingHandler.Vote))

	// Live updates (no WithLogging: the connection is long-lived)
	mux.HandleFunc("GET /ws", liveHandler.ServeWS)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("livepoll API v1"))
	})

	return mux
}
