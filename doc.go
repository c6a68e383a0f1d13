// Copyright (c) 2026 LivePoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the LivePoll API server.

LivePoll is a real-time polling service: registered users create polls,
anyone votes (one vote per network address per poll), and accepted votes
are pushed live to every websocket subscriber of the poll.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... JWT_SECRET=... go run main.go

Or with flags:

	go run main.go -p 5000 -d "postgres://..." --jwt-secret "..."

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string
  - JWT_SECRET (--jwt-secret): Secret for signing bearer tokens

Optional settings:

  - PORT (-p): Server port (default: 5000)

A .env file in the working directory is loaded if present; real environment
variables take precedence.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, polls, voting, websocket)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, client IP derivation
  - models: Request/response types and wire messages
  - store: Poll persistence and atomic vote admission
  - realtime: Subscriber registry and websocket fan-out
  - auth: Password hashing and bearer tokens
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
