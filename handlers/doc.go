// Copyright (c) 2026 LivePoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers.

# Handler Groups

  - AuthHandler: registration and login, issuing bearer tokens
  - PollHandler: poll creation (authenticated), listing, and retrieval
  - VotingHandler: anonymous vote casting with live fan-out
  - LiveHandler: websocket upgrade for the live-update channel

# Voting Semantics

A vote request is admitted or rejected entirely inside store.CastVote; the
handler only derives the voter identity (client network address), maps the
store's sentinel errors to status codes, and publishes the updated poll to
the hub after — and only after — the vote is durable. Rejected votes emit
nothing.

All handlers use constructor-based dependency injection and the middleware
package's JSON helpers.
*/
package handlers
