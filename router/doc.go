// Copyright (c) 2026 LivePoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table using Go 1.22+ method and
path-parameter routing on the standard library ServeMux.

	POST /auth/register        register, returns bearer token
	POST /auth/login           login, returns bearer token
	POST /polls                create poll (bearer token required)
	GET  /polls                list polls, newest first
	GET  /polls/{id}           fetch one poll
	POST /polls/{id}/vote      cast a vote (anonymous, one per address)
	GET  /ws                   websocket live-update channel
	GET  /health               liveness probe

NewRouter wires the store and hub into the handlers; CORS is applied once
around the whole mux in main.
*/
package router
