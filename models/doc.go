// Copyright (c) 2026 LivePoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response, and domain types shared by the
handlers, store, and realtime packages.

# Domain Types

Poll is the central document: a question, an ordered fixed set of options
with vote counters, the creator's user id, and the set of voter identities
(network addresses) that have already been counted. Option order is
significant — votes are cast by option index.

# Wire Messages

ClientMessage and ServerMessage are the websocket frames of the live-update
channel. A client sends {"type":"joinPoll","pollId":...} to subscribe; the
server pushes {"type":"pollUpdate","poll":{...}} whenever that poll's tally
changes.

JSON field names are camelCase to match the frontend's wire format.
*/
package models
