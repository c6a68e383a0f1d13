// Copyright (c) 2026 LivePoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package realtime fans accepted votes out to live viewers.

Hub is the subscription registry: poll id -> set of connected clients,
guarded by a mutex, with no persistence and no cross-process state. Client
wraps one websocket connection with the usual split read/write pumps and a
buffered outbound channel.

Delivery is at-most-once and best-effort. Publish performs a non-blocking
send into each subscriber's buffer; whatever doesn't fit is dropped, and a
viewer with a dropped frame simply shows a stale tally until the next
accepted vote. Publish is called synchronously from the vote path, so for
one poll the frames a subscriber does receive arrive in vote-acceptance
order.

A connection that closes for any reason (client hangup, read error, failed
ping) tears down all of its subscriptions at once; there is no explicit
leave message in the protocol.
*/
package realtime
