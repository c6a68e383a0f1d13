// Copyright (c) 2026 LivePoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists polls and enforces the voting rules.

PollStore is the only component allowed to mutate poll state, and CastVote
is its only mutation path after creation. CastVote runs the entire
check-then-act sequence in a single database transaction:

 1. poll existence (ErrNotFound)
 2. identity admission via INSERT ... ON CONFLICT DO NOTHING on the
    (poll_id, voter_identity) primary key (ErrAlreadyVoted when no row
    is inserted)
 3. counter increment via UPDATE poll_option SET votes = votes + 1
    (ErrInvalidOption when the index matches no row)

Delegating both checks to the database closes the classic lost-update race:
two concurrent votes for the same option queue on the option row lock, and
two concurrent requests from the same identity collide on the primary key.
An application-level load/mutate/save cycle would reintroduce the race and
is deliberately absent.

The identity check precedes the option check, and a rejection at either
step rolls the transaction back, so a rejected vote leaves the poll exactly
as it was — including the voter's unused allowance when only the option
index was bad.
*/
package store
