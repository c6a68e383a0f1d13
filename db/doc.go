// Copyright (c) 2026 LivePoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema

Four tables back the service:

  - app_user: registered accounts (bcrypt password hashes, unique
    username/email)
  - poll: one row per poll (question, creator, creation time)
  - poll_option: ordered options keyed (poll_id, idx) with a non-negative
    vote counter
  - poll_voter: voter identities already counted, keyed
    (poll_id, voter_identity)

The poll_voter primary key is load-bearing: it is the database-level form of
the one-vote-per-identity rule, and the vote transaction relies on its
conflict behavior to reject duplicates without a separate read.

CreateSchema is idempotent (IF NOT EXISTS throughout) and runs on every
server start.
*/
package db
