// Copyright (c) 2026 LivePoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and bearer token handling.

Passwords are bcrypt-hashed at registration and never stored or logged in
clear text. Bearer tokens are HS256 JWTs carrying the user id in the sub
claim with a 24-hour expiry; VerifyToken rejects anything not signed with
the configured secret, including alg-confusion attempts.

Note that bearer tokens only gate poll creation. Voting is anonymous and
deduplicated by network address, not by account — see the voting handler.
*/
package auth
