// Copyright (c) 2026 LivePoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing from CLI flags and
environment variables.

Flags take precedence over environment variables; a .env file in the
working directory is loaded first (without overriding real env vars).

  - -p / PORT: server port (default 5000)
  - -d / DATABASE_URL: PostgreSQL connection string (required)
  - --jwt-secret / JWT_SECRET: bearer token signing secret (required)

ParseFlags fails fast on missing required settings so the server never
starts half-configured.
*/
package cliparse
