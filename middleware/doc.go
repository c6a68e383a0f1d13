// Copyright (c) 2026 LivePoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and request/response helpers.

  - WithLogging: request start/completion logging via slog
  - CORS: permissive cross-origin policy for the SPA frontend
  - JSONResponse / ErrorResponse: canonical JSON response writers
  - ParseJSONBody: request body decoding
  - GetClientIP: client address derivation (X-Forwarded-For, then
    X-Real-IP, then RemoteAddr)

GetClientIP doubles as the voter identity for vote deduplication, so its
header precedence is part of the service's observable behavior.
*/
package middleware
