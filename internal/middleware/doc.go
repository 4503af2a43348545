// Package middleware provides HTTP middleware for the Yatube API.
//
// The middleware package contains reusable middleware components for
// authentication, authorization, rate limiting, and request processing.
//
// # Available Middleware
//
// Core middleware components:
//
//   - Auth: JWT session validation with a 401 problem response
//   - LoginRequired: JWT session validation with a login page redirect
//   - OptionalAuth: best-effort session extraction for public pages
//   - RequireAdmin: admin role enforcement on top of Auth
//   - RateLimit: request rate limiting per user/IP
//   - RequestID, Logger, Recovery: request plumbing
//
// # Sessions
//
// Sessions are JWTs carried either in the Authorization header or in the
// session cookie set at login. Page-style routes use LoginRequired, which
// sends anonymous visitors to /auth/login/ with a next parameter pointing
// back at the page they asked for. API-style routes use Auth, which answers
// with a problem+json 401 instead.
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetUserID(ctx): Returns authenticated user ID
//   - GetUsername(ctx): Returns authenticated username
//   - GetClaims(ctx): Returns the full session claims
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
