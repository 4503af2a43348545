// Package handler implements the HTTP layer for the Yatube API.
//
// Handlers translate HTTP requests into service calls and service results
// into JSON responses. They contain no business logic: validation beyond
// basic request decoding and all domain rules live in the service layer.
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Handler struct holds service interfaces, not concrete types
//   - Constructor function (NewXxxHandler) accepts the services it needs
//   - Methods are registered on the mux with Go 1.22 method patterns
//   - Errors flow through MapServiceError for consistent problem responses
//
// # URL Scheme
//
// The route layout mirrors the site's page structure: profile pages live at
// /{username}/, posts at /{username}/{postID}/, and actions are POSTs to
// suffixed paths like /{username}/follow/. Page-style write routes answer
// successful form posts with a 302 back to the page a browser would show
// next, so the API drives both JSON clients and plain form submissions.
//
// # Error Responses
//
// All errors use RFC 9457 Problem Details with application/problem+json.
package handler
