// Package reqctx provides centralized request context management.
//
// It is the single source of truth for request-scoped data: request
// metadata set by HTTP middleware and authentication claims set after
// token verification. All context keys are private unexported types;
// access goes through type-safe getters and setters.
//
// Contracts:
//
//   - RequestMeta is always set by HTTP middleware for all requests
//   - Claims is set only for authenticated requests (token present and valid)
package reqctx
