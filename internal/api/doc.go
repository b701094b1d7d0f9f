// Package api defines wire-format types and converters for the HTTP layer.
// It translates internal job models into transport-friendly DTOs so clients
// can render responses without coupling to internal types.
package api
