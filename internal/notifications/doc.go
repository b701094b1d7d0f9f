// Package notifications delivers job events via ntfy.
//
// The default implementation publishes to the topic configured in config.toml
// and gracefully degrades to a no-op when notifications are disabled. Server
// code depends only on the small Service interface, so alternative transports
// can be dropped in without touching callers.
package notifications
