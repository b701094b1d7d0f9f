// Package services defines shared utilities consumed by the pipeline stages
// and external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp job IDs and stage names for logging and
//     tracing across the pipeline.
//   - Structured error markers plus the Wrap helper that translate failures
//     into consistent job statuses.
//
// Use these helpers when wiring new stage logic so operational behaviour
// (error handling, observability) stays uniform across the pipeline.
package services
