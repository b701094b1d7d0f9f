// Package server exposes the description pipeline over HTTP.
//
// It wires the jobs store, the pipeline runner, and notifications into a
// single lifecycle with flock-based locking to prevent multiple instances.
// Submitted URLs become persisted jobs executed by a bounded worker pool;
// clients poll job status until the rendered description is ready.
//
// Keep orchestration logic here: pipeline stages live in their own packages
// while the server focuses on startup, shutdown, and job bookkeeping.
package server
