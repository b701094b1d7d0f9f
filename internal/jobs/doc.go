// Package jobs persists description generation jobs in SQLite and exposes
// helpers for driving their lifecycle.
//
// The Store manages the database connection, schema migrations, job creation,
// status transitions, and stuck-job recovery after a server restart. Jobs
// capture the request URL, the final result document, and failure messages so
// the HTTP API can answer polls without keeping state in memory.
//
// The database is transient storage for submitted work rather than a long-term
// archive; deleting it only loses job history.
package jobs
