// Command shownotes generates episode descriptions from video metadata.
//
// The CLI runs the extraction pipeline directly for one-off URLs and can
// also host the HTTP API used for asynchronous job submission.
package main
