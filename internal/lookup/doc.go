// Package lookup fetches plain-text web-search snippets used to
// corroborate names and synthesize bios. Responses are reduced to a
// single cleaned text snippet; callers decide what a hit means.
package lookup
