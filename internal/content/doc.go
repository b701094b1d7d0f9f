// Package content generates the derived episode content: extractive
// summaries, chapter lists, keyword rankings, the main topic and
// timestamp formatting. Everything here is pure text work; no I/O.
package content
