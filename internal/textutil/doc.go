// Package textutil provides text processing helpers shared across the
// extraction and roster packages.
//
// The primary use cases are:
//   - Scanning free text for capitalized word sequences (person-name shaped runs)
//   - Case-insensitive substring checks on user-visible text
//   - Whitespace normalization and word-based truncation
//
// The capitalized-sequence scanner works on runes and understands the accented
// Latin ranges used in Portuguese names, which ASCII word boundaries miss.
package textutil
