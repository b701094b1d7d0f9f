// Package ocr extracts on-screen text from episode thumbnails with
// tesseract. Recognition is best effort: a missing binary, a missing
// image or a tool failure degrades to empty text instead of failing
// the caller.
package ocr
