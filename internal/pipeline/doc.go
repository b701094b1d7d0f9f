// Package pipeline runs the full description generation flow for a single
// video: metadata extraction, thumbnail OCR, roster resolution, content
// generation, and final rendering. Extraction failures abort the run; every
// later stage degrades to whatever the remaining sources can support.
package pipeline
