// Package video extracts episode data from a video URL with yt-dlp:
// metadata, the thumbnail image and a plain-text transcript parsed
// from subtitle tracks. Metadata failures abort extraction; thumbnail
// and transcript problems degrade to empty fields.
package video
