package pipeline

import (
	"shownotes/internal/content"
	"shownotes/internal/roster"
)

// Result is the complete output of one pipeline run: the rendered description
// plus every intermediate artifact, in the shape the HTTP API and the CLI's
// --json mode serialize.
type Result struct {
	VideoID      string            `json:"video_id"`
	Title        string            `json:"title"`
	Channel      string            `json:"channel"`
	UploadDate   string            `json:"upload_date"`
	Duration     int               `json:"duration"`
	OCRTextFull  string            `json:"ocr_text_full"`
	OCRTextShort string            `json:"ocr_text_short"`
	Participants []roster.Person   `json:"participants"`
	Chapters     []content.Chapter `json:"chapters"`
	Keywords     []string          `json:"keywords"`
	Summary      string            `json:"summary"`
	MainTopic    string            `json:"main_topic"`
	ASRGenerated bool              `json:"asr_generated"`
	Description  string            `json:"description"`
}
