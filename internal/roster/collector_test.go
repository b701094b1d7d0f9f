package roster

import (
	"reflect"
	"testing"

	"shownotes/internal/config"
)

func TestCollectOrderAndDedup(t *testing.T) {
	cfg := config.Default()
	collector := NewCollector(&cfg, nil)

	src := Sources{
		Title:       "Entrevista com João Silva",
		Description: "Maria Costa participa do episódio desta semana.",
		Transcript:  "hoje Pedro Alves disse que sim. depois Pedro Alves saiu e Rui Gomes ficou.",
		OCRNames:    []string{"JOÃO SILVA"},
	}

	got := collector.Collect(src)
	want := []string{"JOÃO SILVA", "Maria Costa", "Pedro Alves"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Collect() = %v, want %v", got, want)
	}
}

func TestCollectKeepsFirstSeenCasing(t *testing.T) {
	cfg := config.Default()
	collector := NewCollector(&cfg, nil)

	src := Sources{
		Title:    "João Silva volta ao programa",
		OCRNames: []string{"JOÃO SILVA", "João Silva"},
	}

	got := collector.Collect(src)
	want := []string{"JOÃO SILVA"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Collect() = %v, want %v", got, want)
	}
}

func TestCollectTrimsAndDropsEmptyEntries(t *testing.T) {
	cfg := config.Default()
	collector := NewCollector(&cfg, nil)

	src := Sources{OCRNames: []string{"  Ana Paula  ", "   ", ""}}

	got := collector.Collect(src)
	want := []string{"Ana Paula"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Collect() = %v, want %v", got, want)
	}
}

func TestCollectTranscriptRequiresRepeats(t *testing.T) {
	cfg := config.Default()
	cfg.Roster.TranscriptMinRepeats = 2
	collector := NewCollector(&cfg, nil)

	src := Sources{
		Transcript: "a conversa com Bruno Lima foi boa. depois Bruno Lima voltou. e Carla Dias apareceu uma vez.",
	}

	got := collector.Collect(src)
	want := []string{"Bruno Lima"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Collect() = %v, want %v", got, want)
	}

	cfg.Roster.TranscriptMinRepeats = 1
	collector = NewCollector(&cfg, nil)
	got = collector.Collect(src)
	want = []string{"Bruno Lima", "Carla Dias"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Collect() with single repeat = %v, want %v", got, want)
	}
}

func TestCollectTranscriptCountsFoldCase(t *testing.T) {
	cfg := config.Default()
	cfg.Roster.TranscriptMinRepeats = 2
	matcher := transcriptMatcher{names: []string{"Bruno Lima", "BRUNO LIMA"}}
	collector := NewCollector(&cfg, nil, WithMatcher(matcher))

	got := collector.Collect(Sources{Transcript: "transcript"})
	want := []string{"Bruno Lima"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Collect() = %v, want %v", got, want)
	}
}

type fixedMatcher struct {
	names []string
}

func (m fixedMatcher) Names(string) []string { return m.names }

// transcriptMatcher only yields names for the transcript surface, so
// candidates cannot sneak in through the title or description paths.
type transcriptMatcher struct {
	names []string
}

func (m transcriptMatcher) Names(text string) []string {
	if text != "transcript" {
		return nil
	}
	return m.names
}

func TestCollectCustomMatcher(t *testing.T) {
	cfg := config.Default()
	collector := NewCollector(&cfg, nil, WithMatcher(fixedMatcher{names: []string{"Um Nome"}}))

	got := collector.Collect(Sources{Title: "qualquer coisa", Description: "outra coisa"})
	want := []string{"Um Nome"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Collect() = %v, want %v", got, want)
	}
}
