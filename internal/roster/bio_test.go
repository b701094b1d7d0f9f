package roster

import (
	"context"
	"errors"
	"testing"

	"shownotes/internal/config"
)

func newBioSynthesizer(t *testing.T, searcher Searcher) *BioSynthesizer {
	t.Helper()
	cfg := config.Default()
	return NewBioSynthesizer(&cfg, searcher, nil)
}

func TestMiniBioDescriptivePattern(t *testing.T) {
	searcher := &stubSearcher{snippets: map[string]string{
		"Carlos Mendes Canal X": "Carlos Mendes é um empresário de sucesso no ramo imobiliário. Saiba mais.",
	}}
	bios := newBioSynthesizer(t, searcher)

	got := bios.MiniBio(context.Background(), "Carlos Mendes", "Canal X")
	want := "é um empresário de sucesso no ramo imobiliário"
	if got != want {
		t.Fatalf("MiniBio() = %q, want %q", got, want)
	}
}

func TestMiniBioTruncatesToTwelveWords(t *testing.T) {
	searcher := &stubSearcher{snippets: map[string]string{
		"Ana Prado": "Ela é uma analista de mercado com foco em renda fixa e fundos imobiliários. Fim.",
	}}
	bios := newBioSynthesizer(t, searcher)

	got := bios.MiniBio(context.Background(), "Ana Prado", "")
	want := "é uma analista de mercado com foco em renda fixa e fundos"
	if got != want {
		t.Fatalf("MiniBio() = %q, want %q", got, want)
	}
}

func TestMiniBioKnownAsPattern(t *testing.T) {
	searcher := &stubSearcher{snippets: map[string]string{
		"Beto Lima": "Beto Lima ficou conhecido como o rei das apostas esportivas. Outra frase.",
	}}
	bios := newBioSynthesizer(t, searcher)

	got := bios.MiniBio(context.Background(), "Beto Lima", "")
	want := "conhecido como o rei das apostas esportivas"
	if got != want {
		t.Fatalf("MiniBio() = %q, want %q", got, want)
	}
}

func TestMiniBioProfessionPattern(t *testing.T) {
	searcher := &stubSearcher{snippets: map[string]string{
		"Lia Nunes": "Jornalista premiada da televisão brasileira, cobre política. Perfil completo.",
	}}
	bios := newBioSynthesizer(t, searcher)

	got := bios.MiniBio(context.Background(), "Lia Nunes", "")
	want := "Jornalista premiada da televisão brasileira, cobre política"
	if got != want {
		t.Fatalf("MiniBio() = %q, want %q", got, want)
	}
}

func TestMiniBioClauseFallback(t *testing.T) {
	searcher := &stubSearcher{snippets: map[string]string{
		"Lia Nunes": "Página oficial do podcast semanal de entrevistas com grandes nomes! Veja já.",
	}}
	bios := newBioSynthesizer(t, searcher)

	got := bios.MiniBio(context.Background(), "Lia Nunes", "")
	want := "Página oficial do podcast semanal de entrevistas com grandes nomes"
	if got != want {
		t.Fatalf("MiniBio() = %q, want %q", got, want)
	}
}

func TestMiniBioFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		searcher Searcher
	}{
		{"empty snippet", &stubSearcher{}},
		{"lookup error", &stubSearcher{err: errors.New("timeout")}},
		{"unusable snippet", &stubSearcher{snippets: map[string]string{"Zeca Brito": "Busca sem resultados"}}},
		{"nil searcher", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bios := newBioSynthesizer(t, tt.searcher)
			if got := bios.MiniBio(context.Background(), "Zeca Brito", ""); got != FallbackBio {
				t.Fatalf("MiniBio() = %q, want fallback %q", got, FallbackBio)
			}
		})
	}
}

func TestMiniBioQueryIncludesChannel(t *testing.T) {
	searcher := &stubSearcher{}
	bios := newBioSynthesizer(t, searcher)

	bios.MiniBio(context.Background(), "João Silva", "Canal Z")
	bios.MiniBio(context.Background(), "João Silva", "")

	queries := searcher.recorded()
	if len(queries) != 2 {
		t.Fatalf("searcher saw %d queries, want 2", len(queries))
	}
	if queries[0] != "João Silva Canal Z" {
		t.Fatalf("query = %q, want %q", queries[0], "João Silva Canal Z")
	}
	if queries[1] != "João Silva" {
		t.Fatalf("query = %q, want %q", queries[1], "João Silva")
	}
}
