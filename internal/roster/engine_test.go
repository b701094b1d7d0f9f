package roster

import (
	"context"
	"testing"

	"shownotes/internal/config"
)

func TestEngineResolve(t *testing.T) {
	cfg := config.Default()
	searcher := &stubSearcher{snippets: map[string]string{
		"João Silva Canal Y": "João Silva é um analista de mercado com foco em renda fixa.",
	}}
	engine := NewEngine(&cfg, searcher, nil)

	src := Sources{
		Title:   "Mercado em Foco com João Silva",
		OCRText: "JOÃO SILVA\nANALISTA DE MERCADO",
		Channel: "Canal Y",
	}

	people := engine.Resolve(context.Background(), src)
	if len(people) != 1 {
		t.Fatalf("Resolve() returned %d people, want 1", len(people))
	}
	person := people[0]
	if person.Name != "João Silva" {
		t.Fatalf("name = %q, want %q", person.Name, "João Silva")
	}
	if person.Source != SourceWeb {
		t.Fatalf("source = %q, want %q", person.Source, SourceWeb)
	}
	if person.Trust != TrustHigh {
		t.Fatalf("trust = %q, want %q", person.Trust, TrustHigh)
	}
	if person.Bio != "é um analista de mercado com foco em renda fixa" {
		t.Fatalf("bio = %q", person.Bio)
	}
}

func TestEngineResolveNothing(t *testing.T) {
	cfg := config.Default()
	engine := NewEngine(&cfg, &stubSearcher{}, nil)

	people := engine.Resolve(context.Background(), Sources{Title: "episódio sem nomes próprios"})
	if len(people) != 0 {
		t.Fatalf("Resolve() = %v, want no people", people)
	}
}
