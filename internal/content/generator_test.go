package content

import (
	"reflect"
	"testing"

	"shownotes/internal/config"
)

func newGenerator(t *testing.T, mutate func(*config.Config)) *Generator {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	return NewGenerator(&cfg)
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{65, "01:05"},
		{600, "10:00"},
		{3661, "01:01:01"},
		{7200, "02:00:00"},
	}
	for _, tt := range tests {
		if got := FormatTimestamp(tt.seconds); got != tt.want {
			t.Errorf("FormatTimestamp(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestMainTopic(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Papo Reto - Mercado em 2025", "Mercado em 2025"},
		{"Urgente: Dólar dispara hoje", "Dólar dispara hoje"},
		{"Corte | Inflação e juros em debate", "Inflação e juros em debate"},
		{"A - B | C longa demais", "C longa demais"},
		{"  Sem separador  ", "Sem separador"},
	}
	for _, tt := range tests {
		if got := MainTopic(tt.title); got != tt.want {
			t.Errorf("MainTopic(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestSummarizeRankedSentences(t *testing.T) {
	generator := newGenerator(t, nil)

	got := generator.Summarize(
		"Mercado Financeiro",
		"Análise completa do mercado",
		"Hoje vamos analisar o mercado financeiro brasileiro. "+
			"A bolsa subiu 2 por cento esta semana. "+
			"Os investidores estão otimistas com os resultados.",
		[]string{"Ana Costa"},
	)
	want := "Hoje vamos analisar o mercado financeiro brasileiro " +
		"A bolsa subiu 2 por cento esta semana " +
		"Os investidores estão otimistas com os resultados"
	if got != want {
		t.Fatalf("Summarize() = %q, want %q", got, want)
	}
}

func TestSummarizeStopsAtWordBudget(t *testing.T) {
	generator := newGenerator(t, func(cfg *config.Config) {
		cfg.Content.SummaryMaxWords = 10
	})

	got := generator.Summarize(
		"Mercado Financeiro",
		"",
		"Hoje vamos analisar o mercado financeiro brasileiro. "+
			"A bolsa subiu 2 por cento esta semana.",
		nil,
	)
	if got != "Hoje vamos analisar o mercado financeiro brasileiro" {
		t.Fatalf("Summarize() = %q", got)
	}
}

func TestSummarizeFallback(t *testing.T) {
	generator := newGenerator(t, nil)

	got := generator.Summarize("Título", "", "", []string{"João Silva"})
	if got != "Neste episódio, João Silva discutem Título." {
		t.Fatalf("Summarize() = %q", got)
	}

	got = generator.Summarize("Título", "", "", nil)
	if got != "Neste episódio, os participantes discutem Título." {
		t.Fatalf("Summarize() without names = %q", got)
	}
}

func TestSummarizeBoostsNameMentions(t *testing.T) {
	generator := newGenerator(t, func(cfg *config.Config) {
		cfg.Content.SummaryMaxWords = 10
	})

	got := generator.Summarize(
		"Resumo do dia",
		"",
		"primeira frase neutra sem nada de especial aqui. "+
			"depois Maria Costa explicou a estratégia dela com calma.",
		[]string{"Maria Costa"},
	)
	if got != "depois Maria Costa explicou a estratégia dela com calma" {
		t.Fatalf("Summarize() = %q", got)
	}
}

func TestBuildChaptersUsesExisting(t *testing.T) {
	generator := newGenerator(t, nil)
	existing := []Chapter{
		{Start: 0, Title: "Intro"},
		{Start: 120, Title: "Parte 1"},
	}

	got := generator.BuildChapters(existing, "", 600)
	if !reflect.DeepEqual(got, existing) {
		t.Fatalf("BuildChapters() = %v, want %v", got, existing)
	}
}

func TestBuildChaptersCapsExisting(t *testing.T) {
	generator := newGenerator(t, func(cfg *config.Config) {
		cfg.Content.MaxChapters = 3
	})
	existing := make([]Chapter, 5)
	for i := range existing {
		existing[i] = Chapter{Start: i * 60, Title: "Cap"}
	}

	if got := generator.BuildChapters(existing, "", 600); len(got) != 3 {
		t.Fatalf("BuildChapters() returned %d chapters, want 3", len(got))
	}
}

func TestBuildChaptersZeroDuration(t *testing.T) {
	generator := newGenerator(t, nil)

	got := generator.BuildChapters(nil, "", 0)
	want := []Chapter{{Start: 0, Title: "Introdução"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("BuildChapters() = %v, want %v", got, want)
	}
}

func TestBuildChaptersAutoSegments(t *testing.T) {
	generator := newGenerator(t, nil)

	got := generator.BuildChapters(nil, "", 900)
	want := []Chapter{
		{Start: 0, Title: "Introdução"},
		{Start: 240, Title: "Parte 2"},
		{Start: 480, Title: "Parte 3"},
		{Start: 720, Title: "Parte 4"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("BuildChapters() = %v, want %v", got, want)
	}
}

func TestBuildChaptersUsesTopicHints(t *testing.T) {
	generator := newGenerator(t, nil)

	transcript := "hoje vamos falar sobre inflação e juros altos no país"
	got := generator.BuildChapters(nil, transcript, 600)
	want := []Chapter{
		{Start: 0, Title: "Introdução"},
		{Start: 240, Title: "Inflação e juros altos no país"},
		{Start: 480, Title: "Parte 3"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("BuildChapters() = %v, want %v", got, want)
	}
}

func TestKeywordsRanking(t *testing.T) {
	generator := newGenerator(t, nil)

	got := generator.Keywords(
		"Investimentos em Ações",
		"Falamos sobre bolsa de valores",
		"mercado financeiro renda variável investimentos ações",
		"Ações Investimentos",
	)
	want := []string{
		"investimentos", "ações", "falamos", "bolsa", "valores",
		"mercado", "financeiro", "renda", "variável",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Keywords() = %v, want %v", got, want)
	}
}

func TestKeywordsFiltersNoise(t *testing.T) {
	generator := newGenerator(t, nil)

	got := generator.Keywords(
		"",
		"sobre para como mais",
		"abc covid19 futebol2x empresário empresário",
		"",
	)
	want := []string{"empresário"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Keywords() = %v, want %v", got, want)
	}
}

func TestKeywordsHonorsLimit(t *testing.T) {
	generator := newGenerator(t, func(cfg *config.Config) {
		cfg.Content.MaxKeywords = 2
	})

	got := generator.Keywords("", "", "primeira segunda terceira quarta", "")
	want := []string{"primeira", "segunda"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Keywords() = %v, want %v", got, want)
	}
}
