package textutil

import (
	"reflect"
	"testing"
)

func TestCapitalizedSequencesBasic(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"two names", "hoje João Silva e Maria Costa debatem", []string{"João Silva", "Maria Costa"}},
		{"sentence opener joins run", "Hoje João Silva debate", []string{"Hoje João Silva"}},
		{"single word ignored", "Entrevista com Carlos sobre economia", nil},
		{"lowercase ignored", "joão silva falou sobre juros", nil},
		{"all caps ignored", "USP divulga estudo com IBGE", nil},
		{"accented initial", "Ângela Moreira comenta o caso", []string{"Ângela Moreira"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CapitalizedSequences(tt.text, 2, 5)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CapitalizedSequences(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestCapitalizedSequencesPunctuationEndsRun(t *testing.T) {
	got := CapitalizedSequences("Segundo Carlos Mendes, os dados confirmam", 2, 5)
	want := []string{"Segundo Carlos"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCapitalizedSequencesLeadingPunctuation(t *testing.T) {
	// A quote before the first word still allows a match; trailing
	// punctuation on the closing word excludes it.
	got := CapitalizedSequences(`"João Silva fala hoje`, 2, 5)
	want := []string{"João Silva"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if got := CapitalizedSequences("(João Silva)", 2, 5); got != nil {
		t.Fatalf("expected no match when the last word abuts punctuation, got %v", got)
	}
}

func TestCapitalizedSequencesMaxWordsSplit(t *testing.T) {
	text := "Ana Bela Cris Dora Elen Fabi Gabi"
	got := CapitalizedSequences(text, 2, 5)
	want := []string{"Ana Bela Cris Dora Elen", "Fabi Gabi"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCapitalizedSequencesSixWordRunLeavesRemainder(t *testing.T) {
	text := "Ana Bela Cris Dora Elen Fabi"
	got := CapitalizedSequences(text, 2, 5)
	want := []string{"Ana Bela Cris Dora Elen"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCapitalizedSequencesPreservesInnerSpacing(t *testing.T) {
	got := CapitalizedSequences("João  Silva chega", 2, 5)
	want := []string{"João  Silva"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCapitalizedSequencesSpansLines(t *testing.T) {
	got := CapitalizedSequences("João\nSilva apresenta", 2, 5)
	if len(got) != 1 {
		t.Fatalf("expected one match, got %v", got)
	}
}

func TestCapitalizedSequencesCustomBounds(t *testing.T) {
	text := "Maria Costa fala"
	if got := CapitalizedSequences(text, 3, 5); got != nil {
		t.Fatalf("minWords=3 should exclude two-word run, got %v", got)
	}
	got := CapitalizedSequences("Ana Bela Cris", 2, 2)
	want := []string{"Ana Bela"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("maxWords=2: got %v, want %v", got, want)
	}
}

func TestCapitalizedSequencesDeterministic(t *testing.T) {
	text := "Pedro Álvares encontra Vasco da Gama e Dom João Sexto em Lisboa"
	first := CapitalizedSequences(text, 2, 5)
	second := CapitalizedSequences(text, 2, 5)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("scanner not deterministic: %v vs %v", first, second)
	}
}
