package textutil

import "testing"

func TestContainsFold(t *testing.T) {
	tests := []struct {
		haystack string
		needle   string
		want     bool
	}{
		{"Economia com JOÃO SILVA", "joão silva", true},
		{"Economia com João Silva", "Maria", false},
		{"", "joão", false},
		{"qualquer texto", "", false},
	}
	for _, tt := range tests {
		if got := ContainsFold(tt.haystack, tt.needle); got != tt.want {
			t.Errorf("ContainsFold(%q, %q) = %v, want %v", tt.haystack, tt.needle, got, tt.want)
		}
	}
}

func TestCollapseSpaces(t *testing.T) {
	got := CollapseSpaces("  um\t\ttexto \n com  espaços ")
	want := "um texto com espaços"
	if got != want {
		t.Fatalf("CollapseSpaces = %q, want %q", got, want)
	}
}

func TestTruncateWords(t *testing.T) {
	got := TruncateWords("um dois três quatro", 2)
	if got != "um dois" {
		t.Fatalf("TruncateWords = %q, want %q", got, "um dois")
	}
	if got := TruncateWords("um dois", 10); got != "um dois" {
		t.Fatalf("TruncateWords beyond length = %q", got)
	}
}

func TestWordCount(t *testing.T) {
	if got := WordCount(" um  dois\ntrês "); got != 3 {
		t.Fatalf("WordCount = %d, want 3", got)
	}
}
