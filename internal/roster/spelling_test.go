package roster

import "testing"

func TestOCRSpellingFindsFirstLineHit(t *testing.T) {
	ocr := "PROGRAMA DE HOJE\nJoão Silva — Economista\njoão silva volta amanhã\n"
	got := ocrSpelling("joão silva", ocr)
	if got != "João Silva" {
		t.Fatalf("ocrSpelling() = %q, want %q", got, "João Silva")
	}
}

func TestOCRSpellingAccentedPrefix(t *testing.T) {
	ocr := "ÀS 20H: João Silva no estúdio"
	got := ocrSpelling("JOÃO SILVA", ocr)
	if got != "João Silva" {
		t.Fatalf("ocrSpelling() = %q, want %q", got, "João Silva")
	}
}

func TestOCRSpellingMissing(t *testing.T) {
	if got := ocrSpelling("Maria Costa", "nenhuma menção aqui"); got != "" {
		t.Fatalf("ocrSpelling() = %q, want empty", got)
	}
	if got := ocrSpelling("", "qualquer texto"); got != "" {
		t.Fatalf("ocrSpelling() with empty name = %q, want empty", got)
	}
}

func TestFindNameInSnippetCaseInsensitive(t *testing.T) {
	got := findNameInSnippet("joão silva", "O convidado JOÃO SILVA falou sobre renda fixa.")
	if got != "JOÃO SILVA" {
		t.Fatalf("findNameInSnippet() = %q, want %q", got, "JOÃO SILVA")
	}
}

func TestFindNameInSnippetEscapesMetaCharacters(t *testing.T) {
	got := findNameInSnippet("J. Silva", "Coluna de J. Silva no jornal.")
	if got != "J. Silva" {
		t.Fatalf("findNameInSnippet() = %q, want %q", got, "J. Silva")
	}
	if got := findNameInSnippet("J. Silva", "Coluna de Jx Silva no jornal."); got != "" {
		t.Fatalf("findNameInSnippet() = %q, want empty for non-literal match", got)
	}
}
