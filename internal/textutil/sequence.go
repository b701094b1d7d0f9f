package textutil

import (
	"unicode"
	"unicode/utf8"
)

// token is a whitespace-delimited slice of the scanned text.
type token struct {
	start     int // byte offset of the first rune
	end       int // byte offset past the last rune
	wordStart int // byte offset where a qualifying name word begins, -1 when none
}

// clean reports whether the whole token is a qualifying name word, which is
// required for every word after the first in a sequence.
func (t token) clean() bool {
	return t.wordStart == t.start
}

// CapitalizedSequences scans text for runs of minWords to maxWords capitalized
// words and returns each run with its original casing and inner spacing.
//
// A qualifying word is one uppercase Latin letter (A-Z or À-Ü) followed by one
// or more lowercase letters (a-z or à-ü) reaching the end of its token, so a
// word abutting punctuation ends the run before it. The first word of a run
// may begin mid-token when preceded by a non-word character (quotes,
// parentheses); subsequent words must be clean tokens. Runs longer than
// maxWords yield a maxWords match and scanning resumes at the next word.
func CapitalizedSequences(text string, minWords, maxWords int) []string {
	if minWords < 1 {
		minWords = 1
	}
	if maxWords < minWords {
		maxWords = minWords
	}

	tokens := tokenize(text)
	var out []string
	for i := 0; i < len(tokens); {
		if tokens[i].wordStart < 0 {
			i++
			continue
		}
		n := 1
		for i+n < len(tokens) && n < maxWords && tokens[i+n].clean() {
			n++
		}
		if n < minWords {
			i++
			continue
		}
		out = append(out, text[tokens[i].wordStart:tokens[i+n-1].end])
		i += n
	}
	return out
}

func tokenize(text string) []token {
	var tokens []token
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, newToken(text, start, i))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, newToken(text, start, len(text)))
	}
	return tokens
}

func newToken(text string, start, end int) token {
	return token{start: start, end: end, wordStart: qualifyWord(text, start, end)}
}

// qualifyWord finds the byte offset within [start, end) where a qualifying
// name word begins and runs to the token end, or -1. At most one offset can
// qualify because everything after it must be lowercase.
func qualifyWord(text string, start, end int) int {
	prev := rune(-1)
	for p := start; p < end; {
		r, size := utf8.DecodeRuneInString(text[p:end])
		if isSequenceUpper(r) && !isWordRune(prev) {
			q := p + size
			lower := 0
			ok := true
			for q < end {
				r2, s2 := utf8.DecodeRuneInString(text[q:end])
				if !isSequenceLower(r2) {
					ok = false
					break
				}
				lower++
				q += s2
			}
			if ok && lower > 0 {
				return p
			}
		}
		prev = r
		p += size
	}
	return -1
}

func isSequenceUpper(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'À' && r <= 'Ü')
}

func isSequenceLower(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'à' && r <= 'ü')
}

// isWordRune mirrors the word-character class used for boundary detection:
// letters, digits, and underscore. The sentinel rune -1 marks a token start,
// which always counts as a boundary.
func isWordRune(r rune) bool {
	if r < 0 {
		return false
	}
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
