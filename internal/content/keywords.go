package content

import (
	"sort"
	"strings"
	"unicode"
)

var ptStopwords = map[string]struct{}{
	"para": {}, "como": {}, "mais": {}, "está": {}, "isso": {}, "esse": {}, "essa": {}, "esses": {},
	"essas": {}, "aqui": {}, "aquele": {}, "aquela": {}, "então": {}, "porque": {}, "quando": {},
	"onde": {}, "qual": {}, "quais": {}, "cada": {}, "todo": {}, "toda": {}, "todos": {}, "todas": {},
	"muito": {}, "muita": {}, "muitos": {}, "muitas": {}, "outro": {}, "outra": {}, "outros": {},
	"outras": {}, "mesmo": {}, "mesma": {}, "ainda": {}, "sobre": {}, "pode": {}, "entre": {},
	"depois": {}, "antes": {}, "agora": {}, "você": {}, "vocês": {}, "nosso": {}, "nossa": {},
	"dele": {}, "dela": {}, "deles": {}, "delas": {}, "também": {}, "fazer": {}, "falar": {},
	"coisa": {}, "coisas": {}, "gente": {}, "tinha": {}, "seria": {}, "sido": {}, "sendo": {},
	"vamos": {}, "ponto": {}, "tipo": {}, "acho": {}, "vezes": {}, "parte": {}, "forma": {},
	"exemplo": {}, "pessoas": {}, "tempo": {}, "anos": {}, "hoje": {}, "nesse": {}, "nessa": {},
	"pela": {}, "pelo": {}, "numa": {}, "desse": {}, "dessa": {}, "algo": {}, "assim": {},
	"bem": {}, "ter": {}, "tem": {}, "são": {}, "uma": {}, "uns": {}, "umas": {},
}

// Keywords ranks the recurring Portuguese terms across all episode
// text surfaces. Terms from the thumbnail OCR and the title are
// boosted; ranking is by score with first appearance as the tiebreak.
func (g *Generator) Keywords(title, description, transcript, ocrText string) []string {
	allText := strings.ToLower(title + " " + description + " " + transcript + " " + ocrText)

	counts := make(map[string]int)
	var order []string
	for _, w := range keywordTokens(allText) {
		if _, stop := ptStopwords[w]; stop {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	for _, w := range keywordTokens(strings.ToLower(ocrText)) {
		if _, ok := counts[w]; ok {
			counts[w] += 5
		}
	}
	for _, w := range keywordTokens(strings.ToLower(title)) {
		if _, ok := counts[w]; ok {
			counts[w] += 10
		}
	}

	sort.SliceStable(order, func(a, b int) bool { return counts[order[a]] > counts[order[b]] })
	if len(order) > g.maxKeywords {
		order = order[:g.maxKeywords]
	}
	return order
}

// keywordTokens returns the whole words of text made solely of
// lowercase Portuguese letters, at least four runes long. Words are
// maximal letter/digit/underscore runs, so tokens glued to digits or
// foreign letters never qualify.
func keywordTokens(text string) []string {
	var tokens []string
	runStart := -1
	runLen := 0
	clean := true
	flush := func(end int) {
		if runStart >= 0 && clean && runLen >= 4 {
			tokens = append(tokens, text[runStart:end])
		}
		runStart = -1
		runLen = 0
		clean = true
	}
	for i, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			if runStart < 0 {
				runStart = i
			}
			if !isKeywordRune(r) {
				clean = false
			}
			runLen++
			continue
		}
		flush(i)
	}
	flush(len(text))
	return tokens
}

func isKeywordRune(r rune) bool {
	if r >= 'a' && r <= 'z' {
		return true
	}
	return strings.ContainsRune("áàâãéèêíïóôõúüç", r)
}
