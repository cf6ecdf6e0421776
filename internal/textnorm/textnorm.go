// Package textnorm cleans raw input text and segments it into sentences.
// The segmentation is a best-effort heuristic: it avoids splitting after
// common abbreviations and initials but makes no stronger guarantees.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	crlfRe       = regexp.MustCompile(`\r\n`)
	newlineRunRe = regexp.MustCompile(`\n+`)
	spaceRunRe   = regexp.MustCompile(`\s+`)
)

// Clean collapses line-break variants and whitespace runs to single spaces
// and trims the result.
func Clean(text string) string {
	text = crlfRe.ReplaceAllString(text, "\n")
	text = newlineRunRe.ReplaceAllString(text, "\n")
	text = spaceRunRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Sentences cleans text and splits it into trimmed sentences. Empty input
// yields nil; the function never fails.
func Sentences(text string) []string {
	return Split(Clean(text))
}

// Split segments cleaned text on sentence-terminal punctuation (. ? !)
// followed by whitespace, keeping the terminator with its sentence. A
// period is not treated as a boundary when it ends an initialism like
// "U.S." or a short abbreviation like "Dr.".
func Split(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '?' && r != '!' {
			continue
		}
		// Boundary only when followed by whitespace.
		if i+1 >= len(runes) || !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if r == '.' && isAbbreviation(runes, i) {
			continue
		}
		if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
			sentences = append(sentences, s)
		}
		start = i + 1
	}

	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// isAbbreviation reports whether the period at runes[i] terminates an
// abbreviation rather than a sentence. Two guards: a word char sandwiched
// in periods ("U.S.") and a capital-lowercase pair before the period
// ("Dr.").
func isAbbreviation(runes []rune, i int) bool {
	// "x.y." shape, ending at this period.
	if i >= 3 &&
		isWordRune(runes[i-3]) && runes[i-2] == '.' && isWordRune(runes[i-1]) {
		return true
	}
	// "Xy." shape: capitalized two-letter abbreviation.
	if i >= 2 &&
		unicode.IsUpper(runes[i-2]) && unicode.IsLower(runes[i-1]) {
		return true
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
