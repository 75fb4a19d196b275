// Package highlight marks the content words of a query so the UI can
// emphasise them. Tokenizing is lossless: joining the token texts gives
// back the input byte for byte.
package highlight

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minKeywordLen is the rune count a word must exceed to count as a keyword.
const minKeywordLen = 3

var stopWords = map[string]struct{}{
	"what":  {},
	"how":   {},
	"why":   {},
	"when":  {},
	"where": {},
	"which": {},
	"who":   {},
	"the":   {},
	"and":   {},
	"that":  {},
	"this":  {},
}

type Token struct {
	Text    string
	Space   bool
	Keyword bool
}

// IsKeyword reports whether a non-whitespace word should be emphasised.
func IsKeyword(word string) bool {
	if utf8.RuneCountInString(word) <= minKeywordLen {
		return false
	}
	_, stop := stopWords[strings.ToLower(word)]
	return !stop
}

// Tokenize splits s into alternating runs of whitespace and non-whitespace.
func Tokenize(s string) []Token {
	var tokens []Token
	start := 0
	inSpace := false

	for i, r := range s {
		space := unicode.IsSpace(r)
		if i == 0 {
			inSpace = space
			continue
		}
		if space != inSpace {
			tokens = append(tokens, newToken(s[start:i], inSpace))
			start = i
			inSpace = space
		}
	}
	if start < len(s) {
		tokens = append(tokens, newToken(s[start:], inSpace))
	}
	return tokens
}

func newToken(text string, space bool) Token {
	return Token{
		Text:    text,
		Space:   space,
		Keyword: !space && IsKeyword(text),
	}
}

// Render tokenizes s and passes keyword tokens through emph and all other
// tokens through plain. Either func may be nil to leave tokens untouched.
func Render(s string, emph, plain func(string) string) string {
	var b strings.Builder
	for _, tok := range Tokenize(s) {
		fn := plain
		if tok.Keyword {
			fn = emph
		}
		if fn == nil {
			b.WriteString(tok.Text)
			continue
		}
		b.WriteString(fn(tok.Text))
	}
	return b.String()
}
