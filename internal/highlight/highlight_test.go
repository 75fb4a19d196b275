package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func join(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Text)
	}
	return b.String()
}

func TestTokenizeIsLossless(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"word",
		"  leading and trailing  ",
		"tabs\tand\nnewlines\r\n",
		"what is the capital of France?",
		"naïve café résumé",
		"multiple   spaces nbsp",
	}
	for _, in := range inputs {
		assert.Equal(t, in, join(Tokenize(in)), "input %q", in)
		assert.Equal(t, in, Render(in, nil, nil), "input %q", in)
	}
}

func TestTokenizeAlternates(t *testing.T) {
	tokens := Tokenize(" explain  quantum tunneling ")
	want := []Token{
		{Text: " ", Space: true},
		{Text: "explain", Keyword: true},
		{Text: "  ", Space: true},
		{Text: "quantum", Keyword: true},
		{Text: " ", Space: true},
		{Text: "tunneling", Keyword: true},
		{Text: " ", Space: true},
	}
	assert.Equal(t, want, tokens)
}

func TestIsKeyword(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"What", false},
		{"WHAT", false},
		{"what", false},
		{"Where", false},
		{"WHICH", false},
		{"This", false},
		{"that", false},
		{"the", false},
		{"cat", false},
		{"a", false},
		{"héé", false},
		{"capital", true},
		{"Paris", true},
		{"bake", true},
		{"héèé", true},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, IsKeyword(tt.word))
		})
	}
}

func TestWhitespaceIsNeverKeyword(t *testing.T) {
	for _, tok := range Tokenize("a      b") {
		if tok.Space {
			assert.False(t, tok.Keyword)
		}
	}
}

func TestRenderWrapsOnlyKeywords(t *testing.T) {
	out := Render("how does photosynthesis work", func(s string) string {
		return "[" + s + "]"
	}, nil)
	assert.Equal(t, "how [does] [photosynthesis] [work]", out)
}
