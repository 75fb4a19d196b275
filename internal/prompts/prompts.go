package prompts

import (
	_ "embed"
	"fmt"
	"strings"
)

// Suggest is the rephrase instruction; %d is the number of alternatives.
//
//go:embed suggest.md
var Suggest string

// BuildSuggestPrompt returns the system instruction asking for n rephrasings.
func BuildSuggestPrompt(n int) string {
	return fmt.Sprintf(strings.TrimSpace(Suggest), n)
}
