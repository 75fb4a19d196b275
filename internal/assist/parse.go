package assist

import (
	"regexp"
	"strings"
)

var numberingPrefix = regexp.MustCompile(`^\d+\.\s*`)

// ParseSuggestions turns a completion into a suggestion list: one entry per
// non-blank line, leading "N. " numbering removed, order kept. A max of 0
// means no limit.
func ParseSuggestions(text string, max int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		line = strings.TrimRight(line, "\r")
		out = append(out, numberingPrefix.ReplaceAllString(line, ""))
		if max > 0 && len(out) == max {
			break
		}
	}
	return out
}
