package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSuggestPrompt(t *testing.T) {
	assert.Equal(t,
		"Generate 5 alternative, clearer versions of the following query. Return only the queries, one per line, without any numbering or prefixes.",
		BuildSuggestPrompt(5))
	assert.Contains(t, BuildSuggestPrompt(3), "Generate 3 alternative")
}
