package logx

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sant0-9/querylens/internal/config"
)

func TestProductionWritesJSONAtInfo(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Environment: config.Production, Output: &buf})
	t.Cleanup(func() { Init(Options{Output: &bytes.Buffer{}}) })

	Debug().Msg("hidden")
	Error().Str("op", "suggest").Msg("completion failed")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "suggest", entry["op"])
	assert.Equal(t, "completion failed", entry["message"])
}

func TestDevelopmentHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Environment: config.Development, Level: "warn", Output: &buf})
	t.Cleanup(func() { Init(Options{Output: &bytes.Buffer{}}) })

	Info().Msg("quiet")
	Warn().Msg("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestOpenFileCreatesParents(t *testing.T) {
	path := t.TempDir() + "/nested/dir/querylens.log"
	f, err := OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.WriteString("x")
	assert.NoError(t, err)
}
