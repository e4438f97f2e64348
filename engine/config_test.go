package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()
	assert.NoError(t, config.Validate())
	assert.Contains(t, config.UserAgentCSS, "display: none")
}

func TestLoadYAMLConfig(t *testing.T) {
	path := writeFile(t, "boxer.yaml", `
trace-level: info
trace-levels:
  boxer.frame: debug
css-front-end: douceur
dump-format: dot
line-height: 14.5
`)
	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "info", config.TraceLevel)
	assert.Equal(t, "debug", config.TraceLevels["boxer.frame"])
	assert.Equal(t, FrontEndDouceur, config.CSSFrontEnd)
	assert.Equal(t, DumpDot, config.DumpFormat)
	assert.Equal(t, 14.5, config.LineHeight)
	assert.Equal(t, 6.0, config.TextAdvance, "unset values keep their default")
	assert.Equal(t, DefaultConfig().UserAgentCSS, config.UserAgentCSS)
}

func TestLoadTOMLConfig(t *testing.T) {
	path := writeFile(t, "boxer.toml", `
trace-level = "debug"
user-agent-css = "p { display: block }"
text-advance = 7.5

[trace-levels]
"boxer.cssom" = "error"
`)
	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", config.TraceLevel)
	assert.Equal(t, "error", config.TraceLevels["boxer.cssom"])
	assert.Equal(t, "p { display: block }", config.UserAgentCSS)
	assert.Equal(t, 7.5, config.TextAdvance)
	assert.Equal(t, FrontEndNative, config.CSSFrontEnd)
}

func TestLoadEmptyYAMLConfig(t *testing.T) {
	config, err := LoadConfig(writeFile(t, "empty.yml", ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigErrors(t *testing.T) {
	for _, tt := range []struct {
		name, content string
	}{
		{"unknown.yaml", "no-such-setting: 1\n"},
		{"unknown.toml", "no-such-setting = 1\n"},
		{"broken.toml", "trace-level = \n"},
		{"level.yaml", "trace-level: verbose\n"},
		{"frontend.toml", "css-front-end = \"servo\"\n"},
		{"metrics.yaml", "line-height: -1\n"},
		{"boxer.json", "{}"},
	} {
		_, err := LoadConfig(writeFile(t, tt.name, tt.content))
		assert.True(t, errors.Is(err, ErrConfig), "%s: expected configuration error, is %v", tt.name, err)
	}
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSetupTracing(t *testing.T) {
	config := DefaultConfig()
	config.TraceLevel = "info"
	config.TraceLevels = map[string]string{"boxer.frame": "Debug"}
	teardown, err := SetupTracing(config)
	require.NoError(t, err)
	defer teardown()
	assert.Equal(t, tracing.LevelDebug, tracing.Select("boxer.frame").GetTraceLevel())
	assert.Equal(t, tracing.LevelInfo, tracing.Select("boxer.cssom").GetTraceLevel())
	//
	config.TraceLevel = "loud"
	_, err = SetupTracing(config)
	assert.True(t, errors.Is(err, ErrConfig))
}
