package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roundtrip/internal/errors"
	"roundtrip/internal/report"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantEncoding string
		wantRepeat   int
	}{
		{name: "no_args", args: nil, wantEncoding: "UTF-8", wantRepeat: 50},
		{name: "encoding_only", args: []string{"ISO-8859-1"}, wantEncoding: "ISO-8859-1", wantRepeat: 50},
		{name: "both", args: []string{"UTF-16", "5"}, wantEncoding: "UTF-16", wantRepeat: 5},
		{name: "zero_repeat", args: []string{"UTF-8", "0"}, wantEncoding: "UTF-8", wantRepeat: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoding, repeat, err := ParseArgs(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.wantEncoding, encoding)
			assert.Equal(t, tt.wantRepeat, repeat)
		})
	}
}

func TestParseArgs_NonNumericRepeat(t *testing.T) {
	_, _, err := ParseArgs([]string{"UTF-8", "fifty"})

	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))
	assert.Contains(t, err.Error(), "repeat")
}

func TestParseArgs_NegativeRepeat(t *testing.T) {
	_, _, err := ParseArgs([]string{"UTF-8", "-3"})

	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestNewViper_Defaults(t *testing.T) {
	v, err := NewViper("", t.TempDir())
	require.NoError(t, err)

	s, err := Load(v, nil)
	require.NoError(t, err)
	assert.Equal(t, "UTF-8", s.Encoding)
	assert.Equal(t, 50, s.Repeat)
	assert.Equal(t, report.FormatText, s.Output)
	assert.Equal(t, LogFormatAuto, s.LogFormat)
	assert.False(t, s.Verbose)
	assert.False(t, s.HostInfo)
	assert.Empty(t, s.TempDir)
}

func TestNewViper_DefaultConfigFile(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, DefaultConfigPath(home), "output: yaml\nhost-info: true\ntemp-dir: /var/tmp\n")

	v, err := NewViper("", home)
	require.NoError(t, err)

	s, err := Load(v, []string{"UTF-8", "3"})
	require.NoError(t, err)
	assert.Equal(t, report.FormatYAML, s.Output)
	assert.True(t, s.HostInfo)
	assert.Equal(t, "/var/tmp", s.TempDir)
	assert.Equal(t, 3, s.Repeat)
}

func TestNewViper_ExplicitConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeConfig(t, path, "log-format: json\nverbose: true\n")

	v, err := NewViper(path, "")
	require.NoError(t, err)
	assert.Equal(t, path, v.ConfigFileUsed())

	s, err := Load(v, nil)
	require.NoError(t, err)
	assert.Equal(t, LogFormatJSON, s.LogFormat)
	assert.True(t, s.Verbose)
}

func TestNewViper_MissingExplicitConfigFile(t *testing.T) {
	v, err := NewViper(filepath.Join(t.TempDir(), "missing.yaml"), "")

	require.Error(t, err)
	assert.Nil(t, v)
	assert.True(t, errors.IsConfiguration(err))
}

func TestNewViper_EnvironmentOverrides(t *testing.T) {
	t.Setenv("ROUNDTRIP_OUTPUT", "json")
	t.Setenv("ROUNDTRIP_LOG_FORMAT", "text")

	v, err := NewViper("", t.TempDir())
	require.NoError(t, err)

	s, err := Load(v, nil)
	require.NoError(t, err)
	assert.Equal(t, report.FormatJSON, s.Output)
	assert.Equal(t, LogFormatText, s.LogFormat)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "output", key: KeyOutput, val: "xml"},
		{name: "log_format", key: KeyLogFormat, val: "logfmt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewViper("", t.TempDir())
			require.NoError(t, err)
			v.Set(tt.key, tt.val)

			s, err := Load(v, nil)
			require.Error(t, err)
			assert.Nil(t, s)
			assert.True(t, errors.IsValidation(err))
		})
	}
}
