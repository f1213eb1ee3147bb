package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"roundtrip/internal/domain"
	"roundtrip/internal/errors"
)

func sampleResult() *domain.RoundTripResult {
	return &domain.RoundTripResult{
		RunID:             "6f1c2d9e-0000-4000-8000-000000000001",
		Encoding:          "utf-8",
		CanonicalEncoding: "UTF-8",
		Repeat:            50,
		BufferLength:      16384,
		Seed:              1,
		Writes:            50,
		Reads:             50,
		CharsWritten:      819200,
		CharsRead:         819200,
		BytesWritten:      819200,
		Elapsed:           2 * time.Second,
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{input: "", expected: FormatText},
		{input: "text", expected: FormatText},
		{input: "JSON", expected: FormatJSON},
		{input: "yaml", expected: FormatYAML},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidation(err))
				assert.Contains(t, err.Error(), "text, json, yaml")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Render(&buf, FormatText, sampleResult()))

	out := buf.String()
	assert.Contains(t, out, `Round trip: UTF-8 (requested "utf-8")`)
	assert.Contains(t, out, "Chars written: 819,200")
	assert.Contains(t, out, "16,384 chars (seed 1)")
	assert.Contains(t, out, "Writes/reads:  50 / 50")
	assert.Contains(t, out, "Elapsed:       2s")
	assert.Contains(t, out, "819,200 chars/s")
	assert.NotContains(t, out, "Host:")
}

func TestRender_TextWithHost(t *testing.T) {
	result := sampleResult()
	result.Encoding = "UTF-8"
	result.Host = &domain.HostInfo{
		OS:          "linux",
		Platform:    "ubuntu 24.04",
		CPUModel:    "Test CPU",
		LogicalCPUs: 8,
		TotalMemory: 16 * 1024 * 1024 * 1024,
	}
	var buf bytes.Buffer

	require.NoError(t, Render(&buf, FormatText, result))

	out := buf.String()
	assert.Contains(t, out, "Round trip: UTF-8\n")
	assert.Contains(t, out, "Host:          linux (ubuntu 24.04), 8 logical CPUs, Test CPU, 16,384 MiB memory")
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Render(&buf, FormatJSON, sampleResult()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "UTF-8", decoded["canonicalEncoding"])
	assert.Equal(t, float64(50), decoded["writes"])
	assert.Equal(t, float64(2*time.Second), decoded["elapsedNs"])
	assert.NotContains(t, decoded, "host")
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Render(&buf, FormatYAML, sampleResult()))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "utf-8", decoded["encoding"])
	assert.Equal(t, 819200, decoded["charsRead"])
	assert.Equal(t, "2s", decoded["elapsed"])
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer

	err := Render(&buf, Format("xml"), sampleResult())

	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Zero(t, buf.Len())
}

func TestRenderEncodings(t *testing.T) {
	names := []string{"ISO-8859-1", "UTF-8"}

	var text bytes.Buffer
	require.NoError(t, RenderEncodings(&text, FormatText, names))
	assert.Equal(t, "ISO-8859-1\nUTF-8\n", text.String())

	var js bytes.Buffer
	require.NoError(t, RenderEncodings(&js, FormatJSON, names))
	var decoded []string
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.Equal(t, names, decoded)

	var ym bytes.Buffer
	require.NoError(t, RenderEncodings(&ym, FormatYAML, names))
	assert.Equal(t, "- ISO-8859-1\n- UTF-8\n", ym.String())
}
