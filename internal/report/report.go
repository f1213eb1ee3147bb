// Package report renders round trip results for humans and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"roundtrip/internal/domain"
	"roundtrip/internal/errors"
)

// Format selects how results are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

//nolint:gochecknoglobals // Package-level list for validation messages
var formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat validates s as an output format. Empty means text.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	for _, f := range formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}

	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return "", errors.NewValidationError(
		"output",
		s,
		"supported_values",
		fmt.Sprintf("output must be one of: %s", strings.Join(names, ", ")),
	)
}

// Render writes result to w in the given format.
func Render(w io.Writer, format Format, result *domain.RoundTripResult) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, result)
	case FormatYAML:
		return renderYAML(w, result)
	case FormatText, "":
		return renderText(w, result)
	default:
		_, err := ParseFormat(string(format))
		return err
	}
}

// RenderEncodings writes a list of encoding names to w in the given format.
func RenderEncodings(w io.Writer, format Format, names []string) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, names)
	case FormatYAML:
		return renderYAML(w, names)
	case FormatText, "":
		for _, name := range names {
			if _, err := fmt.Fprintln(w, name); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := ParseFormat(string(format))
		return err
	}
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json report: %w", err)
	}
	return nil
}

func renderYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml report: %w", err)
	}
	return enc.Close()
}

func renderText(w io.Writer, r *domain.RoundTripResult) error {
	p := message.NewPrinter(language.English)

	var b strings.Builder
	if r.Encoding != r.CanonicalEncoding {
		p.Fprintf(&b, "Round trip: %s (requested %q)\n", r.CanonicalEncoding, r.Encoding)
	} else {
		p.Fprintf(&b, "Round trip: %s\n", r.CanonicalEncoding)
	}
	p.Fprintf(&b, "  Run ID:        %s\n", r.RunID)
	p.Fprintf(&b, "  Iterations:    %d\n", r.Repeat)
	p.Fprintf(&b, "  Buffer:        %d chars (seed %d)\n", r.BufferLength, r.Seed)
	p.Fprintf(&b, "  Writes/reads:  %d / %d\n", r.Writes, r.Reads)
	p.Fprintf(&b, "  Chars written: %d\n", r.CharsWritten)
	p.Fprintf(&b, "  Chars read:    %d\n", r.CharsRead)
	p.Fprintf(&b, "  Bytes written: %d\n", r.BytesWritten)
	p.Fprintf(&b, "  Elapsed:       %s\n", r.Elapsed)
	p.Fprintf(&b, "  Throughput:    %.0f chars/s\n", r.CharsPerSecond())

	if h := r.Host; h != nil {
		p.Fprintf(&b, "  Host:          %s", h.OS)
		if h.Platform != "" {
			p.Fprintf(&b, " (%s)", strings.TrimSpace(h.Platform))
		}
		p.Fprintf(&b, ", %d logical CPUs", h.LogicalCPUs)
		if h.CPUModel != "" {
			p.Fprintf(&b, ", %s", h.CPUModel)
		}
		if h.TotalMemory > 0 {
			p.Fprintf(&b, ", %d MiB memory", h.TotalMemory/(1024*1024))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
