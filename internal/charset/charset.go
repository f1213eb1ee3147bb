// Package charset resolves character encoding names to golang.org/x/text
// encodings.
package charset

import (
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"

	"roundtrip/internal/errors"
)

// DefaultName is the encoding used when none is requested.
const DefaultName = "UTF-8"

// Charset is a resolved encoding together with its canonical name.
type Charset struct {
	Name     string
	Encoding encoding.Encoding
}

// Resolve looks up name as an IANA name or alias first and then as a WHATWG
// label. Lookups are case-insensitive.
func Resolve(name string) (*Charset, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, errors.NewConfigurationError("encoding", name, "encoding name is empty", nil)
	}

	enc, err := ianaindex.IANA.Encoding(trimmed)
	if err != nil || enc == nil {
		// ianaindex returns a nil encoding for names it knows but cannot
		// encode, so fall through to the WHATWG table in both cases.
		htmlEnc, htmlErr := htmlindex.Get(trimmed)
		if htmlErr != nil {
			cause := err
			if cause == nil {
				cause = htmlErr
			}
			return nil, errors.NewConfigurationError("encoding", name, "unsupported encoding "+trimmed, cause)
		}
		enc = htmlEnc
	}

	return &Charset{
		Name:     canonicalName(enc, trimmed),
		Encoding: enc,
	}, nil
}

// canonicalName prefers the MIME preferred name ("ISO-8859-1" rather than
// "ISO_8859-1:1987").
func canonicalName(enc encoding.Encoding, fallback string) string {
	if n, err := ianaindex.MIME.Name(enc); err == nil && n != "" {
		return n
	}
	if n, err := ianaindex.IANA.Name(enc); err == nil && n != "" {
		return n
	}
	if n, err := htmlindex.Name(enc); err == nil && n != "" {
		return n
	}
	return fallback
}

func families() [][]encoding.Encoding {
	return [][]encoding.Encoding{
		unicode.All,
		charmap.All,
		japanese.All,
		korean.All,
		simplifiedchinese.All,
		traditionalchinese.All,
	}
}

// Available returns the sorted canonical names of every encoding that
// Resolve can produce from its own canonical name.
func Available() []string {
	seen := make(map[string]struct{})
	for _, family := range families() {
		for _, enc := range family {
			name := canonicalName(enc, "")
			if name == "" {
				continue
			}
			if _, err := Resolve(name); err != nil {
				continue
			}
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
