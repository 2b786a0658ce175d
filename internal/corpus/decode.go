package corpus

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decoder converts raw file bytes into UTF-8 text.
type Decoder struct {
	name string
	enc  encoding.Encoding
}

// NewDecoder resolves a WHATWG encoding label such as "utf-8", "latin1" or
// "shift_jis". An empty label means UTF-8.
func NewDecoder(label string) (*Decoder, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		label = "utf-8"
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("resolve encoding %q: %w", label, err)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		name = label
	}
	return &Decoder{name: name, enc: enc}, nil
}

// Name returns the canonical name of the encoding.
func (d *Decoder) Name() string {
	if d == nil {
		return "utf-8"
	}
	return d.name
}

// Decode returns data as UTF-8. A leading byte order mark is consumed and, for
// UTF-8 and UTF-16 marks, overrides the configured encoding. Invalid sequences
// become U+FFFD.
func (d *Decoder) Decode(data []byte) (string, error) {
	var fallback transform.Transformer = unicode.UTF8.NewDecoder()
	if d != nil && d.enc != nil {
		fallback = d.enc.NewDecoder()
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(fallback), data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", d.Name(), err)
	}
	return string(out), nil
}
