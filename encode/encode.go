package encode

import (
	"bytes"
	"encoding/json"
)

// Options carries non-rendering options through to a value's own
// serialization hook. Plain maps, slices, and primitives ignore them.
type Options struct {
	// Except names the top-level fields a Serializable should drop
	// from its structured representation.
	Except []string
}

// Serializable is the capability interface for values that control their own
// serialized shape. AsStructured returns a JSON-compatible value built with
// the caller's Options applied.
type Serializable interface {
	AsStructured(opts Options) (any, error)
}

// ToJSON converts value into its compact JSON text.
//
// A nil value serializes to the literal null.
// A Serializable value is first reduced through its AsStructured hook.
// Anything else passes directly to encoding/json; an unsupported type
// propagates encoding/json's error unchanged.
//
// ToJSON never escapes JS-significant characters; that is the caller's
// business, via EscapeJS. encoding/json escapes the line and paragraph
// separators no matter what SetEscapeHTML says, so ToJSON restores those
// to their raw characters. Output is deterministic: the same value with
// the same Options yields byte-identical text.
func ToJSON(value any, opts Options) ([]byte, error) {
	return ToJSONBuffer(new(bytes.Buffer), value, opts)
}

// ToJSONBuffer is ToJSON encoding through the provided scratch buffer so
// hot paths can reuse pooled buffers. Callers reusing a buffer reset it
// first; the returned bytes may alias the buffer's memory and are valid
// only until its next use.
func ToJSONBuffer(buf *bytes.Buffer, value any, opts Options) ([]byte, error) {
	if value == nil {
		return []byte("null"), nil
	}

	if s, ok := value.(Serializable); ok {
		structured, err := s.AsStructured(opts)
		if err != nil {
			return nil, err
		}
		value = structured
	}

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}

	return restoreSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// jsEscapes maps the characters JSON shares with executable script contexts
// to their \uXXXX escape sequences: the HTML-significant <, >, & and the
// Unicode line and paragraph separators, which are legal in JSON strings
// but terminate lines in JS.
var jsEscapes = []struct{ raw, escaped []byte }{
	{[]byte("&"), []byte(`\u0026`)},
	{[]byte("<"), []byte(`\u003c`)},
	{[]byte(">"), []byte(`\u003e`)},
	{[]byte("\u2028"), []byte(`\u2028`)},
	{[]byte("\u2029"), []byte(`\u2029`)},
}

// EscapeJS escapes the JS-significant characters in a JSON text.
//
// In valid JSON the affected characters only occur inside string literals,
// so replacing them anywhere in the text is safe.
func EscapeJS(b []byte) []byte {
	for _, esc := range jsEscapes {
		b = bytes.ReplaceAll(b, esc.raw, esc.escaped)
	}

	return b
}

const (
	lineSeparator      = "\u2028"
	paragraphSeparator = "\u2029"
)

// restoreSeparators rewrites the \u2028 and \u2029 sequences the encoder
// emits back to their raw characters. A \u preceded by a backslash escape
// spells out literal text in the source string and stays untouched.
func restoreSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}

	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 == len(b) {
			out = append(out, b[i])
			continue
		}

		if b[i+1] == '\\' {
			out = append(out, '\\', '\\')
			i++
			continue
		}

		if i+6 <= len(b) && b[i+1] == 'u' {
			switch string(b[i+2 : i+6]) {
			case "2028":
				out = append(out, lineSeparator...)
				i += 5
				continue
			case "2029":
				out = append(out, paragraphSeparator...)
				i += 5
				continue
			}
		}

		out = append(out, b[i])
	}

	return out
}
