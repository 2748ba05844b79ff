package utils

import (
	"bytes"
	"encoding/json"
)

// MarshalIndentNoEscape marshals indented JSON without HTML escaping.
// Tool output carries Chinese text and embedded HTML; escaping would turn
// '<' into \u003c and bloat every payload.
func MarshalIndentNoEscape(v any, prefix, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(prefix, indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Encoder adds a trailing newline; remove it for parity with json.Marshal.
	out := bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})
	return out, nil
}
