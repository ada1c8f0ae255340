package component

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/streamforge/streamforge/internal/util"
)

// Codec serializes component records to delimiter-wrapped inline wire tokens
// and scans arbitrary text back into records.
//
// The delimiter is a configuration contract, not a parsing guarantee: no
// escaping is performed, so producers must choose a delimiter structurally
// unlikely to appear in prose or JSON payloads.
type Codec struct {
	delim   string
	allowed map[string]struct{}
}

// NewCodec returns a codec for the given delimiter and component-type
// allow-list.
func NewCodec(delimiter string, allowedTypes []string) *Codec {
	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[t] = struct{}{}
	}
	return &Codec{delim: delimiter, allowed: allowed}
}

// Delimiter returns the configured delimiter string.
func (c *Codec) Delimiter() string {
	return c.delim
}

// Encode produces the wire token for a record: compact JSON wrapped with the
// delimiter on both sides.
func (c *Codec) Encode(rec Record) (string, error) {
	if rec.Data == nil {
		rec.Data = map[string]any{}
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("encode component %s: %w", rec.ID, err)
	}
	return c.delim + string(b) + c.delim, nil
}

// DecodeAll scans text for non-greedy substrings between paired delimiter
// occurrences and JSON-decodes each interior. Fragments that fail to decode
// are silently dropped; the scan continues after the closing delimiter.
func (c *Codec) DecodeAll(text string) []Record {
	var records []Record
	rest := text
	for {
		start := strings.Index(rest, c.delim)
		if start < 0 {
			break
		}
		after := rest[start+len(c.delim):]
		end := strings.Index(after, c.delim)
		if end < 0 {
			break
		}
		interior := after[:end]
		var rec Record
		if err := json.Unmarshal([]byte(interior), &rec); err == nil {
			records = append(records, rec)
		}
		rest = after[end+len(c.delim):]
	}
	return records
}

// Validate reports whether a record is structurally sound: type in the
// allow-list, id UUID-shaped, and data present (possibly empty).
func (c *Codec) Validate(rec Record) bool {
	if _, ok := c.allowed[rec.Type]; !ok {
		return false
	}
	if !util.IsValidID(rec.ID) {
		return false
	}
	return rec.Data != nil
}
