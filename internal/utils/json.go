// Package utils holds small text-processing helpers for cleaning up model
// output before parsing.
package utils

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// ExtractDelimited returns the text between the first matching pair of
// delimiters, or the cleaned input when no pair is present. Model responses
// often wrap the payload in prose or markdown fences; both are stripped.
func ExtractDelimited(response, delimiter string) string {
	cleaned := CleanModelResponse(response)
	if delimiter == "" {
		return cleaned
	}
	start := strings.Index(cleaned, delimiter)
	if start == -1 {
		return cleaned
	}
	rest := cleaned[start+len(delimiter):]
	end := strings.Index(rest, delimiter)
	if end == -1 {
		return cleaned
	}
	return strings.TrimSpace(rest[:end])
}

// ExtractAndParseJSON extracts a JSON value from a model response and
// unmarshals it. Stream-based decoding ignores trailing prose, and a repair
// pass handles the common syntax slips (smart quotes, single quotes,
// trailing commas, truncation).
func ExtractAndParseJSON[T any](response string) (T, error) {
	var result T

	cleaned := CleanModelResponse(response)
	if cleaned == "" {
		return result, fmt.Errorf("no JSON found in response")
	}

	idx := strings.IndexAny(cleaned, "{[")
	if idx == -1 {
		return result, fmt.Errorf("no JSON start ({ or [) found")
	}

	jsonPart := cleaned[idx:]
	decoder := json.NewDecoder(strings.NewReader(jsonPart))
	if err := decoder.Decode(&result); err != nil {
		repaired := RepairJSON(jsonPart)
		if repaired != jsonPart {
			dec2 := json.NewDecoder(strings.NewReader(repaired))
			if err2 := dec2.Decode(&result); err2 == nil {
				return result, nil
			}
		}
		return result, fmt.Errorf("parse JSON: %w", err)
	}
	return result, nil
}

// CleanModelResponse trims whitespace and strips markdown code fences.
func CleanModelResponse(response string) string {
	response = strings.TrimSpace(response)
	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
	}
	response = strings.TrimSuffix(response, "```")
	return strings.TrimSpace(response)
}

// RepairJSON fixes the model output errors seen in practice: smart quotes,
// single-quoted keys and values, trailing commas, and truncated structures.
func RepairJSON(input string) string {
	result := normalizeQuotes(input)
	result = convertSingleQuotes(result)
	result = stripTrailingCommas(result)
	result = closeTruncated(result)
	return result
}

var smartQuotes = strings.NewReplacer(
	"“", `"`, // left double
	"”", `"`, // right double
	"‘", "'", // left single
	"’", "'", // right single
)

func normalizeQuotes(input string) string {
	return smartQuotes.Replace(input)
}

// convertSingleQuotes rewrites single-quoted strings to double-quoted ones,
// tracking double-quoted regions so apostrophes inside them survive.
func convertSingleQuotes(input string) string {
	var b strings.Builder
	b.Grow(len(input))

	inDouble := false
	inSingle := false
	escaped := false

	for i := 0; i < len(input); i++ {
		c := input[i]
		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}
		switch {
		case c == '\\' && (inDouble || inSingle):
			b.WriteByte(c)
			escaped = true
		case c == '"' && !inSingle:
			inDouble = !inDouble
			b.WriteByte(c)
		case c == '\'' && !inDouble:
			inSingle = !inSingle
			b.WriteByte('"')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// stripTrailingCommas removes commas that directly precede a closing brace
// or bracket, outside of string literals.
func stripTrailingCommas(input string) string {
	var b strings.Builder
	b.Grow(len(input))

	inString := false
	escaped := false

	for i := 0; i < len(input); i++ {
		c := input[i]
		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}
		if c == '\\' && inString {
			b.WriteByte(c)
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			b.WriteByte(c)
			continue
		}
		if c == ',' && !inString {
			j := i + 1
			for j < len(input) && unicode.IsSpace(rune(input[j])) {
				j++
			}
			if j < len(input) && (input[j] == '}' || input[j] == ']') {
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// closeTruncated balances quotes, braces, and brackets on output that was
// cut off mid-structure.
func closeTruncated(input string) string {
	quoteCount := 0
	escaped := false
	for _, c := range input {
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c == '"' {
			quoteCount++
		}
	}
	if quoteCount%2 != 0 {
		input += `"`
	}

	openBrackets := strings.Count(input, "[") - strings.Count(input, "]")
	openBraces := strings.Count(input, "{") - strings.Count(input, "}")
	for i := 0; i < openBrackets; i++ {
		input += "]"
	}
	for i := 0; i < openBraces; i++ {
		input += "}"
	}
	return input
}
