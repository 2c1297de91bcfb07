package render

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StructuredOutput is the JSON shape the structured-path prompts ask the
// model to emit. Anything around the JSON object (prose, code fences) is
// tolerated; anything inside it is not.
type StructuredOutput struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	ImgQueries []string `json:"img_queries"`
	Hashtags   string   `json:"hashtags"`
}

// MalformedOutputError reports model output that does not contain the
// expected JSON shape. It is a hard error for the affected request but is
// absorbed per-row in batch mode.
type MalformedOutputError struct {
	Reason string
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed model output: %s", e.Reason)
}

// ExtractJSON locates and parses the structured payload inside raw. Instead
// of guessing with a first-{-to-last-} span, it scans balanced brace spans
// from each opening brace in order and parses the first one that is valid
// JSON. Missing required fields fail hard rather than truncating silently.
func ExtractJSON(raw string) (*StructuredOutput, error) {
	for i := 0; i < len(raw); i++ {
		if raw[i] != '{' {
			continue
		}
		span, ok := balancedSpan(raw[i:])
		if !ok {
			continue
		}
		var out StructuredOutput
		if err := json.Unmarshal([]byte(span), &out); err != nil {
			// A balanced span that is not the payload (e.g. braces in CSS);
			// keep scanning.
			continue
		}
		if strings.TrimSpace(out.Title) == "" {
			return nil, &MalformedOutputError{Reason: "missing required field \"title\""}
		}
		if strings.TrimSpace(out.Content) == "" {
			return nil, &MalformedOutputError{Reason: "missing required field \"content\""}
		}
		return &out, nil
	}
	return nil, &MalformedOutputError{Reason: "no JSON object found"}
}

// balancedSpan returns the prefix of s spanning one balanced {...} object,
// tracking string literals and escapes so braces in values don't end the
// span early.
func balancedSpan(s string) (string, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return s[:i+1], true
				}
			}
		}
	}
	return "", false
}
