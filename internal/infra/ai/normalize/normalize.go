// Package normalize recovers a structured verdict from free-form model output.
// Models wrap their answers in markdown fences or surround them with prose;
// everything here is pure string work so the recovery path can be tested with
// literal fixtures.
package normalize

import (
	"encoding/json"
	"strings"

	"github.com/brandguard-app/brandguard/internal/domain/brand"
)

// Result coerces raw model output into a verdict. It never fails: when no
// JSON object can be recovered, ok is false and the verdict carries score 0
// with the trimmed raw text as the suggestion.
func Result(raw string) (brand.ProviderResult, bool) {
	trimmed := strings.TrimSpace(raw)
	content := StripFences(trimmed)

	if obj, found := ExtractObject(content); found {
		var parsed struct {
			Score      float64 `json:"score"`
			Suggestion string  `json:"suggestion"`
		}
		if err := json.Unmarshal([]byte(obj), &parsed); err == nil {
			return brand.ProviderResult{
				Score:      int(parsed.Score),
				Suggestion: parsed.Suggestion,
			}, true
		}
	}

	return brand.ProviderResult{Score: 0, Suggestion: trimmed}, false
}

// StripFences removes a leading ``` fence line (with or without a language
// tag) and, when present, the matching trailing fence line.
func StripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	lines = lines[1:]
	if n := len(lines); n > 0 && strings.TrimSpace(lines[n-1]) == "```" {
		lines = lines[:n-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// ExtractObject returns the outermost brace-delimited object in s, tolerating
// any surrounding prose. It scans from the first '{' keeping a depth counter;
// found is false when no balanced object exists.
func ExtractObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// Snippet truncates content to 200 characters for diagnostic logging.
func Snippet(s string) string {
	const max = 200
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
