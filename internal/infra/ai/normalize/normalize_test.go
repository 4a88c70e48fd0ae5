package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		wantScore      int
		wantSuggestion string
		wantOK         bool
	}{
		{
			name:           "plain json",
			raw:            `{"score": 85, "suggestion": "Refined and quiet."}`,
			wantScore:      85,
			wantSuggestion: "Refined and quiet.",
			wantOK:         true,
		},
		{
			name:           "json with surrounding whitespace",
			raw:            "\n\n  {\"score\": 42, \"suggestion\": \"Tone it down.\"}  \n",
			wantScore:      42,
			wantSuggestion: "Tone it down.",
			wantOK:         true,
		},
		{
			name:           "fenced json block",
			raw:            "```json\n{\"score\": 90, \"suggestion\": \"Elegant.\"}\n```",
			wantScore:      90,
			wantSuggestion: "Elegant.",
			wantOK:         true,
		},
		{
			name:           "fence without language tag",
			raw:            "```\n{\"score\": 12, \"suggestion\": \"Too loud.\"}\n```",
			wantScore:      12,
			wantSuggestion: "Too loud.",
			wantOK:         true,
		},
		{
			name:           "fence without closing marker",
			raw:            "```json\n{\"score\": 55, \"suggestion\": \"Decent.\"}",
			wantScore:      55,
			wantSuggestion: "Decent.",
			wantOK:         true,
		},
		{
			name:           "json buried in prose",
			raw:            "Here is my analysis:\n{\"score\": 30, \"suggestion\": \"Drop the exclamation marks.\"}\nHope that helps!",
			wantScore:      30,
			wantSuggestion: "Drop the exclamation marks.",
			wantOK:         true,
		},
		{
			name:           "nested braces in suggestion context",
			raw:            `prefix {"score": 70, "suggestion": "Use {brand} placeholders sparingly."} suffix`,
			wantScore:      70,
			wantSuggestion: "Use {brand} placeholders sparingly.",
			wantOK:         true,
		},
		{
			name:           "fractional score is truncated",
			raw:            `{"score": 87.6, "suggestion": "Nearly there."}`,
			wantScore:      87,
			wantSuggestion: "Nearly there.",
			wantOK:         true,
		},
		{
			name:           "missing fields default to zero values",
			raw:            `{"verdict": "fine"}`,
			wantScore:      0,
			wantSuggestion: "",
			wantOK:         true,
		},
		{
			name:           "no json at all",
			raw:            "  The text is adequate but unrefined.  ",
			wantScore:      0,
			wantSuggestion: "The text is adequate but unrefined.",
			wantOK:         false,
		},
		{
			name:           "unbalanced braces",
			raw:            `{"score": 50, "suggestion": "broken`,
			wantScore:      0,
			wantSuggestion: `{"score": 50, "suggestion": "broken`,
			wantOK:         false,
		},
		{
			name:           "invalid json inside balanced braces",
			raw:            `{score: 50, suggestion: nope}`,
			wantScore:      0,
			wantSuggestion: `{score: 50, suggestion: nope}`,
			wantOK:         false,
		},
		{
			name:           "empty input",
			raw:            "",
			wantScore:      0,
			wantSuggestion: "",
			wantOK:         false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := Result(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantScore, result.Score)
			assert.Equal(t, tt.wantSuggestion, result.Suggestion)
		})
	}
}

func TestExtractObject(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		want      string
		wantFound bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"prose around object", `noise {"a":{"b":2}} trailing`, `{"a":{"b":2}}`, true},
		{"stops at outermost close", `{"a":1}{"b":2}`, `{"a":1}`, true},
		{"no opening brace", "just words", "", false},
		{"never balanced", `{"a":{"b":2}`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractObject(tt.in)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"score": 1}`, StripFences("```json\n{\"score\": 1}\n```"))
	assert.Equal(t, `{"score": 1}`, StripFences("```\n{\"score\": 1}"))
	assert.Equal(t, "no fences here", StripFences("no fences here"))
}

func TestSnippetTruncates(t *testing.T) {
	long := strings.Repeat("é", 500)
	got := Snippet(long)
	require.Equal(t, 200, len([]rune(got)))
	assert.Equal(t, "short", Snippet("short"))
}
