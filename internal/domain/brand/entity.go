package brand

// MaxTextLength bounds the analyzable text size in characters.
const MaxTextLength = 5000

// AnalysisRequest is the inbound payload for one brand-voice analysis.
type AnalysisRequest struct {
	TextToAnalyze string `json:"textToAnalyze"`
}

// Credential is one API key tried during the fallback sequence.
// Keys must never appear in logs; the label identifies the credential instead.
type Credential struct {
	Label string
	Key   string
}

// ProviderResult is the normalized verdict recovered from the model output.
type ProviderResult struct {
	Score      int    `json:"score"`
	Suggestion string `json:"suggestion"`
}

// Analysis is the outcome of a completed analysis, echoing the input text.
type Analysis struct {
	Score        int    `json:"score"`
	Suggestion   string `json:"suggestion"`
	OriginalText string `json:"original_text"`
}
