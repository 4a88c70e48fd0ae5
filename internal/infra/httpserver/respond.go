package httpserver

import (
	"encoding/json"
	"net/http"
)

type successResponse struct {
	Success      bool   `json:"success"`
	Score        int    `json:"score"`
	Suggestion   string `json:"suggestion"`
	OriginalText string `json:"original_text"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// setHeaders attaches the content type and the permissive CORS set the
// browser add-on expects on every response, error paths included.
func setHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	setHeaders(w)
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
