package httpapi

import (
	"encoding/json"
	"net/http"
)

type ErrorResponse struct {
	Error         string   `json:"error"`
	Fields        []string `json:"fields,omitempty"`
	CorrelationID string   `json:"correlationId,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg, CorrelationID: GetCorrelationID(r.Context())})
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	return dec.Decode(v)
}
