package controller

import (
	"encoding/json"
	"net/http"

	"laptopshop/errx"
	"laptopshop/logx"
)

// writeJSON encodes v as the response body with the given status
func writeJSON(w http.ResponseWriter, status int, v any, op string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logx.Error().Err(err).Msgf("❌ %s: Error encoding response", op)
	}
}

// writeError maps err to its HTTP status and safe message
func writeError(w http.ResponseWriter, err error, op string) {
	status := errx.StatusOf(err)
	if status >= http.StatusInternalServerError {
		logx.Error().Err(err).Msgf("❌ %s: request failed", op)
	} else {
		logx.Warn().Err(err).Int("status", status).Msgf("❌ %s: request rejected", op)
	}
	writeJSON(w, status, map[string]string{"error": errx.MessageOf(err)}, op)
}

// allowMethod rejects requests not using method
func allowMethod(w http.ResponseWriter, r *http.Request, method, op string) bool {
	if r.Method == method {
		return true
	}
	logx.Warn().Str("method", r.Method).Msgf("❌ %s: Method not allowed", op)
	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	return false
}

// decodeBody decodes the JSON request body into dst
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errx.BadRequest(err, "invalid request body")
	}
	return nil
}
