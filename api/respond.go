package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"portfolio-api/internal/schema"
)

const (
	defaultListLimit = 100
	maxPayloadBytes  = 1 << 20
)

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", "err", err)
	}
}

// writeError emits the uniform error envelope. Messages stay short; no
// internal detail crosses this boundary.
func writeError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, map[string]string{"error": msg}, status)
}

func listLimit(r *http.Request) int64 {
	limit := int64(defaultListLimit)
	if l := r.URL.Query().Get("limit"); l != "" {
		if v, err := strconv.ParseInt(l, 10, 64); err == nil && v > 0 {
			limit = v
		}
	}

	return limit
}

// decodePayload validates the request body against the resource schema and
// unmarshals it into dst. On failure it writes the error response and
// reports false; nothing reaches the store for a rejected payload.
func decodePayload(w http.ResponseWriter, r *http.Request, res schema.Resource, dst any) bool {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		writeError(w, "could not read request body", http.StatusBadRequest)
		return false
	}

	if err := schema.Validate(r.Context(), res, body); err != nil {
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			writeError(w, verr.Error(), http.StatusBadRequest)
		} else {
			logger.Error("schema validation", "resource", string(res), "err", err)
			writeError(w, "validation failed", http.StatusInternalServerError)
		}
		return false
	}

	if err := json.Unmarshal(body, dst); err != nil {
		writeError(w, "invalid payload", http.StatusBadRequest)
		return false
	}

	return true
}
