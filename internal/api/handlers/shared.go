package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// parseJSON decodes the request body into the given request type.
// Unknown fields are rejected so typos in client payloads surface as errors
// instead of silently dropped fields.
func parseJSON[T any](r *http.Request) (T, error) {
	var req T
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return req, fmt.Errorf("failed to parse request body: %w", err)
	}
	return req, nil
}
