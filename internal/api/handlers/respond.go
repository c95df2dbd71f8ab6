package handlers

import (
	"encoding/json"
	"net/http"
)

const serverErrorMessage = "Server error. Please try again later."

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondResult writes the {success, message} envelope. Business-rule
// failures on the auth endpoints keep HTTP 200 and signal through the
// success flag, matching the API contract the client consumes.
func respondResult(w http.ResponseWriter, status int, success bool, message string) {
	respondJSON(w, status, map[string]interface{}{
		"success": success,
		"message": message,
	})
}
