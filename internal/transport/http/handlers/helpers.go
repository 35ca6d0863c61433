package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError emits the API's error shape: a JSON body with a human-readable
// message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func writeServerError(w http.ResponseWriter, op string, err error) {
	slog.Error("request failed", "op", op, "error", err)
	writeError(w, http.StatusInternalServerError, "Something went wrong.")
}
