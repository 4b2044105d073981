package handlers

import (
	"encoding/json"
	"net/http"
)

type envelope map[string]any

// writeJSON is the single JSON encoder for all handler responses
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{"success": true, "data": data})
}

func respondList(w http.ResponseWriter, count int, data any) {
	writeJSON(w, http.StatusOK, envelope{"success": true, "count": count, "data": data})
}

func respondCreated(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusCreated, envelope{"success": true, "message": message, "data": data})
}

func respondMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, envelope{"success": true, "message": message})
}

func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{"success": false, "message": message})
}
