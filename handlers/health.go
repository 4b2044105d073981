package handlers

import "net/http"

// HealthCheck is the liveness probe
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondMessage(w, "Pixcel Studio Backend is running")
}
