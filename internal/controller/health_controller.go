// internal/controller/health_controller.go
package controller

import (
    "net/http"
    "time"
)

func Health(w http.ResponseWriter, r *http.Request) {
    writeJSON(w, http.StatusOK, map[string]interface{}{
        "success":   true,
        "message":   "PieBomber API is running",
        "timestamp": time.Now().UTC().Format(time.RFC3339),
    })
}

// NotFound is the catch-all for unmatched routes and methods.
func NotFound(w http.ResponseWriter, r *http.Request) {
    respondError(w, http.StatusNotFound, "Route not found")
}
