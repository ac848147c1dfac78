// internal/controller/respond.go
package controller

import (
    "encoding/json"
    "net/http"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    json.NewEncoder(w).Encode(v)
}

func respondList(w http.ResponseWriter, data interface{}, count int) {
    writeJSON(w, http.StatusOK, map[string]interface{}{
        "success": true,
        "data":    data,
        "count":   count,
    })
}

func respondData(w http.ResponseWriter, status int, data interface{}) {
    writeJSON(w, status, map[string]interface{}{
        "success": true,
        "data":    data,
    })
}

func respondError(w http.ResponseWriter, status int, msg string) {
    writeJSON(w, status, map[string]interface{}{
        "success": false,
        "error":   msg,
    })
}
