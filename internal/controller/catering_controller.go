// internal/controller/catering_controller.go
package controller

import (
    "encoding/json"
    "errors"
    "log"
    "net/http"
    "strconv"

    "github.com/go-chi/chi/v5"

    appErrors "github.com/piebomber/piebomber-api/internal/errors"
    "github.com/piebomber/piebomber-api/internal/service"
)

type CateringController struct {
    CateringService *service.CateringService
}

// SubmitRequest handles POST /api/catering.
func (c *CateringController) SubmitRequest(w http.ResponseWriter, r *http.Request) {
    var in service.CateringInput
    if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
        respondError(w, http.StatusBadRequest, "Invalid request body")
        return
    }

    result, err := c.CateringService.Submit(r.Context(), in)
    if err != nil {
        var vErr *service.ValidationError
        if errors.As(err, &vErr) {
            writeJSON(w, http.StatusBadRequest, map[string]interface{}{
                "success": false,
                "error":   "Validation failed",
                "details": vErr.Fields,
            })
            return
        }
        log.Println("Error creating catering request:", err)
        respondError(w, http.StatusInternalServerError, "Failed to submit catering request")
        return
    }

    respondData(w, http.StatusCreated, result)
}

// GetRequest handles GET /api/catering/{id}. Admin use only: the route
// is not linked from the site and carries no customer-facing data flow.
func (c *CateringController) GetRequest(w http.ResponseWriter, r *http.Request) {
    id, err := strconv.Atoi(chi.URLParam(r, "id"))
    if err != nil {
        respondError(w, http.StatusBadRequest, "Invalid catering request ID")
        return
    }

    req, err := c.CateringService.GetRequest(id)
    if err != nil {
        if appErrors.IsNotFound(err) {
            respondError(w, http.StatusNotFound, "Catering request not found")
            return
        }
        log.Println("Error fetching catering request:", err)
        respondError(w, http.StatusInternalServerError, "Failed to fetch catering request")
        return
    }

    respondData(w, http.StatusOK, req)
}
