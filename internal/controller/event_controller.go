// internal/controller/event_controller.go
package controller

import (
    "log"
    "net/http"
    "strconv"

    "github.com/go-chi/chi/v5"

    appErrors "github.com/piebomber/piebomber-api/internal/errors"
    "github.com/piebomber/piebomber-api/internal/repository"
    "github.com/piebomber/piebomber-api/internal/service"
)

type EventController struct {
    EventService *service.EventService
}

func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
    q := r.URL.Query()

    filter := repository.EventFilter{
        Status:   q.Get("status"),
        Upcoming: q.Get("upcoming") == "true",
    }

    events, err := c.EventService.List(filter)
    if err != nil {
        log.Println("Error fetching events:", err)
        respondError(w, http.StatusInternalServerError, "Failed to fetch events")
        return
    }

    respondList(w, events, len(events))
}

func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
    id, err := strconv.Atoi(chi.URLParam(r, "id"))
    if err != nil {
        respondError(w, http.StatusBadRequest, "Invalid event ID")
        return
    }

    ev, err := c.EventService.Get(id)
    if err != nil {
        if appErrors.IsNotFound(err) {
            respondError(w, http.StatusNotFound, "Event not found")
            return
        }
        log.Println("Error fetching event:", err)
        respondError(w, http.StatusInternalServerError, "Failed to fetch event")
        return
    }

    respondData(w, http.StatusOK, ev)
}
