// internal/controller/menu_controller.go
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

type MenuController struct {
    MenuService *service.MenuService
}

func (c *MenuController) ListMenuItems(w http.ResponseWriter, r *http.Request) {
    q := r.URL.Query()

    filter := repository.MenuFilter{Category: q.Get("category")}
    if v := q.Get("available"); v != "" {
        available := v == "true"
        filter.Available = &available
    }

    items, err := c.MenuService.List(filter)
    if err != nil {
        log.Println("Error fetching menu items:", err)
        respondError(w, http.StatusInternalServerError, "Failed to fetch menu items")
        return
    }

    respondList(w, items, len(items))
}

func (c *MenuController) GetMenuItem(w http.ResponseWriter, r *http.Request) {
    id, err := strconv.Atoi(chi.URLParam(r, "id"))
    if err != nil {
        respondError(w, http.StatusBadRequest, "Invalid menu item ID")
        return
    }

    item, err := c.MenuService.Get(id)
    if err != nil {
        if appErrors.IsNotFound(err) {
            respondError(w, http.StatusNotFound, "Menu item not found")
            return
        }
        log.Println("Error fetching menu item:", err)
        respondError(w, http.StatusInternalServerError, "Failed to fetch menu item")
        return
    }

    respondData(w, http.StatusOK, item)
}
