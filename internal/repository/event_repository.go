package repository

import (
    "database/sql"
    "errors"
    "fmt"

    "github.com/jmoiron/sqlx"

    appErrors "github.com/piebomber/piebomber-api/internal/errors"
    "github.com/piebomber/piebomber-api/internal/model"
)

// EventFilter carries the optional filters for event listings. Upcoming
// keeps only events starting at or after the moment the query runs.
type EventFilter struct {
    Status   string
    Upcoming bool
}

type EventRepositoryInterface interface {
    List(f EventFilter) ([]model.Event, error)
    GetByID(id int) (*model.Event, error)
}

type EventRepository struct {
    DB *sqlx.DB
}

const eventColumns = `id, title, description, location, address, latitude, longitude,
       start_time, end_time, status, image_url, max_capacity, current_attendees,
       created_at, updated_at`

func (r *EventRepository) List(f EventFilter) ([]model.Event, error) {
    query := `SELECT ` + eventColumns + ` FROM events WHERE 1=1`
    args := []interface{}{}
    argPos := 1

    if f.Status != "" {
        query += fmt.Sprintf(" AND status=$%d", argPos)
        args = append(args, f.Status)
        argPos++
    }
    if f.Upcoming {
        query += " AND start_time >= NOW()"
    }

    events := []model.Event{}
    if err := r.DB.Select(&events, query, args...); err != nil {
        return nil, err
    }
    return events, nil
}

func (r *EventRepository) GetByID(id int) (*model.Event, error) {
    query := `SELECT ` + eventColumns + ` FROM events WHERE id=$1`

    var ev model.Event
    if err := r.DB.Get(&ev, query, id); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, appErrors.NewEventNotFound(id)
        }
        return nil, err
    }
    return &ev, nil
}

var _ EventRepositoryInterface = (*EventRepository)(nil)
