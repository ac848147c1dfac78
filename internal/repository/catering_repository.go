package repository

import (
    "database/sql"
    "errors"

    "github.com/jmoiron/sqlx"

    appErrors "github.com/piebomber/piebomber-api/internal/errors"
    "github.com/piebomber/piebomber-api/internal/model"
)

type CateringRepositoryInterface interface {
    Create(req *model.CateringRequest) error
    GetByID(id int) (*model.CateringRequest, error)
    MarkWebhookSent(id int) error
}

type CateringRepository struct {
    DB *sqlx.DB
}

const cateringColumns = `id, name, email, phone, event_date, event_type, guest_count, location,
       message, menu_preferences, dietary_restrictions, budget, status,
       square_customer_id, zapier_webhook_sent, created_at, updated_at`

// Create inserts one request row. Every row starts out pending with the
// webhook flag unset; the generated id and timestamps are scanned back.
func (r *CateringRepository) Create(req *model.CateringRequest) error {
    if req.Status == "" {
        req.Status = "pending"
    }
    query := `
        INSERT INTO catering_requests
        (name, email, phone, event_date, event_type, guest_count, location,
         message, menu_preferences, dietary_restrictions, budget, status,
         square_customer_id, zapier_webhook_sent)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING id, created_at, updated_at
    `
    return r.DB.QueryRow(query,
        req.Name, req.Email, req.Phone, req.EventDate, req.EventType,
        req.GuestCount, req.Location, req.Message, req.MenuPreferences,
        req.DietaryRestrictions, req.Budget, req.Status,
        req.SquareCustomerID, req.ZapierWebhookSent,
    ).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
}

func (r *CateringRepository) GetByID(id int) (*model.CateringRequest, error) {
    query := `SELECT ` + cateringColumns + ` FROM catering_requests WHERE id=$1`

    var req model.CateringRequest
    if err := r.DB.Get(&req, query, id); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, appErrors.NewCateringRequestNotFound(id)
        }
        return nil, err
    }
    return &req, nil
}

// MarkWebhookSent flips the webhook flag after a confirmed delivery.
// The flag only ever moves from false to true.
func (r *CateringRepository) MarkWebhookSent(id int) error {
    query := `UPDATE catering_requests SET zapier_webhook_sent=TRUE, updated_at=NOW() WHERE id=$1`
    _, err := r.DB.Exec(query, id)
    return err
}

var _ CateringRepositoryInterface = (*CateringRepository)(nil)
