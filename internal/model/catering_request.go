// internal/model/catering_request.go
package model

import "time"

type CateringRequest struct {
    ID                  int        `db:"id" json:"id"`
    Name                string     `db:"name" json:"name"`
    Email               string     `db:"email" json:"email"`
    Phone               string     `db:"phone" json:"phone"`
    EventDate           time.Time  `db:"event_date" json:"eventDate"`
    EventType           string     `db:"event_type" json:"eventType"` // wedding, corporate, birthday, other, ...
    GuestCount          int        `db:"guest_count" json:"guestCount"`
    Location            string     `db:"location" json:"location"`
    Message             *string    `db:"message" json:"message,omitempty"`
    MenuPreferences     StringList `db:"menu_preferences" json:"menuPreferences,omitempty"`
    DietaryRestrictions *string    `db:"dietary_restrictions" json:"dietaryRestrictions,omitempty"`
    Budget              *string    `db:"budget" json:"budget,omitempty"`
    Status              string     `db:"status" json:"status"` // pending, contacted, quoted, confirmed, completed, cancelled
    SquareCustomerID    *string    `db:"square_customer_id" json:"squareCustomerId,omitempty"`
    ZapierWebhookSent   bool       `db:"zapier_webhook_sent" json:"zapierWebhookSent"`
    CreatedAt           time.Time  `db:"created_at" json:"createdAt"`
    UpdatedAt           time.Time  `db:"updated_at" json:"updatedAt"`
}
