// internal/model/event.go
package model

import "time"

type Event struct {
    ID               int       `db:"id" json:"id"`
    Title            string    `db:"title" json:"title"`
    Description      string    `db:"description" json:"description"`
    Location         string    `db:"location" json:"location"`
    Address          string    `db:"address" json:"address"`
    Latitude         *string   `db:"latitude" json:"latitude,omitempty"`
    Longitude        *string   `db:"longitude" json:"longitude,omitempty"`
    StartTime        time.Time `db:"start_time" json:"startTime"`
    EndTime          time.Time `db:"end_time" json:"endTime"`
    Status           string    `db:"status" json:"status"` // scheduled, active, completed, cancelled
    ImageURL         *string   `db:"image_url" json:"imageUrl,omitempty"`
    MaxCapacity      *int      `db:"max_capacity" json:"maxCapacity,omitempty"`
    CurrentAttendees int       `db:"current_attendees" json:"currentAttendees"`
    CreatedAt        time.Time `db:"created_at" json:"createdAt"`
    UpdatedAt        time.Time `db:"updated_at" json:"updatedAt"`
}
