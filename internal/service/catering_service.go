// internal/service/catering_service.go
package service

import (
    "context"
    "log"
    "net/mail"
    "strings"
    "time"

    "github.com/google/uuid"

    "github.com/piebomber/piebomber-api/internal/crm"
    "github.com/piebomber/piebomber-api/internal/model"
    "github.com/piebomber/piebomber-api/internal/repository"
    "github.com/piebomber/piebomber-api/internal/webhook"
)

type CateringService struct {
    CateringRepo repository.CateringRepositoryInterface
    Directory    crm.CustomerDirectory
    Notifier     webhook.Notifier
}

// CateringInput is the submission body. EventDate arrives as an RFC3339
// string and is parsed during validation.
type CateringInput struct {
    Name                string           `json:"name"`
    Email               string           `json:"email"`
    Phone               string           `json:"phone"`
    EventDate           string           `json:"eventDate"`
    EventType           string           `json:"eventType"`
    GuestCount          int              `json:"guestCount"`
    Location            string           `json:"location"`
    Message             *string          `json:"message"`
    MenuPreferences     model.StringList `json:"menuPreferences"`
    DietaryRestrictions *string          `json:"dietaryRestrictions"`
    Budget              *string          `json:"budget"`
}

type SubmitResult struct {
    ID      int    `json:"id"`
    Status  string `json:"status"`
    Message string `json:"message"`
}

const minPhoneLength = 10

// Submit runs the whole pipeline: validate, resolve the CRM identity,
// persist, notify, reconcile. Persistence is the durability point —
// everything after it is best-effort and never surfaces to the caller.
func (s *CateringService) Submit(ctx context.Context, in CateringInput) (*SubmitResult, error) {
    fields, eventDate := validate(in)
    if len(fields) > 0 {
        return nil, &ValidationError{Fields: fields}
    }

    // Soft Square lookup: a CRM outage must never block a submission.
    var squareID *string
    if id, err := s.Directory.FindOrCreateCustomer(ctx, in.Name, in.Email, in.Phone); err != nil {
        log.Println("⚠️ Square customer lookup failed:", err)
    } else if id != "" {
        squareID = &id
    }

    req := &model.CateringRequest{
        Name:                in.Name,
        Email:               in.Email,
        Phone:               in.Phone,
        EventDate:           eventDate,
        EventType:           in.EventType,
        GuestCount:          in.GuestCount,
        Location:            in.Location,
        Message:             in.Message,
        MenuPreferences:     in.MenuPreferences,
        DietaryRestrictions: in.DietaryRestrictions,
        Budget:              in.Budget,
        Status:              "pending",
        SquareCustomerID:    squareID,
        ZapierWebhookSent:   false,
    }
    if err := s.CateringRepo.Create(req); err != nil {
        return nil, err
    }

    delivered, err := s.Notifier.Notify(ctx, webhook.PayloadFromRequest(req, uuid.NewString()))
    if err != nil {
        log.Println("⚠️ Failed to send webhook to Zapier:", err)
    }
    if delivered {
        // The caller was already promised success; a failed flag update
        // is logged and swallowed.
        if err := s.CateringRepo.MarkWebhookSent(req.ID); err != nil {
            log.Println("⚠️ Failed to record webhook delivery for request", req.ID, ":", err)
        }
    }

    return &SubmitResult{
        ID:      req.ID,
        Status:  req.Status,
        Message: "Catering request submitted successfully. We will contact you soon!",
    }, nil
}

// GetRequest fetches a stored request by id (admin use).
func (s *CateringService) GetRequest(id int) (*model.CateringRequest, error) {
    return s.CateringRepo.GetByID(id)
}

// validate checks every required field and accumulates all violations so
// the caller can report them together. Optional fields pass through
// unchecked.
func validate(in CateringInput) ([]FieldError, time.Time) {
    fields := []FieldError{}

    if strings.TrimSpace(in.Name) == "" {
        fields = append(fields, FieldError{Field: "name", Message: "Name is required"})
    }
    if !validEmail(in.Email) {
        fields = append(fields, FieldError{Field: "email", Message: "Valid email is required"})
    }
    if len(strings.TrimSpace(in.Phone)) < minPhoneLength {
        fields = append(fields, FieldError{Field: "phone", Message: "Phone number is required"})
    }
    eventDate, err := time.Parse(time.RFC3339, in.EventDate)
    if err != nil {
        fields = append(fields, FieldError{Field: "eventDate", Message: "Valid event date is required"})
    }
    if strings.TrimSpace(in.EventType) == "" {
        fields = append(fields, FieldError{Field: "eventType", Message: "Event type is required"})
    }
    if in.GuestCount <= 0 {
        fields = append(fields, FieldError{Field: "guestCount", Message: "Guest count must be positive"})
    }
    if strings.TrimSpace(in.Location) == "" {
        fields = append(fields, FieldError{Field: "location", Message: "Location is required"})
    }

    return fields, eventDate
}

func validEmail(email string) bool {
    if email == "" {
        return false
    }
    addr, err := mail.ParseAddress(email)
    // Reject display-name forms like "A <a@b.com>"; the field holds a
    // bare address.
    return err == nil && addr.Address == email
}
