// internal/webhook/notifier.go
package webhook

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "io"
    "log"
    "net/http"
    "time"

    "github.com/piebomber/piebomber-api/internal/model"
)

// Payload is the JSON body handed to the automation endpoint. It carries
// everything the downstream pipeline needs so the receiver never has to
// call back into this API.
type Payload struct {
    DeliveryID          string           `json:"deliveryId"`
    RequestID           int              `json:"requestId"`
    Name                string           `json:"name"`
    Email               string           `json:"email"`
    Phone               string           `json:"phone"`
    EventDate           time.Time        `json:"eventDate"`
    EventType           string           `json:"eventType"`
    GuestCount          int              `json:"guestCount"`
    Location            string           `json:"location"`
    Message             *string          `json:"message,omitempty"`
    MenuPreferences     model.StringList `json:"menuPreferences,omitempty"`
    DietaryRestrictions *string          `json:"dietaryRestrictions,omitempty"`
    Budget              *string          `json:"budget,omitempty"`
    SquareCustomerID    *string          `json:"squareCustomerId"`
    SubmittedAt         time.Time        `json:"submittedAt"`
}

// PayloadFromRequest builds the notification body for a persisted request.
func PayloadFromRequest(req *model.CateringRequest, deliveryID string) Payload {
    return Payload{
        DeliveryID:          deliveryID,
        RequestID:           req.ID,
        Name:                req.Name,
        Email:               req.Email,
        Phone:               req.Phone,
        EventDate:           req.EventDate,
        EventType:           req.EventType,
        GuestCount:          req.GuestCount,
        Location:            req.Location,
        Message:             req.Message,
        MenuPreferences:     req.MenuPreferences,
        DietaryRestrictions: req.DietaryRestrictions,
        Budget:              req.Budget,
        SquareCustomerID:    req.SquareCustomerID,
        SubmittedAt:         req.CreatedAt,
    }
}

// Notifier delivers one submission notification. The returned bool
// reports whether delivery is confirmed: synchronous implementations
// confirm on a 2xx answer, queued implementations always return false
// because the worker reconciles the flag after it delivers.
type Notifier interface {
    Notify(ctx context.Context, p Payload) (bool, error)
}

// Disabled is the notifier used when ZAPIER_WEBHOOK_URL is not set.
type Disabled struct{}

func (Disabled) Notify(ctx context.Context, p Payload) (bool, error) {
    log.Println("⚠️ ZAPIER_WEBHOOK_URL not configured, skipping webhook")
    return false, nil
}

// HTTPNotifier POSTs the payload inline with a bounded timeout. One
// attempt only; the caller swallows failures.
type HTTPNotifier struct {
    URL    string
    Client *http.Client
}

func NewHTTPNotifier(url string) *HTTPNotifier {
    return &HTTPNotifier{
        URL:    url,
        Client: &http.Client{Timeout: 5 * time.Second},
    }
}

func (n *HTTPNotifier) Notify(ctx context.Context, p Payload) (bool, error) {
    body, err := json.Marshal(p)
    if err != nil {
        return false, err
    }

    req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.URL, bytes.NewReader(body))
    if err != nil {
        return false, err
    }
    req.Header.Set("Content-Type", "application/json")

    res, err := n.Client.Do(req)
    if err != nil {
        return false, err
    }
    defer res.Body.Close()
    io.Copy(io.Discard, res.Body)

    if res.StatusCode < 200 || res.StatusCode >= 300 {
        return false, fmt.Errorf("webhook endpoint answered %d", res.StatusCode)
    }
    return true, nil
}

var _ Notifier = (*HTTPNotifier)(nil)
var _ Notifier = Disabled{}
