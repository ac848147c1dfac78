// internal/crm/square.go
package crm

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "strings"
    "time"
)

// CustomerDirectory resolves a submitter to an external CRM customer id.
// Implementations are best-effort: the caller treats any failure as a
// missing linkage, never as a failed submission.
type CustomerDirectory interface {
    FindOrCreateCustomer(ctx context.Context, name, email, phone string) (string, error)
}

// Disabled is the directory used when SQUARE_ACCESS_TOKEN is not set.
type Disabled struct{}

func (Disabled) FindOrCreateCustomer(ctx context.Context, name, email, phone string) (string, error) {
    return "", nil
}

// SquareClient talks to the Square Customers API. Lookups search by
// email first so repeat submitters keep a single Square profile.
type SquareClient struct {
    BaseURL string
    Token   string
    Client  *http.Client
}

func NewSquareClient(baseURL, token string) *SquareClient {
    return &SquareClient{
        BaseURL: strings.TrimRight(baseURL, "/"),
        Token:   token,
        Client:  &http.Client{Timeout: 5 * time.Second},
    }
}

func (c *SquareClient) FindOrCreateCustomer(ctx context.Context, name, email, phone string) (string, error) {
    id, err := c.searchByEmail(ctx, email)
    if err != nil {
        return "", err
    }
    if id != "" {
        return id, nil
    }
    return c.createCustomer(ctx, name, email, phone)
}

func (c *SquareClient) searchByEmail(ctx context.Context, email string) (string, error) {
    body := map[string]interface{}{
        "query": map[string]interface{}{
            "filter": map[string]interface{}{
                "email_address": map[string]string{"exact": email},
            },
        },
    }

    var out struct {
        Customers []struct {
            ID string `json:"id"`
        } `json:"customers"`
    }
    if err := c.post(ctx, "/v2/customers/search", body, &out); err != nil {
        return "", err
    }
    if len(out.Customers) == 0 {
        return "", nil
    }
    return out.Customers[0].ID, nil
}

func (c *SquareClient) createCustomer(ctx context.Context, name, email, phone string) (string, error) {
    body := map[string]string{
        "given_name":    name,
        "email_address": email,
        "phone_number":  phone,
    }

    var out struct {
        Customer struct {
            ID string `json:"id"`
        } `json:"customer"`
    }
    if err := c.post(ctx, "/v2/customers", body, &out); err != nil {
        return "", err
    }
    return out.Customer.ID, nil
}

func (c *SquareClient) post(ctx context.Context, path string, body, out interface{}) error {
    payload, err := json.Marshal(body)
    if err != nil {
        return err
    }

    req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
    if err != nil {
        return err
    }
    req.Header.Set("Content-Type", "application/json")
    req.Header.Set("Authorization", "Bearer "+c.Token)

    res, err := c.Client.Do(req)
    if err != nil {
        return err
    }
    defer res.Body.Close()

    if res.StatusCode < 200 || res.StatusCode >= 300 {
        io.Copy(io.Discard, res.Body)
        return fmt.Errorf("square %s answered %d", path, res.StatusCode)
    }
    return json.NewDecoder(res.Body).Decode(out)
}

var _ CustomerDirectory = (*SquareClient)(nil)
var _ CustomerDirectory = Disabled{}
