package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appErrors "github.com/piebomber/piebomber-api/internal/errors"
	"github.com/piebomber/piebomber-api/internal/model"
	"github.com/piebomber/piebomber-api/internal/service"
	"github.com/piebomber/piebomber-api/internal/webhook"
)

// --- Mocks ---

type MockCateringRepo struct {
	created     []*model.CateringRequest
	markedSent  []int
	createErr   error
	markSentErr error
}

func (m *MockCateringRepo) Create(req *model.CateringRequest) error {
	if m.createErr != nil {
		return m.createErr
	}
	req.ID = len(m.created) + 1
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	m.created = append(m.created, req)
	return nil
}

func (m *MockCateringRepo) GetByID(id int) (*model.CateringRequest, error) {
	for _, req := range m.created {
		if req.ID == id {
			return req, nil
		}
	}
	return nil, appErrors.NewCateringRequestNotFound(id)
}

func (m *MockCateringRepo) MarkWebhookSent(id int) error {
	if m.markSentErr != nil {
		return m.markSentErr
	}
	m.markedSent = append(m.markedSent, id)
	return nil
}

type FakeDirectory struct {
	id    string
	err   error
	calls int
}

func (f *FakeDirectory) FindOrCreateCustomer(ctx context.Context, name, email, phone string) (string, error) {
	f.calls++
	return f.id, f.err
}

type FakeNotifier struct {
	delivered bool
	err       error
	payloads  []webhook.Payload
}

func (f *FakeNotifier) Notify(ctx context.Context, p webhook.Payload) (bool, error) {
	f.payloads = append(f.payloads, p)
	return f.delivered, f.err
}

func validInput() service.CateringInput {
	return service.CateringInput{
		Name:       "A",
		Email:      "a@b.com",
		Phone:      "1234567890",
		EventDate:  "2030-01-01T00:00:00Z",
		EventType:  "Wedding",
		GuestCount: 50,
		Location:   "X",
	}
}

func newService(repo *MockCateringRepo, dir *FakeDirectory, n *FakeNotifier) *service.CateringService {
	return &service.CateringService{
		CateringRepo: repo,
		Directory:    dir,
		Notifier:     n,
	}
}

// --- Tests ---

func TestSubmitPersistsPendingRequest(t *testing.T) {
	repo := &MockCateringRepo{}
	svc := newService(repo, &FakeDirectory{}, &FakeNotifier{})

	result, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("expected 1 persisted request, got %d", len(repo.created))
	}
	req := repo.created[0]

	if req.Status != "pending" {
		t.Errorf("expected status pending, got %s", req.Status)
	}
	if req.ZapierWebhookSent {
		t.Error("new request must not be marked webhook-sent")
	}
	if req.Name != "A" || req.Email != "a@b.com" || req.Phone != "1234567890" {
		t.Errorf("contact fields not persisted as submitted: %+v", req)
	}
	if req.GuestCount != 50 || req.Location != "X" || req.EventType != "Wedding" {
		t.Errorf("event fields not persisted as submitted: %+v", req)
	}
	want := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	if !req.EventDate.Equal(want) {
		t.Errorf("expected event date %v, got %v", want, req.EventDate)
	}

	if result.ID != req.ID {
		t.Errorf("result id %d does not match persisted id %d", result.ID, req.ID)
	}
	if result.Status != "pending" {
		t.Errorf("expected result status pending, got %s", result.Status)
	}
	if result.Message == "" {
		t.Error("expected a confirmation message")
	}
}

func TestSubmitEnumeratesAllViolations(t *testing.T) {
	repo := &MockCateringRepo{}
	svc := newService(repo, &FakeDirectory{}, &FakeNotifier{})

	_, err := svc.Submit(context.Background(), service.CateringInput{
		Email:     "not-an-email",
		Phone:     "123",
		EventDate: "next tuesday",
	})

	var vErr *service.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	want := map[string]bool{
		"name": true, "email": true, "phone": true, "eventDate": true,
		"eventType": true, "guestCount": true, "location": true,
	}
	got := map[string]bool{}
	for _, f := range vErr.Fields {
		got[f.Field] = true
	}
	for field := range want {
		if !got[field] {
			t.Errorf("missing violation for field %q", field)
		}
	}
	if len(vErr.Fields) != len(want) {
		t.Errorf("expected %d violations, got %d: %+v", len(want), len(vErr.Fields), vErr.Fields)
	}

	if len(repo.created) != 0 {
		t.Error("invalid submission must not persist anything")
	}
}

func TestSubmitRejectsDisplayNameEmail(t *testing.T) {
	repo := &MockCateringRepo{}
	svc := newService(repo, &FakeDirectory{}, &FakeNotifier{})

	in := validInput()
	in.Email = "Alice <a@b.com>"

	_, err := svc.Submit(context.Background(), in)
	var vErr *service.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(vErr.Fields) != 1 || vErr.Fields[0].Field != "email" {
		t.Errorf("expected only the email violation, got %+v", vErr.Fields)
	}
}

func TestSubmitSurvivesNotifierFailure(t *testing.T) {
	repo := &MockCateringRepo{}
	notifier := &FakeNotifier{err: errors.New("connection refused")}
	svc := newService(repo, &FakeDirectory{}, notifier)

	result, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("notifier failure must not fail the submission: %v", err)
	}
	if result.Status != "pending" {
		t.Errorf("expected pending, got %s", result.Status)
	}
	if len(repo.markedSent) != 0 {
		t.Error("webhook flag must stay false when delivery fails")
	}
}

func TestSubmitMarksWebhookSentOnDelivery(t *testing.T) {
	repo := &MockCateringRepo{}
	notifier := &FakeNotifier{delivered: true}
	svc := newService(repo, &FakeDirectory{}, notifier)

	result, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.markedSent) != 1 || repo.markedSent[0] != result.ID {
		t.Errorf("expected webhook flag update for id %d, got %v", result.ID, repo.markedSent)
	}
}

func TestSubmitSwallowsReconcileError(t *testing.T) {
	repo := &MockCateringRepo{markSentErr: errors.New("store unavailable")}
	notifier := &FakeNotifier{delivered: true}
	svc := newService(repo, &FakeDirectory{}, notifier)

	if _, err := svc.Submit(context.Background(), validInput()); err != nil {
		t.Fatalf("reconcile failure must not surface: %v", err)
	}
}

func TestSubmitSurvivesDirectoryFailure(t *testing.T) {
	repo := &MockCateringRepo{}
	dir := &FakeDirectory{err: errors.New("square outage")}
	svc := newService(repo, dir, &FakeNotifier{})

	if _, err := svc.Submit(context.Background(), validInput()); err != nil {
		t.Fatalf("CRM failure must not fail the submission: %v", err)
	}
	if repo.created[0].SquareCustomerID != nil {
		t.Error("expected nil Square reference after a CRM failure")
	}
}

func TestSubmitAttachesSquareCustomer(t *testing.T) {
	repo := &MockCateringRepo{}
	dir := &FakeDirectory{id: "SQ123"}
	notifier := &FakeNotifier{}
	svc := newService(repo, dir, notifier)

	if _, err := svc.Submit(context.Background(), validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := repo.created[0].SquareCustomerID
	if got == nil || *got != "SQ123" {
		t.Errorf("expected Square reference SQ123, got %v", got)
	}
	if p := notifier.payloads[0]; p.SquareCustomerID == nil || *p.SquareCustomerID != "SQ123" {
		t.Errorf("expected Square reference in webhook payload, got %+v", notifier.payloads[0])
	}
}

func TestSubmitPayloadCarriesPersistedRequest(t *testing.T) {
	repo := &MockCateringRepo{}
	notifier := &FakeNotifier{}
	svc := newService(repo, &FakeDirectory{}, notifier)

	result, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(notifier.payloads) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.payloads))
	}
	p := notifier.payloads[0]
	if p.RequestID != result.ID {
		t.Errorf("payload request id %d, want %d", p.RequestID, result.ID)
	}
	if p.DeliveryID == "" {
		t.Error("expected a delivery id on the payload")
	}
	if p.SubmittedAt.IsZero() {
		t.Error("expected a submission timestamp on the payload")
	}
	if p.Name != "A" || p.GuestCount != 50 {
		t.Errorf("payload fields do not match the submission: %+v", p)
	}
}

func TestSubmitProducesDistinctIDs(t *testing.T) {
	repo := &MockCateringRepo{}
	svc := newService(repo, &FakeDirectory{}, &FakeNotifier{})

	first, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatal(err)
	}

	if first.ID == second.ID {
		t.Errorf("identical submissions must create distinct records, both got id %d", first.ID)
	}
}

func TestSubmitCreateFailureSurfaces(t *testing.T) {
	repo := &MockCateringRepo{createErr: errors.New("insert failed")}
	notifier := &FakeNotifier{}
	svc := newService(repo, &FakeDirectory{}, notifier)

	if _, err := svc.Submit(context.Background(), validInput()); err == nil {
		t.Fatal("expected the store error to surface")
	}
	if len(notifier.payloads) != 0 {
		t.Error("no notification may be attempted before the durability point")
	}
}
