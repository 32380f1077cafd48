package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rentacar/rentacar-api/internal/core/domain"
	"github.com/rentacar/rentacar-api/internal/core/ports"
)

type stubMessageRepo struct {
	messages []*domain.ContactMessage
	nextID   int
}

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{}
}

func cloneMessage(m *domain.ContactMessage) *domain.ContactMessage {
	clone := *m
	return &clone
}

func (r *stubMessageRepo) Create(_ context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	copy := cloneMessage(m)
	r.nextID++
	copy.ID = "msg-" + strconv.Itoa(r.nextID)
	r.messages = append(r.messages, cloneMessage(copy))
	return copy, nil
}

func (r *stubMessageRepo) FindByID(_ context.Context, id string) (*domain.ContactMessage, error) {
	for _, m := range r.messages {
		if m.ID == id {
			return cloneMessage(m), nil
		}
	}
	return nil, domain.ErrMessageNotFound
}

func (r *stubMessageRepo) FindAll(_ context.Context) ([]*domain.ContactMessage, error) {
	out := make([]*domain.ContactMessage, 0, len(r.messages))
	for _, m := range r.messages {
		out = append(out, cloneMessage(m))
	}
	return out, nil
}

func (r *stubMessageRepo) Update(_ context.Context, m *domain.ContactMessage) error {
	for i, existing := range r.messages {
		if existing.ID == m.ID {
			r.messages[i] = cloneMessage(m)
			return nil
		}
	}
	return domain.ErrMessageNotFound
}

func (r *stubMessageRepo) Delete(_ context.Context, id string) error {
	for i, m := range r.messages {
		if m.ID == id {
			r.messages = append(r.messages[:i], r.messages[i+1:]...)
			return nil
		}
	}
	return domain.ErrMessageNotFound
}

func (r *stubMessageRepo) List(_ context.Context, page ports.PageRequest) ([]*domain.ContactMessage, int64, error) {
	total := int64(len(r.messages))
	start := int(page.Offset())
	if start > len(r.messages) {
		start = len(r.messages)
	}
	end := start + page.Size
	if end > len(r.messages) {
		end = len(r.messages)
	}
	out := make([]*domain.ContactMessage, 0, end-start)
	for _, m := range r.messages[start:end] {
		out = append(out, cloneMessage(m))
	}
	return out, total, nil
}

func messageInput(subject string) ports.ContactMessageInput {
	return ports.ContactMessageInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: subject,
		Body:    "This message body is long enough to pass validation.",
	}
}

func TestContactMessageService_CreateAndGet(t *testing.T) {
	repo := newStubMessageRepo()
	svc := NewContactMessageService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), messageInput("Booking question"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected id on created message")
	}

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Subject != "Booking question" {
		t.Fatalf("unexpected message: %+v", got)
	}
}

func TestContactMessageService_GetByID_NotFound(t *testing.T) {
	svc := NewContactMessageService(newStubMessageRepo(), zerolog.Nop())

	if _, err := svc.GetByID(context.Background(), "missing"); err != domain.ErrMessageNotFound {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}

func TestContactMessageService_Update(t *testing.T) {
	repo := newStubMessageRepo()
	svc := NewContactMessageService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), messageInput("Original subject"))

	if err := svc.Update(context.Background(), created.ID, messageInput("Updated subject")); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	got, _ := svc.GetByID(context.Background(), created.ID)
	if got.Subject != "Updated subject" {
		t.Fatalf("update not persisted: %+v", got)
	}

	if err := svc.Update(context.Background(), "missing", messageInput("x")); err != domain.ErrMessageNotFound {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}

func TestContactMessageService_Delete(t *testing.T) {
	repo := newStubMessageRepo()
	svc := NewContactMessageService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), messageInput("To be deleted"))

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), created.ID); err != domain.ErrMessageNotFound {
		t.Fatalf("message still present after delete")
	}

	if err := svc.Delete(context.Background(), created.ID); err != domain.ErrMessageNotFound {
		t.Fatalf("expected ErrMessageNotFound on second delete, got %v", err)
	}
}

func TestContactMessageService_Pagination(t *testing.T) {
	repo := newStubMessageRepo()
	svc := NewContactMessageService(repo, zerolog.Nop())

	for i := 1; i <= 5; i++ {
		if _, err := svc.Create(context.Background(), messageInput("Subject number "+strconv.Itoa(i))); err != nil {
			t.Fatalf("seed message %d: %v", i, err)
		}
	}

	// external page 1 → internal page 0
	first, total, err := svc.List(context.Background(), ports.PageRequest{Page: 0, Size: 2})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5, got %d", total)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 messages on first page, got %d", len(first))
	}

	// external page 3 → internal page 2 holds the trailing single message
	last, _, err := svc.List(context.Background(), ports.PageRequest{Page: 2, Size: 2})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(last) != 1 {
		t.Fatalf("expected 1 message on last page, got %d", len(last))
	}

	// past the end yields an empty page, not an error
	empty, _, err := svc.List(context.Background(), ports.PageRequest{Page: 3, Size: 2})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty page, got %d messages", len(empty))
	}
}
