package redis

import (
	"context"
	"testing"
	"time"

	"github.com/lifebit/platform/internal/core/domain"
	"github.com/lifebit/platform/internal/core/ports"
)

func TestTicketSaveAndConsume(t *testing.T) {
	_, client := newTestClient(t)
	store := NewChangeTicketStore(client)
	ctx := context.Background()

	ticket := ports.ChangeTicket{UserID: "u1", NewEmail: "nueva@example.com"}
	if err := store.Save(ctx, "tok-1", ticket, time.Hour); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Consume(ctx, "tok-1")
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	if got != ticket {
		t.Fatalf("expected %+v, got %+v", ticket, got)
	}
}

func TestTicketIsSingleUse(t *testing.T) {
	_, client := newTestClient(t)
	store := NewChangeTicketStore(client)
	ctx := context.Background()

	ticket := ports.ChangeTicket{UserID: "u1", NewEmail: "nueva@example.com"}
	if err := store.Save(ctx, "tok-1", ticket, time.Hour); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := store.Consume(ctx, "tok-1"); err != nil {
		t.Fatalf("first consume: %v", err)
	}
	if _, err := store.Consume(ctx, "tok-1"); err != domain.ErrChangeTokenInvalid {
		t.Fatalf("expected ErrChangeTokenInvalid on reuse, got %v", err)
	}
}

func TestTicketNewRequestInvalidatesPrevious(t *testing.T) {
	_, client := newTestClient(t)
	store := NewChangeTicketStore(client)
	ctx := context.Background()

	first := ports.ChangeTicket{UserID: "u1", NewEmail: "primera@example.com"}
	second := ports.ChangeTicket{UserID: "u1", NewEmail: "segunda@example.com"}
	if err := store.Save(ctx, "tok-1", first, time.Hour); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if err := store.Save(ctx, "tok-2", second, time.Hour); err != nil {
		t.Fatalf("save second: %v", err)
	}

	if _, err := store.Consume(ctx, "tok-1"); err != domain.ErrChangeTokenInvalid {
		t.Fatalf("expected stale token rejected, got %v", err)
	}
	got, err := store.Consume(ctx, "tok-2")
	if err != nil {
		t.Fatalf("consume second: %v", err)
	}
	if got.NewEmail != "segunda@example.com" {
		t.Fatalf("unexpected ticket %+v", got)
	}
}

func TestTicketExpiry(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewChangeTicketStore(client)
	ctx := context.Background()

	ticket := ports.ChangeTicket{UserID: "u1", NewEmail: "nueva@example.com"}
	if err := store.Save(ctx, "tok-1", ticket, time.Minute); err != nil {
		t.Fatalf("save: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := store.Consume(ctx, "tok-1"); err != domain.ErrChangeTokenInvalid {
		t.Fatalf("expected ErrChangeTokenInvalid after TTL, got %v", err)
	}
}
