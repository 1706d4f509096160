package session

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore_PutGet(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Close()
	ctx := context.Background()

	if err := s.Put(ctx, 1, &Session{State: StateChoosingService, Source: "ads"}); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := s.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.State != StateChoosingService || got.Source != "ads" {
		t.Fatalf("got %+v", got)
	}
}

func TestMemoryStore_MissingIsNil(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Close()

	got, err := s.Get(context.Background(), 99)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil session, got %+v", got)
	}
}

func TestMemoryStore_LastWriteWins(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Close()
	ctx := context.Background()

	s.Put(ctx, 1, &Session{State: StateChoosingService})
	s.Put(ctx, 1, &Session{State: StateChoosingDay, Date: "2025-06-02"})

	got, _ := s.Get(ctx, 1)
	if got.State != StateChoosingDay || got.Date != "2025-06-02" {
		t.Fatalf("got %+v", got)
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	s := NewMemoryStore(20 * time.Millisecond)
	defer s.Close()
	ctx := context.Background()

	s.Put(ctx, 1, &Session{State: StateChoosingTime})
	time.Sleep(40 * time.Millisecond)

	got, err := s.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected expired session to be gone, got %+v", got)
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Close()
	ctx := context.Background()

	s.Put(ctx, 1, &Session{State: StateAdmin})
	if err := s.Delete(ctx, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, _ := s.Get(ctx, 1); got != nil {
		t.Fatalf("expected nil after delete, got %+v", got)
	}
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Close()
	ctx := context.Background()

	s.Put(ctx, 1, &Session{State: StateChoosingDay})

	first, _ := s.Get(ctx, 1)
	first.State = StateAdmin

	second, _ := s.Get(ctx, 1)
	if second.State != StateChoosingDay {
		t.Fatalf("store entry mutated through returned pointer")
	}
}
