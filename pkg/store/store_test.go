package store

import (
	"context"
	"sync"
	"testing"

	"github.com/matzehuels/svgtree/pkg/errors"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	data := []byte(`width = 10`)
	r, err := s.Put(ctx, "toml", data)
	if err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := ValidateID(r.ID); err != nil {
		t.Errorf("Put returned invalid id %q: %v", r.ID, err)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	data[0] = 'X'
	got, err := s.Get(ctx, r.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if string(got.Data) != "width = 10" || got.Format != "toml" {
		t.Errorf("Get = %+v", got)
	}

	if err := s.Delete(ctx, r.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := s.Get(ctx, r.ID); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Get after Delete error = %v, want NOT_FOUND", err)
	}
	if err := s.Delete(ctx, r.ID); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("second Delete error = %v, want NOT_FOUND", err)
	}
}

func TestMemoryStoreInvalidID(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	for _, id := range []string{"", "abc", "../etc/passwd"} {
		if _, err := s.Get(ctx, id); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("Get(%q) error = %v, want INVALID_INPUT", id, err)
		}
		if err := s.Delete(ctx, id); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("Delete(%q) error = %v, want INVALID_INPUT", id, err)
		}
	}
}

func TestMemoryStoreConcurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := s.Put(ctx, "json", []byte("{}"))
			if err != nil {
				t.Error(err)
				return
			}
			if _, err := s.Get(ctx, r.ID); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if s.Len() != 50 {
		t.Errorf("Len() = %d, want 50", s.Len())
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
