package repositories

import (
	"context"
	"sync"
	"time"

	"tripzy/internal/domain"
	"tripzy/internal/domain/models"
)

type memoryEntry struct {
	draft     models.BookingDraft
	expiresAt time.Time
}

// MemoryDraftRepo is the single-process draft store used when Redis is not configured.
type MemoryDraftRepo struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryDraftRepo(ttl time.Duration) *MemoryDraftRepo {
	return &MemoryDraftRepo{
		ttl:     ttl,
		entries: map[string]memoryEntry{},
		now:     time.Now,
	}
}

func (r *MemoryDraftRepo) Get(_ context.Context, key string) (models.BookingDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[key]
	if !ok {
		return models.BookingDraft{}, domain.NotFoundError{Resource: "draft"}
	}
	if r.ttl > 0 && r.now().After(e.expiresAt) {
		delete(r.entries, key)
		return models.BookingDraft{}, domain.NotFoundError{Resource: "draft"}
	}
	return copyDraft(e.draft), nil
}

func (r *MemoryDraftRepo) Save(_ context.Context, key string, draft models.BookingDraft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[key] = memoryEntry{draft: copyDraft(draft), expiresAt: r.now().Add(r.ttl)}
	r.sweepLocked()
	return nil
}

func (r *MemoryDraftRepo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
	return nil
}

func (r *MemoryDraftRepo) sweepLocked() {
	if r.ttl <= 0 {
		return
	}
	now := r.now()
	for k, e := range r.entries {
		if now.After(e.expiresAt) {
			delete(r.entries, k)
		}
	}
}

// copyDraft detaches the availability pointer so callers cannot mutate stored state.
func copyDraft(d models.BookingDraft) models.BookingDraft {
	if d.Availability != nil {
		a := *d.Availability
		d.Availability = &a
	}
	return d
}
