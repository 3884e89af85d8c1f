package wound

import (
	"context"
	"sync"
)

// CorrectionRepository defines the storage interface for the append-only
// clinician correction log.
type CorrectionRepository interface {
	Append(ctx context.Context, rec CorrectionRecord) error
	List(ctx context.Context) ([]CorrectionRecord, error)
	Clear(ctx context.Context) error
}

// MemoryCorrectionRepository is the in-memory implementation, used in
// tests and in deployments without a database.
type MemoryCorrectionRepository struct {
	mu      sync.Mutex
	records []CorrectionRecord
}

// NewMemoryCorrectionRepository creates an empty in-memory correction log
func NewMemoryCorrectionRepository() *MemoryCorrectionRepository {
	return &MemoryCorrectionRepository{}
}

func (r *MemoryCorrectionRepository) Append(ctx context.Context, rec CorrectionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, rec)
	return nil
}

func (r *MemoryCorrectionRepository) List(ctx context.Context) ([]CorrectionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]CorrectionRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *MemoryCorrectionRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = nil
	return nil
}
