package readmission

import (
	"context"
	"sync"
)

// OutcomeRepository defines storage for the append-only outcome log
type OutcomeRepository interface {
	Append(ctx context.Context, rec OutcomeRecord) error
	List(ctx context.Context) ([]OutcomeRecord, error)
	Clear(ctx context.Context) error
}

// WeightsRepository persists the logistic-model coefficients.
// Load returns (nil, nil) when no weights have been saved.
type WeightsRepository interface {
	Load(ctx context.Context) (*ModelWeights, error)
	Save(ctx context.Context, w ModelWeights) error
	Clear(ctx context.Context) error
}

// MemoryOutcomeRepository is the in-memory outcome log, used in tests
// and in deployments without a database.
type MemoryOutcomeRepository struct {
	mu      sync.Mutex
	records []OutcomeRecord
}

// NewMemoryOutcomeRepository creates an empty in-memory outcome log
func NewMemoryOutcomeRepository() *MemoryOutcomeRepository {
	return &MemoryOutcomeRepository{}
}

func (r *MemoryOutcomeRepository) Append(ctx context.Context, rec OutcomeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, rec)
	return nil
}

func (r *MemoryOutcomeRepository) List(ctx context.Context) ([]OutcomeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]OutcomeRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *MemoryOutcomeRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = nil
	return nil
}

// MemoryWeightsRepository is the in-memory weights store
type MemoryWeightsRepository struct {
	mu      sync.Mutex
	weights *ModelWeights
}

// NewMemoryWeightsRepository creates an empty in-memory weights store
func NewMemoryWeightsRepository() *MemoryWeightsRepository {
	return &MemoryWeightsRepository{}
}

func (r *MemoryWeightsRepository) Load(ctx context.Context) (*ModelWeights, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.weights == nil {
		return nil, nil
	}
	copied := r.weights.Clone()
	return &copied, nil
}

func (r *MemoryWeightsRepository) Save(ctx context.Context, w ModelWeights) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := w.Clone()
	r.weights = &copied
	return nil
}

func (r *MemoryWeightsRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.weights = nil
	return nil
}
