package lab

import (
	"context"
	"sync"
)

// BaselineRepository defines the storage interface for patient baselines.
// Get returns (nil, nil) when no baseline exists for the pair.
type BaselineRepository interface {
	Get(ctx context.Context, patientID, testCode string) (*PatientBaseline, error)
	Put(ctx context.Context, baseline *PatientBaseline) error
	Clear(ctx context.Context) error
}

// MemoryBaselineRepository is the in-memory implementation, used in tests
// and in deployments without a database.
type MemoryBaselineRepository struct {
	mu        sync.Mutex
	baselines map[string]PatientBaseline
}

// NewMemoryBaselineRepository creates an empty in-memory baseline store
func NewMemoryBaselineRepository() *MemoryBaselineRepository {
	return &MemoryBaselineRepository{baselines: make(map[string]PatientBaseline)}
}

func baselineKey(patientID, testCode string) string {
	return patientID + "/" + testCode
}

func (r *MemoryBaselineRepository) Get(ctx context.Context, patientID, testCode string) (*PatientBaseline, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.baselines[baselineKey(patientID, testCode)]
	if !ok {
		return nil, nil
	}
	copied := b
	return &copied, nil
}

func (r *MemoryBaselineRepository) Put(ctx context.Context, baseline *PatientBaseline) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.baselines[baselineKey(baseline.PatientID, baseline.TestCode)] = *baseline
	return nil
}

func (r *MemoryBaselineRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.baselines = make(map[string]PatientBaseline)
	return nil
}
