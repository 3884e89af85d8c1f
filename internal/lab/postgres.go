package lab

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/errors"
	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/metrics"
)

// PostgresBaselineRepository persists patient baselines in Postgres
type PostgresBaselineRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBaselineRepository creates a Postgres-backed baseline store
func NewPostgresBaselineRepository(pool *pgxpool.Pool) *PostgresBaselineRepository {
	return &PostgresBaselineRepository{pool: pool}
}

var _ BaselineRepository = (*PostgresBaselineRepository)(nil)

func (r *PostgresBaselineRepository) Get(ctx context.Context, patientID, testCode string) (*PatientBaseline, error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("baseline_get", time.Since(start)) }()

	baseline := &PatientBaseline{}
	err := r.pool.QueryRow(ctx, `
		SELECT patient_id, test_code, sample_count, mean, m2
		FROM cds.patient_baselines
		WHERE patient_id = $1 AND test_code = $2`,
		patientID, testCode,
	).Scan(&baseline.PatientID, &baseline.TestCode, &baseline.SampleCount, &baseline.Mean, &baseline.M2)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get patient baseline")
	}

	return baseline, nil
}

func (r *PostgresBaselineRepository) Put(ctx context.Context, baseline *PatientBaseline) error {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("baseline_put", time.Since(start)) }()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO cds.patient_baselines (patient_id, test_code, sample_count, mean, m2, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (patient_id, test_code) DO UPDATE SET
			sample_count = EXCLUDED.sample_count,
			mean = EXCLUDED.mean,
			m2 = EXCLUDED.m2,
			updated_at = NOW()`,
		baseline.PatientID, baseline.TestCode, baseline.SampleCount, baseline.Mean, baseline.M2,
	)
	if err != nil {
		return errors.Wrap(err, "failed to store patient baseline")
	}

	return nil
}

func (r *PostgresBaselineRepository) Clear(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cds.patient_baselines`)
	if err != nil {
		return errors.Wrap(err, "failed to clear patient baselines")
	}
	return nil
}
