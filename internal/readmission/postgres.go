package readmission

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/errors"
	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/metrics"
)

const logisticModelName = "readmission_logistic"

// PostgresOutcomeRepository persists the outcome log in Postgres
type PostgresOutcomeRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresOutcomeRepository creates a Postgres-backed outcome log
func NewPostgresOutcomeRepository(pool *pgxpool.Pool) *PostgresOutcomeRepository {
	return &PostgresOutcomeRepository{pool: pool}
}

var _ OutcomeRepository = (*PostgresOutcomeRepository)(nil)

func (r *PostgresOutcomeRepository) Append(ctx context.Context, rec OutcomeRecord) error {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("outcome_append", time.Since(start)) }()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO cds.readmission_outcomes (id, patient_id, predicted_probability, actual_readmitted, days_to_readmission, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.PatientID, rec.PredictedProbability, rec.ActualReadmitted, rec.DaysToReadmission, rec.RecordedAt,
	)
	if err != nil {
		return errors.Wrap(err, "failed to append readmission outcome")
	}

	return nil
}

func (r *PostgresOutcomeRepository) List(ctx context.Context) ([]OutcomeRecord, error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("outcome_list", time.Since(start)) }()

	rows, err := r.pool.Query(ctx, `
		SELECT id, patient_id, predicted_probability, actual_readmitted, days_to_readmission, recorded_at
		FROM cds.readmission_outcomes
		ORDER BY recorded_at`,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list readmission outcomes")
	}
	defer rows.Close()

	var records []OutcomeRecord
	for rows.Next() {
		var rec OutcomeRecord
		if err := rows.Scan(&rec.ID, &rec.PatientID, &rec.PredictedProbability, &rec.ActualReadmitted, &rec.DaysToReadmission, &rec.RecordedAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan readmission outcome")
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read readmission outcomes")
	}

	return records, nil
}

func (r *PostgresOutcomeRepository) Clear(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cds.readmission_outcomes`)
	if err != nil {
		return errors.Wrap(err, "failed to clear readmission outcomes")
	}
	return nil
}

// PostgresWeightsRepository persists model weights as a JSONB blob
type PostgresWeightsRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresWeightsRepository creates a Postgres-backed weights store
func NewPostgresWeightsRepository(pool *pgxpool.Pool) *PostgresWeightsRepository {
	return &PostgresWeightsRepository{pool: pool}
}

var _ WeightsRepository = (*PostgresWeightsRepository)(nil)

func (r *PostgresWeightsRepository) Load(ctx context.Context) (*ModelWeights, error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("weights_load", time.Since(start)) }()

	var raw []byte
	err := r.pool.QueryRow(ctx, `
		SELECT weights FROM cds.model_weights WHERE model_name = $1`,
		logisticModelName,
	).Scan(&raw)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load model weights")
	}

	var weights ModelWeights
	if err := json.Unmarshal(raw, &weights); err != nil {
		return nil, errors.Wrap(err, "failed to decode model weights")
	}

	return &weights, nil
}

func (r *PostgresWeightsRepository) Save(ctx context.Context, w ModelWeights) error {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("weights_save", time.Since(start)) }()

	raw, err := json.Marshal(w)
	if err != nil {
		return errors.Wrap(err, "failed to encode model weights")
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO cds.model_weights (model_name, weights, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (model_name) DO UPDATE SET
			weights = EXCLUDED.weights,
			updated_at = NOW()`,
		logisticModelName, raw,
	)
	if err != nil {
		return errors.Wrap(err, "failed to store model weights")
	}

	return nil
}

func (r *PostgresWeightsRepository) Clear(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cds.model_weights WHERE model_name = $1`, logisticModelName)
	if err != nil {
		return errors.Wrap(err, "failed to clear model weights")
	}
	return nil
}
