package wound

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/errors"
	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/metrics"
)

// PostgresCorrectionRepository persists the correction log in Postgres
type PostgresCorrectionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCorrectionRepository creates a Postgres-backed correction log
func NewPostgresCorrectionRepository(pool *pgxpool.Pool) *PostgresCorrectionRepository {
	return &PostgresCorrectionRepository{pool: pool}
}

var _ CorrectionRepository = (*PostgresCorrectionRepository)(nil)

func (r *PostgresCorrectionRepository) Append(ctx context.Context, rec CorrectionRecord) error {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("correction_append", time.Since(start)) }()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO cds.wound_corrections (id, wound_id, predicted_phase, corrected_phase, corrected_by, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.WoundID, rec.PredictedPhase, rec.CorrectedPhase, rec.CorrectedBy, rec.RecordedAt,
	)
	if err != nil {
		return errors.Wrap(err, "failed to append wound correction")
	}

	return nil
}

func (r *PostgresCorrectionRepository) List(ctx context.Context) ([]CorrectionRecord, error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("correction_list", time.Since(start)) }()

	rows, err := r.pool.Query(ctx, `
		SELECT id, wound_id, predicted_phase, corrected_phase, corrected_by, recorded_at
		FROM cds.wound_corrections
		ORDER BY recorded_at`,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wound corrections")
	}
	defer rows.Close()

	var records []CorrectionRecord
	for rows.Next() {
		var rec CorrectionRecord
		if err := rows.Scan(&rec.ID, &rec.WoundID, &rec.PredictedPhase, &rec.CorrectedPhase, &rec.CorrectedBy, &rec.RecordedAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan wound correction")
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read wound corrections")
	}

	return records, nil
}

func (r *PostgresCorrectionRepository) Clear(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cds.wound_corrections`)
	if err != nil {
		return errors.Wrap(err, "failed to clear wound corrections")
	}
	return nil
}
