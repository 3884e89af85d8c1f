package readmission

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/config"
	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/errors"
	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/stats"
	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/types"
)

// Outcome logs below this size get a low-confidence flag on their AUC
const metricsMinSamples = 10

// Predictor runs the three risk models and maintains the mutable
// learning state: logistic weights and the confirmed-outcome log.
type Predictor struct {
	mu       sync.Mutex
	cfg      config.EngineConfig
	weights  ModelWeights
	outcomes OutcomeRepository
	store    WeightsRepository
}

// NewPredictor creates a predictor, hydrating weights from the store
// when a previous instance persisted them.
func NewPredictor(ctx context.Context, cfg config.EngineConfig, outcomes OutcomeRepository, store WeightsRepository) (*Predictor, error) {
	weights := DefaultWeights()
	if store != nil {
		persisted, err := store.Load(ctx)
		if err != nil {
			return nil, err
		}
		if persisted != nil {
			weights = persisted.Clone()
		}
	}

	return &Predictor{
		cfg:      cfg,
		weights:  weights,
		outcomes: outcomes,
		store:    store,
	}, nil
}

// Weights returns a copy of the current coefficient vector
func (p *Predictor) Weights() ModelWeights {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.weights.Clone()
}

// PredictLogistic scores the profile with the linear model alone
func (p *Predictor) PredictLogistic(profile PatientProfile) (LogisticResult, error) {
	if err := validateProfile(profile); err != nil {
		return LogisticResult{}, err
	}

	p.mu.Lock()
	w := p.weights.Clone()
	p.mu.Unlock()

	return logisticResult(w, profile), nil
}

// Predict runs all three models and blends them into one probability
func (p *Predictor) Predict(profile PatientProfile) (*EnsembleResult, error) {
	hospital, err := ComputeHOSPITALScore(profile)
	if err != nil {
		return nil, err
	}
	lace, err := ComputeLACEIndex(profile)
	if err != nil {
		return nil, err
	}
	logistic, err := p.PredictLogistic(profile)
	if err != nil {
		return nil, err
	}

	blended := stats.Clamp01(
		p.cfg.EnsembleLACEWeight*lace.ReadmissionProbability +
			p.cfg.EnsembleHOSPITALWeight*hospital.ReadmissionProbability +
			p.cfg.EnsembleLogisticWeight*logistic.Probability)

	return &EnsembleResult{
		HOSPITAL:            hospital,
		LACE:                lace,
		Logistic:            logistic,
		EnsembleProbability: blended,
		RiskLevel:           ensembleRiskLevel(blended),
		Recommendations:     dischargeRecommendations(profile),
	}, nil
}

func ensembleRiskLevel(prob float64) RiskLevel {
	switch {
	case prob < 0.10:
		return RiskLow
	case prob < 0.20:
		return RiskModerate
	case prob < 0.30:
		return RiskHigh
	default:
		return RiskVeryHigh
	}
}

// dischargeRecommendations maps triggered risk conditions to fixed
// intervention strings, deduplicated.
func dischargeRecommendations(profile PatientProfile) []string {
	var recs []string

	if !profile.FollowUpScheduled {
		recs = append(recs, "Schedule follow-up within 7 days of discharge")
	}
	if profile.LivesAlone && !profile.HasCaregiver {
		recs = append(recs, "Arrange home health or caregiver support")
	}
	if profile.HemoglobinAtDischarge > 0 && profile.HemoglobinAtDischarge < hospitalLowHemoglobin {
		recs = append(recs, "Recheck hemoglobin at first follow-up")
	}
	if profile.MedicationCount >= 10 {
		recs = append(recs, "Pharmacist medication reconciliation for polypharmacy")
	}

	seen := make(map[string]bool, len(recs))
	deduped := recs[:0]
	for _, rec := range recs {
		if seen[rec] {
			continue
		}
		seen[rec] = true
		deduped = append(deduped, rec)
	}
	return deduped
}

// UpdateFromPatientOutcome applies one online gradient step toward the
// confirmed outcome and persists the new weights.
func (p *Predictor) UpdateFromPatientOutcome(ctx context.Context, profile PatientProfile, actualReadmitted bool) error {
	if err := validateProfile(profile); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	gradientStep(&p.weights, featureVector(profile), actualReadmitted, p.cfg.LearningRate)
	return p.persistWeightsLocked(ctx)
}

// TrainOnSyntheticData runs online gradient updates over the synthetic
// dataset for the given number of epochs and reports fit quality.
func (p *Predictor) TrainOnSyntheticData(ctx context.Context, epochs int) (TrainingResult, error) {
	if epochs < 1 {
		return TrainingResult{}, errors.Validation("epochs must be at least 1", nil)
	}

	dataset := SyntheticDataset()

	p.mu.Lock()
	defer p.mu.Unlock()

	for epoch := 0; epoch < epochs; epoch++ {
		for _, ex := range dataset {
			gradientStep(&p.weights, featureVector(ex.Profile), ex.WasReadmitted, p.cfg.LearningRate)
		}
	}

	var loss float64
	correct := 0
	for _, ex := range dataset {
		predicted := logisticProbability(p.weights, featureVector(ex.Profile))
		loss += logLoss(predicted, ex.WasReadmitted)
		if (predicted >= 0.5) == ex.WasReadmitted {
			correct++
		}
	}

	if err := p.persistWeightsLocked(ctx); err != nil {
		return TrainingResult{}, err
	}

	return TrainingResult{
		Epochs:    epochs,
		Accuracy:  float64(correct) / float64(len(dataset)),
		FinalLoss: loss / float64(len(dataset)),
	}, nil
}

// logLoss is the per-example cross-entropy, with the prediction pinned
// away from 0 and 1 to keep the logarithm finite.
func logLoss(predicted float64, actual bool) float64 {
	const eps = 1e-12
	if predicted < eps {
		predicted = eps
	}
	if predicted > 1-eps {
		predicted = 1 - eps
	}
	if actual {
		return -math.Log(predicted)
	}
	return -math.Log(1 - predicted)
}

// RecordOutcome appends a confirmed outcome to the persisted log
func (p *Predictor) RecordOutcome(ctx context.Context, rec OutcomeRecord) error {
	if rec.PatientID == "" {
		return errors.Validation("patient_id is required", nil)
	}
	if rec.PredictedProbability < 0 || rec.PredictedProbability > 1 {
		return errors.Validation("predicted probability must be in [0,1]", nil)
	}

	if rec.ID == "" {
		rec.ID = types.NewID()
	}
	if rec.RecordedAt.IsZero() {
		rec.RecordedAt = time.Now().UTC()
	}

	return p.outcomes.Append(ctx, rec)
}

// GetOutcomeLog returns the full outcome log in append order
func (p *Predictor) GetOutcomeLog(ctx context.Context) ([]OutcomeRecord, error) {
	return p.outcomes.List(ctx)
}

// GetPerformanceMetrics computes Brier score and AUC over the log
func (p *Predictor) GetPerformanceMetrics(ctx context.Context) (PerformanceMetrics, error) {
	records, err := p.outcomes.List(ctx)
	if err != nil {
		return PerformanceMetrics{}, err
	}
	if len(records) == 0 {
		return PerformanceMetrics{}, errors.InsufficientData("no outcomes recorded")
	}

	predicted := make([]float64, len(records))
	actual := make([]bool, len(records))
	for i, rec := range records {
		predicted[i] = rec.PredictedProbability
		actual[i] = rec.ActualReadmitted
	}

	return PerformanceMetrics{
		BrierScore:    stats.BrierScore(predicted, actual),
		AUC:           stats.AUC(predicted, actual),
		SampleCount:   len(records),
		LowConfidence: len(records) < metricsMinSamples,
	}, nil
}

// ResetModel clears the outcome log and restores default weights
func (p *Predictor) ResetModel(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.outcomes.Clear(ctx); err != nil {
		return err
	}
	if p.store != nil {
		if err := p.store.Clear(ctx); err != nil {
			return err
		}
	}

	p.weights = DefaultWeights()
	return nil
}

func (p *Predictor) persistWeightsLocked(ctx context.Context) error {
	if p.store == nil {
		return nil
	}
	return p.store.Save(ctx, p.weights)
}
