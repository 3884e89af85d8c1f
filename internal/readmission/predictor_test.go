package readmission

import (
	"context"
	stderrors "errors"
	"math"
	"testing"

	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/config"
	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/errors"
)

func testEngineConfig() config.EngineConfig {
	return config.EngineConfig{
		EnsembleLACEWeight:     0.35,
		EnsembleHOSPITALWeight: 0.35,
		EnsembleLogisticWeight: 0.30,
		LearningRate:           0.05,
	}
}

func newTestPredictor(t *testing.T) *Predictor {
	t.Helper()
	p, err := NewPredictor(context.Background(), testEngineConfig(),
		NewMemoryOutcomeRepository(), NewMemoryWeightsRepository())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	return p
}

func highRiskProfile() PatientProfile {
	return PatientProfile{
		PatientID:             "hr-1",
		Age:                   82,
		HemoglobinAtDischarge: 9.8,
		SodiumAtDischarge:     131.0,
		OncologyDiagnosis:     true,
		EmergencyAdmission:    true,
		LengthOfStayDays:      12,
		AdmissionsLast6Months: 3,
		EDVisitsLast6Months:   4,
		CharlsonIndex:         6,
		LivesAlone:            true,
		HasCaregiver:          false,
		MedicationCount:       15,
		FollowUpScheduled:     false,
	}
}

func lowRiskProfile() PatientProfile {
	return PatientProfile{
		PatientID:             "lr-1",
		Age:                   38,
		HemoglobinAtDischarge: 14.5,
		SodiumAtDischarge:     140.0,
		LengthOfStayDays:      1,
		MedicationCount:       2,
		FollowUpScheduled:     true,
		HasCaregiver:          true,
	}
}

func TestLogisticSeparatesRiskLevels(t *testing.T) {
	p := newTestPredictor(t)

	high, err := p.PredictLogistic(highRiskProfile())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	low, err := p.PredictLogistic(lowRiskProfile())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if high.Probability <= 0 || high.Probability >= 1 {
		t.Errorf("Probability %f outside (0,1)", high.Probability)
	}
	if low.Probability <= 0 || low.Probability >= 1 {
		t.Errorf("Probability %f outside (0,1)", low.Probability)
	}
	if high.Probability <= low.Probability {
		t.Errorf("Expected high-risk %f above low-risk %f", high.Probability, low.Probability)
	}
}

func TestTopRiskFactorsRankedByContribution(t *testing.T) {
	p := newTestPredictor(t)

	result, err := p.PredictLogistic(highRiskProfile())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.TopRiskFactors) != len(logisticFactors) {
		t.Fatalf("Expected %d factors, got %d", len(logisticFactors), len(result.TopRiskFactors))
	}

	for i := 1; i < len(result.TopRiskFactors); i++ {
		if result.TopRiskFactors[i].Contribution > result.TopRiskFactors[i-1].Contribution {
			t.Errorf("Factors not ranked descending at %d: %+v", i, result.TopRiskFactors)
		}
	}
	if result.TopRiskFactors[0].Contribution <= 0 {
		t.Errorf("Expected positive top contribution for high-risk patient, got %+v", result.TopRiskFactors[0])
	}
}

func TestEnsembleProbabilityBounded(t *testing.T) {
	p := newTestPredictor(t)

	for _, profile := range []PatientProfile{highRiskProfile(), lowRiskProfile(), {Age: 60}} {
		result, err := p.Predict(profile)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if result.EnsembleProbability < 0 || result.EnsembleProbability > 1 {
			t.Errorf("Ensemble probability %f outside [0,1]", result.EnsembleProbability)
		}
	}
}

func TestEnsembleBlendIsWeightedAverage(t *testing.T) {
	p := newTestPredictor(t)

	result, err := p.Predict(highRiskProfile())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := 0.35*result.LACE.ReadmissionProbability +
		0.35*result.HOSPITAL.ReadmissionProbability +
		0.30*result.Logistic.Probability
	if math.Abs(result.EnsembleProbability-want) > 1e-9 {
		t.Errorf("Expected blend %f, got %f", want, result.EnsembleProbability)
	}
}

func TestEnsembleRecommendations(t *testing.T) {
	p := newTestPredictor(t)

	result, err := p.Predict(highRiskProfile())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	wantRecs := []string{
		"Schedule follow-up within 7 days of discharge",
		"Arrange home health or caregiver support",
		"Recheck hemoglobin at first follow-up",
		"Pharmacist medication reconciliation for polypharmacy",
	}
	for _, want := range wantRecs {
		found := false
		for _, rec := range result.Recommendations {
			if rec == want {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected recommendation %q, got %v", want, result.Recommendations)
		}
	}

	seen := make(map[string]int)
	for _, rec := range result.Recommendations {
		seen[rec]++
	}
	for rec, n := range seen {
		if n > 1 {
			t.Errorf("Recommendation %q appears %d times", rec, n)
		}
	}

	low, err := p.Predict(lowRiskProfile())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(low.Recommendations) != 0 {
		t.Errorf("Expected no recommendations for low-risk patient, got %v", low.Recommendations)
	}
}

func TestUpdateFromPatientOutcomeChangesWeights(t *testing.T) {
	p := newTestPredictor(t)
	before := p.Weights()

	if err := p.UpdateFromPatientOutcome(context.Background(), highRiskProfile(), true); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	after := p.Weights()
	changed := before.Bias != after.Bias
	for name := range before.Factors {
		if before.Factors[name] != after.Factors[name] {
			changed = true
		}
	}
	if !changed {
		t.Error("Expected at least one weight to change")
	}
}

func TestWeightsPersistAcrossInstances(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryWeightsRepository()

	first, err := NewPredictor(ctx, testEngineConfig(), NewMemoryOutcomeRepository(), store)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := first.UpdateFromPatientOutcome(ctx, highRiskProfile(), true); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	trained := first.Weights()

	second, err := NewPredictor(ctx, testEngineConfig(), NewMemoryOutcomeRepository(), store)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	hydrated := second.Weights()

	if hydrated.Bias != trained.Bias {
		t.Errorf("Expected hydrated bias %f, got %f", trained.Bias, hydrated.Bias)
	}
	defaults := DefaultWeights()
	if hydrated.Bias == defaults.Bias {
		t.Error("Expected hydrated weights to differ from defaults after an update")
	}
}

func TestTrainOnSyntheticData(t *testing.T) {
	p := newTestPredictor(t)

	result, err := p.TrainOnSyntheticData(context.Background(), 3)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Accuracy <= 0.5 {
		t.Errorf("Expected accuracy above chance, got %f", result.Accuracy)
	}
	if result.FinalLoss <= 0 || math.IsNaN(result.FinalLoss) || math.IsInf(result.FinalLoss, 0) {
		t.Errorf("Expected finite positive loss, got %f", result.FinalLoss)
	}
}

func TestTrainValidatesEpochs(t *testing.T) {
	p := newTestPredictor(t)

	if _, err := p.TrainOnSyntheticData(context.Background(), 0); !stderrors.Is(err, errors.ErrValidation) {
		t.Errorf("Expected ErrValidation, got %v", err)
	}
}

func TestSyntheticDatasetShape(t *testing.T) {
	dataset := SyntheticDataset()

	if len(dataset) != 240 {
		t.Fatalf("Expected 240 profiles, got %d", len(dataset))
	}

	readmitted := 0
	for _, ex := range dataset {
		if ex.Profile.Age < 30 || ex.Profile.Age > 85 {
			t.Errorf("Age %d outside [30,85]", ex.Profile.Age)
		}
		if ex.WasReadmitted {
			readmitted++
		}
	}
	if readmitted == 0 || readmitted == len(dataset) {
		t.Errorf("Expected both classes, got %d/%d readmitted", readmitted, len(dataset))
	}

	// Seeded generator is reproducible
	again := SyntheticDataset()
	for i := range dataset {
		if dataset[i].WasReadmitted != again[i].WasReadmitted {
			t.Fatal("Expected deterministic labels across calls")
		}
	}
}

func TestOutcomeLogAndMetrics(t *testing.T) {
	p := newTestPredictor(t)
	ctx := context.Background()

	outcomes := []OutcomeRecord{
		{PatientID: "p1", PredictedProbability: 0.9, ActualReadmitted: true},
		{PatientID: "p2", PredictedProbability: 0.8, ActualReadmitted: true},
		{PatientID: "p3", PredictedProbability: 0.2, ActualReadmitted: false},
		{PatientID: "p4", PredictedProbability: 0.1, ActualReadmitted: false},
	}
	for _, rec := range outcomes {
		if err := p.RecordOutcome(ctx, rec); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	log, err := p.GetOutcomeLog(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(log) != 4 {
		t.Errorf("Expected 4 records, got %d", len(log))
	}
	if log[0].ID == "" || log[0].RecordedAt.IsZero() {
		t.Error("Expected assigned ID and timestamp")
	}

	m, err := p.GetPerformanceMetrics(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if m.AUC != 1.0 {
		t.Errorf("Expected AUC 1.0 for perfectly separated log, got %f", m.AUC)
	}
	if m.BrierScore >= 0.25 {
		t.Errorf("Expected Brier below uninformative 0.25, got %f", m.BrierScore)
	}
	if m.SampleCount != 4 {
		t.Errorf("Expected sample count 4, got %d", m.SampleCount)
	}
	if !m.LowConfidence {
		t.Error("Expected low-confidence flag below 10 samples")
	}
}

func TestMetricsRequireOutcomes(t *testing.T) {
	p := newTestPredictor(t)

	_, err := p.GetPerformanceMetrics(context.Background())
	if !stderrors.Is(err, errors.ErrInsufficientData) {
		t.Errorf("Expected ErrInsufficientData, got %v", err)
	}
}

func TestRecordOutcomeValidation(t *testing.T) {
	p := newTestPredictor(t)
	ctx := context.Background()

	err := p.RecordOutcome(ctx, OutcomeRecord{PredictedProbability: 0.5, ActualReadmitted: true})
	if !stderrors.Is(err, errors.ErrValidation) {
		t.Errorf("Expected ErrValidation for missing patient_id, got %v", err)
	}

	err = p.RecordOutcome(ctx, OutcomeRecord{PatientID: "p1", PredictedProbability: 1.5})
	if !stderrors.Is(err, errors.ErrValidation) {
		t.Errorf("Expected ErrValidation for probability above 1, got %v", err)
	}

	log, _ := p.GetOutcomeLog(ctx)
	if len(log) != 0 {
		t.Errorf("Expected no records after failed calls, got %d", len(log))
	}
}

func TestResetModelRestoresDefaults(t *testing.T) {
	p := newTestPredictor(t)
	ctx := context.Background()

	if _, err := p.TrainOnSyntheticData(ctx, 2); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := p.RecordOutcome(ctx, OutcomeRecord{PatientID: "p1", PredictedProbability: 0.7, ActualReadmitted: true}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := p.ResetModel(ctx); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	log, err := p.GetOutcomeLog(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(log) != 0 {
		t.Errorf("Expected empty log after reset, got %d records", len(log))
	}

	defaults := DefaultWeights()
	got := p.Weights()
	if got.Bias != defaults.Bias {
		t.Errorf("Expected default bias %f, got %f", defaults.Bias, got.Bias)
	}
	for name, w := range defaults.Factors {
		if got.Factors[name] != w {
			t.Errorf("Expected default weight %f for %s, got %f", w, name, got.Factors[name])
		}
	}
}
