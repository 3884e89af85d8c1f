package readmission

import (
	"sort"

	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/stats"
)

// factorDef names one logistic-model input and how to normalize it to
// roughly [0,1] from the raw profile.
type factorDef struct {
	name          string
	defaultWeight float64
	value         func(PatientProfile) float64
}

var logisticFactors = []factorDef{
	{"age", 1.2, func(p PatientProfile) float64 {
		return capUnit(float64(p.Age) / 100.0)
	}},
	{"comorbidity_burden", 1.5, func(p PatientProfile) float64 {
		return capUnit(float64(p.CharlsonIndex) / 10.0)
	}},
	{"lives_alone_without_caregiver", 0.8, func(p PatientProfile) float64 {
		if p.LivesAlone && !p.HasCaregiver {
			return 1
		}
		return 0
	}},
	{"medication_count", 1.0, func(p PatientProfile) float64 {
		return capUnit(float64(p.MedicationCount) / 20.0)
	}},
	{"prior_admissions", 1.4, func(p PatientProfile) float64 {
		return capUnit(float64(p.AdmissionsLast6Months) / 5.0)
	}},
	{"ed_visits", 0.9, func(p PatientProfile) float64 {
		return capUnit(float64(p.EDVisitsLast6Months) / 5.0)
	}},
	{"no_follow_up", 1.1, func(p PatientProfile) float64 {
		if !p.FollowUpScheduled {
			return 1
		}
		return 0
	}},
	{"length_of_stay", 0.7, func(p PatientProfile) float64 {
		return capUnit(float64(p.LengthOfStayDays) / 14.0)
	}},
}

const defaultBias = -3.0

func capUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

// DefaultWeights returns the hand-tuned starting coefficients
func DefaultWeights() ModelWeights {
	factors := make(map[string]float64, len(logisticFactors))
	for _, f := range logisticFactors {
		factors[f.name] = f.defaultWeight
	}
	return ModelWeights{Bias: defaultBias, Factors: factors}
}

// featureVector extracts the normalized factor values in definition order
func featureVector(p PatientProfile) []float64 {
	xs := make([]float64, len(logisticFactors))
	for i, f := range logisticFactors {
		xs[i] = f.value(p)
	}
	return xs
}

// logisticProbability runs the linear model through the sigmoid
func logisticProbability(w ModelWeights, xs []float64) float64 {
	z := w.Bias
	for i, f := range logisticFactors {
		z += w.Factors[f.name] * xs[i]
	}
	return stats.Sigmoid(z)
}

// logisticResult builds the prediction plus the ranked factor breakdown
func logisticResult(w ModelWeights, p PatientProfile) LogisticResult {
	xs := featureVector(p)

	factors := make([]RiskFactor, 0, len(logisticFactors))
	for i, f := range logisticFactors {
		factors = append(factors, RiskFactor{
			Name:         f.name,
			Contribution: w.Factors[f.name] * xs[i],
		})
	}
	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].Contribution > factors[j].Contribution
	})

	return LogisticResult{
		Probability:    logisticProbability(w, xs),
		TopRiskFactors: factors,
	}
}

// gradientStep nudges the weights toward the observed outcome using the
// log-loss gradient. Mutates w in place.
func gradientStep(w *ModelWeights, xs []float64, actual bool, learningRate float64) {
	predicted := logisticProbability(*w, xs)

	y := 0.0
	if actual {
		y = 1.0
	}
	residual := y - predicted

	w.Bias += learningRate * residual
	for i, f := range logisticFactors {
		w.Factors[f.name] += learningRate * residual * xs[i]
	}
}
