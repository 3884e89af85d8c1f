package readmission

import (
	"time"

	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/types"
)

// PatientProfile is the discharge-time snapshot used for prediction.
// Input only.
type PatientProfile struct {
	PatientID string `json:"patient_id,omitempty"`

	Age int    `json:"age"`
	Sex string `json:"sex,omitempty"`

	HemoglobinAtDischarge float64 `json:"hemoglobin_at_discharge"`
	SodiumAtDischarge     float64 `json:"sodium_at_discharge"`

	OncologyDiagnosis  bool `json:"oncology_diagnosis"`
	EmergencyAdmission bool `json:"emergency_admission"`
	CardiacProcedure   bool `json:"cardiac_procedure"`

	LengthOfStayDays      int `json:"length_of_stay_days"`
	AdmissionsLast6Months int `json:"admissions_last_6_months"`
	EDVisitsLast6Months   int `json:"ed_visits_last_6_months"`
	CharlsonIndex         int `json:"charlson_index"`

	LivesAlone        bool `json:"lives_alone"`
	HasCaregiver      bool `json:"has_caregiver"`
	MedicationCount   int  `json:"medication_count"`
	FollowUpScheduled bool `json:"follow_up_scheduled"`
}

// RiskLevel bands a readmission score or probability
type RiskLevel string

const (
	RiskLow          RiskLevel = "LOW"
	RiskIntermediate RiskLevel = "INTERMEDIATE"
	RiskModerate     RiskLevel = "MODERATE"
	RiskHigh         RiskLevel = "HIGH"
	RiskVeryHigh     RiskLevel = "VERY_HIGH"
)

// HOSPITALResult is the HOSPITAL score breakdown
type HOSPITALResult struct {
	Components             map[string]int `json:"components"`
	TotalScore             int            `json:"total_score"`
	MaxScore               int            `json:"max_score"`
	RiskLevel              RiskLevel      `json:"risk_level"`
	ReadmissionProbability float64        `json:"readmission_probability"`
}

// LACEResult is the LACE index breakdown
type LACEResult struct {
	Components             map[string]int `json:"components"`
	TotalScore             int            `json:"total_score"`
	MaxScore               int            `json:"max_score"`
	RiskLevel              RiskLevel      `json:"risk_level"`
	ReadmissionProbability float64        `json:"readmission_probability"`
}

// RiskFactor is one named logistic-model contribution
type RiskFactor struct {
	Name         string  `json:"name"`
	Contribution float64 `json:"contribution"`
}

// LogisticResult is the linear-model prediction
type LogisticResult struct {
	Probability    float64      `json:"probability"`
	TopRiskFactors []RiskFactor `json:"top_risk_factors"`
}

// EnsembleResult blends the three sub-models
type EnsembleResult struct {
	HOSPITAL            HOSPITALResult `json:"hospital"`
	LACE                LACEResult     `json:"lace"`
	Logistic            LogisticResult `json:"logistic"`
	EnsembleProbability float64        `json:"ensemble_probability"`
	RiskLevel           RiskLevel      `json:"risk_level"`
	Recommendations     []string       `json:"recommendations"`
}

// ModelWeights is the mutable coefficient vector of the logistic model,
// keyed by factor name, plus the intercept.
type ModelWeights struct {
	Bias    float64            `json:"bias"`
	Factors map[string]float64 `json:"factors"`
}

// Clone returns an independent copy
func (w ModelWeights) Clone() ModelWeights {
	factors := make(map[string]float64, len(w.Factors))
	for k, v := range w.Factors {
		factors[k] = v
	}
	return ModelWeights{Bias: w.Bias, Factors: factors}
}

// OutcomeRecord logs a confirmed readmission outcome against its
// prediction. Append-only.
type OutcomeRecord struct {
	ID                   types.ID  `json:"id"`
	PatientID            string    `json:"patient_id"`
	PredictedProbability float64   `json:"predicted_probability"`
	ActualReadmitted     bool      `json:"actual_readmitted"`
	DaysToReadmission    *int      `json:"days_to_readmission,omitempty"`
	RecordedAt           time.Time `json:"recorded_at"`
}

// PerformanceMetrics summarizes calibration over the outcome log.
// LowConfidence flags logs too small for the AUC to mean much.
type PerformanceMetrics struct {
	BrierScore    float64 `json:"brier_score"`
	AUC           float64 `json:"auc"`
	SampleCount   int     `json:"sample_count"`
	LowConfidence bool    `json:"low_confidence"`
}

// SyntheticPatient is one labeled training example
type SyntheticPatient struct {
	Profile       PatientProfile `json:"profile"`
	WasReadmitted bool           `json:"was_readmitted"`
}

// TrainingResult reports a training run over the synthetic dataset
type TrainingResult struct {
	Epochs    int     `json:"epochs"`
	Accuracy  float64 `json:"accuracy"`
	FinalLoss float64 `json:"final_loss"`
}
