package lab

import (
	"time"
)

// Category groups lab tests into clinical panels
type Category string

const (
	CategoryCBC          Category = "CBC"
	CategoryBMP          Category = "BMP"
	CategoryLFT          Category = "LFT"
	CategoryCoagulation  Category = "COAGULATION"
	CategoryCardiac      Category = "CARDIAC"
	CategoryInflammatory Category = "INFLAMMATORY"
	CategoryEndocrine    Category = "ENDOCRINE"
	CategoryLipid        Category = "LIPID"
	CategoryUrinalysis   Category = "URINALYSIS"
	CategoryBloodGas     Category = "BLOOD_GAS"
)

// Flag classifies a value against its reference range
type Flag string

const (
	FlagCriticalLow  Flag = "CRITICAL_LOW"
	FlagLow          Flag = "LOW"
	FlagNormal       Flag = "NORMAL"
	FlagHigh         Flag = "HIGH"
	FlagCriticalHigh Flag = "CRITICAL_HIGH"
)

// Sex of the patient, for sex-adjusted reference ranges
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// LabValue is a single immutable observation
type LabValue struct {
	TestCode    string    `json:"test_code"`
	Value       float64   `json:"value"`
	Unit        string    `json:"unit"`
	CollectedAt time.Time `json:"collected_at"`
	PatientID   string    `json:"patient_id"`
}

// Demographics carries the optional patient context used to resolve
// sex- and age-adjusted reference ranges. Zero values mean unknown.
type Demographics struct {
	Age int `json:"age,omitempty"`
	Sex Sex `json:"sex,omitempty"`
}

// Band is a low/high pair used for range overrides
type Band struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// ReferenceRange defines the population bounds for one test
type ReferenceRange struct {
	TestCode     string   `json:"test_code"`
	TestName     string   `json:"test_name"`
	Unit         string   `json:"unit"`
	Category     Category `json:"category"`
	NormalLow    float64  `json:"normal_low"`
	NormalHigh   float64  `json:"normal_high"`
	CriticalLow  float64  `json:"critical_low"`
	CriticalHigh float64  `json:"critical_high"`

	// Optional demographic overrides of the normal band. Critical bounds
	// are not demographic-adjusted.
	Male      *Band `json:"male,omitempty"`
	Female    *Band `json:"female,omitempty"`
	Geriatric *Band `json:"geriatric,omitempty"`
}

// InterpretedResult is the outcome of flagging one value
type InterpretedResult struct {
	TestCode             string  `json:"test_code"`
	TestName             string  `json:"test_name"`
	Value                float64 `json:"value"`
	Unit                 string  `json:"unit"`
	Flag                 Flag    `json:"flag"`
	IsCritical           bool    `json:"is_critical"`
	ReferenceRange       string  `json:"reference_range"`
	Interpretation       string  `json:"interpretation"`
	ClinicalSignificance string  `json:"clinical_significance,omitempty"`
}

// AlertType classifies a delta-check result
type AlertType string

const (
	AlertNone          AlertType = "NONE"
	AlertRapidIncrease AlertType = "RAPID_INCREASE"
	AlertRapidDecrease AlertType = "RAPID_DECREASE"
)

// DeltaResult compares two consecutive values of the same test
type DeltaResult struct {
	TestCode      string    `json:"test_code"`
	PercentChange float64   `json:"percent_change"`
	AlertType     AlertType `json:"alert_type"`
	Message       string    `json:"message"`
}

// TrendDirection classifies the slope of a value series
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "INCREASING"
	TrendDecreasing TrendDirection = "DECREASING"
	TrendStable     TrendDirection = "STABLE"
)

// TrendResult is the outcome of a least-squares trend analysis
type TrendResult struct {
	TestCode      string         `json:"test_code"`
	Direction     TrendDirection `json:"direction"`
	Slope         float64        `json:"slope"`
	RSquared      float64        `json:"r_squared"`
	PredictedNext float64        `json:"predicted_next"`
	Message       string         `json:"message"`
}

// DerivedValue is a compound clinical value with its interpretation
type DerivedValue struct {
	Name           string  `json:"name"`
	Value          float64 `json:"value"`
	Unit           string  `json:"unit"`
	Interpretation string  `json:"interpretation"`
}

// HepaticPattern classifies a liver panel
type HepaticPattern string

const (
	PatternHepatocellular HepaticPattern = "HEPATOCELLULAR"
	PatternCholestatic    HepaticPattern = "CHOLESTATIC"
	PatternMixed          HepaticPattern = "MIXED"
	PatternNormal         HepaticPattern = "NORMAL"
)

// HepaticPanelResult interprets a liver function panel as a whole
type HepaticPanelResult struct {
	Pattern              HepaticPattern `json:"pattern"`
	RRatio               float64        `json:"r_ratio"`
	Interpretation       string         `json:"interpretation"`
	ClinicalCorrelations []string       `json:"clinical_correlations"`
	SuggestedFollowUp    []string       `json:"suggested_follow_up"`
}

// Urgency ranks how fast a correlation finding needs attention
type Urgency string

const (
	UrgencyRoutine Urgency = "routine"
	UrgencyUrgent  Urgency = "urgent"
	UrgencyStat    Urgency = "stat"
)

// Correlation is a cross-test clinical finding
type Correlation struct {
	Finding            string   `json:"finding"`
	PossibleConditions []string `json:"possible_conditions"`
	SuggestedTests     []string `json:"suggested_tests"`
	Urgency            Urgency  `json:"urgency"`
}

// PatientBaseline holds the running statistics for one (patient, test) pair
type PatientBaseline struct {
	PatientID   string  `json:"patient_id"`
	TestCode    string  `json:"test_code"`
	SampleCount int     `json:"sample_count"`
	Mean        float64 `json:"mean"`
	M2          float64 `json:"m2"`
}

// PersonalizedRange is a patient-specific band alongside the population range
type PersonalizedRange struct {
	PatientID       string  `json:"patient_id"`
	TestCode        string  `json:"test_code"`
	SampleCount     int     `json:"sample_count"`
	BaselineMean    float64 `json:"baseline_mean"`
	BaselineStdDev  float64 `json:"baseline_std_dev"`
	PersonalLow     float64 `json:"personal_low"`
	PersonalHigh    float64 `json:"personal_high"`
	PopulationLow   float64 `json:"population_low"`
	PopulationHigh  float64 `json:"population_high"`
}

// PersonalizedResult augments a standard interpretation with the patient's
// own baseline band
type PersonalizedResult struct {
	InterpretedResult
	PersonalizedRange *PersonalizedRange `json:"personalized_range,omitempty"`
	OutsideBaseline   bool               `json:"outside_baseline"`
	BaselineNote      string             `json:"baseline_note,omitempty"`
}
