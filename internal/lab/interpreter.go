// Package lab implements the lab result interpreter: reference-range
// flagging with demographic adjustment, delta and trend detection, derived
// clinical values, panel interpretation, cross-test correlations, and
// per-patient personalized baselines.
package lab

import (
	"fmt"

	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/errors"
	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/stats"
)

// GeriatricAge is the age at which geriatric-adjusted ranges take precedence
// over the base range when no sex-adjusted range applies.
const GeriatricAge = 65

// trendSlopeEpsilon is the near-zero band within which a fitted slope is
// reported as STABLE.
const trendSlopeEpsilon = 0.01

// Interpreter flags lab values against the reference table and maintains
// personalized patient baselines through an injected repository.
type Interpreter struct {
	ranges    map[string]ReferenceRange
	baselines BaselineRepository
}

// NewInterpreter builds an interpreter over the static reference table.
// The baseline repository may be nil when personalization is not needed.
func NewInterpreter(baselines BaselineRepository) *Interpreter {
	idx := make(map[string]ReferenceRange)
	for _, rr := range referenceRanges() {
		idx[rr.TestCode] = rr
	}
	return &Interpreter{ranges: idx, baselines: baselines}
}

// Range returns the reference range for a test code.
func (in *Interpreter) Range(testCode string) (ReferenceRange, bool) {
	rr, ok := in.ranges[testCode]
	return rr, ok
}

// activeBand resolves the normal band for the given demographics.
// Sex-adjusted ranges win over geriatric ones; critical bounds are never
// demographic-adjusted.
func activeBand(rr ReferenceRange, demo Demographics) Band {
	if demo.Sex == SexMale && rr.Male != nil {
		return *rr.Male
	}
	if demo.Sex == SexFemale && rr.Female != nil {
		return *rr.Female
	}
	if demo.Age >= GeriatricAge && rr.Geriatric != nil {
		return *rr.Geriatric
	}
	return Band{Low: rr.NormalLow, High: rr.NormalHigh}
}

// Interpret flags a single lab value against its reference range, resolving
// sex- and age-adjusted bands when demographics are supplied.
func (in *Interpreter) Interpret(value LabValue, demo Demographics) (*InterpretedResult, error) {
	rr, ok := in.ranges[value.TestCode]
	if !ok {
		return nil, errors.UnknownTest(value.TestCode)
	}

	normal := activeBand(rr, demo)

	var flag Flag
	switch {
	case value.Value < rr.CriticalLow:
		flag = FlagCriticalLow
	case value.Value < normal.Low:
		flag = FlagLow
	case value.Value > rr.CriticalHigh:
		flag = FlagCriticalHigh
	case value.Value > normal.High:
		flag = FlagHigh
	default:
		flag = FlagNormal
	}

	result := &InterpretedResult{
		TestCode:       rr.TestCode,
		TestName:       rr.TestName,
		Value:          value.Value,
		Unit:           rr.Unit,
		Flag:           flag,
		IsCritical:     flag == FlagCriticalLow || flag == FlagCriticalHigh,
		ReferenceRange: fmt.Sprintf("%g-%g %s", normal.Low, normal.High, rr.Unit),
		Interpretation: interpretationText(rr, value.Value, flag, normal),
	}

	if result.IsCritical {
		result.ClinicalSignificance = criticalSignificance(rr.TestCode, flag)
	}

	return result, nil
}

func interpretationText(rr ReferenceRange, value float64, flag Flag, normal Band) string {
	switch flag {
	case FlagCriticalLow:
		return fmt.Sprintf("%s %g %s is critically low (panic threshold %g)", rr.TestName, value, rr.Unit, rr.CriticalLow)
	case FlagLow:
		return fmt.Sprintf("%s %g %s is below the reference range %g-%g", rr.TestName, value, rr.Unit, normal.Low, normal.High)
	case FlagHigh:
		return fmt.Sprintf("%s %g %s is above the reference range %g-%g", rr.TestName, value, rr.Unit, normal.Low, normal.High)
	case FlagCriticalHigh:
		return fmt.Sprintf("%s %g %s is critically high (panic threshold %g)", rr.TestName, value, rr.Unit, rr.CriticalHigh)
	default:
		return fmt.Sprintf("%s %g %s is within the reference range %g-%g", rr.TestName, value, rr.Unit, normal.Low, normal.High)
	}
}

// criticalActions maps known critical results to the intervention class the
// clinician must consider. Tests without an entry get a generic notification
// message.
var criticalActions = map[string]map[Flag]string{
	"K": {
		FlagCriticalHigh: "Severe hyperkalemia with risk of fatal arrhythmia: initiate continuous cardiac monitoring, obtain ECG, consider calcium gluconate and insulin/dextrose",
		FlagCriticalLow:  "Severe hypokalemia: initiate cardiac monitoring and potassium replacement; recheck magnesium",
	},
	"GLU": {
		FlagCriticalLow:  "Severe hypoglycemia: administer IV dextrose (D50) or glucagon immediately and recheck within 15 minutes",
		FlagCriticalHigh: "Severe hyperglycemia: assess for DKA/HHS, start insulin protocol and fluid resuscitation",
	},
	"NA": {
		FlagCriticalLow:  "Severe hyponatremia with seizure risk: institute seizure precautions, consider hypertonic saline with slow correction",
		FlagCriticalHigh: "Severe hypernatremia: calculate free water deficit and correct gradually",
	},
	"TROP": {
		FlagCriticalHigh: "Markedly elevated troponin: suspected myocardial infarction, activate chest pain pathway and obtain serial ECGs",
	},
	"HGB": {
		FlagCriticalLow: "Critical anemia: evaluate for active bleeding and consider transfusion per protocol",
	},
	"PLT": {
		FlagCriticalLow: "Critical thrombocytopenia: institute bleeding precautions and consider platelet transfusion",
	},
	"CA": {
		FlagCriticalLow:  "Severe hypocalcemia: cardiac monitoring, IV calcium replacement, check ionized calcium",
		FlagCriticalHigh: "Severe hypercalcemia: aggressive IV hydration, consider calcitonin and bisphosphonates",
	},
	"WBC": {
		FlagCriticalLow: "Severe neutropenia risk: institute neutropenic precautions and evaluate for infection",
	},
	"LACTATE": {
		FlagCriticalHigh: "Critically elevated lactate: evaluate for sepsis and hypoperfusion, begin resuscitation per sepsis bundle",
	},
	"INR": {
		FlagCriticalHigh: "Critically elevated INR: hold anticoagulation, assess for bleeding, consider vitamin K",
	},
	"ABGPH": {
		FlagCriticalLow:  "Severe acidemia: identify and treat the underlying metabolic or respiratory cause urgently",
		FlagCriticalHigh: "Severe alkalemia: identify and treat the underlying cause urgently",
	},
}

func criticalSignificance(testCode string, flag Flag) string {
	if actions, ok := criticalActions[testCode]; ok {
		if msg, ok := actions[flag]; ok {
			return msg
		}
	}
	return "Critical value: notify the responsible clinician immediately"
}

// deltaRule holds the percent-change thresholds for one test.
// Thresholds are expressed as positive percentages.
type deltaRule struct {
	rise        float64
	drop        float64
	riseMessage string
	dropMessage string
}

// genericDeltaThreshold applies when no test-specific rule exists.
const genericDeltaThreshold = 15.0

var deltaRules = map[string]deltaRule{
	"HGB": {
		rise:        25.0,
		drop:        20.0,
		riseMessage: "Rapid hemoglobin rise; verify specimen and hydration status",
		dropMessage: "Hemoglobin dropped more than 20%: suspect active bleeding, evaluate urgently",
	},
	"CREAT": {
		rise:        25.0,
		drop:        30.0,
		riseMessage: "Creatinine rose more than 25%: possible acute kidney injury, review nephrotoxins and volume status",
		dropMessage: "Rapid creatinine decrease; recovering renal function or dilution",
	},
	"K": {
		rise:        10.0,
		drop:        10.0,
		riseMessage: "Rapid potassium increase: recheck and monitor for arrhythmia",
		dropMessage: "Rapid potassium decrease: recheck and monitor for arrhythmia",
	},
	"TROP": {
		rise:        20.0,
		drop:        50.0,
		riseMessage: "Rising troponin pattern: consistent with evolving myocardial injury",
		dropMessage: "Falling troponin; consistent with resolving injury",
	},
}

// DeltaCheck compares two consecutive values of the same test and flags
// clinically significant rapid change.
func (in *Interpreter) DeltaCheck(current, previous LabValue) (*DeltaResult, error) {
	if current.TestCode != previous.TestCode {
		return nil, errors.IncompatibleTests(current.TestCode, previous.TestCode)
	}
	if _, ok := in.ranges[current.TestCode]; !ok {
		return nil, errors.UnknownTest(current.TestCode)
	}
	if previous.Value == 0 {
		return nil, errors.Validation("previous value must be non-zero for delta check", map[string]string{"test_code": current.TestCode})
	}

	pct := (current.Value - previous.Value) / previous.Value * 100

	rule, ok := deltaRules[current.TestCode]
	if !ok {
		rule = deltaRule{
			rise:        genericDeltaThreshold,
			drop:        genericDeltaThreshold,
			riseMessage: fmt.Sprintf("%s increased rapidly between draws", current.TestCode),
			dropMessage: fmt.Sprintf("%s decreased rapidly between draws", current.TestCode),
		}
	}

	result := &DeltaResult{
		TestCode:      current.TestCode,
		PercentChange: pct,
		AlertType:     AlertNone,
		Message:       "No significant change between draws",
	}

	switch {
	case pct > rule.rise:
		result.AlertType = AlertRapidIncrease
		result.Message = rule.riseMessage
	case pct < -rule.drop:
		result.AlertType = AlertRapidDecrease
		result.Message = rule.dropMessage
	}

	return result, nil
}

// AnalyzeTrend fits a least-squares line over an ordered series of values
// for one test. A single point yields STABLE with an informational message;
// an empty series is an error.
func (in *Interpreter) AnalyzeTrend(values []LabValue) (*TrendResult, error) {
	if len(values) == 0 {
		return nil, errors.InsufficientData("trend analysis requires at least one data point")
	}

	testCode := values[0].TestCode
	for _, v := range values[1:] {
		if v.TestCode != testCode {
			return nil, errors.IncompatibleTests(v.TestCode, testCode)
		}
	}

	if len(values) == 1 {
		return &TrendResult{
			TestCode:      testCode,
			Direction:     TrendStable,
			PredictedNext: values[0].Value,
			Message:       "Insufficient data for trend analysis; at least 2 values are required",
		}, nil
	}

	xs := make([]float64, len(values))
	ys := make([]float64, len(values))
	for i, v := range values {
		xs[i] = float64(i)
		ys[i] = v.Value
	}

	fit := stats.LinearFit(xs, ys)

	direction := TrendStable
	switch {
	case fit.Slope > trendSlopeEpsilon:
		direction = TrendIncreasing
	case fit.Slope < -trendSlopeEpsilon:
		direction = TrendDecreasing
	}

	return &TrendResult{
		TestCode:      testCode,
		Direction:     direction,
		Slope:         fit.Slope,
		RSquared:      fit.RSquared,
		PredictedNext: fit.Intercept + fit.Slope*float64(len(values)),
		Message:       fmt.Sprintf("%s trend over %d values is %s", testCode, len(values), direction),
	}, nil
}
