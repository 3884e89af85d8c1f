package lab

import (
	"fmt"
	"math"

	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/errors"
)

// Anion gap reference band (mmol/L)
const (
	anionGapNormalLow  = 8.0
	anionGapNormalHigh = 12.0
)

// Corrected calcium constants: 0.8 mg/dL per 1 g/dL albumin below the
// reference albumin of 4.0 g/dL (Payne formula).
const (
	albuminReference       = 4.0
	calciumAlbuminFactor   = 0.8
)

// CKD-EPI 2021 creatinine equation constants (race-free refit).
const (
	ckdEpiKappaFemale  = 0.7
	ckdEpiKappaMale    = 0.9
	ckdEpiAlphaFemale  = -0.241
	ckdEpiAlphaMale    = -0.302
	ckdEpiMaxExponent  = -1.200
	ckdEpiAgeBase      = 0.9938
	ckdEpiScale        = 142.0
	ckdEpiFemaleFactor = 1.012
)

// AnionGap computes Na − (Cl + HCO3) and interprets it against the 8–12
// normal band.
func (in *Interpreter) AnionGap(na, cl, hco3 float64) DerivedValue {
	value := na - (cl + hco3)

	var interpretation string
	switch {
	case value > anionGapNormalHigh:
		interpretation = fmt.Sprintf(
			"Elevated anion gap (%g): suggests metabolic acidosis; consider the MUDPILES differential (methanol, uremia, DKA, propylene glycol, isoniazid, lactic acidosis, ethylene glycol, salicylates)",
			value,
		)
	case value < anionGapNormalLow:
		interpretation = fmt.Sprintf("Low anion gap (%g): consider hypoalbuminemia or paraproteinemia", value)
	default:
		interpretation = fmt.Sprintf("Normal anion gap (%g)", value)
	}

	return DerivedValue{
		Name:           "Anion Gap",
		Value:          value,
		Unit:           "mmol/L",
		Interpretation: interpretation,
	}
}

// CorrectedCalcium adjusts total calcium for hypoalbuminemia and interprets
// the corrected value against the calcium reference range.
func (in *Interpreter) CorrectedCalcium(totalCalcium, albumin float64) DerivedValue {
	corrected := totalCalcium + calciumAlbuminFactor*(albuminReference-albumin)

	interpretation := fmt.Sprintf("Corrected calcium %.1f mg/dL", corrected)
	if result, err := in.Interpret(LabValue{TestCode: "CA", Value: corrected}, Demographics{}); err == nil {
		interpretation = result.Interpretation
	}

	return DerivedValue{
		Name:           "Corrected Calcium",
		Value:          corrected,
		Unit:           "mg/dL",
		Interpretation: interpretation,
	}
}

// EGFR estimates glomerular filtration rate with the CKD-EPI 2021 creatinine
// equation and maps the result to CKD stages G1–G5.
func (in *Interpreter) EGFR(creatinine float64, age int, sex Sex) (DerivedValue, error) {
	if creatinine <= 0 {
		return DerivedValue{}, errors.Validation("creatinine must be positive", map[string]string{"creatinine": fmt.Sprintf("%g", creatinine)})
	}
	if age <= 0 {
		return DerivedValue{}, errors.Validation("age must be positive", map[string]string{"age": fmt.Sprintf("%d", age)})
	}
	if sex != SexMale && sex != SexFemale {
		return DerivedValue{}, errors.Validation("sex is required for eGFR", map[string]string{"sex": string(sex)})
	}

	kappa := ckdEpiKappaMale
	alpha := ckdEpiAlphaMale
	sexFactor := 1.0
	if sex == SexFemale {
		kappa = ckdEpiKappaFemale
		alpha = ckdEpiAlphaFemale
		sexFactor = ckdEpiFemaleFactor
	}

	ratio := creatinine / kappa
	egfr := ckdEpiScale *
		math.Pow(math.Min(ratio, 1.0), alpha) *
		math.Pow(math.Max(ratio, 1.0), ckdEpiMaxExponent) *
		math.Pow(ckdEpiAgeBase, float64(age)) *
		sexFactor

	return DerivedValue{
		Name:           "eGFR (CKD-EPI 2021)",
		Value:          egfr,
		Unit:           "mL/min/1.73m2",
		Interpretation: ckdStage(egfr),
	}, nil
}

// ckdStage maps an eGFR value to the standard KDIGO G-stage bands.
func ckdStage(egfr float64) string {
	switch {
	case egfr >= 90:
		return "G1: normal or high kidney function"
	case egfr >= 60:
		return "G2: mildly decreased kidney function"
	case egfr >= 45:
		return "G3a: mild to moderately decreased kidney function"
	case egfr >= 30:
		return "G3b: moderately to severely decreased kidney function"
	case egfr >= 15:
		return "G4: severely decreased kidney function"
	default:
		return "G5: kidney failure"
	}
}
