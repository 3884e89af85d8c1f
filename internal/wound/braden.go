package wound

import "github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/errors"

const (
	bradenMaxScore = 23
	bradenMinScore = 6
)

// ComputeBraden scores pressure-injury risk from the six sub-scales.
// Five sub-scales run 1-4, friction/shear runs 1-3; total 6-23 where
// lower means higher risk.
func ComputeBraden(in BradenInput) (BradenResult, error) {
	if err := validateBraden(in); err != nil {
		return BradenResult{}, err
	}

	total := in.SensoryPerception + in.Moisture + in.Activity +
		in.Mobility + in.Nutrition + in.FrictionShear

	var risk BradenRisk
	switch {
	case total <= 9:
		risk = BradenVeryHighRisk
	case total <= 12:
		risk = BradenHighRisk
	case total <= 14:
		risk = BradenModerateRisk
	case total <= 18:
		risk = BradenMildRisk
	default:
		risk = BradenNoRisk
	}

	return BradenResult{
		Components:      in,
		TotalScore:      total,
		MaxScore:        bradenMaxScore,
		RiskLevel:       risk,
		Recommendations: bradenRecommendations(in, risk),
	}, nil
}

func validateBraden(in BradenInput) error {
	subscales := []struct {
		name string
		val  int
		max  int
	}{
		{"sensory_perception", in.SensoryPerception, 4},
		{"moisture", in.Moisture, 4},
		{"activity", in.Activity, 4},
		{"mobility", in.Mobility, 4},
		{"nutrition", in.Nutrition, 4},
		{"friction_shear", in.FrictionShear, 3},
	}
	for _, s := range subscales {
		if s.val < 1 || s.val > s.max {
			return errors.Validation(s.name + " out of range", nil)
		}
	}
	return nil
}

// bradenRecommendations derives interventions from the worst sub-scales
// plus a band-level tier, so a worse band always yields at least as
// many interventions.
func bradenRecommendations(in BradenInput, risk BradenRisk) []string {
	var recs []string

	if in.SensoryPerception <= 2 {
		recs = append(recs, "Assess skin daily over bony prominences")
	}
	if in.Moisture <= 2 {
		recs = append(recs, "Moisture management with barrier cream and scheduled linen changes")
	}
	if in.Activity <= 2 {
		recs = append(recs, "Progressive mobilization as tolerated")
	}
	if in.Mobility <= 2 {
		recs = append(recs, "Reposition every 2 hours")
	}
	if in.Nutrition <= 2 {
		recs = append(recs, "Dietitian consult for protein and calorie supplementation")
	}
	if in.FrictionShear <= 2 {
		recs = append(recs, "Use lift sheets and keep head of bed at or below 30 degrees")
	}

	switch risk {
	case BradenVeryHighRisk:
		recs = append(recs,
			"Pressure-redistribution support surface",
			"Reposition every 1-2 hours with heel offloading",
			"Wound care specialist referral")
	case BradenHighRisk:
		recs = append(recs,
			"Pressure-redistribution support surface",
			"Reposition every 2 hours with heel offloading")
	case BradenModerateRisk:
		recs = append(recs, "Foam wedge for 30-degree lateral positioning")
	case BradenMildRisk:
		recs = append(recs, "Continue routine repositioning and skin checks")
	}

	return recs
}
