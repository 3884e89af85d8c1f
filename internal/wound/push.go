package wound

import "github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/errors"

const pushMaxScore = 17

type areaBand struct {
	upper float64 // inclusive upper bound in cm²
	score int
}

// pushAreaBands follows the published PUSH 3.0 surface-area scoring.
var pushAreaBands = []areaBand{
	{0, 0},
	{0.3, 1},
	{0.6, 2},
	{1.0, 3},
	{2.0, 4},
	{3.0, 5},
	{4.0, 6},
	{8.0, 7},
	{12.0, 8},
	{24.0, 9},
}

var pushExudateScores = map[ExudateAmount]int{
	ExudateNone:     0,
	ExudateLight:    1,
	ExudateModerate: 2,
	ExudateHeavy:    3,
}

var pushTissueScores = map[TissueType]int{
	TissueClosed:      0,
	TissueEpithelial:  1,
	TissueGranulation: 2,
	TissueSlough:      3,
	TissueEschar:      4,
	TissueNecrotic:    4,
}

// ComputePUSH scores the wound on the Pressure Ulcer Scale for Healing:
// area 0-10, exudate 0-3, tissue 0-4, total 0-17.
func ComputePUSH(a Assessment) (PUSHResult, error) {
	if a.LengthCM < 0 || a.WidthCM < 0 {
		return PUSHResult{}, errors.Validation("wound dimensions cannot be negative", nil)
	}

	exudate, ok := pushExudateScores[a.ExudateAmount]
	if !ok {
		return PUSHResult{}, errors.Validation("unknown exudate amount", nil)
	}
	tissue, ok := pushTissueScores[a.TissueType]
	if !ok {
		return PUSHResult{}, errors.Validation("unknown tissue type", nil)
	}

	area := scoreArea(a.Area())
	total := area + exudate + tissue

	return PUSHResult{
		AreaScore:         area,
		ExudateScore:      exudate,
		TissueScore:       tissue,
		TotalScore:        total,
		MaxScore:          pushMaxScore,
		HealingTrajectory: trajectory(total, a.TissueType),
	}, nil
}

func scoreArea(cm2 float64) int {
	for _, b := range pushAreaBands {
		if cm2 <= b.upper {
			return b.score
		}
	}
	return 10
}

func trajectory(total int, tissue TissueType) HealingTrajectory {
	switch {
	case total <= 2 && (tissue == TissueClosed || tissue == TissueEpithelial):
		return TrajectoryHealingWell
	case total >= 13 && (tissue == TissueEschar || tissue == TissueNecrotic):
		return TrajectoryDeteriorating
	case total <= 8:
		return TrajectoryImproving
	default:
		return TrajectoryStable
	}
}
