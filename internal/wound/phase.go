package wound

import "math"

const (
	// Each recorded clinician correction against a predicted phase
	// shrinks future confidence for that phase by this factor.
	correctionDecayFactor = 0.95
	confidenceFloor       = 0.30
)

type phaseRule struct {
	match          func(Assessment) bool
	phase          HealingPhase
	baseConfidence float64
	rationale      string
}

// phaseRules is evaluated top to bottom, first match wins. Deterioration
// outranks everything; the default branch is the inflammatory phase,
// which covers the broad early-wound middle ground.
var phaseRules = []phaseRule{
	{
		match: func(a Assessment) bool {
			return a.InfectionSigns && (a.TissueType == TissueNecrotic || a.TissueType == TissueEschar)
		},
		phase:          PhaseDeteriorating,
		baseConfidence: 0.85,
		rationale:      "Signs of infection with devitalized tissue in the wound bed",
	},
	{
		match: func(a Assessment) bool {
			return a.PostSurgical && a.DaysSinceOnset <= 2
		},
		phase:          PhaseHemostasis,
		baseConfidence: 0.80,
		rationale:      "Fresh post-surgical wound within the clotting window",
	},
	{
		match: func(a Assessment) bool {
			resurfaced := a.TissueType == TissueEpithelial || a.TissueType == TissueClosed
			return resurfaced && a.DepthCM == 0 && a.Area() < 0.25 && a.DaysSinceOnset >= 21
		},
		phase:          PhaseMaturation,
		baseConfidence: 0.75,
		rationale:      "Resurfaced wound with near-zero dimensions past three weeks",
	},
	{
		match: func(a Assessment) bool {
			return a.DaysSinceOnset > 42 && a.TissueType == TissueSlough && !a.InfectionSigns
		},
		phase:          PhaseChronicNonHealing,
		baseConfidence: 0.70,
		rationale:      "Sloughy wound stalled beyond six weeks without infection",
	},
	{
		match: func(a Assessment) bool {
			lowExudate := a.ExudateAmount == ExudateLight || a.ExudateAmount == ExudateNone
			return a.TissueType == TissueGranulation && lowExudate &&
				a.DaysSinceOnset >= 4 && a.DaysSinceOnset <= 42
		},
		phase:          PhaseProliferative,
		baseConfidence: 0.75,
		rationale:      "Granulating bed with light exudate in the rebuilding window",
	},
	{
		match:          func(a Assessment) bool { return true },
		phase:          PhaseInflammatory,
		baseConfidence: 0.60,
		rationale:      "No phase-specific findings, defaulting to the inflammatory phase",
	},
}

// classifyPhase walks the rule list and attenuates the matched rule's
// base confidence by the number of clinician corrections previously
// recorded against that predicted phase.
func classifyPhase(a Assessment, correctionsByPhase map[HealingPhase]int) HealingPhaseResult {
	for _, rule := range phaseRules {
		if !rule.match(a) {
			continue
		}
		return HealingPhaseResult{
			Phase:      rule.phase,
			Confidence: decayedConfidence(rule.baseConfidence, correctionsByPhase[rule.phase]),
			Rationale:  rule.rationale,
		}
	}

	// Unreachable, the last rule always matches
	return HealingPhaseResult{Phase: PhaseInflammatory, Confidence: confidenceFloor}
}

func decayedConfidence(base float64, corrections int) float64 {
	c := base * math.Pow(correctionDecayFactor, float64(corrections))
	if c < confidenceFloor {
		return confidenceFloor
	}
	return c
}
