package wound

import (
	"context"
	"time"

	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/errors"
	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/types"
)

// Classifier runs the wound scoring tools and carries the clinician
// correction log that attenuates healing-phase confidence.
type Classifier struct {
	corrections CorrectionRepository
}

// NewClassifier creates a classifier backed by the given correction log
func NewClassifier(corrections CorrectionRepository) *Classifier {
	return &Classifier{corrections: corrections}
}

// ClassifyHealingPhase classifies the wound's healing phase, with
// confidence reduced for phases clinicians frequently override.
func (c *Classifier) ClassifyHealingPhase(ctx context.Context, a Assessment) (HealingPhaseResult, error) {
	if a.LengthCM < 0 || a.WidthCM < 0 || a.DepthCM < 0 {
		return HealingPhaseResult{}, errors.Validation("wound dimensions cannot be negative", nil)
	}

	stats, err := c.correctionStats(ctx)
	if err != nil {
		return HealingPhaseResult{}, err
	}

	return classifyPhase(a, stats.ByPredictedPhase), nil
}

// AssessWound runs all scoring tools over one assessment. Braden input
// is optional; without it the composite omits the pressure-injury score.
func (c *Classifier) AssessWound(ctx context.Context, a Assessment, braden *BradenInput) (*CompositeResult, error) {
	wagner, err := ClassifyWagner(a)
	if err != nil {
		return nil, err
	}
	push, err := ComputePUSH(a)
	if err != nil {
		return nil, err
	}
	phase, err := c.ClassifyHealingPhase(ctx, a)
	if err != nil {
		return nil, err
	}

	result := &CompositeResult{
		Wagner:       wagner,
		PUSH:         push,
		HealingPhase: phase,
	}

	if braden != nil {
		br, err := ComputeBraden(*braden)
		if err != nil {
			return nil, err
		}
		result.BradenScale = &br
	}

	result.OverallRisk = rollUpRisk(result)
	result.Recommendations = mergeRecommendations(result)
	return result, nil
}

// RecordCorrection appends a clinician override to the persisted log
func (c *Classifier) RecordCorrection(ctx context.Context, rec CorrectionRecord) error {
	if rec.WoundID == "" {
		return errors.Validation("wound_id is required", nil)
	}
	if !validPhases[rec.PredictedPhase] || !validPhases[rec.CorrectedPhase] {
		return errors.Validation("unknown healing phase", nil)
	}

	if rec.ID == "" {
		rec.ID = types.NewID()
	}
	if rec.RecordedAt.IsZero() {
		rec.RecordedAt = time.Now().UTC()
	}

	return c.corrections.Append(ctx, rec)
}

// GetCorrections returns the full correction log in append order
func (c *Classifier) GetCorrections(ctx context.Context) ([]CorrectionRecord, error) {
	return c.corrections.List(ctx)
}

// GetCorrectionStats summarizes corrections by predicted phase
func (c *Classifier) GetCorrectionStats(ctx context.Context) (CorrectionStats, error) {
	return c.correctionStats(ctx)
}

// ResetLearning clears the correction log, restoring base confidences
func (c *Classifier) ResetLearning(ctx context.Context) error {
	return c.corrections.Clear(ctx)
}

func (c *Classifier) correctionStats(ctx context.Context) (CorrectionStats, error) {
	records, err := c.corrections.List(ctx)
	if err != nil {
		return CorrectionStats{}, err
	}

	stats := CorrectionStats{
		TotalCorrections: len(records),
		ByPredictedPhase: make(map[HealingPhase]int),
	}
	for _, rec := range records {
		stats.ByPredictedPhase[rec.PredictedPhase]++
	}
	return stats, nil
}

// riskRank orders the roll-up bands for max-severity selection
var riskRank = map[RiskLevel]int{
	RiskLow:      0,
	RiskMild:     1,
	RiskModerate: 2,
	RiskHigh:     3,
	RiskCritical: 4,
}

func rollUpRisk(r *CompositeResult) RiskLevel {
	worst := wagnerRisk(r.Wagner.Grade)

	if r.BradenScale != nil {
		worst = maxRisk(worst, bradenRiskLevel(r.BradenScale.RiskLevel))
	}
	worst = maxRisk(worst, trajectoryRisk(r.PUSH.HealingTrajectory))
	worst = maxRisk(worst, phaseRisk(r.HealingPhase.Phase))

	return worst
}

func maxRisk(a, b RiskLevel) RiskLevel {
	if riskRank[b] > riskRank[a] {
		return b
	}
	return a
}

func wagnerRisk(grade int) RiskLevel {
	switch {
	case grade >= 5:
		return RiskCritical
	case grade >= 3:
		return RiskHigh
	case grade == 2:
		return RiskModerate
	case grade == 1:
		return RiskMild
	default:
		return RiskLow
	}
}

func bradenRiskLevel(b BradenRisk) RiskLevel {
	switch b {
	case BradenVeryHighRisk:
		return RiskCritical
	case BradenHighRisk:
		return RiskHigh
	case BradenModerateRisk:
		return RiskModerate
	case BradenMildRisk:
		return RiskMild
	default:
		return RiskLow
	}
}

func trajectoryRisk(t HealingTrajectory) RiskLevel {
	switch t {
	case TrajectoryDeteriorating:
		return RiskHigh
	case TrajectoryStable:
		return RiskModerate
	case TrajectoryImproving:
		return RiskMild
	default:
		return RiskLow
	}
}

func phaseRisk(p HealingPhase) RiskLevel {
	switch p {
	case PhaseDeteriorating:
		return RiskCritical
	case PhaseChronicNonHealing:
		return RiskHigh
	case PhaseInflammatory:
		return RiskModerate
	case PhaseHemostasis, PhaseProliferative:
		return RiskMild
	default:
		return RiskLow
	}
}

func mergeRecommendations(r *CompositeResult) []string {
	var recs []string

	if r.Wagner.RequiresSurgicalConsult {
		recs = append(recs, "Surgical consult")
	}
	if r.Wagner.RequiresVascularAssessment {
		recs = append(recs, "Vascular assessment")
	}
	if r.BradenScale != nil {
		recs = append(recs, r.BradenScale.Recommendations...)
	}
	if r.PUSH.HealingTrajectory == TrajectoryDeteriorating {
		recs = append(recs, "Evaluate for debridement")
	}
	switch r.HealingPhase.Phase {
	case PhaseChronicNonHealing:
		recs = append(recs, "Wound care specialist referral")
	case PhaseDeteriorating:
		recs = append(recs, "Urgent wound care review", "Obtain wound culture")
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
