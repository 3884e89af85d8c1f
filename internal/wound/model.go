package wound

import (
	"time"

	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/types"
)

// TissueType describes the predominant tissue in the wound bed
type TissueType string

const (
	TissueClosed      TissueType = "closed"
	TissueEpithelial  TissueType = "epithelial"
	TissueGranulation TissueType = "granulation"
	TissueSlough      TissueType = "slough"
	TissueEschar      TissueType = "eschar"
	TissueNecrotic    TissueType = "necrotic"
)

// ExudateAmount describes drainage volume
type ExudateAmount string

const (
	ExudateNone     ExudateAmount = "none"
	ExudateLight    ExudateAmount = "light"
	ExudateModerate ExudateAmount = "moderate"
	ExudateHeavy    ExudateAmount = "heavy"
)

// ExudateType describes drainage character
type ExudateType string

const (
	ExudateSerous          ExudateType = "serous"
	ExudateSanguineous     ExudateType = "sanguineous"
	ExudateSerosanguineous ExudateType = "serosanguineous"
	ExudatePurulent        ExudateType = "purulent"
)

// GangreneExtent describes gangrene involvement
type GangreneExtent string

const (
	GangreneNone      GangreneExtent = "none"
	GangreneLocalized GangreneExtent = "localized"
	GangreneExtensive GangreneExtent = "extensive"
)

// Assessment is the full set of wound descriptors supplied per call.
// It is input only and immutable.
type Assessment struct {
	WoundID string `json:"wound_id,omitempty"`

	LengthCM float64 `json:"length_cm"`
	WidthCM  float64 `json:"width_cm"`
	DepthCM  float64 `json:"depth_cm"`

	TissueType    TissueType    `json:"tissue_type"`
	ExudateType   ExudateType   `json:"exudate_type,omitempty"`
	ExudateAmount ExudateAmount `json:"exudate_amount"`

	EdgeCondition      string `json:"edge_condition,omitempty"`
	PeriwoundCondition string `json:"periwound_condition,omitempty"`
	Odor               bool   `json:"odor"`

	Tunneling          bool    `json:"tunneling"`
	TunnelingDepthCM   float64 `json:"tunneling_depth_cm,omitempty"`
	Undermining        bool    `json:"undermining"`
	UnderminingDepthCM float64 `json:"undermining_depth_cm,omitempty"`

	PainLevel        int     `json:"pain_level"`
	Temperature      string  `json:"temperature,omitempty"` // normal, warm, hot
	ErythemaExtentCM float64 `json:"erythema_extent_cm"`

	DaysSinceOnset int  `json:"days_since_onset"`
	PostSurgical   bool `json:"post_surgical"`
	InfectionSigns bool `json:"infection_signs"`

	BoneExposed   bool           `json:"bone_exposed"`
	TendonExposed bool           `json:"tendon_exposed"`
	Gangrene      GangreneExtent `json:"gangrene"`
}

// Area returns the wound surface area in cm².
func (a Assessment) Area() float64 {
	return a.LengthCM * a.WidthCM
}

// WagnerResult is the 0–5 wound severity classification
type WagnerResult struct {
	Grade                      int    `json:"grade"`
	Description                string `json:"description"`
	RequiresSurgicalConsult    bool   `json:"requires_surgical_consult"`
	RequiresVascularAssessment bool   `json:"requires_vascular_assessment"`
}

// BradenInput holds the six Braden sub-scale scores
type BradenInput struct {
	SensoryPerception int `json:"sensory_perception"` // 1-4
	Moisture          int `json:"moisture"`           // 1-4
	Activity          int `json:"activity"`           // 1-4
	Mobility          int `json:"mobility"`           // 1-4
	Nutrition         int `json:"nutrition"`          // 1-4
	FrictionShear     int `json:"friction_shear"`     // 1-3
}

// BradenRisk bands a Braden total score
type BradenRisk string

const (
	BradenNoRisk       BradenRisk = "no_risk"
	BradenMildRisk     BradenRisk = "mild_risk"
	BradenModerateRisk BradenRisk = "moderate_risk"
	BradenHighRisk     BradenRisk = "high_risk"
	BradenVeryHighRisk BradenRisk = "very_high_risk"
)

// BradenResult is the pressure-injury risk score
type BradenResult struct {
	Components      BradenInput `json:"components"`
	TotalScore      int         `json:"total_score"`
	MaxScore        int         `json:"max_score"`
	RiskLevel       BradenRisk  `json:"risk_level"`
	Recommendations []string    `json:"recommendations"`
}

// HealingTrajectory bands a PUSH total
type HealingTrajectory string

const (
	TrajectoryHealingWell   HealingTrajectory = "healing_well"
	TrajectoryImproving     HealingTrajectory = "improving"
	TrajectoryStable        HealingTrajectory = "stable"
	TrajectoryDeteriorating HealingTrajectory = "deteriorating"
)

// PUSHResult is the Pressure Ulcer Scale for Healing composite
type PUSHResult struct {
	AreaScore         int               `json:"area_score"`    // 0-10
	ExudateScore      int               `json:"exudate_score"` // 0-3
	TissueScore       int               `json:"tissue_score"`  // 0-4
	TotalScore        int               `json:"total_score"`
	MaxScore          int               `json:"max_score"`
	HealingTrajectory HealingTrajectory `json:"healing_trajectory"`
}

// HealingPhase classifies where the wound sits in the healing process
type HealingPhase string

const (
	PhaseHemostasis        HealingPhase = "HEMOSTASIS"
	PhaseInflammatory      HealingPhase = "INFLAMMATORY"
	PhaseProliferative     HealingPhase = "PROLIFERATIVE"
	PhaseMaturation        HealingPhase = "MATURATION"
	PhaseChronicNonHealing HealingPhase = "CHRONIC_NON_HEALING"
	PhaseDeteriorating     HealingPhase = "DETERIORATING"
)

// validPhases for correction-record validation
var validPhases = map[HealingPhase]bool{
	PhaseHemostasis:        true,
	PhaseInflammatory:      true,
	PhaseProliferative:     true,
	PhaseMaturation:        true,
	PhaseChronicNonHealing: true,
	PhaseDeteriorating:     true,
}

// HealingPhaseResult is the decision-tree classification with its confidence
type HealingPhaseResult struct {
	Phase      HealingPhase `json:"phase"`
	Confidence float64      `json:"confidence"`
	Rationale  string       `json:"rationale"`
}

// RiskLevel is the composite roll-up band
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMild     RiskLevel = "mild"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// CompositeResult combines all sub-classifications for one assessment
type CompositeResult struct {
	Wagner          WagnerResult       `json:"wagner"`
	BradenScale     *BradenResult      `json:"braden_scale,omitempty"`
	PUSH            PUSHResult         `json:"push"`
	HealingPhase    HealingPhaseResult `json:"healing_phase"`
	OverallRisk     RiskLevel          `json:"overall_risk"`
	Recommendations []string           `json:"recommendations"`
}

// CorrectionRecord logs a clinician override of a predicted healing phase
type CorrectionRecord struct {
	ID             types.ID     `json:"id"`
	WoundID        string       `json:"wound_id"`
	PredictedPhase HealingPhase `json:"predicted_phase"`
	CorrectedPhase HealingPhase `json:"corrected_phase"`
	CorrectedBy    string       `json:"corrected_by"`
	RecordedAt     time.Time    `json:"recorded_at"`
}

// CorrectionStats summarizes the correction log
type CorrectionStats struct {
	TotalCorrections int                  `json:"total_corrections"`
	ByPredictedPhase map[HealingPhase]int `json:"by_predicted_phase"`
}
