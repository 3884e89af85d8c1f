package wound

import (
	"fmt"

	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/errors"
)

type wagnerRule struct {
	match       func(Assessment) bool
	grade       int
	description string
	surgical    bool
	vascular    bool
}

// wagnerRules is evaluated in order; the first match wins. The order
// encodes severity precedence: gangrene beats exposed bone beats
// exposed tendon beats open ulceration.
var wagnerRules = []wagnerRule{
	{
		match:       func(a Assessment) bool { return a.Gangrene == GangreneExtensive },
		grade:       5,
		description: "Extensive gangrene of the foot",
		surgical:    true,
		vascular:    true,
	},
	{
		match:       func(a Assessment) bool { return a.Gangrene == GangreneLocalized },
		grade:       4,
		description: "Localized gangrene",
		surgical:    true,
		vascular:    true,
	},
	{
		match:       func(a Assessment) bool { return a.BoneExposed },
		grade:       3,
		description: "Deep ulcer with bone involvement or abscess",
		surgical:    true,
	},
	{
		match:       func(a Assessment) bool { return a.TendonExposed },
		grade:       2,
		description: "Deep ulcer penetrating to tendon or capsule",
		vascular:    true,
	},
	{
		match:       func(a Assessment) bool { return a.DepthCM > 0 },
		grade:       1,
		description: "Superficial ulcer, full skin thickness",
	},
	{
		match:       func(a Assessment) bool { return true },
		grade:       0,
		description: "Intact skin, pre-ulcerative lesion or healed ulcer",
	},
}

// ClassifyWagner grades the wound 0-5. Signs of infection force a
// surgical consult regardless of the grade reached.
func ClassifyWagner(a Assessment) (WagnerResult, error) {
	if a.LengthCM < 0 || a.WidthCM < 0 || a.DepthCM < 0 {
		return WagnerResult{}, errors.Validation("wound dimensions cannot be negative", nil)
	}

	for _, rule := range wagnerRules {
		if !rule.match(a) {
			continue
		}

		result := WagnerResult{
			Grade:                      rule.grade,
			Description:                rule.description,
			RequiresSurgicalConsult:    rule.surgical,
			RequiresVascularAssessment: rule.vascular,
		}
		if a.InfectionSigns {
			result.RequiresSurgicalConsult = true
		}
		return result, nil
	}

	// Unreachable, the last rule always matches
	return WagnerResult{}, errors.Internal(fmt.Errorf("no grading rule matched"))
}
