package lab

import (
	"fmt"

	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/errors"
)

// R-ratio boundaries for liver injury pattern classification
// (ALT/ULN divided by ALP/ULN).
const (
	rRatioHepatocellular = 5.0
	rRatioCholestatic    = 2.0
)

// InterpretHepaticPanel classifies a liver panel as hepatocellular,
// cholestatic, or mixed by the R ratio, and attaches pattern-specific
// correlations and follow-up suggestions. ALT, AST, and ALP are required;
// TBILI refines the interpretation when present.
func (in *Interpreter) InterpretHepaticPanel(results []LabValue) (*HepaticPanelResult, error) {
	values := make(map[string]float64)
	for _, v := range results {
		values[v.TestCode] = v.Value
	}

	alt, hasALT := values["ALT"]
	ast, hasAST := values["AST"]
	alp, hasALP := values["ALP"]
	if !hasALT || !hasAST || !hasALP {
		return nil, errors.Validation("hepatic panel requires ALT, AST, and ALP", map[string]string{
			"required": "ALT, AST, ALP",
		})
	}

	altULN := in.ranges["ALT"].NormalHigh
	alpULN := in.ranges["ALP"].NormalHigh
	astULN := in.ranges["AST"].NormalHigh

	if alp <= 0 {
		return nil, errors.Validation("ALP must be positive", map[string]string{"alp": fmt.Sprintf("%g", alp)})
	}

	rRatio := (alt / altULN) / (alp / alpULN)

	result := &HepaticPanelResult{RRatio: rRatio}

	allNormal := alt <= altULN && ast <= astULN && alp <= alpULN
	if tbili, ok := values["TBILI"]; ok && tbili > in.ranges["TBILI"].NormalHigh {
		allNormal = false
	}

	switch {
	case allNormal:
		result.Pattern = PatternNormal
		result.Interpretation = "Liver panel within reference limits"
	case rRatio >= rRatioHepatocellular:
		result.Pattern = PatternHepatocellular
		result.Interpretation = "Hepatocellular injury pattern: transaminase elevation dominates"
		result.SuggestedFollowUp = append(result.SuggestedFollowUp,
			"Viral hepatitis serologies",
			"Review hepatotoxic medications",
			"Right upper quadrant ultrasound",
		)
	case rRatio <= rRatioCholestatic:
		result.Pattern = PatternCholestatic
		result.Interpretation = "Cholestatic pattern: alkaline phosphatase and bilirubin elevation dominate"
		result.SuggestedFollowUp = append(result.SuggestedFollowUp,
			"GGT to confirm hepatic origin of ALP",
			"Biliary imaging (ultrasound or MRCP)",
		)
	default:
		result.Pattern = PatternMixed
		result.Interpretation = "Mixed hepatocellular and cholestatic pattern"
		result.SuggestedFollowUp = append(result.SuggestedFollowUp,
			"Viral hepatitis serologies",
			"Biliary imaging (ultrasound or MRCP)",
		)
	}

	// AST substantially above ALT points at alcoholic etiology
	if ast > 2*alt && ast > astULN {
		result.ClinicalCorrelations = append(result.ClinicalCorrelations,
			"AST more than twice ALT: consider alcoholic liver disease")
	}

	if tbili, ok := values["TBILI"]; ok && tbili > in.ranges["TBILI"].NormalHigh {
		result.ClinicalCorrelations = append(result.ClinicalCorrelations,
			fmt.Sprintf("Hyperbilirubinemia (%g mg/dL) accompanies the enzyme pattern", tbili))
	}

	return result, nil
}
