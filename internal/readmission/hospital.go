package readmission

import "github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/errors"

// HOSPITAL score thresholds (Donzé et al., JAMA Intern Med 2013)
const (
	hospitalLowHemoglobin = 12.0 // g/dL at discharge
	hospitalLowSodium     = 135.0
	hospitalLongStayDays  = 5
)

type hospitalComponent struct {
	name  string
	max   int
	score func(PatientProfile) int
}

var hospitalComponents = []hospitalComponent{
	{"low_hemoglobin", 1, func(p PatientProfile) int {
		if p.HemoglobinAtDischarge > 0 && p.HemoglobinAtDischarge < hospitalLowHemoglobin {
			return 1
		}
		return 0
	}},
	{"low_sodium", 1, func(p PatientProfile) int {
		if p.SodiumAtDischarge > 0 && p.SodiumAtDischarge < hospitalLowSodium {
			return 1
		}
		return 0
	}},
	{"oncology", 2, func(p PatientProfile) int {
		if p.OncologyDiagnosis {
			return 2
		}
		return 0
	}},
	{"emergency_admission", 1, func(p PatientProfile) int {
		if p.EmergencyAdmission {
			return 1
		}
		return 0
	}},
	{"cardiac_procedure", 1, func(p PatientProfile) int {
		if p.CardiacProcedure {
			return 1
		}
		return 0
	}},
	{"prior_admissions", 2, func(p PatientProfile) int {
		if p.AdmissionsLast6Months >= 1 {
			return 2
		}
		return 0
	}},
	{"long_stay", 2, func(p PatientProfile) int {
		if p.LengthOfStayDays >= hospitalLongStayDays {
			return 2
		}
		return 0
	}},
}

// hospitalMaxScore is the sum of component maxima
var hospitalMaxScore = func() int {
	total := 0
	for _, c := range hospitalComponents {
		total += c.max
	}
	return total
}()

// Band probabilities from the published derivation cohort
const (
	hospitalProbLow          = 0.059
	hospitalProbIntermediate = 0.099
	hospitalProbHigh         = 0.156
	hospitalProbVeryHigh     = 0.279
)

// ComputeHOSPITALScore scores 30-day readmission risk from discharge
// labs, diagnosis, admission type, utilization history and stay length.
func ComputeHOSPITALScore(p PatientProfile) (HOSPITALResult, error) {
	if err := validateProfile(p); err != nil {
		return HOSPITALResult{}, err
	}

	components := make(map[string]int, len(hospitalComponents))
	total := 0
	for _, c := range hospitalComponents {
		s := c.score(p)
		components[c.name] = s
		total += s
	}

	var level RiskLevel
	var prob float64
	switch {
	case total <= 3:
		level, prob = RiskLow, hospitalProbLow
	case total == 4:
		level, prob = RiskIntermediate, hospitalProbIntermediate
	case total <= 6:
		level, prob = RiskHigh, hospitalProbHigh
	default:
		level, prob = RiskVeryHigh, hospitalProbVeryHigh
	}

	return HOSPITALResult{
		Components:             components,
		TotalScore:             total,
		MaxScore:               hospitalMaxScore,
		RiskLevel:              level,
		ReadmissionProbability: prob,
	}, nil
}

func validateProfile(p PatientProfile) error {
	if p.Age < 0 || p.Age > 130 {
		return errors.Validation("age out of range", nil)
	}
	if p.LengthOfStayDays < 0 {
		return errors.Validation("length of stay cannot be negative", nil)
	}
	if p.AdmissionsLast6Months < 0 || p.EDVisitsLast6Months < 0 {
		return errors.Validation("utilization counts cannot be negative", nil)
	}
	if p.CharlsonIndex < 0 {
		return errors.Validation("charlson index cannot be negative", nil)
	}
	if p.MedicationCount < 0 {
		return errors.Validation("medication count cannot be negative", nil)
	}
	return nil
}
