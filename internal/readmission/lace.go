package readmission

// LACE index scoring (van Walraven et al., CMAJ 2010)
const laceMaxScore = 19

// Band probabilities chosen to line up with the published validation
// cohort's observed readmission rates.
const (
	laceProbLow      = 0.050
	laceProbModerate = 0.100
	laceProbHigh     = 0.180
	laceProbVeryHigh = 0.300
)

// losTier holds the non-linear published length-of-stay banding
type losTier struct {
	maxDays int
	points  int
}

var laceLOSTiers = []losTier{
	{0, 0},
	{1, 1},
	{2, 2},
	{4, 3},
	{6, 4},
	{13, 5},
}

const laceLOSMaxPoints = 7 // 14 days or more

// ComputeLACEIndex scores readmission risk from length of stay, acuity
// of admission, comorbidity and emergency-department utilization.
func ComputeLACEIndex(p PatientProfile) (LACEResult, error) {
	if err := validateProfile(p); err != nil {
		return LACEResult{}, err
	}

	components := map[string]int{
		"length_of_stay": laceLOSPoints(p.LengthOfStayDays),
		"acuity":         laceAcuityPoints(p.EmergencyAdmission),
		"comorbidity":    laceCharlsonPoints(p.CharlsonIndex),
		"ed_visits":      laceEDPoints(p.EDVisitsLast6Months),
	}

	total := 0
	for _, s := range components {
		total += s
	}

	var level RiskLevel
	var prob float64
	switch {
	case total <= 4:
		level, prob = RiskLow, laceProbLow
	case total <= 9:
		level, prob = RiskModerate, laceProbModerate
	case total <= 14:
		level, prob = RiskHigh, laceProbHigh
	default:
		level, prob = RiskVeryHigh, laceProbVeryHigh
	}

	return LACEResult{
		Components:             components,
		TotalScore:             total,
		MaxScore:               laceMaxScore,
		RiskLevel:              level,
		ReadmissionProbability: prob,
	}, nil
}

func laceLOSPoints(days int) int {
	for _, tier := range laceLOSTiers {
		if days <= tier.maxDays {
			return tier.points
		}
	}
	return laceLOSMaxPoints
}

func laceAcuityPoints(emergency bool) int {
	if emergency {
		return 3
	}
	return 0
}

// laceCharlsonPoints caps the comorbidity contribution at 5 points
func laceCharlsonPoints(charlson int) int {
	if charlson >= 4 {
		return 5
	}
	return charlson
}

// laceEDPoints caps emergency-department visits at 4 points
func laceEDPoints(visits int) int {
	if visits > 4 {
		return 4
	}
	return visits
}
