package readmission

import (
	stderrors "errors"
	"math/rand"
	"testing"

	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/errors"
)

func TestHOSPITALHealthyPatientScoresZero(t *testing.T) {
	result, err := ComputeHOSPITALScore(PatientProfile{
		Age:                   45,
		HemoglobinAtDischarge: 14.0,
		SodiumAtDischarge:     140.0,
		LengthOfStayDays:      2,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.TotalScore != 0 {
		t.Errorf("Expected total 0, got %d", result.TotalScore)
	}
	if result.RiskLevel != RiskLow {
		t.Errorf("Expected LOW, got %s", result.RiskLevel)
	}
	if result.ReadmissionProbability != hospitalProbLow {
		t.Errorf("Expected probability %.3f, got %.3f", hospitalProbLow, result.ReadmissionProbability)
	}
}

func TestHOSPITALWorstCaseHitsMaxScore(t *testing.T) {
	result, err := ComputeHOSPITALScore(PatientProfile{
		Age:                   80,
		HemoglobinAtDischarge: 9.5,
		SodiumAtDischarge:     128.0,
		OncologyDiagnosis:     true,
		EmergencyAdmission:    true,
		CardiacProcedure:      true,
		AdmissionsLast6Months: 3,
		LengthOfStayDays:      12,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.TotalScore != result.MaxScore {
		t.Errorf("Expected total %d to hit max %d", result.TotalScore, result.MaxScore)
	}
	if result.MaxScore != 10 {
		t.Errorf("Expected max score 10 from component maxima, got %d", result.MaxScore)
	}
	if result.RiskLevel != RiskVeryHigh {
		t.Errorf("Expected VERY_HIGH, got %s", result.RiskLevel)
	}
}

func TestHOSPITALRiskBands(t *testing.T) {
	tests := []struct {
		name    string
		patient PatientProfile
		total   int
		want    RiskLevel
	}{
		{
			name: "three points low",
			patient: PatientProfile{
				Age: 60, HemoglobinAtDischarge: 11.0, SodiumAtDischarge: 132.0,
				EmergencyAdmission: true,
			},
			total: 3,
			want:  RiskLow,
		},
		{
			name: "four points intermediate",
			patient: PatientProfile{
				Age: 60, HemoglobinAtDischarge: 11.0, SodiumAtDischarge: 132.0,
				EmergencyAdmission: true, CardiacProcedure: true,
			},
			total: 4,
			want:  RiskIntermediate,
		},
		{
			name: "five points high",
			patient: PatientProfile{
				Age: 60, HemoglobinAtDischarge: 11.0, SodiumAtDischarge: 132.0,
				EmergencyAdmission: true, OncologyDiagnosis: true,
			},
			total: 5,
			want:  RiskHigh,
		},
		{
			name: "six points high",
			patient: PatientProfile{
				Age: 60, HemoglobinAtDischarge: 11.0, SodiumAtDischarge: 132.0,
				EmergencyAdmission: true, OncologyDiagnosis: true, CardiacProcedure: true,
			},
			total: 6,
			want:  RiskHigh,
		},
		{
			name: "seven points very high",
			patient: PatientProfile{
				Age: 60, HemoglobinAtDischarge: 11.0, SodiumAtDischarge: 140.0,
				OncologyDiagnosis: true, AdmissionsLast6Months: 2, LengthOfStayDays: 8,
			},
			total: 7,
			want:  RiskVeryHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeHOSPITALScore(tt.patient)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if result.TotalScore != tt.total {
				t.Errorf("Expected total %d, got %d (%v)", tt.total, result.TotalScore, result.Components)
			}
			if result.RiskLevel != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, result.RiskLevel)
			}
		})
	}
}

func TestHOSPITALProbabilitiesMonotone(t *testing.T) {
	probs := []float64{hospitalProbLow, hospitalProbIntermediate, hospitalProbHigh, hospitalProbVeryHigh}
	for i := 1; i < len(probs); i++ {
		if probs[i] <= probs[i-1] {
			t.Errorf("Expected strictly increasing band probabilities, got %v", probs)
		}
	}
}

func TestHOSPITALScoreAlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		p := PatientProfile{
			Age:                   rng.Intn(110),
			HemoglobinAtDischarge: 6.0 + rng.Float64()*12.0,
			SodiumAtDischarge:     120.0 + rng.Float64()*30.0,
			OncologyDiagnosis:     rng.Intn(2) == 0,
			EmergencyAdmission:    rng.Intn(2) == 0,
			CardiacProcedure:      rng.Intn(2) == 0,
			AdmissionsLast6Months: rng.Intn(6),
			LengthOfStayDays:      rng.Intn(30),
		}

		result, err := ComputeHOSPITALScore(p)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if result.TotalScore < 0 || result.TotalScore > result.MaxScore {
			t.Errorf("Total %d outside [0,%d] for %+v", result.TotalScore, result.MaxScore, p)
		}
	}
}

func TestHOSPITALValidation(t *testing.T) {
	_, err := ComputeHOSPITALScore(PatientProfile{Age: 50, LengthOfStayDays: -1})
	if !stderrors.Is(err, errors.ErrValidation) {
		t.Errorf("Expected ErrValidation, got %v", err)
	}

	_, err = ComputeHOSPITALScore(PatientProfile{Age: -5})
	if !stderrors.Is(err, errors.ErrValidation) {
		t.Errorf("Expected ErrValidation, got %v", err)
	}
}
