package wound

import (
	stderrors "errors"
	"testing"

	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/errors"
)

func TestWagnerCascadePrecedence(t *testing.T) {
	tests := []struct {
		name         string
		wound        Assessment
		wantGrade    int
		wantSurgical bool
		wantVascular bool
	}{
		{
			name:         "extensive gangrene wins over everything",
			wound:        Assessment{Gangrene: GangreneExtensive, BoneExposed: true, TendonExposed: true, DepthCM: 3},
			wantGrade:    5,
			wantSurgical: true,
			wantVascular: true,
		},
		{
			name:         "localized gangrene",
			wound:        Assessment{Gangrene: GangreneLocalized, DepthCM: 2},
			wantGrade:    4,
			wantSurgical: true,
			wantVascular: true,
		},
		{
			name:         "bone exposure",
			wound:        Assessment{BoneExposed: true, TendonExposed: true, DepthCM: 2},
			wantGrade:    3,
			wantSurgical: true,
		},
		{
			name:         "tendon exposure",
			wound:        Assessment{TendonExposed: true, DepthCM: 1.5},
			wantGrade:    2,
			wantVascular: true,
		},
		{
			name:      "superficial ulcer",
			wound:     Assessment{DepthCM: 0.5, LengthCM: 2, WidthCM: 1},
			wantGrade: 1,
		},
		{
			name:      "intact skin",
			wound:     Assessment{},
			wantGrade: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ClassifyWagner(tt.wound)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if result.Grade != tt.wantGrade {
				t.Errorf("Expected grade %d, got %d", tt.wantGrade, result.Grade)
			}
			if result.RequiresSurgicalConsult != tt.wantSurgical {
				t.Errorf("Expected surgical=%v, got %v", tt.wantSurgical, result.RequiresSurgicalConsult)
			}
			if result.RequiresVascularAssessment != tt.wantVascular {
				t.Errorf("Expected vascular=%v, got %v", tt.wantVascular, result.RequiresVascularAssessment)
			}
		})
	}
}

func TestWagnerInfectionElevatesSurgicalConsult(t *testing.T) {
	result, err := ClassifyWagner(Assessment{DepthCM: 0.5, InfectionSigns: true})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.Grade != 1 {
		t.Errorf("Expected grade 1, got %d", result.Grade)
	}
	if !result.RequiresSurgicalConsult {
		t.Error("Expected surgical consult for infected wound regardless of grade")
	}
}

func TestWagnerGradeAlwaysInRange(t *testing.T) {
	wounds := []Assessment{
		{},
		{DepthCM: 10, LengthCM: 20, WidthCM: 15},
		{TendonExposed: true, InfectionSigns: true},
		{BoneExposed: true, Gangrene: GangreneNone},
		{Gangrene: GangreneLocalized, BoneExposed: true},
		{Gangrene: GangreneExtensive},
	}

	for _, wound := range wounds {
		result, err := ClassifyWagner(wound)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if result.Grade < 0 || result.Grade > 5 {
			t.Errorf("Grade %d out of range for %+v", result.Grade, wound)
		}
	}
}

func TestWagnerExtensiveGangreneAlwaysGradeFive(t *testing.T) {
	wounds := []Assessment{
		{Gangrene: GangreneExtensive},
		{Gangrene: GangreneExtensive, DepthCM: 0},
		{Gangrene: GangreneExtensive, BoneExposed: true, TendonExposed: true, InfectionSigns: true},
	}

	for _, wound := range wounds {
		result, err := ClassifyWagner(wound)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if result.Grade != 5 {
			t.Errorf("Expected grade 5, got %d for %+v", result.Grade, wound)
		}
	}
}

func TestWagnerNegativeDimensions(t *testing.T) {
	_, err := ClassifyWagner(Assessment{DepthCM: -1})
	if !stderrors.Is(err, errors.ErrValidation) {
		t.Errorf("Expected ErrValidation, got %v", err)
	}
}
