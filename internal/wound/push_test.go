package wound

import (
	stderrors "errors"
	"testing"

	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/errors"
)

func TestPUSHClosedWoundScoresMinimum(t *testing.T) {
	result, err := ComputePUSH(Assessment{
		TissueType:    TissueClosed,
		ExudateAmount: ExudateNone,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.TotalScore != 0 {
		t.Errorf("Expected total 0, got %d", result.TotalScore)
	}
	if result.HealingTrajectory != TrajectoryHealingWell {
		t.Errorf("Expected healing_well, got %s", result.HealingTrajectory)
	}
}

func TestPUSHWorstWoundScoresMaximum(t *testing.T) {
	result, err := ComputePUSH(Assessment{
		LengthCM:      6,
		WidthCM:       5, // 30 cm², above the top band
		TissueType:    TissueNecrotic,
		ExudateAmount: ExudateHeavy,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.AreaScore != 10 {
		t.Errorf("Expected area score 10, got %d", result.AreaScore)
	}
	if result.TotalScore != 17 {
		t.Errorf("Expected total 17, got %d", result.TotalScore)
	}
	if result.HealingTrajectory != TrajectoryDeteriorating {
		t.Errorf("Expected deteriorating, got %s", result.HealingTrajectory)
	}
}

func TestPUSHAreaBands(t *testing.T) {
	tests := []struct {
		length, width float64
		want          int
	}{
		{0, 0, 0},
		{0.5, 0.5, 1},  // 0.25
		{0.5, 1.0, 2},  // 0.5
		{1.0, 1.0, 3},  // 1.0
		{1.0, 2.0, 4},  // 2.0
		{1.5, 2.0, 5},  // 3.0
		{2.0, 2.0, 6},  // 4.0
		{2.0, 4.0, 7},  // 8.0
		{3.0, 4.0, 8},  // 12.0
		{4.0, 5.0, 9},  // 20.0
		{5.0, 5.0, 10}, // 25.0
	}

	for _, tt := range tests {
		result, err := ComputePUSH(Assessment{
			LengthCM:      tt.length,
			WidthCM:       tt.width,
			TissueType:    TissueGranulation,
			ExudateAmount: ExudateLight,
		})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if result.AreaScore != tt.want {
			t.Errorf("Area %.2f: expected score %d, got %d", tt.length*tt.width, tt.want, result.AreaScore)
		}
	}
}

func TestPUSHTissueScores(t *testing.T) {
	tests := []struct {
		tissue TissueType
		want   int
	}{
		{TissueClosed, 0},
		{TissueEpithelial, 1},
		{TissueGranulation, 2},
		{TissueSlough, 3},
		{TissueEschar, 4},
		{TissueNecrotic, 4},
	}

	for _, tt := range tests {
		result, err := ComputePUSH(Assessment{
			TissueType:    tt.tissue,
			ExudateAmount: ExudateNone,
		})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if result.TissueScore != tt.want {
			t.Errorf("Tissue %s: expected score %d, got %d", tt.tissue, tt.want, result.TissueScore)
		}
	}
}

func TestPUSHTotalAlwaysInRange(t *testing.T) {
	for _, tissue := range []TissueType{TissueClosed, TissueGranulation, TissueNecrotic} {
		for _, exudate := range []ExudateAmount{ExudateNone, ExudateModerate, ExudateHeavy} {
			for _, dim := range []float64{0, 1.5, 50} {
				result, err := ComputePUSH(Assessment{
					LengthCM:      dim,
					WidthCM:       dim,
					TissueType:    tissue,
					ExudateAmount: exudate,
				})
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				if result.TotalScore < 0 || result.TotalScore > 17 {
					t.Errorf("Total %d out of range for tissue=%s exudate=%s dim=%.1f",
						result.TotalScore, tissue, exudate, dim)
				}
			}
		}
	}
}

func TestPUSHUnknownInputs(t *testing.T) {
	_, err := ComputePUSH(Assessment{TissueType: "plasma", ExudateAmount: ExudateNone})
	if !stderrors.Is(err, errors.ErrValidation) {
		t.Errorf("Expected ErrValidation for unknown tissue, got %v", err)
	}

	_, err = ComputePUSH(Assessment{TissueType: TissueClosed, ExudateAmount: "torrential"})
	if !stderrors.Is(err, errors.ErrValidation) {
		t.Errorf("Expected ErrValidation for unknown exudate, got %v", err)
	}
}
