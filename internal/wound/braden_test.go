package wound

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/errors"
)

func bradenAll(sub int, friction int) BradenInput {
	return BradenInput{
		SensoryPerception: sub,
		Moisture:          sub,
		Activity:          sub,
		Mobility:          sub,
		Nutrition:         sub,
		FrictionShear:     friction,
	}
}

func TestBradenScoreExtremes(t *testing.T) {
	low, err := ComputeBraden(bradenAll(1, 1))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if low.TotalScore != 6 {
		t.Errorf("Expected minimum total 6, got %d", low.TotalScore)
	}
	if low.RiskLevel != BradenVeryHighRisk {
		t.Errorf("Expected very_high_risk, got %s", low.RiskLevel)
	}

	high, err := ComputeBraden(bradenAll(4, 3))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if high.TotalScore != 23 {
		t.Errorf("Expected maximum total 23, got %d", high.TotalScore)
	}
	if high.RiskLevel != BradenNoRisk {
		t.Errorf("Expected no_risk, got %s", high.RiskLevel)
	}
	if high.MaxScore != 23 {
		t.Errorf("Expected max score 23, got %d", high.MaxScore)
	}
}

func TestBradenRiskBandBoundaries(t *testing.T) {
	tests := []struct {
		total int
		input BradenInput
		want  BradenRisk
	}{
		{9, BradenInput{1, 1, 1, 2, 2, 2}, BradenVeryHighRisk},
		{10, BradenInput{1, 1, 2, 2, 2, 2}, BradenHighRisk},
		{12, BradenInput{2, 2, 2, 2, 2, 2}, BradenHighRisk},
		{13, BradenInput{2, 2, 2, 2, 3, 2}, BradenModerateRisk},
		{14, BradenInput{2, 2, 2, 3, 3, 2}, BradenModerateRisk},
		{15, BradenInput{2, 2, 3, 3, 3, 2}, BradenMildRisk},
		{18, BradenInput{3, 3, 3, 3, 3, 3}, BradenMildRisk},
		{19, BradenInput{3, 3, 3, 3, 4, 3}, BradenNoRisk},
	}

	for _, tt := range tests {
		result, err := ComputeBraden(tt.input)
		if err != nil {
			t.Fatalf("Expected no error at total %d, got %v", tt.total, err)
		}
		if result.TotalScore != tt.total {
			t.Errorf("Expected total %d, got %d", tt.total, result.TotalScore)
		}
		if result.RiskLevel != tt.want {
			t.Errorf("Total %d: expected %s, got %s", tt.total, tt.want, result.RiskLevel)
		}
	}
}

func TestBradenNutritionRecommendation(t *testing.T) {
	result, err := ComputeBraden(BradenInput{4, 4, 4, 4, 2, 3})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	found := false
	for _, rec := range result.Recommendations {
		if strings.Contains(rec, "Dietitian") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected dietitian consult for nutrition<=2, got %v", result.Recommendations)
	}
}

func TestBradenVeryHighRiskHasMostRecommendations(t *testing.T) {
	veryHigh, err := ComputeBraden(bradenAll(1, 1))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	high, err := ComputeBraden(bradenAll(2, 2))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(veryHigh.Recommendations) <= len(high.Recommendations) {
		t.Errorf("Expected very_high (%d recs) to exceed high (%d recs)",
			len(veryHigh.Recommendations), len(high.Recommendations))
	}
}

func TestBradenValidation(t *testing.T) {
	tests := []struct {
		name  string
		input BradenInput
	}{
		{"zero sensory", BradenInput{0, 2, 2, 2, 2, 2}},
		{"sensory above max", BradenInput{5, 2, 2, 2, 2, 2}},
		{"friction above max", BradenInput{2, 2, 2, 2, 2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ComputeBraden(tt.input); !stderrors.Is(err, errors.ErrValidation) {
				t.Errorf("Expected ErrValidation, got %v", err)
			}
		})
	}
}
