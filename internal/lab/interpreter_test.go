package lab

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/errors"
)

func newTestInterpreter() *Interpreter {
	return NewInterpreter(NewMemoryBaselineRepository())
}

func TestReferenceTableInvariants(t *testing.T) {
	ranges := referenceRanges()
	if len(ranges) < 60 {
		t.Fatalf("Expected at least 60 reference ranges, got %d", len(ranges))
	}

	seen := make(map[string]bool)
	for _, rr := range ranges {
		t.Run(rr.TestCode, func(t *testing.T) {
			if seen[rr.TestCode] {
				t.Errorf("Duplicate test code %s", rr.TestCode)
			}
			seen[rr.TestCode] = true

			if rr.NormalLow > rr.NormalHigh {
				t.Errorf("normalLow %g > normalHigh %g", rr.NormalLow, rr.NormalHigh)
			}
			if rr.CriticalLow > rr.NormalLow {
				t.Errorf("criticalLow %g > normalLow %g", rr.CriticalLow, rr.NormalLow)
			}
			if rr.CriticalHigh < rr.NormalHigh {
				t.Errorf("criticalHigh %g < normalHigh %g", rr.CriticalHigh, rr.NormalHigh)
			}
			for name, b := range map[string]*Band{"male": rr.Male, "female": rr.Female, "geriatric": rr.Geriatric} {
				if b != nil && b.Low > b.High {
					t.Errorf("%s override low %g > high %g", name, b.Low, b.High)
				}
			}
		})
	}
}

// Every entry must flag NORMAL exactly at the band edges and flag outside
// them one step beyond.
func TestFlagBoundariesExact(t *testing.T) {
	in := newTestInterpreter()
	const step = 0.0001

	for _, rr := range referenceRanges() {
		t.Run(rr.TestCode, func(t *testing.T) {
			atHigh, err := in.Interpret(LabValue{TestCode: rr.TestCode, Value: rr.NormalHigh}, Demographics{})
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if atHigh.Flag != FlagNormal {
				t.Errorf("Value at normalHigh: expected NORMAL, got %s", atHigh.Flag)
			}

			atLow, _ := in.Interpret(LabValue{TestCode: rr.TestCode, Value: rr.NormalLow}, Demographics{})
			if atLow.Flag != FlagNormal {
				t.Errorf("Value at normalLow: expected NORMAL, got %s", atLow.Flag)
			}

			above := rr.NormalHigh + step
			wantAbove := FlagHigh
			if above > rr.CriticalHigh {
				wantAbove = FlagCriticalHigh
			}
			gotAbove, _ := in.Interpret(LabValue{TestCode: rr.TestCode, Value: above}, Demographics{})
			if gotAbove.Flag != wantAbove {
				t.Errorf("Value just above normalHigh: expected %s, got %s", wantAbove, gotAbove.Flag)
			}

			below := rr.NormalLow - step
			wantBelow := FlagLow
			if below < rr.CriticalLow {
				wantBelow = FlagCriticalLow
			}
			gotBelow, _ := in.Interpret(LabValue{TestCode: rr.TestCode, Value: below}, Demographics{})
			if gotBelow.Flag != wantBelow {
				t.Errorf("Value just below normalLow: expected %s, got %s", wantBelow, gotBelow.Flag)
			}
		})
	}
}

func TestInterpretUnknownTest(t *testing.T) {
	in := newTestInterpreter()

	_, err := in.Interpret(LabValue{TestCode: "NOPE", Value: 1.0}, Demographics{})
	if !stderrors.Is(err, errors.ErrUnknownTest) {
		t.Errorf("Expected ErrUnknownTest, got %v", err)
	}
}

func TestSexAdjustedRangePrecedence(t *testing.T) {
	in := newTestInterpreter()
	hgb := LabValue{TestCode: "HGB", Value: 13.0}

	male, err := in.Interpret(hgb, Demographics{Sex: SexMale})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if male.Flag != FlagLow {
		t.Errorf("HGB 13.0 male: expected LOW, got %s", male.Flag)
	}

	female, _ := in.Interpret(hgb, Demographics{Sex: SexFemale})
	if female.Flag != FlagNormal {
		t.Errorf("HGB 13.0 female: expected NORMAL, got %s", female.Flag)
	}
}

func TestGeriatricAdjustment(t *testing.T) {
	in := newTestInterpreter()
	bun := LabValue{TestCode: "BUN", Value: 22}

	adult, _ := in.Interpret(bun, Demographics{Age: 40})
	if adult.Flag != FlagHigh {
		t.Errorf("BUN 22 at age 40: expected HIGH, got %s", adult.Flag)
	}

	geriatric, _ := in.Interpret(bun, Demographics{Age: 70})
	if geriatric.Flag != FlagNormal {
		t.Errorf("BUN 22 at age 70: expected NORMAL, got %s", geriatric.Flag)
	}
}

// Sex-adjusted ranges win over geriatric ones when both could apply
func TestSexBeatsGeriatric(t *testing.T) {
	in := newTestInterpreter()

	// ESR has male, female, and geriatric bands; 18 is normal for the
	// geriatric band but high for the male band.
	result, _ := in.Interpret(LabValue{TestCode: "ESR", Value: 18}, Demographics{Age: 70, Sex: SexMale})
	if result.Flag != FlagHigh {
		t.Errorf("ESR 18 male age 70: expected HIGH from male band, got %s", result.Flag)
	}
}

func TestCriticalFlagsAndSignificance(t *testing.T) {
	in := newTestInterpreter()

	tests := []struct {
		name     string
		value    LabValue
		wantFlag Flag
		mentions string
	}{
		{"potassium critical high", LabValue{TestCode: "K", Value: 7.2}, FlagCriticalHigh, "cardiac monitoring"},
		{"glucose critical low", LabValue{TestCode: "GLU", Value: 32}, FlagCriticalLow, "dextrose"},
		{"sodium critical low", LabValue{TestCode: "NA", Value: 112}, FlagCriticalLow, "seizure"},
		{"troponin critical high", LabValue{TestCode: "TROP", Value: 0.9}, FlagCriticalHigh, "myocardial infarction"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := in.Interpret(tt.value, Demographics{})
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if result.Flag != tt.wantFlag {
				t.Errorf("Expected flag %s, got %s", tt.wantFlag, result.Flag)
			}
			if !result.IsCritical {
				t.Error("Expected IsCritical true")
			}
			if !strings.Contains(strings.ToLower(result.ClinicalSignificance), tt.mentions) {
				t.Errorf("Expected significance mentioning %q, got %q", tt.mentions, result.ClinicalSignificance)
			}
		})
	}
}

func TestIsCriticalOnlyForCriticalFlags(t *testing.T) {
	in := newTestInterpreter()

	high, _ := in.Interpret(LabValue{TestCode: "K", Value: 5.5}, Demographics{})
	if high.Flag != FlagHigh || high.IsCritical {
		t.Errorf("K 5.5: expected non-critical HIGH, got %s critical=%v", high.Flag, high.IsCritical)
	}
}

func TestInterpretIdempotent(t *testing.T) {
	in := newTestInterpreter()
	value := LabValue{TestCode: "NA", Value: 141}

	first, err := in.Interpret(value, Demographics{Age: 50, Sex: SexFemale})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, _ := in.Interpret(value, Demographics{Age: 50, Sex: SexFemale})

	if *first != *second {
		t.Errorf("Expected identical results, got %+v vs %+v", first, second)
	}
}

func TestDeltaCheckIncompatibleTests(t *testing.T) {
	in := newTestInterpreter()

	_, err := in.DeltaCheck(
		LabValue{TestCode: "HGB", Value: 12},
		LabValue{TestCode: "NA", Value: 140},
	)
	if !stderrors.Is(err, errors.ErrIncompatibleTest) {
		t.Errorf("Expected ErrIncompatibleTest, got %v", err)
	}
}

func TestDeltaCheckHemoglobinDrop(t *testing.T) {
	in := newTestInterpreter()

	result, err := in.DeltaCheck(
		LabValue{TestCode: "HGB", Value: 10.5},
		LabValue{TestCode: "HGB", Value: 14.0},
	)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.AlertType != AlertRapidDecrease {
		t.Errorf("Expected RAPID_DECREASE, got %s", result.AlertType)
	}
	if !strings.Contains(strings.ToLower(result.Message), "bleeding") {
		t.Errorf("Expected bleeding-suspicion message, got %q", result.Message)
	}
	wantPct := (10.5 - 14.0) / 14.0 * 100
	if result.PercentChange != wantPct {
		t.Errorf("Expected percent change %f, got %f", wantPct, result.PercentChange)
	}
}

func TestDeltaCheckBelowThreshold(t *testing.T) {
	in := newTestInterpreter()

	result, err := in.DeltaCheck(
		LabValue{TestCode: "NA", Value: 141},
		LabValue{TestCode: "NA", Value: 140},
	)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.AlertType != AlertNone {
		t.Errorf("Expected NONE, got %s", result.AlertType)
	}
}

func TestDeltaCheckCreatinineRise(t *testing.T) {
	in := newTestInterpreter()

	result, err := in.DeltaCheck(
		LabValue{TestCode: "CREAT", Value: 1.6},
		LabValue{TestCode: "CREAT", Value: 1.0},
	)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.AlertType != AlertRapidIncrease {
		t.Errorf("Expected RAPID_INCREASE, got %s", result.AlertType)
	}
	if !strings.Contains(strings.ToLower(result.Message), "kidney") {
		t.Errorf("Expected AKI message, got %q", result.Message)
	}
}

func TestAnalyzeTrendIncreasing(t *testing.T) {
	in := newTestInterpreter()
	values := []LabValue{
		{TestCode: "CREAT", Value: 1.0},
		{TestCode: "CREAT", Value: 1.3},
		{TestCode: "CREAT", Value: 1.7},
		{TestCode: "CREAT", Value: 2.0},
	}

	result, err := in.AnalyzeTrend(values)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Direction != TrendIncreasing {
		t.Errorf("Expected INCREASING, got %s", result.Direction)
	}
	if result.Slope <= 0 {
		t.Errorf("Expected positive slope, got %f", result.Slope)
	}
	if result.RSquared <= 0.8 {
		t.Errorf("Expected r-squared > 0.8, got %f", result.RSquared)
	}
	if result.PredictedNext <= 2.0 {
		t.Errorf("Expected extrapolation beyond last value, got %f", result.PredictedNext)
	}
}

func TestAnalyzeTrendSinglePoint(t *testing.T) {
	in := newTestInterpreter()

	result, err := in.AnalyzeTrend([]LabValue{{TestCode: "NA", Value: 140}})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.Direction != TrendStable {
		t.Errorf("Expected STABLE, got %s", result.Direction)
	}
	if !strings.Contains(strings.ToLower(result.Message), "insufficient data") {
		t.Errorf("Expected insufficient-data message, got %q", result.Message)
	}
}

func TestAnalyzeTrendEmpty(t *testing.T) {
	in := newTestInterpreter()

	_, err := in.AnalyzeTrend(nil)
	if !stderrors.Is(err, errors.ErrInsufficientData) {
		t.Errorf("Expected ErrInsufficientData, got %v", err)
	}
}

func TestAnalyzeTrendMixedCodes(t *testing.T) {
	in := newTestInterpreter()

	_, err := in.AnalyzeTrend([]LabValue{
		{TestCode: "NA", Value: 140},
		{TestCode: "K", Value: 4.0},
	})
	if !stderrors.Is(err, errors.ErrIncompatibleTest) {
		t.Errorf("Expected ErrIncompatibleTest, got %v", err)
	}
}

func TestAnalyzeTrendStableSeries(t *testing.T) {
	in := newTestInterpreter()

	result, err := in.AnalyzeTrend([]LabValue{
		{TestCode: "NA", Value: 140},
		{TestCode: "NA", Value: 140},
		{TestCode: "NA", Value: 140},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.Direction != TrendStable {
		t.Errorf("Expected STABLE, got %s", result.Direction)
	}
}
