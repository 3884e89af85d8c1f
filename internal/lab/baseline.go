package lab

import (
	"context"
	"fmt"

	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/errors"
	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/stats"
)

const (
	// baselineMinSamples is the minimum number of observations before a
	// personalized range is considered queryable.
	baselineMinSamples = 3
	// baselineSigmaMultiple widens the personal band around the running mean.
	baselineSigmaMultiple = 2.0
)

// UpdateBaseline folds one observation into the patient's running baseline
// for that test (Welford online update). Unknown tests fail before any
// state is touched.
func (in *Interpreter) UpdateBaseline(ctx context.Context, value LabValue) error {
	if _, ok := in.ranges[value.TestCode]; !ok {
		return errors.UnknownTest(value.TestCode)
	}
	if value.PatientID == "" {
		return errors.Validation("patient ID is required for baseline updates", nil)
	}
	if in.baselines == nil {
		return errors.Internal(fmt.Errorf("no baseline repository configured"))
	}

	baseline, err := in.baselines.Get(ctx, value.PatientID, value.TestCode)
	if err != nil {
		return err
	}
	if baseline == nil {
		baseline = &PatientBaseline{PatientID: value.PatientID, TestCode: value.TestCode}
	}

	w := stats.Welford{Count: baseline.SampleCount, Mean: baseline.Mean, M2: baseline.M2}
	w.Add(value.Value)

	baseline.SampleCount = w.Count
	baseline.Mean = w.Mean
	baseline.M2 = w.M2

	return in.baselines.Put(ctx, baseline)
}

// GetPersonalizedRange returns the patient's personal band for a test, or
// nil when fewer than baselineMinSamples observations exist. The nil return
// is deliberate: too little signal is not an invalid call.
func (in *Interpreter) GetPersonalizedRange(ctx context.Context, patientID, testCode string) (*PersonalizedRange, error) {
	rr, ok := in.ranges[testCode]
	if !ok {
		return nil, errors.UnknownTest(testCode)
	}
	if in.baselines == nil {
		return nil, errors.Internal(fmt.Errorf("no baseline repository configured"))
	}

	baseline, err := in.baselines.Get(ctx, patientID, testCode)
	if err != nil {
		return nil, err
	}
	if baseline == nil || baseline.SampleCount < baselineMinSamples {
		return nil, nil
	}

	w := stats.Welford{Count: baseline.SampleCount, Mean: baseline.Mean, M2: baseline.M2}
	sd := w.StdDev()

	return &PersonalizedRange{
		PatientID:      patientID,
		TestCode:       testCode,
		SampleCount:    baseline.SampleCount,
		BaselineMean:   baseline.Mean,
		BaselineStdDev: sd,
		PersonalLow:    baseline.Mean - baselineSigmaMultiple*sd,
		PersonalHigh:   baseline.Mean + baselineSigmaMultiple*sd,
		PopulationLow:  rr.NormalLow,
		PopulationHigh: rr.NormalHigh,
	}, nil
}

// InterpretPersonalized runs the standard interpretation and additionally
// flags values outside the patient's own baseline band, even when the value
// is population-normal.
func (in *Interpreter) InterpretPersonalized(ctx context.Context, value LabValue, demo Demographics) (*PersonalizedResult, error) {
	interpreted, err := in.Interpret(value, demo)
	if err != nil {
		return nil, err
	}

	result := &PersonalizedResult{InterpretedResult: *interpreted}

	personal, err := in.GetPersonalizedRange(ctx, value.PatientID, value.TestCode)
	if err != nil {
		return nil, err
	}
	if personal == nil {
		return result, nil
	}

	result.PersonalizedRange = personal
	if value.Value < personal.PersonalLow || value.Value > personal.PersonalHigh {
		result.OutsideBaseline = true
		result.BaselineNote = fmt.Sprintf(
			"Value %g is outside this patient's personal baseline %.2f-%.2f (mean %.2f over %d samples)",
			value.Value, personal.PersonalLow, personal.PersonalHigh, personal.BaselineMean, personal.SampleCount,
		)
	}

	return result, nil
}
