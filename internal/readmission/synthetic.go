package readmission

import (
	"math/rand"

	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/stats"
)

const (
	syntheticDatasetSize = 240
	syntheticSeed        = 42
	syntheticMinAge      = 30
	syntheticMaxAge      = 85
	syntheticLabelNoise  = 0.6
)

// SyntheticDataset generates a fixed, reproducible training set. Labels
// come from a noisy sigmoid over the same factors the logistic model
// scores, so the model has real signal to learn against.
func SyntheticDataset() []SyntheticPatient {
	rng := rand.New(rand.NewSource(syntheticSeed))

	dataset := make([]SyntheticPatient, 0, syntheticDatasetSize)
	for i := 0; i < syntheticDatasetSize; i++ {
		p := randomProfile(rng)
		dataset = append(dataset, SyntheticPatient{
			Profile:       p,
			WasReadmitted: syntheticLabel(rng, p),
		})
	}
	return dataset
}

func randomProfile(rng *rand.Rand) PatientProfile {
	livesAlone := rng.Float64() < 0.35
	return PatientProfile{
		Age:                   syntheticMinAge + rng.Intn(syntheticMaxAge-syntheticMinAge+1),
		HemoglobinAtDischarge: 9.0 + rng.Float64()*7.0,
		SodiumAtDischarge:     130.0 + rng.Float64()*14.0,
		OncologyDiagnosis:     rng.Float64() < 0.15,
		EmergencyAdmission:    rng.Float64() < 0.5,
		CardiacProcedure:      rng.Float64() < 0.2,
		LengthOfStayDays:      1 + rng.Intn(14),
		AdmissionsLast6Months: rng.Intn(4),
		EDVisitsLast6Months:   rng.Intn(5),
		CharlsonIndex:         rng.Intn(8),
		LivesAlone:            livesAlone,
		HasCaregiver:          !livesAlone && rng.Float64() < 0.7,
		MedicationCount:       rng.Intn(18),
		FollowUpScheduled:     rng.Float64() < 0.6,
	}
}

// syntheticLabel draws the readmission label from the true factor
// signal plus Gaussian noise, keeping both classes well represented.
func syntheticLabel(rng *rand.Rand, p PatientProfile) bool {
	xs := featureVector(p)

	z := defaultBias
	for i, f := range logisticFactors {
		z += f.defaultWeight * xs[i]
	}
	z += rng.NormFloat64() * syntheticLabelNoise

	return rng.Float64() < stats.Sigmoid(z)
}
