package lab

// correlationRule pairs a predicate over a result set with the finding it
// produces. Rules are evaluated in order; every matching rule fires.
type correlationRule struct {
	name   string
	when   func(resultIndex) bool
	result Correlation
}

// resultIndex indexes interpreted results by test code for rule predicates
type resultIndex map[string]*InterpretedResult

func (ri resultIndex) flagged(testCode string, flags ...Flag) bool {
	r, ok := ri[testCode]
	if !ok {
		return false
	}
	for _, f := range flags {
		if r.Flag == f {
			return true
		}
	}
	return false
}

func (ri resultIndex) high(testCode string) bool {
	return ri.flagged(testCode, FlagHigh, FlagCriticalHigh)
}

func (ri resultIndex) low(testCode string) bool {
	return ri.flagged(testCode, FlagLow, FlagCriticalLow)
}

// correlationRules is the ordered co-occurrence rule table.
var correlationRules = []correlationRule{
	{
		name: "critical troponin",
		when: func(ri resultIndex) bool {
			return ri.flagged("TROP", FlagCriticalHigh)
		},
		result: Correlation{
			Finding:            "Critically elevated troponin",
			PossibleConditions: []string{"Acute myocardial infarction", "Severe myocardial injury"},
			SuggestedTests:     []string{"Serial troponins", "12-lead ECG", "Echocardiogram"},
			Urgency:            UrgencyStat,
		},
	},
	{
		name: "leukocytosis with neutrophilia",
		when: func(ri resultIndex) bool {
			return ri.high("WBC") && ri.high("ANC")
		},
		result: Correlation{
			Finding:            "Leukocytosis with neutrophil predominance",
			PossibleConditions: []string{"Bacterial infection", "Acute inflammatory process"},
			SuggestedTests:     []string{"Blood cultures", "CRP", "Procalcitonin"},
			Urgency:            UrgencyUrgent,
		},
	},
	{
		name: "inflammatory sepsis markers",
		when: func(ri resultIndex) bool {
			return ri.high("CRP") && ri.high("PCT")
		},
		result: Correlation{
			Finding:            "Elevated CRP with elevated procalcitonin",
			PossibleConditions: []string{"Bacterial sepsis", "Severe bacterial infection"},
			SuggestedTests:     []string{"Blood cultures", "Lactate", "Source imaging"},
			Urgency:            UrgencyUrgent,
		},
	},
	{
		name: "azotemia",
		when: func(ri resultIndex) bool {
			return ri.high("BUN") && ri.high("CREAT")
		},
		result: Correlation{
			Finding:            "Concurrent BUN and creatinine elevation",
			PossibleConditions: []string{"Acute kidney injury", "Chronic kidney disease", "Volume depletion"},
			SuggestedTests:     []string{"Urinalysis", "Renal ultrasound", "BUN/creatinine ratio review"},
			Urgency:            UrgencyUrgent,
		},
	},
	{
		name: "hyperkalemia with renal dysfunction",
		when: func(ri resultIndex) bool {
			return ri.high("K") && ri.high("CREAT")
		},
		result: Correlation{
			Finding:            "Hyperkalemia in the setting of renal dysfunction",
			PossibleConditions: []string{"Renal failure with impaired potassium excretion"},
			SuggestedTests:     []string{"ECG", "Repeat potassium", "Renal function panel"},
			Urgency:            UrgencyStat,
		},
	},
	{
		name: "pancytopenia",
		when: func(ri resultIndex) bool {
			return ri.low("WBC") && ri.low("HGB") && ri.low("PLT")
		},
		result: Correlation{
			Finding:            "All three cell lines depressed",
			PossibleConditions: []string{"Bone marrow suppression", "Hypersplenism", "Hematologic malignancy"},
			SuggestedTests:     []string{"Peripheral smear", "Reticulocyte count", "Hematology consult"},
			Urgency:            UrgencyUrgent,
		},
	},
	{
		name: "microcytic anemia",
		when: func(ri resultIndex) bool {
			return ri.low("HGB") && ri.low("MCV")
		},
		result: Correlation{
			Finding:            "Anemia with microcytosis",
			PossibleConditions: []string{"Iron deficiency anemia", "Thalassemia trait"},
			SuggestedTests:     []string{"Iron studies", "Ferritin"},
			Urgency:            UrgencyRoutine,
		},
	},
	{
		name: "uncontrolled diabetes",
		when: func(ri resultIndex) bool {
			return ri.high("GLU") && ri.high("HBA1C")
		},
		result: Correlation{
			Finding:            "Hyperglycemia with elevated hemoglobin A1c",
			PossibleConditions: []string{"Poorly controlled diabetes mellitus"},
			SuggestedTests:     []string{"Fasting glucose", "Urine microalbumin", "Diabetes education referral"},
			Urgency:            UrgencyRoutine,
		},
	},
	{
		name: "possible adrenal insufficiency",
		when: func(ri resultIndex) bool {
			return ri.low("NA") && ri.high("K")
		},
		result: Correlation{
			Finding:            "Hyponatremia with hyperkalemia",
			PossibleConditions: []string{"Adrenal insufficiency"},
			SuggestedTests:     []string{"AM cortisol", "ACTH stimulation test"},
			Urgency:            UrgencyUrgent,
		},
	},
	{
		name: "cardiac decompensation",
		when: func(ri resultIndex) bool {
			return ri.high("BNP") || ri.high("NTPROBNP")
		},
		result: Correlation{
			Finding:            "Elevated natriuretic peptide",
			PossibleConditions: []string{"Heart failure exacerbation", "Volume overload"},
			SuggestedTests:     []string{"Chest radiograph", "Echocardiogram", "Daily weights"},
			Urgency:            UrgencyUrgent,
		},
	},
}

// FindCorrelations evaluates the co-occurrence rule table over a set of
// interpreted results, in table order.
func (in *Interpreter) FindCorrelations(results []InterpretedResult) []Correlation {
	index := make(resultIndex, len(results))
	for i := range results {
		index[results[i].TestCode] = &results[i]
	}

	var findings []Correlation
	for _, rule := range correlationRules {
		if rule.when(index) {
			findings = append(findings, rule.result)
		}
	}
	return findings
}
