package lab

// band is a helper to build range overrides inline
func band(low, high float64) *Band {
	return &Band{Low: low, High: high}
}

// referenceRanges returns the full reference-range table. This is the
// authoritative source of truth for population ranges; the interpreter
// builds its lookup index from it once at construction.
//
// Values follow commonly published adult reference intervals. Critical
// bounds mark the panic thresholds that require immediate clinician
// notification.
func referenceRanges() []ReferenceRange {
	return []ReferenceRange{
		// ===== COMPLETE BLOOD COUNT =====
		{
			TestCode: "WBC", TestName: "White Blood Cell Count", Unit: "10^3/uL", Category: CategoryCBC,
			NormalLow: 4.5, NormalHigh: 11.0, CriticalLow: 1.0, CriticalHigh: 30.0,
		},
		{
			TestCode: "RBC", TestName: "Red Blood Cell Count", Unit: "10^6/uL", Category: CategoryCBC,
			NormalLow: 3.9, NormalHigh: 5.7, CriticalLow: 2.0, CriticalHigh: 8.0,
			Male: band(4.35, 5.65), Female: band(3.92, 5.13),
		},
		{
			TestCode: "HGB", TestName: "Hemoglobin", Unit: "g/dL", Category: CategoryCBC,
			NormalLow: 12.0, NormalHigh: 17.5, CriticalLow: 6.5, CriticalHigh: 20.0,
			Male: band(13.5, 17.5), Female: band(12.0, 15.5),
		},
		{
			TestCode: "HCT", TestName: "Hematocrit", Unit: "%", Category: CategoryCBC,
			NormalLow: 36.0, NormalHigh: 50.0, CriticalLow: 20.0, CriticalHigh: 60.0,
			Male: band(41.0, 50.0), Female: band(36.0, 46.0),
		},
		{
			TestCode: "PLT", TestName: "Platelet Count", Unit: "10^3/uL", Category: CategoryCBC,
			NormalLow: 150, NormalHigh: 400, CriticalLow: 20, CriticalHigh: 1000,
		},
		{
			TestCode: "MCV", TestName: "Mean Corpuscular Volume", Unit: "fL", Category: CategoryCBC,
			NormalLow: 80, NormalHigh: 100, CriticalLow: 50, CriticalHigh: 150,
		},
		{
			TestCode: "MCH", TestName: "Mean Corpuscular Hemoglobin", Unit: "pg", Category: CategoryCBC,
			NormalLow: 27, NormalHigh: 33, CriticalLow: 15, CriticalHigh: 45,
		},
		{
			TestCode: "MCHC", TestName: "Mean Corpuscular Hemoglobin Concentration", Unit: "g/dL", Category: CategoryCBC,
			NormalLow: 32, NormalHigh: 36, CriticalLow: 25, CriticalHigh: 40,
		},
		{
			TestCode: "RDW", TestName: "Red Cell Distribution Width", Unit: "%", Category: CategoryCBC,
			NormalLow: 11.5, NormalHigh: 14.5, CriticalLow: 9.0, CriticalHigh: 25.0,
		},
		{
			TestCode: "ANC", TestName: "Absolute Neutrophil Count", Unit: "10^3/uL", Category: CategoryCBC,
			NormalLow: 1.7, NormalHigh: 7.0, CriticalLow: 0.5, CriticalHigh: 25.0,
		},
		{
			TestCode: "ALC", TestName: "Absolute Lymphocyte Count", Unit: "10^3/uL", Category: CategoryCBC,
			NormalLow: 1.0, NormalHigh: 4.8, CriticalLow: 0.2, CriticalHigh: 15.0,
		},

		// ===== BASIC METABOLIC PANEL =====
		{
			TestCode: "NA", TestName: "Sodium", Unit: "mmol/L", Category: CategoryBMP,
			NormalLow: 135, NormalHigh: 145, CriticalLow: 120, CriticalHigh: 160,
		},
		{
			TestCode: "K", TestName: "Potassium", Unit: "mmol/L", Category: CategoryBMP,
			NormalLow: 3.5, NormalHigh: 5.0, CriticalLow: 2.5, CriticalHigh: 6.5,
		},
		{
			TestCode: "CL", TestName: "Chloride", Unit: "mmol/L", Category: CategoryBMP,
			NormalLow: 98, NormalHigh: 107, CriticalLow: 80, CriticalHigh: 120,
		},
		{
			TestCode: "CO2", TestName: "Bicarbonate", Unit: "mmol/L", Category: CategoryBMP,
			NormalLow: 22, NormalHigh: 28, CriticalLow: 10, CriticalHigh: 40,
		},
		{
			TestCode: "BUN", TestName: "Blood Urea Nitrogen", Unit: "mg/dL", Category: CategoryBMP,
			NormalLow: 7, NormalHigh: 20, CriticalLow: 2, CriticalHigh: 100,
			Geriatric: band(8, 23),
		},
		{
			TestCode: "CREAT", TestName: "Creatinine", Unit: "mg/dL", Category: CategoryBMP,
			NormalLow: 0.6, NormalHigh: 1.2, CriticalLow: 0.2, CriticalHigh: 10.0,
			Male: band(0.7, 1.3), Female: band(0.6, 1.1),
		},
		{
			TestCode: "GLU", TestName: "Glucose", Unit: "mg/dL", Category: CategoryBMP,
			NormalLow: 70, NormalHigh: 100, CriticalLow: 40, CriticalHigh: 500,
		},
		{
			TestCode: "CA", TestName: "Calcium", Unit: "mg/dL", Category: CategoryBMP,
			NormalLow: 8.5, NormalHigh: 10.5, CriticalLow: 6.0, CriticalHigh: 13.0,
		},
		{
			TestCode: "MG", TestName: "Magnesium", Unit: "mg/dL", Category: CategoryBMP,
			NormalLow: 1.7, NormalHigh: 2.2, CriticalLow: 1.0, CriticalHigh: 4.9,
		},
		{
			TestCode: "PHOS", TestName: "Phosphorus", Unit: "mg/dL", Category: CategoryBMP,
			NormalLow: 2.5, NormalHigh: 4.5, CriticalLow: 1.0, CriticalHigh: 8.9,
		},

		// ===== LIVER FUNCTION =====
		{
			TestCode: "ALT", TestName: "Alanine Aminotransferase", Unit: "U/L", Category: CategoryLFT,
			NormalLow: 7, NormalHigh: 56, CriticalLow: 0, CriticalHigh: 1000,
		},
		{
			TestCode: "AST", TestName: "Aspartate Aminotransferase", Unit: "U/L", Category: CategoryLFT,
			NormalLow: 10, NormalHigh: 40, CriticalLow: 0, CriticalHigh: 1000,
		},
		{
			TestCode: "ALP", TestName: "Alkaline Phosphatase", Unit: "U/L", Category: CategoryLFT,
			NormalLow: 44, NormalHigh: 147, CriticalLow: 10, CriticalHigh: 1000,
			Geriatric: band(51, 153),
		},
		{
			TestCode: "GGT", TestName: "Gamma-Glutamyl Transferase", Unit: "U/L", Category: CategoryLFT,
			NormalLow: 9, NormalHigh: 48, CriticalLow: 0, CriticalHigh: 500,
			Male: band(10, 71), Female: band(6, 42),
		},
		{
			TestCode: "TBILI", TestName: "Total Bilirubin", Unit: "mg/dL", Category: CategoryLFT,
			NormalLow: 0.1, NormalHigh: 1.2, CriticalLow: 0, CriticalHigh: 15.0,
		},
		{
			TestCode: "DBILI", TestName: "Direct Bilirubin", Unit: "mg/dL", Category: CategoryLFT,
			NormalLow: 0.0, NormalHigh: 0.3, CriticalLow: 0, CriticalHigh: 10.0,
		},
		{
			TestCode: "ALB", TestName: "Albumin", Unit: "g/dL", Category: CategoryLFT,
			NormalLow: 3.4, NormalHigh: 5.4, CriticalLow: 1.5, CriticalHigh: 7.0,
			Geriatric: band(3.2, 5.0),
		},
		{
			TestCode: "TPROT", TestName: "Total Protein", Unit: "g/dL", Category: CategoryLFT,
			NormalLow: 6.0, NormalHigh: 8.3, CriticalLow: 3.0, CriticalHigh: 12.0,
		},

		// ===== COAGULATION =====
		{
			TestCode: "PT", TestName: "Prothrombin Time", Unit: "sec", Category: CategoryCoagulation,
			NormalLow: 11.0, NormalHigh: 13.5, CriticalLow: 8.0, CriticalHigh: 40.0,
		},
		{
			TestCode: "INR", TestName: "International Normalized Ratio", Unit: "ratio", Category: CategoryCoagulation,
			NormalLow: 0.8, NormalHigh: 1.1, CriticalLow: 0.5, CriticalHigh: 5.0,
		},
		{
			TestCode: "PTT", TestName: "Partial Thromboplastin Time", Unit: "sec", Category: CategoryCoagulation,
			NormalLow: 25, NormalHigh: 35, CriticalLow: 15, CriticalHigh: 100,
		},
		{
			TestCode: "FIB", TestName: "Fibrinogen", Unit: "mg/dL", Category: CategoryCoagulation,
			NormalLow: 200, NormalHigh: 400, CriticalLow: 100, CriticalHigh: 900,
		},
		{
			TestCode: "DDIMER", TestName: "D-Dimer", Unit: "ug/mL FEU", Category: CategoryCoagulation,
			NormalLow: 0, NormalHigh: 0.5, CriticalLow: 0, CriticalHigh: 20.0,
			Geriatric: band(0, 1.0),
		},

		// ===== CARDIAC MARKERS =====
		{
			TestCode: "TROP", TestName: "Troponin I", Unit: "ng/mL", Category: CategoryCardiac,
			NormalLow: 0, NormalHigh: 0.04, CriticalLow: 0, CriticalHigh: 0.5,
		},
		{
			TestCode: "CKMB", TestName: "Creatine Kinase-MB", Unit: "ng/mL", Category: CategoryCardiac,
			NormalLow: 0, NormalHigh: 6.3, CriticalLow: 0, CriticalHigh: 25.0,
		},
		{
			TestCode: "BNP", TestName: "B-type Natriuretic Peptide", Unit: "pg/mL", Category: CategoryCardiac,
			NormalLow: 0, NormalHigh: 100, CriticalLow: 0, CriticalHigh: 5000,
			Geriatric: band(0, 180),
		},
		{
			TestCode: "NTPROBNP", TestName: "NT-proBNP", Unit: "pg/mL", Category: CategoryCardiac,
			NormalLow: 0, NormalHigh: 300, CriticalLow: 0, CriticalHigh: 35000,
			Geriatric: band(0, 450),
		},
		{
			TestCode: "MYO", TestName: "Myoglobin", Unit: "ng/mL", Category: CategoryCardiac,
			NormalLow: 25, NormalHigh: 72, CriticalLow: 5, CriticalHigh: 500,
			Male: band(28, 72), Female: band(25, 58),
		},

		// ===== INFLAMMATORY MARKERS =====
		{
			TestCode: "CRP", TestName: "C-Reactive Protein", Unit: "mg/L", Category: CategoryInflammatory,
			NormalLow: 0, NormalHigh: 10, CriticalLow: 0, CriticalHigh: 300,
		},
		{
			TestCode: "ESR", TestName: "Erythrocyte Sedimentation Rate", Unit: "mm/hr", Category: CategoryInflammatory,
			NormalLow: 0, NormalHigh: 20, CriticalLow: 0, CriticalHigh: 120,
			Male: band(0, 15), Female: band(0, 20), Geriatric: band(0, 30),
		},
		{
			TestCode: "PCT", TestName: "Procalcitonin", Unit: "ng/mL", Category: CategoryInflammatory,
			NormalLow: 0, NormalHigh: 0.25, CriticalLow: 0, CriticalHigh: 10.0,
		},
		{
			TestCode: "LACTATE", TestName: "Lactate", Unit: "mmol/L", Category: CategoryInflammatory,
			NormalLow: 0.5, NormalHigh: 2.2, CriticalLow: 0.1, CriticalHigh: 4.0,
		},

		// ===== ENDOCRINE =====
		{
			TestCode: "TSH", TestName: "Thyroid Stimulating Hormone", Unit: "mIU/L", Category: CategoryEndocrine,
			NormalLow: 0.4, NormalHigh: 4.0, CriticalLow: 0.01, CriticalHigh: 50.0,
			Geriatric: band(0.5, 5.0),
		},
		{
			TestCode: "FT4", TestName: "Free Thyroxine", Unit: "ng/dL", Category: CategoryEndocrine,
			NormalLow: 0.8, NormalHigh: 1.8, CriticalLow: 0.2, CriticalHigh: 6.0,
		},
		{
			TestCode: "HBA1C", TestName: "Hemoglobin A1c", Unit: "%", Category: CategoryEndocrine,
			NormalLow: 4.0, NormalHigh: 5.6, CriticalLow: 3.0, CriticalHigh: 15.0,
		},
		{
			TestCode: "CORTISOL", TestName: "Cortisol (AM)", Unit: "ug/dL", Category: CategoryEndocrine,
			NormalLow: 5, NormalHigh: 23, CriticalLow: 1, CriticalHigh: 60,
		},
		{
			TestCode: "INSULIN", TestName: "Insulin (fasting)", Unit: "uIU/mL", Category: CategoryEndocrine,
			NormalLow: 2, NormalHigh: 20, CriticalLow: 0.5, CriticalHigh: 100,
		},
		{
			TestCode: "VITD", TestName: "Vitamin D, 25-Hydroxy", Unit: "ng/mL", Category: CategoryEndocrine,
			NormalLow: 30, NormalHigh: 100, CriticalLow: 5, CriticalHigh: 150,
		},

		// ===== LIPID PANEL =====
		{
			TestCode: "CHOL", TestName: "Total Cholesterol", Unit: "mg/dL", Category: CategoryLipid,
			NormalLow: 0, NormalHigh: 200, CriticalLow: 0, CriticalHigh: 500,
		},
		{
			TestCode: "LDL", TestName: "LDL Cholesterol", Unit: "mg/dL", Category: CategoryLipid,
			NormalLow: 0, NormalHigh: 100, CriticalLow: 0, CriticalHigh: 400,
		},
		{
			TestCode: "HDL", TestName: "HDL Cholesterol", Unit: "mg/dL", Category: CategoryLipid,
			NormalLow: 40, NormalHigh: 90, CriticalLow: 10, CriticalHigh: 150,
			Male: band(40, 90), Female: band(50, 90),
		},
		{
			TestCode: "TRIG", TestName: "Triglycerides", Unit: "mg/dL", Category: CategoryLipid,
			NormalLow: 0, NormalHigh: 150, CriticalLow: 0, CriticalHigh: 1000,
		},

		// ===== URINALYSIS =====
		{
			TestCode: "UPH", TestName: "Urine pH", Unit: "pH", Category: CategoryUrinalysis,
			NormalLow: 4.5, NormalHigh: 8.0, CriticalLow: 4.0, CriticalHigh: 9.0,
		},
		{
			TestCode: "USG", TestName: "Urine Specific Gravity", Unit: "ratio", Category: CategoryUrinalysis,
			NormalLow: 1.005, NormalHigh: 1.030, CriticalLow: 1.000, CriticalHigh: 1.040,
		},
		{
			TestCode: "UALB", TestName: "Urine Microalbumin", Unit: "mg/g Cr", Category: CategoryUrinalysis,
			NormalLow: 0, NormalHigh: 30, CriticalLow: 0, CriticalHigh: 300,
		},

		// ===== ARTERIAL BLOOD GAS =====
		{
			TestCode: "ABGPH", TestName: "Arterial pH", Unit: "pH", Category: CategoryBloodGas,
			NormalLow: 7.35, NormalHigh: 7.45, CriticalLow: 7.20, CriticalHigh: 7.60,
		},
		{
			TestCode: "PCO2", TestName: "Partial Pressure CO2", Unit: "mmHg", Category: CategoryBloodGas,
			NormalLow: 35, NormalHigh: 45, CriticalLow: 20, CriticalHigh: 70,
		},
		{
			TestCode: "PO2", TestName: "Partial Pressure O2", Unit: "mmHg", Category: CategoryBloodGas,
			NormalLow: 80, NormalHigh: 100, CriticalLow: 40, CriticalHigh: 400,
		},
		{
			TestCode: "O2SAT", TestName: "Oxygen Saturation", Unit: "%", Category: CategoryBloodGas,
			NormalLow: 95, NormalHigh: 100, CriticalLow: 85, CriticalHigh: 100,
		},
		{
			TestCode: "BE", TestName: "Base Excess", Unit: "mmol/L", Category: CategoryBloodGas,
			NormalLow: -2, NormalHigh: 2, CriticalLow: -10, CriticalHigh: 10,
		},
	}
}
