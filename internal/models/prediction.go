package models

// PredictionInput is the 24-feature blood panel submitted for analysis.
// Values are carried as strings exactly as entered in the form; numeric
// parsing is the backend's responsibility. Every field must be non-empty
// before the payload may be submitted.
type PredictionInput struct {
	Glucose                                string `json:"glucose" validate:"required"`
	Cholesterol                            string `json:"cholesterol" validate:"required"`
	Hemoglobin                             string `json:"hemoglobin" validate:"required"`
	Platelets                              string `json:"platelets" validate:"required"`
	WhiteBloodCells                        string `json:"white_blood_cells" validate:"required"`
	RedBloodCells                          string `json:"red_blood_cells" validate:"required"`
	Hematocrit                             string `json:"hematocrit" validate:"required"`
	MeanCorpuscularVolume                  string `json:"mean_corpuscular_volume" validate:"required"`
	MeanCorpuscularHemoglobin              string `json:"mean_corpuscular_hemoglobin" validate:"required"`
	MeanCorpuscularHemoglobinConcentration string `json:"mean_corpuscular_hemoglobin_concentration" validate:"required"`
	Insulin                                string `json:"insulin" validate:"required"`
	BMI                                    string `json:"bmi" validate:"required"`
	SystolicBloodPressure                  string `json:"systolic_blood_pressure" validate:"required"`
	DiastolicBloodPressure                 string `json:"diastolic_blood_pressure" validate:"required"`
	Triglycerides                          string `json:"triglycerides" validate:"required"`
	HbA1c                                  string `json:"hba1c" validate:"required"`
	LDLCholesterol                         string `json:"ldl_cholesterol" validate:"required"`
	HDLCholesterol                         string `json:"hdl_cholesterol" validate:"required"`
	ALT                                    string `json:"alt" validate:"required"`
	AST                                    string `json:"ast" validate:"required"`
	HeartRate                              string `json:"heart_rate" validate:"required"`
	Creatinine                             string `json:"creatinine" validate:"required"`
	Troponin                               string `json:"troponin" validate:"required"`
	CReactiveProtein                       string `json:"c_reactive_protein" validate:"required"`
}

// PredictionResult is the model's answer for one submitted input.
// Immutable once received.
type PredictionResult struct {
	Prediction     string `json:"prediction"`
	Recommendation string `json:"recommendation"`
}

// ModelStats is a singleton snapshot of the model's aggregate accuracy.
// It is replaced wholesale on every fetch, never merged.
type ModelStats struct {
	Accuracy  float64 `json:"accuracy"`
	ModelType string  `json:"model_type"`
}
