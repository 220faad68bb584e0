package models

// Feature describes one blood-panel form field.
type Feature struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Features lists the 24 blood-panel fields in form order with their
// display labels.
var Features = []Feature{
	{Name: "glucose", Label: "Glucose"},
	{Name: "cholesterol", Label: "Cholesterol"},
	{Name: "hemoglobin", Label: "Hemoglobin"},
	{Name: "platelets", Label: "Platelets"},
	{Name: "white_blood_cells", Label: "White Blood Cells"},
	{Name: "red_blood_cells", Label: "Red Blood Cells"},
	{Name: "hematocrit", Label: "Hematocrit"},
	{Name: "mean_corpuscular_volume", Label: "Mean Corpuscular Volume"},
	{Name: "mean_corpuscular_hemoglobin", Label: "Mean Corpuscular Hemoglobin"},
	{Name: "mean_corpuscular_hemoglobin_concentration", Label: "MCHC"},
	{Name: "insulin", Label: "Insulin"},
	{Name: "bmi", Label: "BMI"},
	{Name: "systolic_blood_pressure", Label: "Systolic BP"},
	{Name: "diastolic_blood_pressure", Label: "Diastolic BP"},
	{Name: "triglycerides", Label: "Triglycerides"},
	{Name: "hba1c", Label: "HbA1c"},
	{Name: "ldl_cholesterol", Label: "LDL Cholesterol"},
	{Name: "hdl_cholesterol", Label: "HDL Cholesterol"},
	{Name: "alt", Label: "ALT"},
	{Name: "ast", Label: "AST"},
	{Name: "heart_rate", Label: "Heart Rate"},
	{Name: "creatinine", Label: "Creatinine"},
	{Name: "troponin", Label: "Troponin"},
	{Name: "c_reactive_protein", Label: "C-Reactive Protein"},
}
