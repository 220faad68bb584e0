package models

import "encoding/json"

// HistoryRecord is one stored prediction belonging to the current session's
// user. Records are owned by the backend; the client renders them in the
// order they are delivered.
type HistoryRecord struct {
	ID               ObjectID        `json:"_id"`
	PredictionResult string          `json:"prediction_result"`
	InputData        PredictionInput `json:"input_data"`
	CreatedAt        MongoTime       `json:"created_at"`
}

// PatientActivityRecord is one prediction in the doctor-wide activity feed,
// enriched with the patient's name.
type PatientActivityRecord struct {
	ID             ObjectID  `json:"_id"`
	PatientName    string    `json:"patient_name"`
	Prediction     string    `json:"prediction"`
	Recommendation string    `json:"recommendation"`
	Timestamp      MongoTime `json:"timestamp"`
}

// DefaultRecommendation is shown for activity records stored before the
// backend began persisting recommendations.
const DefaultRecommendation = "Review required"

// UnmarshalJSON tolerates the backend's field drift: the feed stores the
// label under prediction_result and the timestamp under created_at, while
// newer documents carry prediction/timestamp directly.
func (r *PatientActivityRecord) UnmarshalJSON(data []byte) error {
	type alias PatientActivityRecord
	aux := struct {
		*alias
		PredictionResult string    `json:"prediction_result"`
		CreatedAt        MongoTime `json:"created_at"`
	}{alias: (*alias)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if r.Prediction == "" {
		r.Prediction = aux.PredictionResult
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = aux.CreatedAt
	}
	if r.Recommendation == "" {
		r.Recommendation = DefaultRecommendation
	}
	return nil
}

// Disease is one entry in the reference catalog of known conditions.
type Disease struct {
	Name       string   `json:"name"`
	Symptoms   []string `json:"symptoms"`
	Treatments []string `json:"treatments"`
}
