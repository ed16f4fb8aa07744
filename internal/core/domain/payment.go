package domain

import "time"

// Payment is money received from a patient, stamped with the staff member
// who recorded it.
type Payment struct {
	ID             int       `json:"id" bson:"_id"`
	PatientID      int       `json:"patient_id" bson:"patient_id"`
	PatientName    string    `json:"patient_name" bson:"patient_name"`
	AmountJOD      float64   `json:"amount_jod" bson:"amount_jod"`
	PaymentDate    time.Time `json:"payment_date" bson:"payment_date"`
	RecordedBy     int       `json:"recorded_by" bson:"recorded_by"`
	RecordedByName string    `json:"recorded_by_name" bson:"recorded_by_name"`
	Notes          string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}
