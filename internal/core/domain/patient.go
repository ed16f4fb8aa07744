package domain

import "time"

// Patient is a clinic patient record. BalanceJOD is derived, never stored:
// total cost of the patient's visit procedures minus total payments received.
type Patient struct {
	ID             int       `json:"id" bson:"_id"`
	Name           string    `json:"name" bson:"name"`
	Phone          string    `json:"phone" bson:"phone"`
	Email          string    `json:"email,omitempty" bson:"email,omitempty"`
	DateOfBirth    string    `json:"date_of_birth,omitempty" bson:"date_of_birth,omitempty"`
	Address        string    `json:"address,omitempty" bson:"address,omitempty"`
	MedicalHistory string    `json:"medical_history,omitempty" bson:"medical_history,omitempty"`
	Notes          string    `json:"notes,omitempty" bson:"notes,omitempty"`
	BalanceJOD     float64   `json:"balance_jod" bson:"-"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}
