package domain

import "time"

// AppointmentStatus is the scheduling state of an appointment.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment books a patient with a doctor on a given date and time.
// PatientName and DoctorName are denormalized into every read for display.
type Appointment struct {
	ID              int               `json:"id" bson:"_id"`
	PatientID       int               `json:"patient_id" bson:"patient_id"`
	PatientName     string            `json:"patient_name" bson:"patient_name"`
	DoctorID        int               `json:"doctor_id" bson:"doctor_id"`
	DoctorName      string            `json:"doctor_name" bson:"doctor_name"`
	AppointmentDate string            `json:"appointment_date" bson:"appointment_date"`
	AppointmentTime string            `json:"appointment_time" bson:"appointment_time"`
	DurationMinutes int               `json:"duration_minutes" bson:"duration_minutes"`
	Status          AppointmentStatus `json:"status" bson:"status"`
	Notes           string            `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt       time.Time         `json:"created_at" bson:"created_at"`
}
