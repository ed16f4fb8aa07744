package domain

import "time"

// VisitStatus is the treatment state of a visit.
type VisitStatus string

const (
	VisitInProgress VisitStatus = "in_progress"
	VisitCompleted  VisitStatus = "completed"
)

// VisitProcedure is a single billed line item on a visit.
type VisitProcedure struct {
	ProcedureID int     `json:"id" bson:"procedure_id"`
	Name        string  `json:"name" bson:"name"`
	PriceJOD    float64 `json:"price_jod" bson:"price_jod"`
	Quantity    int     `json:"quantity" bson:"quantity"`
}

// Visit records a treatment session and the procedures performed during it.
// The procedure list is fixed at creation; only status and notes change later.
type Visit struct {
	ID           int              `json:"id" bson:"_id"`
	PatientID    int              `json:"patient_id" bson:"patient_id"`
	PatientName  string           `json:"patient_name" bson:"patient_name"`
	DoctorID     int              `json:"doctor_id" bson:"doctor_id"`
	DoctorName   string           `json:"doctor_name" bson:"doctor_name"`
	VisitDate    time.Time        `json:"visit_date" bson:"visit_date"`
	Status       VisitStatus      `json:"status" bson:"status"`
	Notes        string           `json:"notes,omitempty" bson:"notes,omitempty"`
	Procedures   []VisitProcedure `json:"procedures" bson:"procedures"`
	TotalCostJOD float64          `json:"total_cost_jod" bson:"total_cost_jod"`
	CreatedAt    time.Time        `json:"created_at" bson:"created_at"`
}

// TotalCost sums price times quantity across the visit's line items.
func (v *Visit) TotalCost() float64 {
	var total float64
	for _, p := range v.Procedures {
		total += p.PriceJOD * float64(p.Quantity)
	}
	return total
}
