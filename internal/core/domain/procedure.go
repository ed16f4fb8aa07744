package domain

import "time"

// Procedure is a billable dental procedure from the clinic's price list.
type Procedure struct {
	ID          int       `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	PriceJOD    float64   `json:"price_jod" bson:"price_jod"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
