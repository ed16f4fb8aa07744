package domain

import "time"

// MedicalImage is metadata for an uploaded patient image (x-ray, photo, ...).
// ImagePath is the object key in the image store, not a filesystem path.
type MedicalImage struct {
	ID             int       `json:"id" bson:"_id"`
	PatientID      int       `json:"patient_id" bson:"patient_id"`
	PatientName    string    `json:"patient_name" bson:"patient_name"`
	UploadedBy     int       `json:"uploaded_by" bson:"uploaded_by"`
	UploadedByName string    `json:"uploaded_by_name" bson:"uploaded_by_name"`
	ImagePath      string    `json:"image_path" bson:"image_path"`
	ImageType      string    `json:"image_type" bson:"image_type"`
	Description    string    `json:"description,omitempty" bson:"description,omitempty"`
	UploadDate     time.Time `json:"upload_date" bson:"upload_date"`
}
