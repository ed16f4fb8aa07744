package ports

import (
	"context"
	"io"

	"github.com/expertsdental/clinic-system/internal/core/domain"
)

// UploadImageInput carries the multipart form fields plus the file stream.
type UploadImageInput struct {
	PatientID   int
	ImageType   string
	Description string
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
	UploadedBy  int
}

// ImageService covers medical image upload, retrieval and deletion. File
// bytes live in the object store; metadata lives in the image repository.
type ImageService interface {
	Upload(ctx context.Context, input UploadImageInput) (*domain.MedicalImage, error)
	ListByPatient(ctx context.Context, patientID int) ([]domain.MedicalImage, error)
	// Open returns the image metadata and a reader over the stored bytes.
	// The caller owns closing the reader.
	Open(ctx context.Context, id int) (*domain.MedicalImage, io.ReadCloser, error)
	Delete(ctx context.Context, id int) error
}

// ImageRepository persists image metadata.
type ImageRepository interface {
	Create(ctx context.Context, image *domain.MedicalImage) (*domain.MedicalImage, error)
	FindByID(ctx context.Context, id int) (*domain.MedicalImage, error)
	ListByPatient(ctx context.Context, patientID int) ([]domain.MedicalImage, error)
	Delete(ctx context.Context, id int) error
	DeleteByPatient(ctx context.Context, patientID int) error
}

// ObjectStore holds the raw image bytes under opaque keys.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, string, error)
	Remove(ctx context.Context, key string) error
}
