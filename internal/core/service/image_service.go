package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/expertsdental/clinic-system/internal/core/domain"
	"github.com/expertsdental/clinic-system/internal/core/ports"
)

// ImageService implements medical image handling: bytes go to the object
// store, metadata to the repository. A failed metadata insert rolls the
// object back so neither side leaks.
type ImageService struct {
	images   ports.ImageRepository
	patients ports.PatientRepository
	users    ports.UserRepository
	store    ports.ObjectStore
	logger   zerolog.Logger
}

func NewImageService(
	images ports.ImageRepository,
	patients ports.PatientRepository,
	users ports.UserRepository,
	store ports.ObjectStore,
	logger zerolog.Logger,
) *ImageService {
	return &ImageService{images: images, patients: patients, users: users, store: store, logger: logger}
}

func (s *ImageService) Upload(ctx context.Context, input ports.UploadImageInput) (*domain.MedicalImage, error) {
	patient, err := s.patients.FindByID(ctx, input.PatientID)
	if err != nil {
		return nil, err
	}
	uploader, err := s.users.FindByID(ctx, input.UploadedBy)
	if err != nil {
		return nil, err
	}

	key := objectKey(patient.ID, input.FileName)
	if err := s.store.Put(ctx, key, input.Reader, input.Size, input.ContentType); err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	image := &domain.MedicalImage{
		PatientID:      patient.ID,
		PatientName:    patient.Name,
		UploadedBy:     uploader.ID,
		UploadedByName: uploader.FullName,
		ImagePath:      key,
		ImageType:      input.ImageType,
		Description:    input.Description,
		UploadDate:     time.Now().UTC(),
	}

	created, err := s.images.Create(ctx, image)
	if err != nil {
		if rmErr := s.store.Remove(ctx, key); rmErr != nil {
			s.logger.Warn().Err(rmErr).Str("key", key).Msg("orphaned image object after failed insert")
		}
		return nil, err
	}

	s.logger.Info().
		Int("image_id", created.ID).
		Int("patient_id", created.PatientID).
		Str("image_type", created.ImageType).
		Msg("image uploaded")
	return created, nil
}

func (s *ImageService) ListByPatient(ctx context.Context, patientID int) ([]domain.MedicalImage, error) {
	return s.images.ListByPatient(ctx, patientID)
}

func (s *ImageService) Open(ctx context.Context, id int) (*domain.MedicalImage, io.ReadCloser, error) {
	image, err := s.images.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	r, _, err := s.store.Get(ctx, image.ImagePath)
	if err != nil {
		return nil, nil, domain.ErrImageNotFound
	}
	return image, r, nil
}

func (s *ImageService) Delete(ctx context.Context, id int) error {
	image, err := s.images.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.Remove(ctx, image.ImagePath); err != nil {
		s.logger.Warn().Err(err).Str("key", image.ImagePath).Msg("image object removal failed")
	}
	if err := s.images.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int("image_id", id).Msg("image deleted")
	return nil
}

// objectKey namespaces stored objects by patient and keeps the original
// extension for content-type sniffing by clients.
func objectKey(patientID int, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return fmt.Sprintf("%d/%s%s", patientID, uuid.NewString(), ext)
}
