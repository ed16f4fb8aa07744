package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/expertsdental/clinic-system/internal/core/domain"
)

const collectionImages = "medical_images"

type ImageRepository struct {
	col      *mongo.Collection
	counters *Counters
}

func NewImageRepository(db *mongo.Database, counters *Counters) *ImageRepository {
	return &ImageRepository{col: db.Collection(collectionImages), counters: counters}
}

func (r *ImageRepository) Create(ctx context.Context, image *domain.MedicalImage) (*domain.MedicalImage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.counters.Next(ctx, "medical_images")
	if err != nil {
		return nil, err
	}
	image.ID = id

	if _, err := r.col.InsertOne(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

func (r *ImageRepository) FindByID(ctx context.Context, id int) (*domain.MedicalImage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var image domain.MedicalImage
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&image); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrImageNotFound
		}
		return nil, err
	}
	return &image, nil
}

func (r *ImageRepository) ListByPatient(ctx context.Context, patientID int) ([]domain.MedicalImage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx,
		bson.M{"patient_id": patientID},
		options.Find().SetSort(bson.D{{Key: "upload_date", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	images := []domain.MedicalImage{}
	if err := cursor.All(ctx, &images); err != nil {
		return nil, err
	}
	return images, nil
}

func (r *ImageRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrImageNotFound
	}
	return nil
}

func (r *ImageRepository) DeleteByPatient(ctx context.Context, patientID int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{"patient_id": patientID})
	return err
}
