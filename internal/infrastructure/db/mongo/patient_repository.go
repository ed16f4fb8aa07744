package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/expertsdental/clinic-system/internal/core/domain"
	"github.com/expertsdental/clinic-system/internal/core/ports"
)

const collectionPatients = "patients"

type PatientRepository struct {
	col      *mongo.Collection
	counters *Counters
}

func NewPatientRepository(db *mongo.Database, counters *Counters) *PatientRepository {
	return &PatientRepository{col: db.Collection(collectionPatients), counters: counters}
}

func (r *PatientRepository) Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.counters.Next(ctx, "patients")
	if err != nil {
		return nil, err
	}
	patient.ID = id

	if _, err := r.col.InsertOne(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (r *PatientRepository) FindByID(ctx context.Context, id int) (*domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var patient domain.Patient
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&patient); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, err
	}
	return &patient, nil
}

func (r *PatientRepository) List(ctx context.Context) ([]domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	patients := []domain.Patient{}
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *PatientRepository) Update(ctx context.Context, id int, update ports.PatientUpdate) (*domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.DateOfBirth != nil {
		set["date_of_birth"] = *update.DateOfBirth
	}
	if update.Address != nil {
		set["address"] = *update.Address
	}
	if update.MedicalHistory != nil {
		set["medical_history"] = *update.MedicalHistory
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	var patient domain.Patient
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&patient)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, err
	}
	return &patient, nil
}

func (r *PatientRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrPatientNotFound
	}
	return nil
}
