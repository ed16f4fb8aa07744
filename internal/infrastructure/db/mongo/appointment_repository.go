package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/expertsdental/clinic-system/internal/core/domain"
	"github.com/expertsdental/clinic-system/internal/core/ports"
)

const collectionAppointments = "appointments"

type AppointmentRepository struct {
	col      *mongo.Collection
	counters *Counters
}

func NewAppointmentRepository(db *mongo.Database, counters *Counters) *AppointmentRepository {
	return &AppointmentRepository{col: db.Collection(collectionAppointments), counters: counters}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.counters.Next(ctx, "appointments")
	if err != nil {
		return nil, err
	}
	appointment.ID = id

	if _, err := r.col.InsertOne(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id int) (*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var appointment domain.Appointment
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&appointment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *AppointmentRepository) List(ctx context.Context, filter ports.AppointmentFilter) ([]domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.DoctorID > 0 {
		query["doctor_id"] = filter.DoctorID
	}
	if filter.Date != "" {
		query["appointment_date"] = filter.Date
	}

	sort := bson.D{{Key: "appointment_date", Value: 1}, {Key: "appointment_time", Value: 1}}
	cursor, err := r.col.Find(ctx, query, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	appointments := []domain.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, id int, update ports.AppointmentUpdate) (*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if update.AppointmentDate != nil {
		set["appointment_date"] = *update.AppointmentDate
	}
	if update.AppointmentTime != nil {
		set["appointment_time"] = *update.AppointmentTime
	}
	if update.DurationMinutes != nil {
		set["duration_minutes"] = *update.DurationMinutes
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	var appointment domain.Appointment
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentRepository) DeleteByPatient(ctx context.Context, patientID int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{"patient_id": patientID})
	return err
}

// EnsureIndexes creates the schedule lookup indexes.
func (r *AppointmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "doctor_id", Value: 1}, {Key: "appointment_date", Value: 1}}},
		{Keys: bson.D{{Key: "patient_id", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
