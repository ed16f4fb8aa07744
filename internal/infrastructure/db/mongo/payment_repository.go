package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/expertsdental/clinic-system/internal/core/domain"
)

const collectionPayments = "payments"

type PaymentRepository struct {
	col      *mongo.Collection
	counters *Counters
}

func NewPaymentRepository(db *mongo.Database, counters *Counters) *PaymentRepository {
	return &PaymentRepository{col: db.Collection(collectionPayments), counters: counters}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.counters.Next(ctx, "payments")
	if err != nil {
		return nil, err
	}
	payment.ID = id

	if _, err := r.col.InsertOne(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (r *PaymentRepository) List(ctx context.Context, patientID int) ([]domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if patientID > 0 {
		query["patient_id"] = patientID
	}

	cursor, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "payment_date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	payments := []domain.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepository) DeleteByPatient(ctx context.Context, patientID int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{"patient_id": patientID})
	return err
}

// TotalPaidByPatient sums amount_jod across the patient's payments.
func (r *PaymentRepository) TotalPaidByPatient(ctx context.Context, patientID int) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"patient_id": patientID}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$amount_jod"}}}},
	}
	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
