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

const collectionVisits = "visits"

type VisitRepository struct {
	col      *mongo.Collection
	counters *Counters
}

func NewVisitRepository(db *mongo.Database, counters *Counters) *VisitRepository {
	return &VisitRepository{col: db.Collection(collectionVisits), counters: counters}
}

func (r *VisitRepository) Create(ctx context.Context, visit *domain.Visit) (*domain.Visit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.counters.Next(ctx, "visits")
	if err != nil {
		return nil, err
	}
	visit.ID = id

	if _, err := r.col.InsertOne(ctx, visit); err != nil {
		return nil, err
	}
	return visit, nil
}

func (r *VisitRepository) FindByID(ctx context.Context, id int) (*domain.Visit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var visit domain.Visit
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&visit); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVisitNotFound
		}
		return nil, err
	}
	return &visit, nil
}

func (r *VisitRepository) List(ctx context.Context, patientID int) ([]domain.Visit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if patientID > 0 {
		query["patient_id"] = patientID
	}

	cursor, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "visit_date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	visits := []domain.Visit{}
	if err := cursor.All(ctx, &visits); err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *VisitRepository) Update(ctx context.Context, id int, update ports.VisitUpdate) (*domain.Visit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	var visit domain.Visit
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&visit)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVisitNotFound
		}
		return nil, err
	}
	return &visit, nil
}

func (r *VisitRepository) DeleteByPatient(ctx context.Context, patientID int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{"patient_id": patientID})
	return err
}

// TotalCostByPatient sums total_cost_jod across the patient's visits with an
// aggregation pipeline so the balance never loads full documents.
func (r *VisitRepository) TotalCostByPatient(ctx context.Context, patientID int) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"patient_id": patientID}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$total_cost_jod"}}}},
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
