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

const collectionProcedures = "procedures"

type ProcedureRepository struct {
	col      *mongo.Collection
	counters *Counters
}

func NewProcedureRepository(db *mongo.Database, counters *Counters) *ProcedureRepository {
	return &ProcedureRepository{col: db.Collection(collectionProcedures), counters: counters}
}

func (r *ProcedureRepository) Create(ctx context.Context, procedure *domain.Procedure) (*domain.Procedure, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.counters.Next(ctx, "procedures")
	if err != nil {
		return nil, err
	}
	procedure.ID = id

	if _, err := r.col.InsertOne(ctx, procedure); err != nil {
		return nil, err
	}
	return procedure, nil
}

func (r *ProcedureRepository) FindByID(ctx context.Context, id int) (*domain.Procedure, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var procedure domain.Procedure
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&procedure); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProcedureNotFound
		}
		return nil, err
	}
	return &procedure, nil
}

func (r *ProcedureRepository) List(ctx context.Context) ([]domain.Procedure, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	procedures := []domain.Procedure{}
	if err := cursor.All(ctx, &procedures); err != nil {
		return nil, err
	}
	return procedures, nil
}

func (r *ProcedureRepository) Update(ctx context.Context, id int, update ports.ProcedureUpdate) (*domain.Procedure, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.PriceJOD != nil {
		set["price_jod"] = *update.PriceJOD
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	var procedure domain.Procedure
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&procedure)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProcedureNotFound
		}
		return nil, err
	}
	return &procedure, nil
}

func (r *ProcedureRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrProcedureNotFound
	}
	return nil
}
