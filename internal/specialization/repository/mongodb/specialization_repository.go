// Package mongodb provides MongoDB persistence for specializations.
package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clinicops/admin-api/internal/specialization/domain"

	apperrors "github.com/clinicops/admin-api/internal/errors"
)

const collectionName = "specializations"

// MongoDBSpecializationRepository stores specializations in MongoDB.
type MongoDBSpecializationRepository struct {
	collection *mongo.Collection
}

// NewMongoDBSpecializationRepository creates a new MongoDBSpecializationRepository.
func NewMongoDBSpecializationRepository(db *mongo.Database) *MongoDBSpecializationRepository {
	return &MongoDBSpecializationRepository{
		collection: db.Collection(collectionName),
	}
}

// List returns all specializations.
func (r *MongoDBSpecializationRepository) List(ctx context.Context) ([]*domain.Specialization, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list specializations")
	}
	defer cursor.Close(ctx)

	specializations := []*domain.Specialization{}
	if err := cursor.All(ctx, &specializations); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode specializations")
	}
	return specializations, nil
}

// Create inserts a new specialization.
func (r *MongoDBSpecializationRepository) Create(ctx context.Context, specialization *domain.Specialization) error {
	result, err := r.collection.InsertOne(ctx, specialization)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrSpecializationExists
		}
		return apperrors.Wrap(err, "failed to create specialization")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		specialization.ID = oid
	}
	return nil
}

// Delete removes a specialization by id.
func (r *MongoDBSpecializationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperrors.Wrap(err, "failed to delete specialization")
	}
	if result.DeletedCount == 0 {
		return domain.ErrSpecializationNotFound
	}
	return nil
}
