// Package mongodb provides MongoDB persistence for facilities.
package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clinicops/admin-api/internal/facility/domain"

	apperrors "github.com/clinicops/admin-api/internal/errors"
)

const collectionName = "facilities"

// MongoDBFacilityRepository stores facilities in MongoDB. Facilities are hard
// deleted; there is no soft-delete flag on this collection.
type MongoDBFacilityRepository struct {
	collection *mongo.Collection
}

// NewMongoDBFacilityRepository creates a new MongoDBFacilityRepository.
func NewMongoDBFacilityRepository(db *mongo.Database) *MongoDBFacilityRepository {
	return &MongoDBFacilityRepository{
		collection: db.Collection(collectionName),
	}
}

// List returns all facilities.
func (r *MongoDBFacilityRepository) List(ctx context.Context) ([]*domain.Facility, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list facilities")
	}
	defer cursor.Close(ctx)

	facilities := []*domain.Facility{}
	if err := cursor.All(ctx, &facilities); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode facilities")
	}
	return facilities, nil
}

// GetByID retrieves a facility by id.
func (r *MongoDBFacilityRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Facility, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetByName retrieves a facility by its unique name.
func (r *MongoDBFacilityRepository) GetByName(ctx context.Context, name string) (*domain.Facility, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

// Create inserts a new facility.
func (r *MongoDBFacilityRepository) Create(ctx context.Context, facility *domain.Facility) error {
	result, err := r.collection.InsertOne(ctx, facility)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrFacilityExists
		}
		return apperrors.Wrap(err, "failed to create facility")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		facility.ID = oid
	}
	return nil
}

func (r *MongoDBFacilityRepository) update(ctx context.Context, filter bson.M, facility *domain.Facility) error {
	update := bson.M{"$set": bson.M{"name": facility.Name, "rooms": facility.Rooms}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrFacilityExists
		}
		return apperrors.Wrap(err, "failed to update facility")
	}
	if result.MatchedCount == 0 {
		return domain.ErrFacilityNotFound
	}
	return nil
}

// UpdateByID updates a facility matched by id.
func (r *MongoDBFacilityRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, facility *domain.Facility) error {
	return r.update(ctx, bson.M{"_id": id}, facility)
}

// UpdateByName updates a facility matched by name.
func (r *MongoDBFacilityRepository) UpdateByName(ctx context.Context, name string, facility *domain.Facility) error {
	return r.update(ctx, bson.M{"name": name}, facility)
}

// DeleteByID removes a facility by id.
func (r *MongoDBFacilityRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	return r.delete(ctx, bson.M{"_id": id})
}

// DeleteByName removes a facility by name.
func (r *MongoDBFacilityRepository) DeleteByName(ctx context.Context, name string) error {
	return r.delete(ctx, bson.M{"name": name})
}

func (r *MongoDBFacilityRepository) delete(ctx context.Context, filter bson.M) error {
	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete facility")
	}
	if result.DeletedCount == 0 {
		return domain.ErrFacilityNotFound
	}
	return nil
}

func (r *MongoDBFacilityRepository) findOne(ctx context.Context, filter bson.M) (*domain.Facility, error) {
	var facility domain.Facility
	if err := r.collection.FindOne(ctx, filter).Decode(&facility); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFacilityNotFound
		}
		return nil, apperrors.Wrap(err, "failed to find facility")
	}
	return &facility, nil
}
