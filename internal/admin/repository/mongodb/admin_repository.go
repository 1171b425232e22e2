// Package mongodb provides MongoDB persistence for administrator credentials.
package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	adminDomain "github.com/clinicops/admin-api/internal/admin/domain"
	authDomain "github.com/clinicops/admin-api/internal/auth/domain"

	apperrors "github.com/clinicops/admin-api/internal/errors"
)

// collectionName is the MongoDB collection holding administrator records.
const collectionName = "admins"

// MongoDBAdminRepository stores administrator credentials in MongoDB. It
// implements the authentication CredentialStore contract keyed by user id.
type MongoDBAdminRepository struct {
	collection *mongo.Collection
}

// NewMongoDBAdminRepository creates a new MongoDBAdminRepository.
func NewMongoDBAdminRepository(db *mongo.Database) *MongoDBAdminRepository {
	return &MongoDBAdminRepository{
		collection: db.Collection(collectionName),
	}
}

// FindActiveByKey retrieves a non-deleted administrator by user id.
func (r *MongoDBAdminRepository) FindActiveByKey(ctx context.Context, key string) (*authDomain.Identity, error) {
	return r.findOne(ctx, bson.M{"user_id": key, "isDeleted": false})
}

// FindAnyByKey retrieves an administrator by user id regardless of the
// soft-delete flag.
func (r *MongoDBAdminRepository) FindAnyByKey(ctx context.Context, key string) (*authDomain.Identity, error) {
	return r.findOne(ctx, bson.M{"user_id": key})
}

// CreateIdentity inserts a new active administrator record.
func (r *MongoDBAdminRepository) CreateIdentity(ctx context.Context, identity *authDomain.Identity) error {
	admin := adminDomain.Admin{
		UserID:    identity.Key,
		Password:  identity.Secret,
		IsDeleted: false,
	}

	result, err := r.collection.InsertOne(ctx, admin)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return authDomain.ErrIdentityExists
		}
		return apperrors.Wrap(err, "failed to create admin")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		identity.ID = oid.Hex()
	}
	return nil
}

// Reactivate clears the soft-delete flag and replaces the stored password in
// a single update, so a half-revived record can never be observed.
func (r *MongoDBAdminRepository) Reactivate(ctx context.Context, identity *authDomain.Identity) error {
	oid, err := primitive.ObjectIDFromHex(identity.ID)
	if err != nil {
		return apperrors.Wrap(err, "invalid admin id")
	}

	update := bson.M{"$set": bson.M{"password": identity.Secret, "isDeleted": false}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return apperrors.Wrap(err, "failed to reactivate admin")
	}
	if result.MatchedCount == 0 {
		return authDomain.ErrIdentityNotFound
	}
	return nil
}

// MarkDeleted sets the soft-delete flag on the administrator record.
func (r *MongoDBAdminRepository) MarkDeleted(ctx context.Context, identity *authDomain.Identity) error {
	oid, err := primitive.ObjectIDFromHex(identity.ID)
	if err != nil {
		return apperrors.Wrap(err, "invalid admin id")
	}

	update := bson.M{"$set": bson.M{"isDeleted": true}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete admin")
	}
	if result.MatchedCount == 0 {
		return authDomain.ErrIdentityNotFound
	}
	return nil
}

func (r *MongoDBAdminRepository) findOne(ctx context.Context, filter bson.M) (*authDomain.Identity, error) {
	var admin adminDomain.Admin
	if err := r.collection.FindOne(ctx, filter).Decode(&admin); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, authDomain.ErrIdentityNotFound
		}
		return nil, apperrors.Wrap(err, "failed to find admin")
	}
	return admin.ToIdentity(), nil
}
