// Package mongodb provides MongoDB persistence for doctors. The repository
// doubles as the credential store for doctor authentication, keyed by email.
package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	authDomain "github.com/clinicops/admin-api/internal/auth/domain"
	"github.com/clinicops/admin-api/internal/doctor/domain"

	apperrors "github.com/clinicops/admin-api/internal/errors"
)

const collectionName = "doctors"

// MongoDBDoctorRepository stores doctors in MongoDB.
type MongoDBDoctorRepository struct {
	collection *mongo.Collection
}

// NewMongoDBDoctorRepository creates a new MongoDBDoctorRepository.
func NewMongoDBDoctorRepository(db *mongo.Database) *MongoDBDoctorRepository {
	return &MongoDBDoctorRepository{
		collection: db.Collection(collectionName),
	}
}

// List returns all non-deleted doctors.
func (r *MongoDBDoctorRepository) List(ctx context.Context) ([]*domain.Doctor, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"isDeleted": false})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list doctors")
	}
	defer cursor.Close(ctx)

	doctors := []*domain.Doctor{}
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode doctors")
	}
	return doctors, nil
}

// GetByID retrieves a non-deleted doctor by id.
func (r *MongoDBDoctorRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Doctor, error) {
	return r.findOne(ctx, bson.M{"_id": id, "isDeleted": false})
}

// GetByName retrieves a non-deleted doctor by name.
func (r *MongoDBDoctorRepository) GetByName(ctx context.Context, name string) (*domain.Doctor, error) {
	return r.findOne(ctx, bson.M{"name": name, "isDeleted": false})
}

// GetByEmailAny retrieves a doctor by email regardless of the soft-delete
// flag. Used by the registration flow to detect revivable records.
func (r *MongoDBDoctorRepository) GetByEmailAny(ctx context.Context, email string) (*domain.Doctor, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// Create inserts a new doctor.
func (r *MongoDBDoctorRepository) Create(ctx context.Context, doctor *domain.Doctor) error {
	result, err := r.collection.InsertOne(ctx, doctor)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDoctorExists
		}
		return apperrors.Wrap(err, "failed to create doctor")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		doctor.ID = oid
	}
	return nil
}

// Replace overwrites the whole document, keeping its id. Used to revive a
// soft-deleted doctor in a single write.
func (r *MongoDBDoctorRepository) Replace(ctx context.Context, doctor *domain.Doctor) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doctor.ID}, doctor)
	if err != nil {
		return apperrors.Wrap(err, "failed to replace doctor")
	}
	if result.MatchedCount == 0 {
		return domain.ErrDoctorNotFound
	}
	return nil
}

func (r *MongoDBDoctorRepository) updateFields(ctx context.Context, filter, fields bson.M) error {
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDoctorExists
		}
		return apperrors.Wrap(err, "failed to update doctor")
	}
	if result.MatchedCount == 0 {
		return domain.ErrDoctorNotFound
	}
	return nil
}

// UpdateByID applies a partial update to a non-deleted doctor matched by id.
func (r *MongoDBDoctorRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, update domain.Update) error {
	return r.updateFields(ctx, bson.M{"_id": id, "isDeleted": false}, updateToFields(update))
}

// UpdateByName applies a partial update to a non-deleted doctor matched by name.
func (r *MongoDBDoctorRepository) UpdateByName(ctx context.Context, name string, update domain.Update) error {
	return r.updateFields(ctx, bson.M{"name": name, "isDeleted": false}, updateToFields(update))
}

func updateToFields(update domain.Update) bson.M {
	fields := bson.M{
		"name":       update.Name,
		"specialty":  update.Specialty,
		"email":      update.Email,
		"degree":     update.Degree,
		"experience": update.Experience,
	}
	if update.Password != nil {
		fields["password"] = *update.Password
	}
	return fields
}

// SoftDeleteByID sets the soft-delete flag on a doctor matched by id.
func (r *MongoDBDoctorRepository) SoftDeleteByID(ctx context.Context, id primitive.ObjectID) error {
	return r.updateFields(ctx, bson.M{"_id": id, "isDeleted": false}, bson.M{"isDeleted": true})
}

// SoftDeleteByName sets the soft-delete flag on a doctor matched by name.
func (r *MongoDBDoctorRepository) SoftDeleteByName(ctx context.Context, name string) error {
	return r.updateFields(ctx, bson.M{"name": name, "isDeleted": false}, bson.M{"isDeleted": true})
}

func (r *MongoDBDoctorRepository) findOne(ctx context.Context, filter bson.M) (*domain.Doctor, error) {
	var doctor domain.Doctor
	if err := r.collection.FindOne(ctx, filter).Decode(&doctor); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDoctorNotFound
		}
		return nil, apperrors.Wrap(err, "failed to find doctor")
	}
	return &doctor, nil
}

// Credential store methods. These let the generic authentication service run
// over the doctors collection with email as the identity key.

// FindActiveByKey retrieves a non-deleted doctor by email as an identity.
func (r *MongoDBDoctorRepository) FindActiveByKey(ctx context.Context, key string) (*authDomain.Identity, error) {
	doctor, err := r.findOne(ctx, bson.M{"email": key, "isDeleted": false})
	if err != nil {
		return nil, translateNotFound(err)
	}
	return doctor.ToIdentity(), nil
}

// FindAnyByKey retrieves a doctor by email regardless of the soft-delete flag.
func (r *MongoDBDoctorRepository) FindAnyByKey(ctx context.Context, key string) (*authDomain.Identity, error) {
	doctor, err := r.findOne(ctx, bson.M{"email": key})
	if err != nil {
		return nil, translateNotFound(err)
	}
	return doctor.ToIdentity(), nil
}

// CreateIdentity inserts a credential-only doctor record.
func (r *MongoDBDoctorRepository) CreateIdentity(ctx context.Context, identity *authDomain.Identity) error {
	doctor := domain.Doctor{
		Email:    identity.Key,
		Password: identity.Secret,
	}
	if err := r.Create(ctx, &doctor); err != nil {
		if errors.Is(err, domain.ErrDoctorExists) {
			return authDomain.ErrIdentityExists
		}
		return err
	}
	identity.ID = doctor.ID.Hex()
	return nil
}

// Reactivate clears the soft-delete flag and replaces the stored password.
func (r *MongoDBDoctorRepository) Reactivate(ctx context.Context, identity *authDomain.Identity) error {
	oid, err := primitive.ObjectIDFromHex(identity.ID)
	if err != nil {
		return apperrors.Wrap(err, "invalid doctor id")
	}
	err = r.updateFields(ctx, bson.M{"_id": oid}, bson.M{"password": identity.Secret, "isDeleted": false})
	return translateNotFound(err)
}

// MarkDeleted sets the soft-delete flag on the doctor record.
func (r *MongoDBDoctorRepository) MarkDeleted(ctx context.Context, identity *authDomain.Identity) error {
	oid, err := primitive.ObjectIDFromHex(identity.ID)
	if err != nil {
		return apperrors.Wrap(err, "invalid doctor id")
	}
	return translateNotFound(r.SoftDeleteByID(ctx, oid))
}

func translateNotFound(err error) error {
	if errors.Is(err, domain.ErrDoctorNotFound) {
		return authDomain.ErrIdentityNotFound
	}
	return err
}
