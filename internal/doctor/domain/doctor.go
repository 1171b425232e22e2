// Package domain defines the doctor entity.
package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	authDomain "github.com/clinicops/admin-api/internal/auth/domain"
	cryptoDomain "github.com/clinicops/admin-api/internal/crypto/domain"
	"github.com/clinicops/admin-api/internal/errors"
)

// Doctor is a practitioner registered with the clinic. Email is the unique
// identity key and the password field always holds an encrypted bundle.
type Doctor struct {
	ID         primitive.ObjectID           `bson:"_id,omitempty" json:"id"`
	Name       string                       `bson:"name" json:"name"`
	Specialty  []string                     `bson:"specialty" json:"specialty"`
	Email      string                       `bson:"email" json:"email"`
	Degree     string                       `bson:"degree" json:"degree"`
	Experience string                       `bson:"experience" json:"experience"`
	Password   cryptoDomain.EncryptedSecret `bson:"password" json:"-"`
	IsDeleted  bool                         `bson:"isDeleted" json:"-"`
}

// ToIdentity maps the stored record onto the generic authentication identity,
// keyed by email.
func (d *Doctor) ToIdentity() *authDomain.Identity {
	return &authDomain.Identity{
		ID:      d.ID.Hex(),
		Key:     d.Email,
		Secret:  d.Password,
		Deleted: d.IsDeleted,
	}
}

// Revive transitions a soft-deleted doctor back to active, overwriting every
// attribute with the re-registration payload. Nothing from the deleted record
// survives except its storage id.
func (d *Doctor) Revive(update *Doctor) {
	d.Name = update.Name
	d.Specialty = update.Specialty
	d.Email = update.Email
	d.Degree = update.Degree
	d.Experience = update.Experience
	d.Password = update.Password
	d.IsDeleted = false
}

// Update carries the writable doctor fields for a partial update. A nil
// Password leaves the stored bundle untouched.
type Update struct {
	Name       string
	Specialty  []string
	Email      string
	Degree     string
	Experience string
	Password   *cryptoDomain.EncryptedSecret
}

// Domain-specific errors for doctor operations.
var (
	// ErrDoctorNotFound indicates no active doctor matches the identifier.
	ErrDoctorNotFound = errors.Wrap(errors.ErrNotFound, "doctor not found")

	// ErrDoctorExists indicates an email collision with an active doctor.
	ErrDoctorExists = errors.Wrap(errors.ErrConflict, "doctor already exists")
)
