// Package domain defines the medical specialization entity.
package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/clinicops/admin-api/internal/errors"
)

// Specialization is a medical discipline doctors and facility rooms refer to
// by name. Names are unique.
type Specialization struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
}

// Domain-specific errors for specialization operations.
var (
	// ErrSpecializationNotFound indicates no specialization matches the identifier.
	ErrSpecializationNotFound = errors.Wrap(errors.ErrNotFound, "specialization not found")

	// ErrSpecializationExists indicates a name collision.
	ErrSpecializationExists = errors.Wrap(errors.ErrConflict, "specialization already exists")
)
