// Package domain defines the clinic facility entity.
package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/clinicops/admin-api/internal/errors"
)

// Room is a numbered room inside a facility together with the
// specializations it serves.
type Room struct {
	ID              int      `bson:"id" json:"id"`
	Specializations []string `bson:"specializations" json:"specializations"`
}

// Facility is a clinic building. Names are unique and every facility has at
// least one room.
type Facility struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Rooms []Room             `bson:"rooms" json:"rooms"`
}

// Domain-specific errors for facility operations.
var (
	// ErrFacilityNotFound indicates no facility matches the identifier.
	ErrFacilityNotFound = errors.Wrap(errors.ErrNotFound, "facility not found")

	// ErrFacilityExists indicates a name collision.
	ErrFacilityExists = errors.Wrap(errors.ErrConflict, "facility already exists")
)
