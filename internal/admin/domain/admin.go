// Package domain defines the administrator entity.
package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	authDomain "github.com/clinicops/admin-api/internal/auth/domain"
	cryptoDomain "github.com/clinicops/admin-api/internal/crypto/domain"
)

// Admin is a console administrator. The password field always holds an
// encrypted bundle; plaintext passwords never reach storage.
type Admin struct {
	ID        primitive.ObjectID           `bson:"_id,omitempty" json:"id"`
	UserID    string                       `bson:"user_id" json:"user_id"`
	Password  cryptoDomain.EncryptedSecret `bson:"password" json:"-"`
	IsDeleted bool                         `bson:"isDeleted" json:"-"`
}

// ToIdentity maps the stored record onto the generic authentication identity.
func (a *Admin) ToIdentity() *authDomain.Identity {
	return &authDomain.Identity{
		ID:      a.ID.Hex(),
		Key:     a.UserID,
		Secret:  a.Password,
		Deleted: a.IsDeleted,
	}
}
