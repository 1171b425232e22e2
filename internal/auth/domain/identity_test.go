package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	cryptoDomain "github.com/clinicops/admin-api/internal/crypto/domain"
	apperrors "github.com/clinicops/admin-api/internal/errors"
)

func TestIdentity_State(t *testing.T) {
	identity := &Identity{Key: "admin1"}
	assert.Equal(t, StateActive, identity.State())

	identity.Deleted = true
	assert.Equal(t, StateDeleted, identity.State())
}

func TestIdentity_Reactivate(t *testing.T) {
	oldSecret := cryptoDomain.EncryptedSecret{IV: "aa", Content: "bb", Tag: "cc"}
	newSecret := cryptoDomain.EncryptedSecret{IV: "11", Content: "22", Tag: "33"}

	identity := &Identity{Key: "admin1", Secret: oldSecret, Deleted: true}
	identity.Reactivate(newSecret)

	assert.Equal(t, StateActive, identity.State())
	assert.Equal(t, newSecret, identity.Secret, "reactivation must fully replace the secret")
}

func TestDomainErrors_Taxonomy(t *testing.T) {
	assert.ErrorIs(t, ErrMissingCredentials, apperrors.ErrInvalidInput)
	assert.ErrorIs(t, ErrInvalidCredentials, apperrors.ErrUnauthorized)
	assert.ErrorIs(t, ErrIdentityExists, apperrors.ErrConflict)
	assert.ErrorIs(t, ErrIdentityNotFound, apperrors.ErrNotFound)
	assert.ErrorIs(t, ErrUnauthenticated, apperrors.ErrUnauthorized)
}
