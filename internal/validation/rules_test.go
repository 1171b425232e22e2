package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/clinicops/admin-api/internal/errors"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{name: "valid email", value: "doctor@clinic.example"},
		{name: "valid email with plus", value: "doctor+oncall@clinic.example"},
		{name: "missing domain", value: "doctor@", shouldErr: true},
		{name: "missing at sign", value: "doctor.clinic.example", shouldErr: true},
		{name: "missing tld", value: "doctor@clinic", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Email.Validate(tt.value)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, NotBlank.Validate("cardiology"))
	assert.Error(t, NotBlank.Validate(""))
	assert.Error(t, NotBlank.Validate("   "))
	assert.Error(t, NotBlank.Validate("\t\n"))
}

func TestNoWhitespace(t *testing.T) {
	assert.NoError(t, NoWhitespace.Validate("radiology"))
	assert.Error(t, NoWhitespace.Validate(" radiology"))
	assert.Error(t, NoWhitespace.Validate("radiology "))
}

func TestWrapValidationError(t *testing.T) {
	t.Run("Success_NilError", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})

	t.Run("Success_WrapsAsInvalidInput", func(t *testing.T) {
		err := WrapValidationError(assert.AnError)
		assert.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})
}
