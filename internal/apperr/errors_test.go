package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	ve := Validation("bad input")
	ce := Conflict("already linked")
	ne := NotFound("no such link")

	assert.EqualError(t, ve, "bad input")
	assert.True(t, IsValidation(ve))
	assert.False(t, IsValidation(ce))

	assert.True(t, IsConflict(ce))
	assert.False(t, IsConflict(ne))

	assert.True(t, IsNotFound(ne))
	assert.False(t, IsNotFound(ve))

	assert.False(t, IsValidation(errors.New("plain")))
}

func TestWrappedErrorsAreRecognized(t *testing.T) {
	wrapped := fmt.Errorf("create link: %w", Conflict("already linked"))
	assert.True(t, IsConflict(wrapped))
}
