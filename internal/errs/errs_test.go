package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validationf("bad input")))
	assert.Equal(t, KindNotFound, KindOf(NotFoundf("missing")))
	assert.Equal(t, KindUnauthorized, KindOf(Unauthorizedf("nope")))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("recording payment: %w", NotFoundf("room not found"))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
}

func TestMessageFormatting(t *testing.T) {
	err := Validationf("max rent limit is %d", 9999)
	assert.Equal(t, "max rent limit is 9999", err.Error())
}
