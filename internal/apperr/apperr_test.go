package apperr_test

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/pomo/internal/apperr"
)

var errSample = &apperr.Error{
	Message: "unable to read %s",
}

func TestFmt(t *testing.T) {
	err := errSample.Fmt("settings.yml")

	assert.Equal(t, "unable to read settings.yml", err.Error())
	assert.Equal(t, "unable to read %s", errSample.Message)
}

func TestWrap(t *testing.T) {
	err := errSample.Wrap(os.ErrNotExist)

	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.ErrorIs(t, err, errSample)
	assert.Equal(t, "unable to read %s: file does not exist", err.Error())

	var appErr *apperr.Error
	assert.True(t, errors.As(err, &appErr))
}
