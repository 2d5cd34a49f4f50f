package server

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("vertex not found")
	err := WrapErrorf(orig, ErrNotFound, "no road near %s", "(1, 2)")

	var serr *Error
	assert.True(t, errors.As(err, &serr))
	assert.Equal(t, ErrNotFound, serr.Code())
	assert.Equal(t, "no road near (1, 2)", serr.Message())
	assert.Equal(t, "no road near (1, 2): vertex not found", err.Error())
	assert.ErrorIs(t, err, orig)

	err = NewErrorf(ErrBadParamInput, "bad algorithm")
	assert.Equal(t, "bad algorithm", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
