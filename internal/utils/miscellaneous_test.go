package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMust(t *testing.T) {
	assert.Equal(t, 1, Must(1, nil))

	err := errors.New("boom")
	assert.PanicsWithValue(t, err, func() {
		Must(0, err)
	})
}

func TestMustGet(t *testing.T) {
	assert.Equal(t, "a", MustGet("a", true))
	assert.PanicsWithValue(t, ErrValueNotPresent, func() {
		MustGet("a", false)
	})
}
