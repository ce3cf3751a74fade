//go:build !gui

package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_Unavailable(t *testing.T) {
	assert.False(t, IsAvailable())
	assert.ErrorIs(t, Run(Options{}), ErrUnavailable)
}
