package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateWorkShiftHours(t *testing.T) {
	assert.NoError(t, ValidateWorkShiftHours(0, 24))
	assert.NoError(t, ValidateWorkShiftHours(9, 17))
	assert.NoError(t, ValidateWorkShiftHours(23, 24))

	assert.Error(t, ValidateWorkShiftHours(-1, 8))
	assert.Error(t, ValidateWorkShiftHours(24, 24))
	assert.Error(t, ValidateWorkShiftHours(8, 25))
	assert.Error(t, ValidateWorkShiftHours(8, 8))
	assert.Error(t, ValidateWorkShiftHours(17, 9))
}
