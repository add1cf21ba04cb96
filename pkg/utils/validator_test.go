package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type vehicleProbe struct {
	Vehicle string `validate:"required,vehicle"`
}

type themeProbe struct {
	Theme string `validate:"required,theme"`
}

func TestValidateStruct_Vehicle(t *testing.T) {
	for _, v := range []string{"car", "motorcycle", "van", "truck"} {
		assert.NoError(t, ValidateStruct(&vehicleProbe{Vehicle: v}))
	}

	for _, v := range []string{"bicycle", "Car", "plane", ""} {
		assert.Error(t, ValidateStruct(&vehicleProbe{Vehicle: v}), "vehicle %q should be rejected", v)
	}
}

func TestValidateStruct_Theme(t *testing.T) {
	assert.NoError(t, ValidateStruct(&themeProbe{Theme: "light"}))
	assert.NoError(t, ValidateStruct(&themeProbe{Theme: "dark"}))
	assert.Error(t, ValidateStruct(&themeProbe{Theme: "solarized"}))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("  USER@EXAMPLE.COM "))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail(""))
}
