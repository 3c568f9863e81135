package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// SignedPow tests
func TestSignedPow(t *testing.T) {
	tests := []struct {
		base     float32
		exponent float32
		expected float32
	}{
		{2.0, 2.0, 4.0},
		{2.0, 3.0, 8.0},
		{-2.0, 2.0, -4.0},
		{-2.0, 3.0, -8.0},
		{0.0, 2.0, 0.0},
		{4.0, 0.5, 2.0},
		{-8.0, 1.0 / 3.0, -2.0},
	}

	for _, tt := range tests {
		result := SignedPow(tt.base, tt.exponent)
		if math.Abs(float64(result-tt.expected)) > 0.0001 {
			t.Errorf("SignedPow(%f, %f) = %f; want %f", tt.base, tt.exponent, result, tt.expected)
		}
	}
}

func TestSignedCbrt(t *testing.T) {
	tests := []struct {
		input    float32
		expected float32
	}{
		{27, 3},
		{-27, -3},
		{0, 0},
		{0.125, 0.5},
	}

	for _, tt := range tests {
		result := SignedCbrt(tt.input)
		if math.Abs(float64(result-tt.expected)) > 0.0001 {
			t.Errorf("SignedCbrt(%f) = %f; want %f", tt.input, result, tt.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(0), Clamp[float32](-0.5, 0, 1))
	assert.Equal(t, float32(1), Clamp[float32](1.5, 0, 1))
	assert.Equal(t, float32(0.25), Clamp[float32](0.25, 0, 1))
	assert.Equal(t, 255, Clamp(300, 0, 255))
	assert.Equal(t, 0, Clamp(-3, 0, 255))

	nan := float32(math.NaN())
	assert.True(t, math.IsNaN(float64(Clamp(nan, 0, 1))))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, float32(5), Lerp[float32](0, 10, 0.5))
	assert.Equal(t, float32(0), Lerp[float32](0, 10, 0))
	assert.Equal(t, float32(10), Lerp[float32](0, 10, 1))
	assert.Equal(t, float32(20), Lerp[float32](0, 10, 2))
	assert.Equal(t, 0.25, Lerp(0.0, 1.0, 0.25))
}
