package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApproach(t *testing.T) {
	tests := []struct {
		name                  string
		value, target, delta  float64
		want                  float64
	}{
		{"rises by delta", 0, 320, 43, 43},
		{"falls by delta", 100, 0, 40, 60},
		{"does not overshoot up", 300, 320, 43, 320},
		{"does not overshoot down", 10, 0, 40, 0},
		{"already there", 5, 5, 1, 5},
		{"huge delta lands on target", -480, 250, 1e12, 250},
		{"infinite delta lands on target", 100, -320, math.Inf(1), -320},
		{"zero delta holds", 7, 0, 0, 7},
		{"negative delta holds", 7, 0, -3, 7},
		{"NaN delta holds", 7, 0, math.NaN(), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Approach(tt.value, tt.target, tt.delta))
		})
	}
}

func TestClampSpeed(t *testing.T) {
	assert.Equal(t, 480.0, ClampSpeed(905, 480))
	assert.Equal(t, -480.0, ClampSpeed(-905, 480))
	assert.Equal(t, 12.0, ClampSpeed(12, 480))
}

func TestSanitizeDelta(t *testing.T) {
	assert.Equal(t, 0.0, SanitizeDelta(-1))
	assert.Equal(t, 0.0, SanitizeDelta(math.NaN()))
	assert.Equal(t, 0.016, SanitizeDelta(0.016))
	assert.True(t, math.IsInf(SanitizeDelta(math.Inf(1)), 1))
}

func TestSign(t *testing.T) {
	assert.Equal(t, -1.0, Sign(-0.5))
	assert.Equal(t, 1.0, Sign(0))
	assert.Equal(t, 1.0, Sign(3))
}
