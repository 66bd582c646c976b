package duty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotaForTeamSize(t *testing.T) {
	tests := []struct {
		name     string
		teamSize int
		expected int
	}{
		{"empty team", 0, 0},
		{"single engineer", 1, 1},
		{"under a working week", 4, 4},
		{"exactly one working week", 5, 7},
		{"six engineers", 6, 8},
		{"two working weeks", 10, 14},
		{"eleven engineers", 11, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rota := RotaForTeamSize(tt.teamSize)
			assert.Equal(t, tt.expected, rota.LengthInDays())
		})
	}
}

func TestRota_IsDegenerate(t *testing.T) {
	assert.True(t, RotaForTeamSize(0).IsDegenerate())
	assert.True(t, NewRota(0).IsDegenerate())
	assert.False(t, RotaForTeamSize(1).IsDegenerate())
	assert.False(t, NewRota(7).IsDegenerate())
}
