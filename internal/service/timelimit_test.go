package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeLimitMinutes(t *testing.T) {
	tests := map[string]int{
		"45 minutes":       45,
		"1 minute":         1,
		"90Minutes":        90,
		"about 30 MINUTES": 30,
		"2 hours":          DefaultTimeLimitMinutes,
		"":                 DefaultTimeLimitMinutes,
		"soon":             DefaultTimeLimitMinutes,
	}
	for in, want := range tests {
		assert.Equal(t, want, TimeLimitMinutes(in), in)
	}
}
