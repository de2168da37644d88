package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForOS(t *testing.T) {
	tests := []struct {
		goos     string
		autohide bool
	}{
		{"linux", true},
		{"darwin", false},
		{"windows", false},
		{"freebsd", false},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			caps := ForOS(tt.goos)
			assert.Equal(t, tt.goos, caps.OS)
			assert.Equal(t, tt.autohide, caps.MotionAutohide)
		})
	}
}

func TestDetectMatchesRuntime(t *testing.T) {
	assert.Equal(t, runtime.GOOS, Detect().OS)
}
