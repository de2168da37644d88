// Package platform describes what the host windowing system can do.
package platform

import "runtime"

// Capabilities lists host features the fullscreen core adapts to.
type Capabilities struct {
	OS string
	// MotionAutohide is true where pointer-motion notifications reach the
	// window while it is fullscreen, so toolbar and cursor can autohide.
	MotionAutohide bool
}

// Detect returns the capabilities of the running host.
func Detect() Capabilities {
	return ForOS(runtime.GOOS)
}

// ForOS returns the capabilities for a GOOS value.
func ForOS(goos string) Capabilities {
	return Capabilities{
		OS:             goos,
		MotionAutohide: goos == "linux",
	}
}
