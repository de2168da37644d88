// Package entity defines domain entities for the player window.
package entity

import "fmt"

// Geometry is a window's size and position.
// X and Y are zero when the windowing system does not expose placement.
type Geometry struct {
	Width, Height int
	X, Y          int
}

// IsZero reports whether no dimension was captured.
func (g Geometry) IsZero() bool {
	return g == Geometry{}
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", g.Width, g.Height, g.X, g.Y)
}
