package usecase

import (
	"github.com/bnema/glide/internal/application/port"
	"github.com/bnema/glide/internal/domain/entity"
	"github.com/bnema/glide/internal/syncutil"
)

// GeometryMemory holds the window placement captured when a fullscreen
// session starts. Each snapshot replaces the previous one.
type GeometryMemory struct {
	mu       syncutil.Mutex
	geometry entity.Geometry
	valid    bool
}

// NewGeometryMemory returns an empty memory.
func NewGeometryMemory() *GeometryMemory {
	return &GeometryMemory{}
}

// Snapshot records the current size and position of source.
func (m *GeometryMemory) Snapshot(source port.GeometrySource) entity.Geometry {
	w, h := source.Size()
	x, y := source.Position()
	g := entity.Geometry{Width: w, Height: h, X: x, Y: y}

	m.mu.Lock()
	m.geometry = g
	m.valid = true
	m.mu.Unlock()
	return g
}

// Read returns the stored geometry and whether a session snapshot exists.
func (m *GeometryMemory) Read() (entity.Geometry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.geometry, m.valid
}

// Clear forgets the snapshot at the end of a session.
func (m *GeometryMemory) Clear() {
	m.mu.Lock()
	m.geometry = entity.Geometry{}
	m.valid = false
	m.mu.Unlock()
}
