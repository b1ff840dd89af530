// Package effects holds the visual effect managers. Every manager follows the
// same lifecycle: create with a tier-scaled budget, advance each frame via
// Update, release everything via an idempotent Dispose. Managers never read
// each other's state within a frame, so their update order is unconstrained.
package effects

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Manager is the uniform per-frame contract. Dispose must be safe to call
// twice and must leave the manager's collections empty, so a stale Update
// afterwards is a no-op rather than a crash.
type Manager interface {
	Update(dt float32)
	Dispose()
}

// Drawer is implemented by managers that render into the 3D view.
type Drawer interface {
	Draw(camera rl.Camera3D)
}

// Set composes independent managers and fans Update/Dispose out to them.
type Set struct {
	managers []Manager
}

func (s *Set) Add(m Manager) {
	s.managers = append(s.managers, m)
}

func (s *Set) Update(dt float32) {
	for _, m := range s.managers {
		m.Update(dt)
	}
}

func (s *Set) Draw(camera rl.Camera3D) {
	for _, m := range s.managers {
		if d, ok := m.(Drawer); ok {
			d.Draw(camera)
		}
	}
}

// Dispose tears all managers down and empties the set.
func (s *Set) Dispose() {
	for _, m := range s.managers {
		m.Dispose()
	}
	s.managers = nil
}

func (s *Set) Len() int {
	return len(s.managers)
}
