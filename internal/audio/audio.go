// Package audio plays positional sound cues. Volume falls off linearly with
// distance and pan follows the listener's right vector.
package audio

import (
	"math"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

type listener struct {
	position rl.Vector3
	forward  rl.Vector3
	right    rl.Vector3
}

// Source is one playable sound placed in the world. Non-spatial sources play
// center-panned at their set volume.
type Source struct {
	ID          uint64
	Position    rl.Vector3
	Sound       rl.Sound
	Volume      float32
	MaxDistance float32
	Loop        bool
	Spatial     bool
	playing     bool
}

// Manager owns the audio device and every loaded source.
type Manager struct {
	mu       sync.Mutex
	log      *zap.Logger
	listener listener
	sources  map[uint64]*Source
	nextID   uint64
	closed   bool
}

func NewManager(log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	rl.InitAudioDevice()
	return &Manager{
		log:     log,
		sources: make(map[uint64]*Source),
	}
}

// Close unloads every source and shuts the device down. Idempotent.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	for _, src := range m.sources {
		rl.UnloadSound(src.Sound)
	}
	m.sources = nil
	rl.CloseAudioDevice()
}

// SetListener updates the listener pose used for spatialization.
func (m *Manager) SetListener(pos, forward, up rl.Vector3) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listener.position = pos

	fwdLen := rl.Vector3Length(forward)
	if fwdLen > 0.001 {
		m.listener.forward = rl.Vector3Scale(forward, 1.0/fwdLen)
	} else {
		m.listener.forward = rl.Vector3{Z: -1}
	}

	right := rl.Vector3CrossProduct(up, m.listener.forward)
	rightLen := rl.Vector3Length(right)
	if rightLen > 0.001 {
		m.listener.right = rl.Vector3Scale(right, 1.0/rightLen)
	} else {
		m.listener.right = rl.Vector3{X: 1}
	}
}

// Load reads a sound file and returns a source id. Returns false when the
// file is missing or undecodable; callers treat that cue as silent.
func (m *Manager) Load(path string) (uint64, bool) {
	sound := rl.LoadSound(path)
	if !rl.IsSoundValid(sound) {
		m.log.Warn("sound not loadable", zap.String("path", path))
		return 0, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.sources[id] = &Source{
		ID:          id,
		Sound:       sound,
		Volume:      1.0,
		MaxDistance: 50.0,
		Spatial:     true,
	}
	return id, true
}

func (m *Manager) Play(id uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if src, ok := m.sources[id]; ok {
		rl.PlaySound(src.Sound)
		src.playing = true
	}
}

func (m *Manager) Stop(id uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if src, ok := m.sources[id]; ok {
		rl.StopSound(src.Sound)
		src.playing = false
	}
}

func (m *Manager) SetSourcePosition(id uint64, pos rl.Vector3) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if src, ok := m.sources[id]; ok {
		src.Position = pos
	}
}

func (m *Manager) SetSourceVolume(id uint64, volume float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if src, ok := m.sources[id]; ok {
		src.Volume = volume
	}
}

func (m *Manager) SetSourceLoop(id uint64, loop bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if src, ok := m.sources[id]; ok {
		src.Loop = loop
	}
}

func (m *Manager) SetSourceMaxDistance(id uint64, dist float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if src, ok := m.sources[id]; ok {
		src.MaxDistance = dist
	}
}

func (m *Manager) SetSourceSpatial(id uint64, spatial bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if src, ok := m.sources[id]; ok {
		src.Spatial = spatial
	}
}

// Update recomputes per-source volume and pan against the listener pose.
// Call once per frame.
func (m *Manager) Update() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, src := range m.sources {
		if !src.playing {
			continue
		}

		if src.Loop && !rl.IsSoundPlaying(src.Sound) {
			rl.PlaySound(src.Sound)
		} else if !src.Loop && !rl.IsSoundPlaying(src.Sound) {
			src.playing = false
			continue
		}

		if !src.Spatial {
			rl.SetSoundVolume(src.Sound, src.Volume)
			rl.SetSoundPan(src.Sound, 0.5)
			continue
		}

		toSource := rl.Vector3Subtract(src.Position, m.listener.position)
		distance := rl.Vector3Length(toSource)

		var volume float32
		if distance < src.MaxDistance {
			volume = src.Volume * (1.0 - distance/src.MaxDistance)
		}

		pan := float32(0.5)
		if distance > 0.001 {
			direction := rl.Vector3Scale(toSource, 1.0/distance)
			rightDot := rl.Vector3DotProduct(direction, m.listener.right)
			pan = 0.5 + rightDot*0.5
			if pan < 0 {
				pan = 0
			} else if pan > 1 {
				pan = 1
			}

			// Sounds behind the listener come through quieter.
			frontDot := rl.Vector3DotProduct(direction, m.listener.forward)
			if frontDot < 0 {
				volume *= 0.7 + 0.3*float32(math.Abs(float64(frontDot)))
			}
		}

		rl.SetSoundVolume(src.Sound, volume)
		rl.SetSoundPan(src.Sound, pan)
	}
}
