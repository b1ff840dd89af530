package engine

import "testing"

type probeComponent struct {
	BaseComponent
	started  int
	updates  int
	disposed int
}

func (p *probeComponent) Start()            { p.started++ }
func (p *probeComponent) Update(dt float32) { p.updates++ }
func (p *probeComponent) Dispose()          { p.disposed++ }

func TestGameObjectStartOnce(t *testing.T) {
	obj := NewGameObject("Node")
	probe := &probeComponent{}
	obj.AddComponent(probe)

	obj.Start()
	obj.Start()

	if probe.started != 1 {
		t.Errorf("Start called %d times, want 1", probe.started)
	}
}

func TestGameObjectUpdateSkipsInactive(t *testing.T) {
	obj := NewGameObject("Node")
	probe := &probeComponent{}
	obj.AddComponent(probe)

	obj.Update(0.016)
	obj.Active = false
	obj.Update(0.016)

	if probe.updates != 1 {
		t.Errorf("Update called %d times, want 1", probe.updates)
	}
}

func TestGameObjectDisposeIdempotent(t *testing.T) {
	obj := NewGameObject("Node")
	probe := &probeComponent{}
	obj.AddComponent(probe)

	obj.Dispose()
	obj.Dispose()

	if probe.disposed != 1 {
		t.Errorf("Dispose called %d times, want 1", probe.disposed)
	}

	// A stale update after dispose must be a no-op.
	obj.Update(0.016)
	if probe.updates != 0 {
		t.Error("Update ran after Dispose")
	}
}

func TestGetComponent(t *testing.T) {
	obj := NewGameObject("Node")
	probe := &probeComponent{}
	obj.AddComponent(probe)

	if GetComponent[*probeComponent](obj) != probe {
		t.Error("GetComponent failed to find attached component")
	}

	if GetComponent[*probeComponent](nil) != nil {
		t.Error("GetComponent on nil object should return zero value")
	}
}

func TestGameObjectRefGoesNilAfterRemoval(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("NodeA")
	scene.AddGameObject(obj)

	ref := Ref(obj)
	if ref.Get(scene) != obj {
		t.Error("Ref did not resolve")
	}

	scene.RemoveGameObject(obj)
	if ref.Get(scene) != nil {
		t.Error("Ref resolved a removed object")
	}
}

func TestEventListenerHandles(t *testing.T) {
	var e Event
	count := 0
	id := e.AddListener(func() { count++ })
	e.Invoke()
	e.RemoveListener(id)
	e.Invoke()

	if count != 1 {
		t.Errorf("listener fired %d times, want 1", count)
	}
}

func TestEventWithArg(t *testing.T) {
	var e EventWithArg[float32]
	var got float32
	e.AddListener(func(v float32) { got = v })
	e.Invoke(0.4)

	if got != 0.4 {
		t.Errorf("got %v, want 0.4", got)
	}
}
