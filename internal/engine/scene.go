package engine

// Scene owns every GameObject's lifetime. Managers index into the scene by UID
// and must drop their entries when an object is removed.
type Scene struct {
	Name        string
	GameObjects []*GameObject
	uidMap      map[uint64]*GameObject
	nextUID     uint64
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	s.nextUID++
	g.UID = s.nextUID
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
}

// RemoveGameObject detaches g and its children from the scene and disposes them.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range g.Children {
		s.removeFromList(child)
		delete(s.uidMap, child.UID)
	}
	s.removeFromList(g)
	delete(s.uidMap, g.UID)
	g.Dispose()
}

func (s *Scene) removeFromList(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			return
		}
	}
}

// FindByUID is an O(1) lookup, nil when the object is gone.
func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}

// Clear disposes every object and empties the scene.
func (s *Scene) Clear() {
	for _, g := range s.GameObjects {
		g.Dispose()
	}
	s.GameObjects = s.GameObjects[:0]
	s.uidMap = make(map[uint64]*GameObject)
}
