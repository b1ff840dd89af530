package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}

	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}

	if obj.UID == 0 {
		t.Error("GameObject.UID not assigned")
	}
}

func TestSceneUIDLookup(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	if scene.FindByUID(obj.UID) != obj {
		t.Error("FindByUID failed")
	}

	if scene.FindByUID(99999) != nil {
		t.Error("FindByUID should return nil for non-existent UID")
	}
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Reactor")
	obj2 := NewGameObject("Crystal")

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)

	scene.RemoveGameObject(obj1)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject after removal, got %d", len(scene.GameObjects))
	}

	if scene.GameObjects[0] != obj2 {
		t.Error("Wrong GameObject removed")
	}

	if scene.FindByUID(obj1.UID) != nil {
		t.Error("Removed GameObject still in UID map")
	}

	if !obj1.Disposed() {
		t.Error("Removed GameObject not disposed")
	}
}

func TestSceneRemoveWithChildren(t *testing.T) {
	scene := NewScene("Test")
	parent := NewGameObject("Portal")
	child := NewGameObject("PortalGlow")

	scene.AddGameObject(parent)
	scene.AddGameObject(child)
	parent.AddChild(child)

	scene.RemoveGameObject(parent)

	if len(scene.GameObjects) != 0 {
		t.Errorf("Expected 0 GameObjects, got %d", len(scene.GameObjects))
	}

	if !child.Disposed() {
		t.Error("Child not disposed with parent")
	}
}

func TestSceneFindByTag(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Computer1")
	obj2 := NewGameObject("Computer2")
	obj3 := NewGameObject("Player")

	obj1.Tags = []string{"prop", "computer"}
	obj2.Tags = []string{"prop"}
	obj3.Tags = []string{"player"}

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)
	scene.AddGameObject(obj3)

	props := scene.FindByTag("prop")
	if len(props) != 2 {
		t.Errorf("Expected 2 props, got %d", len(props))
	}

	if len(scene.FindByTag("nonexistent")) != 0 {
		t.Error("FindByTag should return empty slice for non-existent tag")
	}
}

func TestSceneClear(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Anything")
	scene.AddGameObject(obj)

	scene.Clear()

	if len(scene.GameObjects) != 0 {
		t.Error("Clear left objects behind")
	}
	if !obj.Disposed() {
		t.Error("Clear did not dispose objects")
	}
}
