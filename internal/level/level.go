// Package level holds the caller-supplied description of a facility: static
// geometry, prop placements, hazard zones, transit points and objectives.
// The data is inert; internal/world turns it into scene nodes.
package level

import (
	"fmt"
)

type Vec3 struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
	Z float32 `json:"z" yaml:"z"`
}

// Wall is a solid axis-aligned block. Position is the center.
type Wall struct {
	Position Vec3 `json:"position" yaml:"position"`
	Size     Vec3 `json:"size" yaml:"size"`
}

type Floor struct {
	Position Vec3    `json:"position" yaml:"position"`
	Width    float32 `json:"width" yaml:"width"`
	Depth    float32 `json:"depth" yaml:"depth"`
}

// Prop places one interactive object. Kind is the registry category name
// ("computer", "accelerator", "node", "crystal", "container").
type Prop struct {
	Kind     string `json:"kind" yaml:"kind"`
	Position Vec3   `json:"position" yaml:"position"`
	Label    string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Zone is a spherical hazard region. Intensity is the per-second rate at the
// center for radiation zones, or the slowdown fraction for dilation zones.
type Zone struct {
	ID        string  `json:"id" yaml:"id"`
	Center    Vec3    `json:"center" yaml:"center"`
	Radius    float32 `json:"radius" yaml:"radius"`
	Intensity float32 `json:"intensity" yaml:"intensity"`
}

type Tunnel struct {
	ID               string  `json:"id" yaml:"id"`
	Position         Vec3    `json:"position" yaml:"position"`
	Destination      Vec3    `json:"destination" yaml:"destination"`
	ActivationRadius float32 `json:"activationRadius,omitempty" yaml:"activationRadius,omitempty"`
}

type Portal struct {
	ID               string  `json:"id" yaml:"id"`
	A                Vec3    `json:"a" yaml:"a"`
	B                Vec3    `json:"b" yaml:"b"`
	ActivationRadius float32 `json:"activationRadius,omitempty" yaml:"activationRadius,omitempty"`
}

type Bridge struct {
	Start Vec3    `json:"start" yaml:"start"`
	End   Vec3    `json:"end" yaml:"end"`
	Width float32 `json:"width,omitempty" yaml:"width,omitempty"`
}

// Objective is one entry of the mission checklist. Count is how many props of
// TargetKind must complete; zero means one.
type Objective struct {
	ID         string `json:"id" yaml:"id"`
	Text       string `json:"text" yaml:"text"`
	TargetKind string `json:"targetKind" yaml:"targetKind"`
	Count      int    `json:"count,omitempty" yaml:"count,omitempty"`
	Waypoint   *Vec3  `json:"waypoint,omitempty" yaml:"waypoint,omitempty"`
}

// POI is a named landmark shown on the minimap.
type POI struct {
	Name     string `json:"name" yaml:"name"`
	Position Vec3   `json:"position" yaml:"position"`
}

// Anomaly is an unexplained reading shown on the radar sweep.
type Anomaly struct {
	ID       string `json:"id" yaml:"id"`
	Position Vec3   `json:"position" yaml:"position"`
}

type Level struct {
	Name        string      `json:"name" yaml:"name"`
	PlayerSpawn Vec3        `json:"playerSpawn" yaml:"playerSpawn"`
	Walls       []Wall      `json:"walls,omitempty" yaml:"walls,omitempty"`
	Floors      []Floor     `json:"floors,omitempty" yaml:"floors,omitempty"`
	Props       []Prop      `json:"props,omitempty" yaml:"props,omitempty"`
	Radiation   []Zone      `json:"radiation,omitempty" yaml:"radiation,omitempty"`
	Dilation    []Zone      `json:"dilation,omitempty" yaml:"dilation,omitempty"`
	Tunnels     []Tunnel    `json:"tunnels,omitempty" yaml:"tunnels,omitempty"`
	Portals     []Portal    `json:"portals,omitempty" yaml:"portals,omitempty"`
	Bridges     []Bridge    `json:"bridges,omitempty" yaml:"bridges,omitempty"`
	Objectives  []Objective `json:"objectives,omitempty" yaml:"objectives,omitempty"`
	POIs        []POI       `json:"pois,omitempty" yaml:"pois,omitempty"`
	Anomalies   []Anomaly   `json:"anomalies,omitempty" yaml:"anomalies,omitempty"`
}

// Validate rejects records the spawner cannot act on. It runs after decode so
// both formats share one rule set.
func (l *Level) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("level has no name")
	}
	for i, p := range l.Props {
		if !validKinds[p.Kind] {
			return fmt.Errorf("prop %d: unknown kind %q", i, p.Kind)
		}
	}
	for _, z := range append(append([]Zone{}, l.Radiation...), l.Dilation...) {
		if z.Radius <= 0 {
			return fmt.Errorf("zone %q: radius must be positive", z.ID)
		}
		if z.Intensity < 0 || z.Intensity > 1 {
			return fmt.Errorf("zone %q: intensity outside [0,1]", z.ID)
		}
	}
	seen := make(map[string]bool)
	for _, t := range l.Tunnels {
		if t.ID == "" || seen[t.ID] {
			return fmt.Errorf("tunnel id %q missing or duplicated", t.ID)
		}
		seen[t.ID] = true
	}
	for _, p := range l.Portals {
		if p.ID == "" || seen[p.ID] {
			return fmt.Errorf("portal id %q missing or duplicated", p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

var validKinds = map[string]bool{
	"computer":    true,
	"accelerator": true,
	"node":        true,
	"crystal":     true,
	"container":   true,
}
