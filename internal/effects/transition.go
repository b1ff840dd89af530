package effects

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TransitionKind is the closed set of level-transition animations. Unknown
// preset names are an error, never a silent substitution.
type TransitionKind int

const (
	TransitionQuantum TransitionKind = iota
	TransitionCollapse
	TransitionTunnel
	TransitionDecoherence
)

var ErrUnknownTransition = errors.New("unknown transition preset")

func ParseTransitionKind(name string) (TransitionKind, error) {
	switch name {
	case "quantum":
		return TransitionQuantum, nil
	case "collapse":
		return TransitionCollapse, nil
	case "tunnel":
		return TransitionTunnel, nil
	case "decoherence":
		return TransitionDecoherence, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTransition, name)
}

func (k TransitionKind) String() string {
	switch k {
	case TransitionQuantum:
		return "quantum"
	case TransitionCollapse:
		return "collapse"
	case TransitionTunnel:
		return "tunnel"
	case TransitionDecoherence:
		return "decoherence"
	}
	return "unknown"
}

func (k TransitionKind) color() rl.Color {
	switch k {
	case TransitionCollapse:
		return rl.NewColor(255, 80, 80, 255)
	case TransitionTunnel:
		return rl.NewColor(60, 230, 220, 255)
	case TransitionDecoherence:
		return rl.NewColor(200, 200, 200, 255)
	default:
		return rl.NewColor(120, 90, 255, 255)
	}
}

// Transitions drives full-screen level-change fades. A transition is a pair of
// tweens: fade to opaque, swap (caller callback), fade back.
type Transitions struct {
	runner   TweenRunner
	alpha    float32
	active   bool
	kind     TransitionKind
	disposed bool
}

func NewTransitions() *Transitions {
	return &Transitions{}
}

// Play starts a transition of the given kind. midpoint runs once at full
// opacity, which is where the caller swaps the level.
func (tr *Transitions) Play(kind TransitionKind, duration float32, midpoint func()) {
	if tr.disposed || tr.active {
		return
	}
	tr.active = true
	tr.kind = kind
	half := duration / 2

	tr.runner.Start(NewTween(half,
		func(t float32) { tr.alpha = t },
		func() {
			if midpoint != nil {
				midpoint()
			}
			tr.runner.Start(NewTween(half,
				func(t float32) { tr.alpha = 1 - t },
				func() { tr.active = false },
			))
		},
	))
}

func (tr *Transitions) Active() bool {
	return tr.active
}

func (tr *Transitions) Update(dt float32) {
	if tr.disposed {
		return
	}
	tr.runner.Update(dt)
}

// DrawOverlay paints the fade rectangle over the finished frame.
func (tr *Transitions) DrawOverlay(screenW, screenH int32) {
	if tr.disposed || tr.alpha <= 0 {
		return
	}
	c := tr.kind.color()
	c.A = uint8(tr.alpha * 255)
	rl.DrawRectangle(0, 0, screenW, screenH, c)
}

func (tr *Transitions) Dispose() {
	if tr.disposed {
		return
	}
	tr.disposed = true
	tr.runner.CancelAll()
	tr.active = false
	tr.alpha = 0
}
