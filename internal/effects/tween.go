package effects

// Tween is a short-lived time-driven animation task with an explicit
// cancellation handle. Owners cancel their tweens on dispose so no callback
// ever runs against a node that is already gone.
type Tween struct {
	elapsed   float32
	duration  float32
	apply     func(t float32) // t in [0,1]
	onDone    func()
	cancelled bool
	done      bool
}

// NewTween builds a tween that calls apply with normalized progress every
// frame for duration seconds, then onDone once. Either callback may be nil.
func NewTween(duration float32, apply func(t float32), onDone func()) *Tween {
	if duration <= 0 {
		duration = 0.001
	}
	return &Tween{duration: duration, apply: apply, onDone: onDone}
}

// Cancel stops the tween without running onDone. Idempotent.
func (t *Tween) Cancel() {
	t.cancelled = true
}

func (t *Tween) Cancelled() bool {
	return t.cancelled
}

func (t *Tween) Done() bool {
	return t.done || t.cancelled
}

func (t *Tween) step(dt float32) {
	if t.done || t.cancelled {
		return
	}
	t.elapsed += dt
	progress := t.elapsed / t.duration
	if progress >= 1 {
		progress = 1
		t.done = true
	}
	if t.apply != nil {
		t.apply(progress)
	}
	if t.done && t.onDone != nil {
		t.onDone()
	}
}

// TweenRunner drives tweens each frame and drops finished or cancelled ones.
type TweenRunner struct {
	tweens []*Tween
}

func (r *TweenRunner) Start(t *Tween) *Tween {
	r.tweens = append(r.tweens, t)
	return t
}

func (r *TweenRunner) Update(dt float32) {
	// Swap the list out first: a tween's onDone may Start a follow-up tween,
	// which must survive this pass but not be stepped by it.
	current := r.tweens
	r.tweens = nil
	for _, t := range current {
		t.step(dt)
		if !t.Done() {
			r.tweens = append(r.tweens, t)
		}
	}
}

// CancelAll cancels every pending tween. Used by owning objects' Dispose.
func (r *TweenRunner) CancelAll() {
	for _, t := range r.tweens {
		t.Cancel()
	}
	r.tweens = nil
}

func (r *TweenRunner) Len() int {
	return len(r.tweens)
}
