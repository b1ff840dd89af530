package engine

// Event is a multicast callback list. Subscribers get back a handle they can
// use to unsubscribe, since Go function values are not comparable.
type Event struct {
	listeners map[int]func()
	nextID    int
}

// AddListener registers a callback and returns its removal handle.
func (e *Event) AddListener(callback func()) int {
	if callback == nil {
		return 0
	}
	if e.listeners == nil {
		e.listeners = make(map[int]func())
	}
	e.nextID++
	e.listeners[e.nextID] = callback
	return e.nextID
}

func (e *Event) RemoveListener(id int) {
	delete(e.listeners, id)
}

func (e *Event) RemoveAllListeners() {
	e.listeners = nil
}

func (e *Event) Invoke() {
	for _, listener := range e.listeners {
		listener()
	}
}

func (e *Event) ListenerCount() int {
	return len(e.listeners)
}

// EventWithArg is a multicast event carrying one argument.
type EventWithArg[T any] struct {
	listeners map[int]func(T)
	nextID    int
}

func (e *EventWithArg[T]) AddListener(callback func(T)) int {
	if callback == nil {
		return 0
	}
	if e.listeners == nil {
		e.listeners = make(map[int]func(T))
	}
	e.nextID++
	e.listeners[e.nextID] = callback
	return e.nextID
}

func (e *EventWithArg[T]) RemoveListener(id int) {
	delete(e.listeners, id)
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		listener(arg)
	}
}

func (e *EventWithArg[T]) ListenerCount() int {
	return len(e.listeners)
}
