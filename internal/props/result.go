package props

// Result reports the outcome of an interaction operation. Rejections are
// ordinary values, not errors: a rejected select or advance leaves all state
// untouched and tells the caller why.
type Result int

const (
	ResultStarted Result = iota
	ResultAdvanced
	ResultCompleted
	ResultCancelled
	ResultAlreadyActive
	ResultAlreadyCompleted
	ResultAlreadyEntangled
	ResultQueuedForEntanglement
	ResultNoActiveInteraction
	ResultNotFound
)

func (r Result) String() string {
	switch r {
	case ResultStarted:
		return "started"
	case ResultAdvanced:
		return "advanced"
	case ResultCompleted:
		return "completed"
	case ResultCancelled:
		return "cancelled"
	case ResultAlreadyActive:
		return "already-active"
	case ResultAlreadyCompleted:
		return "already-completed"
	case ResultAlreadyEntangled:
		return "already-entangled"
	case ResultQueuedForEntanglement:
		return "queued-for-entanglement"
	case ResultNoActiveInteraction:
		return "no-active-interaction"
	case ResultNotFound:
		return "not-found"
	}
	return "unknown"
}

// Rejected reports whether the operation changed nothing.
func (r Result) Rejected() bool {
	switch r {
	case ResultAlreadyActive, ResultAlreadyCompleted, ResultAlreadyEntangled,
		ResultNoActiveInteraction, ResultNotFound:
		return true
	}
	return false
}
