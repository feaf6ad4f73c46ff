package dispatcher

// Status indicates the outcome of a dispatched action.
type Status uint8

const (
	// StatusOK indicates the action changed something.
	StatusOK Status = iota
	// StatusNoOp indicates the action had no effect.
	StatusNoOp
	// StatusSuppressed indicates the chord was ignored because an
	// editable text field has focus.
	StatusSuppressed
	// StatusAsync indicates the action continues asynchronously.
	StatusAsync
	// StatusCancelled indicates the user declined a confirmation.
	StatusCancelled
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusSuppressed:
		return "suppressed"
	case StatusAsync:
		return "async"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
