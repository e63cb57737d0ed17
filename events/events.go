package events

// ChangeEventArgs carries the current value of the element that raised an
// input or change event.
type ChangeEventArgs struct {
	Value string
}

// SubmitEventArgs is passed to form submit handlers.
type SubmitEventArgs struct {
	preventDefault func()
}

// NewSubmitEventArgs builds submit arguments around the browser's
// preventDefault call. Native tests pass a recording func.
func NewSubmitEventArgs(preventDefault func()) SubmitEventArgs {
	return SubmitEventArgs{preventDefault: preventDefault}
}

// PreventDefault suppresses the browser's default form navigation.
// It must be called before the handler yields back to the event loop.
func (e SubmitEventArgs) PreventDefault() {
	if e.preventDefault != nil {
		e.preventDefault()
	}
}
