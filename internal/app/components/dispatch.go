package components

// Dispatcher runs work off the event-loop callback that triggered it.
// Network calls inside a js.FuncOf callback would deadlock the WASM runtime,
// so the default starts a goroutine. Tests pass RunNow.
type Dispatcher func(func())

// Go is the default Dispatcher.
func Go(f func()) {
	go f()
}

// RunNow runs f before returning.
func RunNow(f func()) {
	f()
}

func (d Dispatcher) run(f func()) {
	if d == nil {
		Go(f)
		return
	}
	d(f)
}
