//go:build js && wasm

package events

import "syscall/js"

// ChangeEventFromJS reads target.value from a DOM input or change event.
func ChangeEventFromJS(e js.Value) ChangeEventArgs {
	target := e.Get("target")
	if !target.Truthy() {
		return ChangeEventArgs{}
	}
	return ChangeEventArgs{Value: target.Get("value").String()}
}

// SubmitEventFromJS wraps a DOM submit event.
func SubmitEventFromJS(e js.Value) SubmitEventArgs {
	return NewSubmitEventArgs(func() {
		e.Call("preventDefault")
	})
}
