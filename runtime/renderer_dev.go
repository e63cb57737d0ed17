//go:build js && wasm && dev

package runtime

// callOnMount invokes the OnMount lifecycle method in development mode.
// In dev mode, panics propagate to aid debugging and fast failure.
func (r *RendererImpl) callOnMount(mounter Mounter, key string) {
	mounter.OnMount()
}

// callOnParametersSet invokes the OnParametersSet lifecycle method in development mode.
func (r *RendererImpl) callOnParametersSet(receiver ParameterReceiver, key string) {
	receiver.OnParametersSet()
}

// callOnUnmount invokes the OnUnmount lifecycle method in development mode.
func (r *RendererImpl) callOnUnmount(unmounter Unmounter, key string) {
	unmounter.OnUnmount()
}
