//go:build js && wasm && !dev

package runtime

import (
	"fmt"

	"github.com/vcrobe/activities/console"
)

// recoverLifecycle logs a panic raised by a lifecycle hook instead of crashing the app.
func recoverLifecycle(hook, key string) {
	if rec := recover(); rec != nil {
		console.Error(fmt.Sprintf("ERROR: %s panic in component %s: %v", hook, key, rec))
	}
}

// callOnMount invokes the OnMount lifecycle method in production mode.
// In production mode, panics are recovered and logged to prevent application crashes.
func (r *RendererImpl) callOnMount(mounter Mounter, key string) {
	defer recoverLifecycle("OnMount", key)
	mounter.OnMount()
}

// callOnParametersSet invokes the OnParametersSet lifecycle method in production mode.
func (r *RendererImpl) callOnParametersSet(receiver ParameterReceiver, key string) {
	defer recoverLifecycle("OnParametersSet", key)
	receiver.OnParametersSet()
}

// callOnUnmount invokes the OnUnmount lifecycle method in production mode.
func (r *RendererImpl) callOnUnmount(unmounter Unmounter, key string) {
	defer recoverLifecycle("OnUnmount", key)
	unmounter.OnUnmount()
}
