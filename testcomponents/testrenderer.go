package testcomponents

import (
	"github.com/vcrobe/activities/runtime"
	"github.com/vcrobe/activities/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It captures VDOM output from component renders and allows tests to:
// - Attach components to the renderer
// - Trigger re-renders via StateHasChanged()
// - Inspect the resulting VDOM tree
//
// Lifecycle hooks run the way RendererImpl runs them: OnMount once before the
// first render, OnParametersSet before every render, OnUnmount on Unmount.
type TestRenderer struct {
	currentVDOM *vdom.VNode
	component   runtime.Component
	children    map[string]runtime.Component
	mounted     bool
	renderCount int
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component: comp,
		children:  make(map[string]runtime.Component),
	}
	comp.SetRenderer(r)
	return r
}

// RenderRoot performs the initial render of the component.
// This should be called at the start of a test to get the initial VDOM.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	if !r.mounted {
		r.mounted = true
		if mounter, ok := r.component.(runtime.Mounter); ok {
			mounter.OnMount()
		}
	}
	r.render()
	return r.currentVDOM
}

// ReRender performs a re-render of the component.
// This is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	r.render()
}

func (r *TestRenderer) render() {
	if receiver, ok := r.component.(runtime.ParameterReceiver); ok {
		receiver.OnParametersSet()
	}
	r.currentVDOM = r.component.Render(r)
	r.renderCount++
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
// Tests use this to inspect the component's output after renders.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// RenderCount returns how many times the root component has been rendered.
func (r *TestRenderer) RenderCount() int {
	return r.renderCount
}

// RenderChild keeps one instance per key, applying new props to it on later renders.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	instance, exists := r.children[key]
	if !exists {
		instance = child
		r.children[key] = instance
	} else if updater, ok := instance.(runtime.PropUpdater); ok {
		updater.ApplyProps(child)
	}

	instance.SetRenderer(r)
	if !exists {
		if mounter, ok := instance.(runtime.Mounter); ok {
			mounter.OnMount()
		}
	}
	if receiver, ok := instance.(runtime.ParameterReceiver); ok {
		receiver.OnParametersSet()
	}
	vnode := instance.Render(r)
	if vnode != nil {
		vnode.ComponentKey = key
	}
	return vnode
}

// Child returns the live child instance stored under key.
func (r *TestRenderer) Child(key string) runtime.Component {
	return r.children[key]
}

// Unmount runs OnUnmount on the children and the root component.
func (r *TestRenderer) Unmount() {
	for key, child := range r.children {
		if unmounter, ok := child.(runtime.Unmounter); ok {
			unmounter.OnUnmount()
		}
		delete(r.children, key)
	}
	if unmounter, ok := r.component.(runtime.Unmounter); ok {
		unmounter.OnUnmount()
	}
	r.mounted = false
}
