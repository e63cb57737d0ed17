//go:build js && wasm

package runtime

import (
	"github.com/vcrobe/activities/vdom"
)

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

const rootKey = "__root__"

// RendererImpl is the concrete implementation of the Renderer interface.
// It manages the component instance tree mounted under one DOM element and
// handles the rendering lifecycle.
type RendererImpl struct {
	instances        map[string]Component
	activeKeys       map[string]bool // Track which components are active in the current render
	mounted          bool            // Root OnMount has run
	currentComponent Component
	currentKey       string
	mountID          string
	prevVDOM         *vdom.VNode // Previous VDOM tree for patching
	rendering        bool
	dirty            bool // ReRender was requested while a render was in progress
}

// NewRenderer creates a new runtime renderer that mounts under the element
// matching the mountID CSS selector.
func NewRenderer(mountID string) *RendererImpl {
	return &RendererImpl{
		instances:  make(map[string]Component),
		activeKeys: make(map[string]bool),
		mountID:    mountID,
	}
}

// SetCurrentComponent sets the root component to be rendered.
// key identifies the root so a different root replaces the whole subtree on patch.
func (r *RendererImpl) SetCurrentComponent(comp Component, key string) {
	if r.currentComponent != nil && r.currentComponent != comp {
		r.unmountAll()
	}
	r.currentComponent = comp
	r.currentKey = key
}

// ReRender patches the DOM with minimal changes.
// Requests made while a render is running are coalesced into one more pass.
func (r *RendererImpl) ReRender() {
	if r.rendering {
		r.dirty = true
		return
	}

	r.rendering = true
	defer func() { r.rendering = false }()

	for {
		r.dirty = false
		r.renderRoot()
		if !r.dirty {
			return
		}
	}
}

// renderRoot starts the rendering process for the root component.
func (r *RendererImpl) renderRoot() {
	if r.currentComponent == nil {
		return
	}

	r.activeKeys = make(map[string]bool)

	r.currentComponent.SetRenderer(r)

	if !r.mounted {
		// OnMount runs only once, before first render
		r.mounted = true
		if mounter, ok := r.currentComponent.(Mounter); ok {
			r.callOnMount(mounter, rootKey)
		}
	}

	if receiver, ok := r.currentComponent.(ParameterReceiver); ok {
		r.callOnParametersSet(receiver, rootKey)
	}

	newVDOM := r.currentComponent.Render(r)
	if newVDOM != nil {
		newVDOM.ComponentKey = r.currentKey
	}

	if r.prevVDOM == nil {
		// Initial render: clear and render fresh
		vdom.Clear(r.mountID, nil)
		vdom.RenderToSelector(r.mountID, newVDOM)
	} else {
		vdom.Patch(r.mountID, r.prevVDOM, newVDOM)
	}

	r.prevVDOM = newVDOM

	r.cleanupUnmountedComponents()
}

// RenderChild renders a child component, reusing the instance stored under key.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	r.activeKeys[key] = true

	instance, exists := r.instances[key]
	if !exists {
		instance = childWithProps
		r.instances[key] = instance
	} else if updater, ok := instance.(PropUpdater); ok {
		// Preserve the existing instance to keep state, apply the new props.
		updater.ApplyProps(childWithProps)
	}

	instance.SetRenderer(r)

	if !exists {
		if mounter, ok := instance.(Mounter); ok {
			r.callOnMount(mounter, key)
		}
	}

	if receiver, ok := instance.(ParameterReceiver); ok {
		r.callOnParametersSet(receiver, key)
	}

	vnode := instance.Render(r)
	if vnode != nil {
		vnode.ComponentKey = key
	}
	return vnode
}

// cleanupUnmountedComponents removes components that are no longer in the tree
// and calls their OnUnmount lifecycle method.
func (r *RendererImpl) cleanupUnmountedComponents() {
	for key, instance := range r.instances {
		if r.activeKeys[key] {
			continue
		}
		if unmounter, ok := instance.(Unmounter); ok {
			r.callOnUnmount(unmounter, key)
		}
		delete(r.instances, key)
	}
}

// Unmount removes the rendered tree from the DOM and runs OnUnmount on every instance.
func (r *RendererImpl) Unmount() {
	r.unmountAll()
	vdom.Clear(r.mountID, r.prevVDOM)
	r.prevVDOM = nil
	r.currentComponent = nil
}

func (r *RendererImpl) unmountAll() {
	for key, instance := range r.instances {
		if unmounter, ok := instance.(Unmounter); ok {
			r.callOnUnmount(unmounter, key)
		}
		delete(r.instances, key)
	}
	if r.currentComponent != nil {
		if unmounter, ok := r.currentComponent.(Unmounter); ok {
			r.callOnUnmount(unmounter, rootKey)
		}
	}
	r.mounted = false
}
