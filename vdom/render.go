//go:build js && wasm

package vdom

import (
	"fmt"
	"syscall/js"

	"github.com/vcrobe/activities/console"
	"github.com/vcrobe/activities/events"
)

// supportedTags lists the element tags createElement knows how to build.
var supportedTags = map[string]bool{
	"div": true, "p": true, "span": true, "strong": true, "em": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "li": true,
	"form": true, "label": true, "input": true, "textarea": true,
	"select": true, "option": true, "button": true,
	"a": true, "nav": true, "section": true, "article": true,
	"header": true, "footer": true, "main": true, "aside": true,
}

// releaseCallbacks releases all js.Func objects stored in a VNode.
// The element is gone, so nothing is detached.
func releaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	for _, cb := range v.GetEventCallbacks() {
		if jsFunc, ok := cb.Func.(js.Func); ok {
			jsFunc.Release()
		}
	}
	v.ClearEventCallbacks()
}

// detachEventListeners removes the listeners v attached to el, then releases them.
func detachEventListeners(el js.Value, v *VNode) {
	for _, cb := range v.GetEventCallbacks() {
		if jsFunc, ok := cb.Func.(js.Func); ok {
			el.Call("removeEventListener", cb.Event, jsFunc)
			jsFunc.Release()
		}
	}
	v.ClearEventCallbacks()
}

// deepReleaseCallbacks recursively releases all callbacks in the entire VNode tree.
func deepReleaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	releaseCallbacks(v)

	for _, child := range v.Children {
		deepReleaseCallbacks(child)
	}
}

// Clear removes every child of the mount element and releases the callbacks of prevVDOM.
func Clear(selector string, prevVDOM *VNode) {
	if selector == "" {
		return
	}

	if prevVDOM != nil {
		deepReleaseCallbacks(prevVDOM)
	}

	mount := querySelector(selector)
	if !mount.Truthy() {
		return
	}

	mount.Set("innerHTML", "")
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}

	mount := querySelector(selector)
	if !mount.Truthy() {
		return
	}

	RenderTo(mount, n)
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}

	el := createElement(n)
	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

func querySelector(selector string) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined()
	}

	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
	}
	return mount
}

// isEventKey reports whether an attribute key names an event handler ("onClick", "onSubmit", ...).
func isEventKey(key string) bool {
	return len(key) > 2 && key[0] == 'o' && key[1] == 'n'
}

// setAttributeValue sets an attribute on an element, handling boolean attributes and event handlers correctly.
func setAttributeValue(el js.Value, key string, value any) {
	if isEventKey(key) {
		// Handlers are attached via addEventListener
		return
	}

	if boolVal, ok := value.(bool); ok {
		if boolVal {
			el.Call("setAttribute", key, "")
		} else {
			el.Call("removeAttribute", key)
		}
		return
	}

	el.Call("setAttribute", key, fmt.Sprint(value))
}

// wrapHandler converts a typed Go handler into a js.Func.
// ok is false for values that are not handlers.
func wrapHandler(value any) (cb js.Func, ok bool) {
	switch h := value.(type) {
	case func():
		return js.FuncOf(func(this js.Value, args []js.Value) any {
			h()
			return nil
		}), true
	case func(events.ChangeEventArgs):
		return js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) > 0 {
				h(events.ChangeEventFromJS(args[0]))
			}
			return nil
		}), true
	case func(events.SubmitEventArgs):
		return js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) > 0 {
				h(events.SubmitEventFromJS(args[0]))
			}
			return nil
		}), true
	default:
		return js.Func{}, false
	}
}

// attachEventListeners attaches the handlers found in attributes.
// The callbacks are stored on vnode for later release.
func attachEventListeners(el js.Value, vnode *VNode, attributes map[string]any) {
	for key, value := range attributes {
		if !isEventKey(key) {
			continue
		}

		cb, ok := wrapHandler(value)
		if !ok {
			continue
		}

		// "onClick" -> "click", "onSubmit" -> "submit"
		eventName := key[2:]
		if eventName[0] >= 'A' && eventName[0] <= 'Z' {
			eventName = string(eventName[0]+('a'-'A')) + eventName[1:]
		}

		el.Call("addEventListener", eventName, cb)
		vnode.AddEventCallback(eventName, cb)
	}
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	if n.Tag == "#text" {
		return doc.Call("createTextNode", n.Content)
	}

	if !supportedTags[n.Tag] {
		console.Error("Unsupported tag: ", n.Tag)
		return js.Undefined()
	}

	el := doc.Call("createElement", n.Tag)

	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}
	attachEventListeners(el, n, n.Attributes)

	switch n.Tag {
	case "input", "textarea":
		if n.Content != "" {
			el.Set("value", n.Content)
		}
		return el
	case "select":
		appendChildren(el, n.Children)
		// Options must exist before the value can select one of them
		el.Set("value", n.Content)
		return el
	}

	if n.Content != "" {
		el.Set("textContent", n.Content)
	}
	appendChildren(el, n.Children)

	return el
}

func appendChildren(el js.Value, children []*VNode) {
	for _, child := range children {
		childEl := createElement(child)
		if childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}
}

// Patch updates the DOM by comparing old and new VDOM trees and applying minimal changes.
func Patch(mountSelector string, oldVNode, newVNode *VNode) {
	if oldVNode == nil || newVNode == nil {
		return
	}

	mount := querySelector(mountSelector)
	if !mount.Truthy() {
		return
	}

	rootElement := mount.Get("firstChild")
	if !rootElement.Truthy() {
		// No existing DOM, just render fresh
		RenderTo(mount, newVNode)
		return
	}

	patchElement(rootElement, oldVNode, newVNode)
}

// replaceElement swaps domElement for a freshly created element built from newVNode.
func replaceElement(domElement js.Value, oldVNode, newVNode *VNode) {
	deepReleaseCallbacks(oldVNode)

	newElement := createElement(newVNode)
	if newElement.Truthy() {
		parent := domElement.Get("parentNode")
		if parent.Truthy() {
			parent.Call("replaceChild", newElement, domElement)
		}
	}
}

// patchElement updates a single DOM element based on VDOM differences.
func patchElement(domElement js.Value, oldVNode, newVNode *VNode) {
	if !domElement.Truthy() || oldVNode == nil || newVNode == nil {
		return
	}

	if oldVNode.ComponentKey != "" && newVNode.ComponentKey != "" && oldVNode.ComponentKey != newVNode.ComponentKey {
		replaceElement(domElement, oldVNode, newVNode)
		return
	}

	if oldVNode.Tag != newVNode.Tag {
		replaceElement(domElement, oldVNode, newVNode)
		return
	}

	if newVNode.Tag == "#text" {
		if oldVNode.Content != newVNode.Content {
			domElement.Set("nodeValue", newVNode.Content)
		}
		return
	}

	patchAttributes(domElement, oldVNode.Attributes, newVNode.Attributes)

	detachEventListeners(domElement, oldVNode)
	attachEventListeners(domElement, newVNode, newVNode.Attributes)

	switch newVNode.Tag {
	case "input", "textarea":
		// Typed text is already in the element; a change of state is written even when focused
		if oldVNode.Content != newVNode.Content && domElement.Get("value").String() != newVNode.Content {
			domElement.Set("value", newVNode.Content)
		}
		return
	case "select":
		patchChildren(domElement, oldVNode.Children, newVNode.Children)
		if domElement.Get("value").String() != newVNode.Content {
			domElement.Set("value", newVNode.Content)
		}
		return
	}

	// Setting textContent wipes out all child nodes, so only do it for leaf elements
	if len(newVNode.Children) == 0 && oldVNode.Content != newVNode.Content {
		domElement.Set("textContent", newVNode.Content)
	}

	patchChildren(domElement, oldVNode.Children, newVNode.Children)
}

// patchAttributes updates the attributes of a DOM element.
func patchAttributes(domElement js.Value, oldAttrs, newAttrs map[string]any) {
	for key := range oldAttrs {
		if _, exists := newAttrs[key]; !exists {
			if isEventKey(key) {
				continue
			}
			domElement.Call("removeAttribute", key)
		}
	}

	for key, value := range newAttrs {
		if isEventKey(key) {
			continue
		}

		if oldAttrs == nil || oldAttrs[key] != value {
			setAttributeValue(domElement, key, value)
		}
	}
}

// patchChildren updates the children of a DOM element.
func patchChildren(domElement js.Value, oldChildren, newChildren []*VNode) {
	oldLen := len(oldChildren)
	newLen := len(newChildren)
	minLen := min(oldLen, newLen)

	domChildren := domElement.Get("childNodes")

	for i := 0; i < minLen; i++ {
		oldChild := oldChildren[i]
		newChild := newChildren[i]

		switch {
		case oldChild == nil && newChild != nil:
			newChildEl := createElement(newChild)
			if !newChildEl.Truthy() {
				continue
			}
			if i < domChildren.Length() {
				domElement.Call("insertBefore", newChildEl, domChildren.Call("item", i))
			} else {
				domElement.Call("appendChild", newChildEl)
			}
		case oldChild != nil && newChild == nil:
			deepReleaseCallbacks(oldChild)
			childElement := domChildren.Call("item", i)
			if childElement.Truthy() {
				domElement.Call("removeChild", childElement)
			}
		case oldChild != nil && newChild != nil:
			childElement := domChildren.Call("item", i)
			if childElement.Truthy() {
				patchElement(childElement, oldChild, newChild)
			}
		}
	}

	for i := oldLen; i < newLen; i++ {
		newChild := createElement(newChildren[i])
		if newChild.Truthy() {
			domElement.Call("appendChild", newChild)
		}
	}

	for i := oldLen - 1; i >= newLen; i-- {
		deepReleaseCallbacks(oldChildren[i])

		childElement := domChildren.Call("item", i)
		if childElement.Truthy() {
			domElement.Call("removeChild", childElement)
		}
	}
}
