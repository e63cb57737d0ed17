//go:build js && wasm

// Package domtest installs a minimal in-memory document for js/wasm tests run
// under node, where there is no DOM. It covers what the renderer touches:
// element creation, child lists, attributes, value, focus and listeners.
package domtest

import (
	"syscall/js"
	"testing"
)

const fakeDocument = `(() => {
  class Node {
    constructor(nodeType) { this.nodeType = nodeType; this.parentNode = null; this._children = []; }
    get childNodes() { const c = this._children; return { length: c.length, item: (i) => c[i] ?? null }; }
    get firstChild() { return this._children[0] ?? null; }
    appendChild(n) { if (n.parentNode) n.parentNode.removeChild(n); n.parentNode = this; this._children.push(n); return n; }
    insertBefore(n, ref) {
      if (ref === null) return this.appendChild(n);
      if (n.parentNode) n.parentNode.removeChild(n);
      n.parentNode = this; this._children.splice(this._children.indexOf(ref), 0, n); return n;
    }
    removeChild(n) { const i = this._children.indexOf(n); if (i >= 0) this._children.splice(i, 1); n.parentNode = null; return n; }
    replaceChild(n, old) {
      if (n.parentNode) n.parentNode.removeChild(n);
      this._children[this._children.indexOf(old)] = n; n.parentNode = this; old.parentNode = null; return old;
    }
  }
  class Text extends Node {
    constructor(v) { super(3); this.nodeValue = v; }
    get textContent() { return this.nodeValue; }
  }
  class Element extends Node {
    constructor(doc, tag) { super(1); this._doc = doc; this._attrs = {}; this._listeners = {}; this.tagName = tag.toUpperCase(); this.value = ""; }
    get id() { return this._attrs.id ?? ""; }
    setAttribute(k, v) { this._attrs[k] = String(v); }
    removeAttribute(k) { delete this._attrs[k]; }
    getAttribute(k) { return k in this._attrs ? this._attrs[k] : null; }
    get textContent() { return this._children.map((c) => c.textContent).join(""); }
    set textContent(v) { this._children = []; if (v !== "") this.appendChild(new Text(v)); }
    set innerHTML(v) { this._children = []; }
    addEventListener(type, fn) { (this._listeners[type] ||= []).push(fn); }
    removeEventListener(type, fn) { const l = this._listeners[type] || []; const i = l.indexOf(fn); if (i >= 0) l.splice(i, 1); }
    listenerCount(type) { return (this._listeners[type] || []).length; }
    dispatch(type) {
      const ev = { type, target: this, defaultPrevented: false, preventDefault() { this.defaultPrevented = true; } };
      for (const fn of [...(this._listeners[type] || [])]) fn(ev);
      return ev.defaultPrevented;
    }
    focus() { this._doc.activeElement = this; }
    matches(sel) { return sel === ":focus" && this._doc.activeElement === this; }
  }
  const doc = { activeElement: null };
  doc.body = new Element(doc, "body");
  doc.createElement = (tag) => new Element(doc, tag);
  doc.createTextNode = (v) => new Text(v);
  const find = (n, id) => {
    if (n.nodeType === 1 && n.id === id) return n;
    for (const c of n._children) { const f = find(c, id); if (f) return f; }
    return null;
  };
  doc.getElementById = (id) => find(doc.body, id);
  doc.querySelector = (sel) => (sel.startsWith("#") ? find(doc.body, sel.slice(1)) : null);
  return doc;
})()`

// Document is the installed fake document.
type Document struct {
	js.Value
}

// Install replaces the global document for the duration of the test.
func Install(t testing.TB) *Document {
	t.Helper()
	global := js.Global()
	prev := global.Get("document")
	doc := global.Call("eval", fakeDocument)
	global.Set("document", doc)
	t.Cleanup(func() { global.Set("document", prev) })
	return &Document{Value: doc}
}

// AddRoot appends an empty <div id=id> to the body, to be used as a mount point.
func (d *Document) AddRoot(id string) js.Value {
	el := d.Call("createElement", "div")
	el.Call("setAttribute", "id", id)
	d.Get("body").Call("appendChild", el)
	return el
}

// ByID returns the element with the given id, or null.
func (d *Document) ByID(id string) js.Value {
	return d.Call("getElementById", id)
}

// Focus makes el the active element.
func Focus(el js.Value) {
	el.Call("focus")
}

// Type sets the value of el and fires an input event, like typing does.
func Type(el js.Value, value string) {
	el.Set("value", value)
	el.Call("dispatch", "input")
}

// Choose sets the value of a select and fires a change event.
func Choose(el js.Value, value string) {
	el.Set("value", value)
	el.Call("dispatch", "change")
}

// Submit fires a submit event on a form and reports whether a handler called preventDefault.
func Submit(form js.Value) bool {
	return form.Call("dispatch", "submit").Bool()
}

// Value returns the value property of el.
func Value(el js.Value) string {
	return el.Get("value").String()
}

// Listeners counts the listeners registered on el for event.
func Listeners(el js.Value, event string) int {
	return el.Call("listenerCount", event).Int()
}
