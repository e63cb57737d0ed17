package vdom

// VNode represents a virtual DOM node.
//
// Event handlers live in Attributes under keys starting with "on" (onClick,
// onInput, onChange, onSubmit). Supported handler types are func(),
// func(events.ChangeEventArgs) and func(events.SubmitEventArgs); the WASM
// renderer wraps them in js.Func callbacks and never writes them as HTML attributes.
type VNode struct {
	Tag          string         // The HTML tag name, or "#text" for a bare text node
	Attributes   map[string]any // The attributes of the node
	Children     []*VNode       // The child nodes
	Content      string         // Text content; the current value for input, textarea and select
	ComponentKey string         // Set on component roots so Patch can replace whole subtrees

	eventCallbacks []EventCallback // js.Func values attached to the live element
}

// NewVNode creates a new VNode.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
	}
}

// EventCallback is a handler attached to the rendered element, remembered
// with its event name so it can be detached again.
type EventCallback struct {
	Event string
	Func  any
}

// AddEventCallback records a callback attached to the rendered element so it
// can be removed and released when the element is patched or goes away.
func (v *VNode) AddEventCallback(event string, cb any) {
	v.eventCallbacks = append(v.eventCallbacks, EventCallback{Event: event, Func: cb})
}

// GetEventCallbacks returns the callbacks recorded by AddEventCallback.
func (v *VNode) GetEventCallbacks() []EventCallback {
	return v.eventCallbacks
}

// ClearEventCallbacks forgets all recorded callbacks.
func (v *VNode) ClearEventCallbacks() {
	v.eventCallbacks = nil
}

// Text creates a bare text node.
func Text(content string) *VNode {
	return NewVNode("#text", nil, nil, content)
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Section creates a <section> VNode.
func Section(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("section", attrs, children, "")
}

// Heading creates an <h1>..<h6> VNode holding plain text.
func Heading(level int, text string, attrs map[string]any) *VNode {
	if level < 1 || level > 6 {
		level = 2
	}
	return NewVNode("h"+string(rune('0'+level)), attrs, nil, text)
}

// Paragraph creates a <p> VNode with the given text as its child and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// ParagraphOf creates a <p> VNode with mixed children, e.g. a <strong> label followed by text.
func ParagraphOf(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("p", attrs, children, "")
}

// Strong creates a <strong> VNode.
func Strong(text string) *VNode {
	return NewVNode("strong", nil, nil, text)
}

// List creates a <ul> VNode.
func List(attrs map[string]any, items ...*VNode) *VNode {
	return NewVNode("ul", attrs, items, "")
}

// ListItem creates an <li> VNode holding plain text.
func ListItem(text string, attrs map[string]any) *VNode {
	return NewVNode("li", attrs, nil, text)
}

// Form creates a <form> VNode.
func Form(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("form", attrs, children, "")
}

// Label creates a <label> VNode. forID is written as the "for" attribute when not empty.
func Label(text, forID string) *VNode {
	var attrs map[string]any
	if forID != "" {
		attrs = map[string]any{"for": forID}
	}
	return NewVNode("label", attrs, nil, text)
}

// Input returns a VNode representing an <input> of the given type.
// value is kept in Content and synchronised with the element's value property.
func Input(inputType, value string, attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["type"] = inputType
	return NewVNode("input", attrs, nil, value)
}

// InputText returns a VNode representing an <input type="text"> element.
func InputText(attrs map[string]any) *VNode {
	return Input("text", "", attrs)
}

// Select returns a <select> VNode whose selected value is value.
func Select(value string, attrs map[string]any, options ...*VNode) *VNode {
	return NewVNode("select", attrs, options, value)
}

// Option returns an <option> VNode.
func Option(value, label string) *VNode {
	return NewVNode("option", map[string]any{"value": value}, nil, label)
}

// Button creates a <button> VNode with the given children and allows passing attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}
