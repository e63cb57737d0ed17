package vdom

import (
	"fmt"
	"strings"
)

// Attr returns the attribute value formatted as a string, or "" when absent.
func (v *VNode) Attr(key string) string {
	if v == nil || v.Attributes == nil {
		return ""
	}
	val, ok := v.Attributes[key]
	if !ok || val == nil {
		return ""
	}
	if s, ok := val.(string); ok {
		return s
	}
	return fmt.Sprint(val)
}

// HasClass reports whether the space separated "class" attribute contains class.
func (v *VNode) HasClass(class string) bool {
	for _, c := range strings.Fields(v.Attr("class")) {
		if c == class {
			return true
		}
	}
	return false
}

// TextContent concatenates the text of the node and all its descendants,
// the way the DOM textContent property does.
func (v *VNode) TextContent() string {
	if v == nil {
		return ""
	}
	var b strings.Builder
	v.writeText(&b)
	return b.String()
}

func (v *VNode) writeText(b *strings.Builder) {
	if v.Tag != "input" && v.Tag != "select" && v.Tag != "textarea" {
		b.WriteString(v.Content)
	}
	for _, child := range v.Children {
		if child != nil {
			child.writeText(b)
		}
	}
}

// FindAll returns the nodes of the subtree, in document order, that satisfy match.
func (v *VNode) FindAll(match func(*VNode) bool) []*VNode {
	var out []*VNode
	var walk func(n *VNode)
	walk = func(n *VNode) {
		if n == nil {
			return
		}
		if match(n) {
			out = append(out, n)
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(v)
	return out
}

// FindByID returns the first node whose id attribute equals id.
func (v *VNode) FindByID(id string) *VNode {
	found := v.FindAll(func(n *VNode) bool { return n.Attr("id") == id })
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

// FindByClass returns all nodes carrying class.
func (v *VNode) FindByClass(class string) []*VNode {
	return v.FindAll(func(n *VNode) bool { return n.HasClass(class) })
}

// FindByTag returns all nodes with the given tag.
func (v *VNode) FindByTag(tag string) []*VNode {
	return v.FindAll(func(n *VNode) bool { return n.Tag == tag })
}
