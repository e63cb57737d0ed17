package vdom

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML writes n as HTML markup. Event handlers are dropped; form
// controls get their current value as markup (value attribute, selected option).
// Attributes are written in key order so the output is stable.
func RenderHTML(w io.Writer, n *VNode) error {
	node := toHTMLNode(n)
	if node == nil {
		return nil
	}
	return html.Render(w, node)
}

// RenderDocument writes n as a complete document preceded by an HTML5 doctype.
func RenderDocument(w io.Writer, n *VNode) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	if el := toHTMLNode(n); el != nil {
		doc.AppendChild(el)
	}
	return html.Render(w, doc)
}

// HTMLString is RenderHTML into a string.
func HTMLString(n *VNode) (string, error) {
	var b strings.Builder
	if err := RenderHTML(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

func toHTMLNode(n *VNode) *html.Node {
	if n == nil {
		return nil
	}

	if n.Tag == "#text" {
		return &html.Node{Type: html.TextNode, Data: n.Content}
	}

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
		Attr:     htmlAttributes(n.Attributes),
	}

	switch n.Tag {
	case "input":
		if n.Content != "" {
			el.Attr = append(el.Attr, html.Attribute{Key: "value", Val: n.Content})
		}
		return el
	case "textarea":
		if n.Content != "" {
			el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
		}
		return el
	case "select":
		for _, child := range n.Children {
			opt := toHTMLNode(child)
			if opt == nil {
				continue
			}
			if child.Tag == "option" && child.Attr("value") == n.Content {
				opt.Attr = append(opt.Attr, html.Attribute{Key: "selected"})
			}
			el.AppendChild(opt)
		}
		return el
	}

	if n.Content != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}
	for _, child := range n.Children {
		if c := toHTMLNode(child); c != nil {
			el.AppendChild(c)
		}
	}
	return el
}

func htmlAttributes(attrs map[string]any) []html.Attribute {
	if len(attrs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]html.Attribute, 0, len(keys))
	for _, k := range keys {
		switch v := attrs[k].(type) {
		case nil:
			continue
		case bool:
			if v {
				out = append(out, html.Attribute{Key: k})
			}
		case string:
			out = append(out, html.Attribute{Key: k, Val: v})
		case int, int64, float64, uint32:
			out = append(out, html.Attribute{Key: k, Val: fmt.Sprint(v)})
		default:
			// handlers and other Go values have no markup form
		}
	}
	return out
}
