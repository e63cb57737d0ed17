package testcomponents

import (
	"strings"
	"testing"

	"github.com/vcrobe/activities/runtime"
	"github.com/vcrobe/activities/vdom"
)

type hookLog struct {
	events []string
}

func (l *hookLog) add(event string) {
	l.events = append(l.events, event)
}

type badge struct {
	runtime.ComponentBase
	log   *hookLog
	Label string
}

func (b *badge) OnMount()         { b.log.add("badge mount") }
func (b *badge) OnParametersSet() { b.log.add("badge params " + b.Label) }
func (b *badge) OnUnmount()       { b.log.add("badge unmount") }

func (b *badge) ApplyProps(source runtime.Component) {
	if next, ok := source.(*badge); ok {
		b.Label = next.Label
	}
}

func (b *badge) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.NewVNode("span", nil, nil, b.Label)
}

type panel struct {
	runtime.ComponentBase
	log   *hookLog
	Label string
}

func (p *panel) OnMount()         { p.log.add("panel mount") }
func (p *panel) OnParametersSet() { p.log.add("panel params") }
func (p *panel) OnUnmount()       { p.log.add("panel unmount") }

func (p *panel) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(nil, r.RenderChild("badge", &badge{log: p.log, Label: p.Label}))
}

// TestTestRenderer_LifecycleOrder verifies that hooks run the way the browser
// renderer runs them: OnMount once, OnParametersSet before every render,
// props applied to the kept child instance, OnUnmount on Unmount.
func TestTestRenderer_LifecycleOrder(t *testing.T) {
	// Arrange
	log := &hookLog{}
	root := &panel{log: log, Label: "one"}
	renderer := NewTestRenderer(root)

	// Act
	renderer.RenderRoot()
	first := renderer.Child("badge")
	root.Label = "two"
	root.StateHasChanged()
	renderer.Unmount()

	// Assert
	want := []string{
		"panel mount", "panel params", "badge mount", "badge params one",
		"panel params", "badge params two",
		"badge unmount", "panel unmount",
	}
	if got := strings.Join(log.events, ", "); got != strings.Join(want, ", ") {
		t.Errorf("Expected hooks %q, got %q", strings.Join(want, ", "), got)
	}
	if first == nil || first.(*badge).Label != "two" {
		t.Errorf("Expected the first badge instance to receive the new label")
	}
	if renderer.Child("badge") != nil {
		t.Errorf("Expected children to be dropped on Unmount")
	}
}

// TestTestRenderer_ChildKeyOnVNode verifies that child roots carry their key.
func TestTestRenderer_ChildKeyOnVNode(t *testing.T) {
	renderer := NewTestRenderer(&panel{log: &hookLog{}, Label: "x"})

	vnode := renderer.RenderRoot()

	if got := vnode.Children[0].ComponentKey; got != "badge" {
		t.Errorf("Expected child ComponentKey 'badge', got %q", got)
	}
	if renderer.RenderCount() != 1 {
		t.Errorf("Expected 1 render, got %d", renderer.RenderCount())
	}
}
