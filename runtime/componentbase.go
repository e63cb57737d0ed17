package runtime

import (
	"github.com/vcrobe/activities/console"
)

// ComponentBase is a struct that components can embed to gain access to the
// StateHasChanged method, which triggers a UI re-render.
// This type has no build tags and works in both WASM and test environments.
type ComponentBase struct {
	renderer Renderer // Use interface type, not concrete implementation
}

// SetRenderer is called by the framework's runtime to inject a reference
// to the renderer, enabling StateHasChanged. This method should not be
// called by user code.
func (b *ComponentBase) SetRenderer(r Renderer) {
	b.renderer = r
}

// GetRenderer returns the renderer instance associated with this component.
func (b *ComponentBase) GetRenderer() Renderer {
	return b.renderer
}

// StateHasChanged signals to the framework that the component's state has
// been updated and the UI should be re-rendered to reflect the changes.
func (b *ComponentBase) StateHasChanged() {
	if b.renderer == nil {
		console.Error("StateHasChanged called, but renderer is nil (component not mounted?)")
		return
	}
	b.renderer.ReRender()
}
