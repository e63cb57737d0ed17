package runtime

// Mounter is implemented by components that need to run once, before their first render.
type Mounter interface {
	OnMount()
}

// ParameterReceiver is implemented by components that react to every render pass,
// including the first one, after their props have been applied.
type ParameterReceiver interface {
	OnParametersSet()
}

// Unmounter is implemented by components that release resources
// (subscriptions, timers) when they leave the tree.
type Unmounter interface {
	OnUnmount()
}

// PropUpdater copies props from a freshly constructed instance onto the
// instance the renderer keeps alive between renders.
type PropUpdater interface {
	ApplyProps(source Component)
}
