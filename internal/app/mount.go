//go:build js && wasm

// Package app mounts the activity list and the signup form into the page.
package app

import (
	"github.com/facebookgo/clock"

	"github.com/vcrobe/activities/internal/activities"
	"github.com/vcrobe/activities/internal/app/components"
	"github.com/vcrobe/activities/runtime"
	"github.com/vcrobe/activities/signals"
)

const (
	DefaultActivitiesSelector = "#activities-list"
	DefaultSignupSelector     = "#signup-region"
)

// Options configures Mount. Zero selectors fall back to the defaults and a
// nil Clock means the wall clock.
type Options struct {
	ActivitiesSelector string
	SignupSelector     string
	Client             *activities.Client
	Clock              clock.Clock
}

// App holds the two mounted regions.
type App struct {
	List    *components.ActivityList
	Form    *components.SignupForm
	Catalog *signals.Signal[[]string]

	listRenderer *runtime.RendererImpl
	formRenderer *runtime.RendererImpl
}

// Mount renders the signup form and the activity list. The form is mounted
// first so it is already subscribed when the first catalog arrives.
func Mount(opts Options) *App {
	if opts.ActivitiesSelector == "" {
		opts.ActivitiesSelector = DefaultActivitiesSelector
	}
	if opts.SignupSelector == "" {
		opts.SignupSelector = DefaultSignupSelector
	}
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}

	catalog := signals.NewSignal([]string{})

	a := &App{
		List:         components.NewActivityList(opts.Client, catalog),
		Form:         components.NewSignupForm(opts.Client, catalog, opts.Clock),
		Catalog:      catalog,
		listRenderer: runtime.NewRenderer(opts.ActivitiesSelector),
		formRenderer: runtime.NewRenderer(opts.SignupSelector),
	}

	a.formRenderer.SetCurrentComponent(a.Form, "signup")
	a.formRenderer.ReRender()

	a.listRenderer.SetCurrentComponent(a.List, "activities")
	a.listRenderer.ReRender()

	return a
}

// Unmount runs the unmount hooks of both regions.
func (a *App) Unmount() {
	a.listRenderer.Unmount()
	a.formRenderer.Unmount()
}
