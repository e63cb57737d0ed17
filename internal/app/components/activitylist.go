package components

import (
	"context"
	"fmt"
	"sync"

	"github.com/vcrobe/activities/console"
	"github.com/vcrobe/activities/internal/activities"
	"github.com/vcrobe/activities/runtime"
	"github.com/vcrobe/activities/signals"
	"github.com/vcrobe/activities/vdom"
)

const (
	loadingText         = "Loading activities..."
	loadFailedText      = "Failed to load activities. Please try again later."
	noParticipantsText  = "No participants yet"
	participantsHeading = "Participants"
)

// CatalogSource loads the activity catalog. *activities.Client satisfies it.
type CatalogSource interface {
	ListActivities(ctx context.Context) ([]activities.Activity, error)
}

// ActivityList renders one card per activity and publishes the activity
// names to Catalog so the signup form can offer them.
// Every successful load replaces the whole list.
type ActivityList struct {
	runtime.ComponentBase

	Source   CatalogSource
	Catalog  *signals.Signal[[]string]
	Dispatch Dispatcher

	mu         sync.Mutex
	activities []activities.Activity
	loaded     bool
	loadFailed bool
	cancel     context.CancelFunc
}

// NewActivityList wires an ActivityList to its data source and the shared catalog.
func NewActivityList(source CatalogSource, catalog *signals.Signal[[]string]) *ActivityList {
	return &ActivityList{Source: source, Catalog: catalog}
}

// OnMount starts the first load.
func (c *ActivityList) OnMount() {
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.Dispatch.run(func() {
		c.Refresh(ctx)
	})
}

// OnUnmount abandons a load still in flight.
func (c *ActivityList) OnUnmount() {
	if c.cancel != nil {
		c.cancel()
	}
}

// Refresh fetches the catalog and rebuilds the list. A failure replaces the
// list with a single notice; nothing is retried.
func (c *ActivityList) Refresh(ctx context.Context) {
	catalog, err := c.Source.ListActivities(ctx)

	c.mu.Lock()
	c.loaded = true
	if err != nil {
		c.loadFailed = true
		c.activities = nil
	} else {
		c.loadFailed = false
		c.activities = catalog
	}
	c.mu.Unlock()

	if err != nil {
		console.Error("Error fetching activities:", err.Error())
		c.StateHasChanged()
		return
	}

	for _, a := range catalog {
		if a.OverCapacity() {
			console.Warn(fmt.Sprintf("Activity %q has %d participants for %d places", a.Name, len(a.Participants), a.MaxParticipants))
		}
	}

	if c.Catalog != nil {
		c.Catalog.Set(activities.Names(catalog))
	}
	c.StateHasChanged()
}

// Activities returns the activities currently rendered.
func (c *ActivityList) Activities() []activities.Activity {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activities
}

// Render implements the Component interface.
func (c *ActivityList) Render(r runtime.Renderer) *vdom.VNode {
	c.mu.Lock()
	defer c.mu.Unlock()

	root := vdom.Div(map[string]any{"class": "activities"})

	switch {
	case !c.loaded:
		root.Children = append(root.Children, vdom.Paragraph(loadingText, nil))
	case c.loadFailed:
		root.Children = append(root.Children, vdom.Paragraph(loadFailedText, nil))
	default:
		for _, a := range c.activities {
			root.Children = append(root.Children, r.RenderChild(cardKey(a.Name), &ActivityCard{Activity: a}))
		}
	}

	return root
}
