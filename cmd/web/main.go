//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/vcrobe/activities/console"
	"github.com/vcrobe/activities/internal/activities"
	"github.com/vcrobe/activities/internal/app"
)

func main() {
	// The API is served by the same host as the page
	origin := js.Global().Get("location").Get("origin").String()

	app.Mount(app.Options{
		ActivitiesSelector: app.DefaultActivitiesSelector,
		SignupSelector:     app.DefaultSignupSelector,
		Client:             activities.NewClient(origin),
	})
	console.Log("activities app mounted, API at", origin)

	// Keep the Go program running
	select {}
}
