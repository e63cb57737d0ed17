package components

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/facebookgo/clock"

	"github.com/vcrobe/activities/console"
	"github.com/vcrobe/activities/events"
	"github.com/vcrobe/activities/internal/activities"
	"github.com/vcrobe/activities/runtime"
	"github.com/vcrobe/activities/signals"
	"github.com/vcrobe/activities/vdom"
)

// StatusDuration is how long a status message stays visible.
const StatusDuration = 5 * time.Second

const (
	placeholderOption = "-- Select an activity --"
	genericErrorText  = "An error occurred"
	signupFailedText  = "Failed to sign up. Please try again."
)

// StatusKind drives the styling of the status message.
type StatusKind string

const (
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
)

// Status is the transient message shown under the form.
type Status struct {
	Text    string
	Kind    StatusKind
	Visible bool
}

// SignupService submits signups. *activities.Client satisfies it.
type SignupService interface {
	Signup(ctx context.Context, req activities.SignupRequest) (activities.SignupResult, error)
}

// SignupForm collects an email and an activity, submits the signup and shows
// the outcome for StatusDuration.
type SignupForm struct {
	runtime.ComponentBase

	Service  SignupService
	Catalog  *signals.Signal[[]string]
	Clock    clock.Clock
	Dispatch Dispatcher

	mu        sync.Mutex
	email     string
	activity  string
	options   []string
	status    Status
	statusGen int // bumped on every show so a stale timer cannot hide a newer message
	hideTimer *clock.Timer

	unsubscribe func()
	ctx         context.Context
	cancel      context.CancelFunc
}

// NewSignupForm wires a SignupForm to the signup service, the shared catalog and a clock.
func NewSignupForm(service SignupService, catalog *signals.Signal[[]string], clk clock.Clock) *SignupForm {
	return &SignupForm{Service: service, Catalog: catalog, Clock: clk}
}

// OnMount subscribes to the catalog so the select follows every reload of the list.
func (c *SignupForm) OnMount() {
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	c.ctx, c.cancel = context.WithCancel(context.Background())

	if c.Catalog == nil {
		return
	}
	c.setOptions(c.Catalog.Get())
	c.unsubscribe = c.Catalog.Subscribe(func() {
		c.setOptions(c.Catalog.Get())
		c.StateHasChanged()
	})
}

// OnUnmount drops the catalog subscription and the pending hide timer.
func (c *SignupForm) OnUnmount() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	if c.cancel != nil {
		c.cancel()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hideTimer != nil {
		c.hideTimer.Stop()
		c.hideTimer = nil
	}
}

func (c *SignupForm) setOptions(names []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.options = append([]string(nil), names...)
}

// HandleEmailInput tracks the email field. The re-render keeps the rendered
// tree equal to what the user typed, so a later reset is seen as a change.
func (c *SignupForm) HandleEmailInput(e events.ChangeEventArgs) {
	c.mu.Lock()
	c.email = e.Value
	c.mu.Unlock()
	c.StateHasChanged()
}

// HandleActivityChange tracks the activity select.
func (c *SignupForm) HandleActivityChange(e events.ChangeEventArgs) {
	c.mu.Lock()
	c.activity = e.Value
	c.mu.Unlock()
	c.StateHasChanged()
}

// HandleSubmit suppresses the browser navigation and submits the current field values.
func (c *SignupForm) HandleSubmit(e events.SubmitEventArgs) {
	e.PreventDefault()

	c.mu.Lock()
	req := activities.SignupRequest{Activity: c.activity, Email: c.email}
	ctx := c.ctx
	c.mu.Unlock()

	if ctx == nil {
		ctx = context.Background()
	}

	c.Dispatch.run(func() {
		c.Submit(ctx, req)
	})
}

// Submit sends req and turns the outcome into a status message.
// Only a successful signup resets the form.
func (c *SignupForm) Submit(ctx context.Context, req activities.SignupRequest) {
	result, err := c.Service.Signup(ctx, req)

	switch {
	case err == nil:
		c.mu.Lock()
		c.email = ""
		c.activity = ""
		c.mu.Unlock()
		c.showStatus(result.Message, StatusSuccess)
	case activities.KindOf(err) == activities.KindRejected:
		text := genericErrorText
		var apiErr *activities.Error
		if errors.As(err, &apiErr) && apiErr.Detail != "" {
			text = apiErr.Detail
		}
		c.showStatus(text, StatusError)
	default:
		console.Error("Error signing up:", err.Error())
		c.showStatus(signupFailedText, StatusError)
	}

	c.StateHasChanged()
}

// showStatus reveals the message and re-arms the hide timer.
func (c *SignupForm) showStatus(text string, kind StatusKind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Clock == nil {
		c.Clock = clock.New()
	}
	if c.hideTimer != nil {
		c.hideTimer.Stop()
	}

	c.statusGen++
	gen := c.statusGen
	c.status = Status{Text: text, Kind: kind, Visible: true}
	c.hideTimer = c.Clock.AfterFunc(StatusDuration, func() {
		c.hideStatus(gen)
	})
}

func (c *SignupForm) hideStatus(gen int) {
	c.mu.Lock()
	if gen != c.statusGen {
		c.mu.Unlock()
		return
	}
	c.status.Visible = false
	c.hideTimer = nil
	c.mu.Unlock()

	c.StateHasChanged()
}

// Status returns the current status message.
func (c *SignupForm) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Values returns the current email and activity field values.
func (c *SignupForm) Values() (email, activity string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.email, c.activity
}

// Render implements the Component interface.
func (c *SignupForm) Render(r runtime.Renderer) *vdom.VNode {
	c.mu.Lock()
	defer c.mu.Unlock()

	options := make([]*vdom.VNode, 0, len(c.options)+1)
	options = append(options, vdom.Option("", placeholderOption))
	for _, name := range c.options {
		options = append(options, vdom.Option(name, name))
	}

	form := vdom.Form(map[string]any{"id": "signup-form", "onSubmit": c.HandleSubmit},
		vdom.Div(map[string]any{"class": "form-group"},
			vdom.Label("Student Email:", "email"),
			vdom.Input("email", c.email, map[string]any{
				"id":          "email",
				"required":    true,
				"placeholder": "your-email@mergington.edu",
				"onInput":     c.HandleEmailInput,
			}),
		),
		vdom.Div(map[string]any{"class": "form-group"},
			vdom.Label("Select Activity:", "activity"),
			vdom.Select(c.activity, map[string]any{
				"id":       "activity",
				"required": true,
				"onChange": c.HandleActivityChange,
			}, options...),
		),
		vdom.Button("Sign Up", map[string]any{"type": "submit"}),
	)

	return vdom.Div(map[string]any{"class": "signup"},
		form,
		vdom.Div(map[string]any{"id": "message", "class": statusClass(c.status)}, vdom.Text(c.status.Text)),
	)
}

func statusClass(s Status) string {
	class := string(s.Kind)
	if !s.Visible {
		if class != "" {
			class += " "
		}
		class += "hidden"
	}
	return class
}
