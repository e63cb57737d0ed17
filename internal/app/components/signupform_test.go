package components

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/activities/events"
	"github.com/vcrobe/activities/internal/activities"
	"github.com/vcrobe/activities/signals"
	"github.com/vcrobe/activities/testcomponents"
	"github.com/vcrobe/activities/vdom"
)

type formHarness struct {
	form     *SignupForm
	renderer *testcomponents.TestRenderer
	catalog  *signals.Signal[[]string]
	clock    *clock.Mock
}

func mountSignupForm(t *testing.T, service SignupService, names ...string) *formHarness {
	t.Helper()
	h := &formHarness{
		catalog: signals.NewSignal(names),
		clock:   clock.NewMock(),
	}
	h.form = NewSignupForm(service, h.catalog, h.clock)
	h.form.Dispatch = RunNow
	h.renderer = testcomponents.NewTestRenderer(h.form)
	h.renderer.RenderRoot()
	return h
}

func (h *formHarness) tree() *vdom.VNode {
	return h.renderer.GetCurrentVDOM()
}

// fill types into the fields the way the browser input and change events do.
func (h *formHarness) fill(email, activity string) {
	h.form.HandleEmailInput(events.ChangeEventArgs{Value: email})
	h.form.HandleActivityChange(events.ChangeEventArgs{Value: activity})
}

// submit raises a submit event and reports whether the default navigation was suppressed.
func (h *formHarness) submit() bool {
	prevented := false
	h.form.HandleSubmit(events.NewSubmitEventArgs(func() { prevented = true }))
	return prevented
}

func (h *formHarness) message() *vdom.VNode {
	return h.tree().FindByID("message")
}

func TestSignupForm_SelectHasPlaceholderThenCatalogOrder(t *testing.T) {
	h := mountSignupForm(t, &fakeSignupService{}, "Chess Club", "Gym Class")

	options := h.tree().FindByID("activity").Children
	require.Len(t, options, 3)
	require.Equal(t, "", options[0].Attr("value"))
	require.Equal(t, "-- Select an activity --", options[0].Content)
	require.Equal(t, "Chess Club", options[1].Attr("value"))
	require.Equal(t, "Chess Club", options[1].Content)
	require.Equal(t, "Gym Class", options[2].Content)
}

func TestSignupForm_SelectFollowsCatalogReload(t *testing.T) {
	h := mountSignupForm(t, &fakeSignupService{}, "Chess Club")

	h.catalog.Set([]string{"Drama", "Art", "Chess Club"})

	options := h.tree().FindByID("activity").Children
	require.Len(t, options, 4)
	require.Equal(t, "-- Select an activity --", options[0].Content)
	require.Equal(t, []string{"Drama", "Art", "Chess Club"}, []string{options[1].Content, options[2].Content, options[3].Content})
}

func TestSignupForm_MessageStartsHidden(t *testing.T) {
	h := mountSignupForm(t, &fakeSignupService{})

	require.True(t, h.message().HasClass("hidden"))
	require.Equal(t, "", h.message().TextContent())
}

func TestSignupForm_SuccessShowsMessageAndResetsForm(t *testing.T) {
	service := &fakeSignupService{result: activities.SignupResult{Message: "Signed up!"}}
	h := mountSignupForm(t, service, "Chess Club")

	h.fill("b@x.com", "Chess Club")
	require.Equal(t, "b@x.com", h.tree().FindByID("email").Content)
	require.Equal(t, "Chess Club", h.tree().FindByID("activity").Content)

	require.True(t, h.submit(), "default form navigation must be suppressed")

	require.Equal(t, []activities.SignupRequest{{Activity: "Chess Club", Email: "b@x.com"}}, service.requests)

	msg := h.message()
	require.Equal(t, "Signed up!", msg.TextContent())
	require.True(t, msg.HasClass("success"))
	require.False(t, msg.HasClass("hidden"))

	require.Equal(t, "", h.tree().FindByID("email").Content)
	require.Equal(t, "", h.tree().FindByID("activity").Content)
	email, activity := h.form.Values()
	require.Empty(t, email)
	require.Empty(t, activity)
}

func TestSignupForm_RejectedShowsDetailAndKeepsFields(t *testing.T) {
	service := &fakeSignupService{err: &activities.Error{Kind: activities.KindRejected, Op: "signup", Status: http.StatusBadRequest, Detail: "Already registered"}}
	h := mountSignupForm(t, service, "Chess Club")

	h.fill("b@x.com", "Chess Club")
	h.submit()

	msg := h.message()
	require.Equal(t, "Already registered", msg.TextContent())
	require.True(t, msg.HasClass("error"))
	require.False(t, msg.HasClass("hidden"))

	require.Equal(t, "b@x.com", h.tree().FindByID("email").Content)
	require.Equal(t, "Chess Club", h.tree().FindByID("activity").Content)
}

func TestSignupForm_RejectedWithoutDetailShowsGenericError(t *testing.T) {
	service := &fakeSignupService{err: &activities.Error{Kind: activities.KindRejected, Op: "signup", Status: http.StatusUnprocessableEntity}}
	h := mountSignupForm(t, service, "Chess Club")

	h.fill("b@x.com", "Chess Club")
	h.submit()

	require.Equal(t, "An error occurred", h.message().TextContent())
	require.True(t, h.message().HasClass("error"))
}

func TestSignupForm_TransportAndMalformedFailuresShowFallback(t *testing.T) {
	for name, err := range map[string]error{
		"transport": &activities.Error{Kind: activities.KindTransport, Op: "signup", Err: errors.New("connection refused")},
		"malformed": &activities.Error{Kind: activities.KindMalformed, Op: "signup", Err: activities.ErrMalformedResponse},
		"untyped":   errors.New("boom"),
	} {
		t.Run(name, func(t *testing.T) {
			h := mountSignupForm(t, &fakeSignupService{err: err}, "Chess Club")

			h.fill("b@x.com", "Chess Club")
			h.submit()

			status := h.form.Status()
			require.Equal(t, "Failed to sign up. Please try again.", status.Text)
			require.Equal(t, StatusError, status.Kind)
			require.True(t, status.Visible)
			require.Equal(t, "b@x.com", h.tree().FindByID("email").Content)
		})
	}
}

func TestSignupForm_MessageHidesAfterFiveSeconds(t *testing.T) {
	outcomes := map[string]*fakeSignupService{
		"success": {result: activities.SignupResult{Message: "Signed up!"}},
		"error":   {err: &activities.Error{Kind: activities.KindRejected, Status: http.StatusBadRequest, Detail: "Already registered"}},
	}

	for name, service := range outcomes {
		t.Run(name, func(t *testing.T) {
			h := mountSignupForm(t, service, "Chess Club")
			h.fill("b@x.com", "Chess Club")
			h.submit()

			h.clock.Add(StatusDuration - time.Millisecond)
			require.False(t, h.message().HasClass("hidden"))

			h.clock.Add(time.Millisecond)
			require.True(t, h.message().HasClass("hidden"))
			require.False(t, h.form.Status().Visible)
		})
	}
}

func TestSignupForm_NewMessageRestartsHideTimer(t *testing.T) {
	service := &fakeSignupService{err: &activities.Error{Kind: activities.KindRejected, Status: http.StatusBadRequest, Detail: "Already registered"}}
	h := mountSignupForm(t, service, "Chess Club")
	h.fill("b@x.com", "Chess Club")

	h.submit()
	h.clock.Add(3 * time.Second)

	service.err = nil
	service.result = activities.SignupResult{Message: "Signed up!"}
	h.submit()

	h.clock.Add(3 * time.Second)
	require.False(t, h.message().HasClass("hidden"), "the first timer must not hide the second message")
	require.Equal(t, "Signed up!", h.message().TextContent())

	h.clock.Add(2 * time.Second)
	require.True(t, h.message().HasClass("hidden"))
}

func TestSignupForm_UnmountStopsListening(t *testing.T) {
	h := mountSignupForm(t, &fakeSignupService{}, "Chess Club")
	renders := h.renderer.RenderCount()

	h.renderer.Unmount()
	h.catalog.Set([]string{"Drama"})

	require.Equal(t, renders, h.renderer.RenderCount())
}

func TestSignupForm_SubmitsToSignupEndpoint(t *testing.T) {
	var requestURI string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		requestURI = r.RequestURI
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"message":"Signed up!"}`)
	}))
	t.Cleanup(srv.Close)

	h := mountSignupForm(t, activities.NewClient(srv.URL), "Chess Club")
	h.fill("b@x.com", "Chess Club")
	h.submit()

	require.Equal(t, "/activities/Chess%20Club/signup?email=b%40x.com", requestURI)
	require.Equal(t, "Signed up!", h.message().TextContent())
	require.True(t, h.message().HasClass("success"))
}

func TestSignupForm_SubmitUsesContextUntilUnmount(t *testing.T) {
	service := &ctxRecordingSignup{}
	h := mountSignupForm(t, service, "Chess Club")

	var pending func()
	h.form.Dispatch = func(f func()) { pending = f }
	h.submit()

	h.renderer.Unmount()
	pending()

	require.ErrorIs(t, service.ctxErr, context.Canceled)
}

type ctxRecordingSignup struct {
	ctxErr error
}

func (s *ctxRecordingSignup) Signup(ctx context.Context, req activities.SignupRequest) (activities.SignupResult, error) {
	s.ctxErr = ctx.Err()
	return activities.SignupResult{}, &activities.Error{Kind: activities.KindTransport, Op: "signup", Err: ctx.Err()}
}

func TestSignupForm_FieldEventsReRender(t *testing.T) {
	h := mountSignupForm(t, &fakeSignupService{}, "Chess Club")
	renders := h.renderer.RenderCount()

	h.form.HandleEmailInput(events.ChangeEventArgs{Value: "b@x.com"})
	require.Equal(t, renders+1, h.renderer.RenderCount())
	require.Equal(t, "b@x.com", h.tree().FindByID("email").Content)

	h.form.HandleActivityChange(events.ChangeEventArgs{Value: "Chess Club"})
	require.Equal(t, renders+2, h.renderer.RenderCount())
	require.Equal(t, "Chess Club", h.tree().FindByID("activity").Content)
}

func TestSignupForm_ResubmitAfterSuccessSendsNewValues(t *testing.T) {
	service := &fakeSignupService{result: activities.SignupResult{Message: "Signed up!"}}
	h := mountSignupForm(t, service, "Chess Club", "Gym Class")

	h.fill("b@x.com", "Chess Club")
	h.submit()
	require.Equal(t, "", h.tree().FindByID("email").Content)

	h.fill("c@x.com", "Gym Class")
	h.submit()

	require.Equal(t, []activities.SignupRequest{
		{Activity: "Chess Club", Email: "b@x.com"},
		{Activity: "Gym Class", Email: "c@x.com"},
	}, service.requests)
}
