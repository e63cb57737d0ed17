package components

import (
	"context"

	"github.com/vcrobe/activities/internal/activities"
)

type fakeCatalogSource struct {
	catalog []activities.Activity
	err     error
	calls   int
}

func (f *fakeCatalogSource) ListActivities(ctx context.Context) ([]activities.Activity, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.catalog, nil
}

type fakeSignupService struct {
	result   activities.SignupResult
	err      error
	requests []activities.SignupRequest
}

func (f *fakeSignupService) Signup(ctx context.Context, req activities.SignupRequest) (activities.SignupResult, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return activities.SignupResult{}, f.err
	}
	return f.result, nil
}

func chessClub() activities.Activity {
	return activities.Activity{
		Name:            "Chess Club",
		Description:     "Learn chess",
		Schedule:        "Fridays",
		MaxParticipants: 10,
		Participants:    []string{"a@x.com"},
	}
}
