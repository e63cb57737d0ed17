// Package activities holds the typed records of the activities API, their
// JSON codec and the HTTP client used by the browser view layer.
package activities

// Activity is a named event with a schedule, a capacity and a roster.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// SpotsLeft is the capacity minus the current participant count, never below zero.
func (a Activity) SpotsLeft() int {
	left := a.MaxParticipants - len(a.Participants)
	if left < 0 {
		return 0
	}
	return left
}

// OverCapacity reports a roster larger than the capacity.
// Rosters can outgrow the capacity, so the view flags it instead of showing a negative count.
func (a Activity) OverCapacity() bool {
	return len(a.Participants) > a.MaxParticipants
}

// HasParticipant reports whether email is on the roster.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// Names returns the activity names in catalog order.
func Names(catalog []Activity) []string {
	names := make([]string, len(catalog))
	for i, a := range catalog {
		names[i] = a.Name
	}
	return names
}

// SignupRequest is built from the form when it is submitted.
type SignupRequest struct {
	Activity string
	Email    string
}

// SignupResult is the server's confirmation of a successful signup.
type SignupResult struct {
	Message string
}
