package catalog

import "github.com/vcrobe/activities/internal/activities"

// Seed returns the activities the dev host starts with.
func Seed() []activities.Activity {
	return []activities.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Basketball Team",
			Description:     "Practice and compete in inter-school basketball games",
			Schedule:        "Wednesdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{},
		},
		{
			Name:            "Art Club",
			Description:     "Explore painting, drawing and sculpture",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"ava@mergington.edu"},
		},
	}
}
