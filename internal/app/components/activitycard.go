package components

import (
	"strconv"

	"github.com/vcrobe/activities/internal/activities"
	"github.com/vcrobe/activities/runtime"
	"github.com/vcrobe/activities/vdom"
)

// ActivityCard renders one activity: name, description, schedule,
// availability and roster.
type ActivityCard struct {
	runtime.ComponentBase

	Activity activities.Activity
}

var _ runtime.PropUpdater = (*ActivityCard)(nil)

func cardKey(name string) string {
	return "activity-card:" + name
}

// ApplyProps takes the activity of a freshly built card.
func (c *ActivityCard) ApplyProps(source runtime.Component) {
	if next, ok := source.(*ActivityCard); ok {
		c.Activity = next.Activity
	}
}

// Render implements the Component interface.
func (c *ActivityCard) Render(r runtime.Renderer) *vdom.VNode {
	a := c.Activity

	class := "activity-card"
	if a.OverCapacity() {
		class += " over-capacity"
	}

	return vdom.Div(map[string]any{"class": class, "data-activity": a.Name},
		vdom.Heading(4, a.Name, nil),
		vdom.Paragraph(a.Description, nil),
		vdom.ParagraphOf(nil, vdom.Strong("Schedule:"), vdom.Text(" "+a.Schedule)),
		vdom.ParagraphOf(map[string]any{"class": "availability"},
			vdom.Strong("Availability:"),
			vdom.Text(" "+strconv.Itoa(a.SpotsLeft())+" spots left"),
		),
		participantsSection(a.Participants),
	)
}

func participantsSection(participants []string) *vdom.VNode {
	items := make([]*vdom.VNode, 0, max(len(participants), 1))
	for _, p := range participants {
		items = append(items, vdom.ListItem(p, nil))
	}
	if len(items) == 0 {
		items = append(items, vdom.ListItem(noParticipantsText, map[string]any{"class": "no-participants"}))
	}

	return vdom.Div(map[string]any{"class": "participants-section"},
		vdom.Paragraph(participantsHeading, map[string]any{"class": "participants-title"}),
		vdom.List(map[string]any{"class": "participants-list"}, items...),
	)
}
