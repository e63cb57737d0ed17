package activities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// wireActivity is the JSON shape of one catalog entry.
// Pointer fields distinguish a missing field from a zero value.
type wireActivity struct {
	Description     *string  `json:"description"`
	Schedule        *string  `json:"schedule"`
	MaxParticipants *int     `json:"max_participants"`
	Participants    []string `json:"participants"`
}

func (w wireActivity) toActivity(op, name string) (Activity, error) {
	switch {
	case w.Description == nil:
		return Activity{}, malformed(op, "activity %q: missing description", name)
	case w.Schedule == nil:
		return Activity{}, malformed(op, "activity %q: missing schedule", name)
	case w.MaxParticipants == nil:
		return Activity{}, malformed(op, "activity %q: missing max_participants", name)
	}

	participants := w.Participants
	if participants == nil {
		participants = []string{}
	}

	return Activity{
		Name:            name,
		Description:     *w.Description,
		Schedule:        *w.Schedule,
		MaxParticipants: *w.MaxParticipants,
		Participants:    participants,
	}, nil
}

// DecodeCatalog reads a JSON object mapping activity names to activities and
// returns the activities in the order their keys appear in the document.
// A repeated key keeps its first position and its last value.
func DecodeCatalog(r io.Reader) ([]Activity, error) {
	const op = "list activities"

	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, malformed(op, "read body: %v", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, malformed(op, "expected a JSON object, got %v", tok)
	}

	catalog := []Activity{}
	index := make(map[string]int)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, malformed(op, "read key: %v", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, malformed(op, "expected an activity name, got %v", tok)
		}

		var wire wireActivity
		if err := dec.Decode(&wire); err != nil {
			return nil, malformed(op, "activity %q: %v", name, err)
		}

		activity, err := wire.toActivity(op, name)
		if err != nil {
			return nil, err
		}

		if i, seen := index[name]; seen {
			catalog[i] = activity
			continue
		}
		index[name] = len(catalog)
		catalog = append(catalog, activity)
	}

	if _, err := dec.Token(); err != nil {
		return nil, malformed(op, "read end of object: %v", err)
	}

	return catalog, nil
}

// EncodeCatalog writes catalog as a JSON object keyed by activity name,
// keeping the slice order. Participants are always written as an array.
func EncodeCatalog(w io.Writer, catalog []Activity) error {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, a := range catalog {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(a.Name)
		if err != nil {
			return fmt.Errorf("encode activity name %q: %w", a.Name, err)
		}

		participants := a.Participants
		if participants == nil {
			participants = []string{}
		}
		value, err := json.Marshal(wireActivity{
			Description:     &a.Description,
			Schedule:        &a.Schedule,
			MaxParticipants: &a.MaxParticipants,
			Participants:    participants,
		})
		if err != nil {
			return fmt.Errorf("encode activity %q: %w", a.Name, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')
	_, err := w.Write(buf.Bytes())
	return err
}

// apiReply covers the success body of the signup endpoint and the error body of every endpoint.
type apiReply struct {
	Message *string         `json:"message"`
	Detail  json.RawMessage `json:"detail"`
}

// detailText returns the detail when it is a JSON string. Validation errors
// carry a list there, which has no single message to show.
func (r apiReply) detailText() string {
	if len(r.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(r.Detail, &s); err != nil {
		return ""
	}
	return s
}
