package activities

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeCatalog_KeepsResponseOrder(t *testing.T) {
	body := `{
		"Programming Class": {"description": "Learn programming", "schedule": "Tuesdays", "max_participants": 20, "participants": []},
		"Chess Club": {"description": "Learn chess", "schedule": "Fridays", "max_participants": 10, "participants": ["a@x.com"]},
		"Art Studio": {"description": "Paint", "schedule": "Mondays", "max_participants": 5}
	}`

	catalog, err := DecodeCatalog(strings.NewReader(body))
	require.NoError(t, err)
	require.Equal(t, []string{"Programming Class", "Chess Club", "Art Studio"}, Names(catalog))

	chess := catalog[1]
	require.Equal(t, "Learn chess", chess.Description)
	require.Equal(t, "Fridays", chess.Schedule)
	require.Equal(t, 10, chess.MaxParticipants)
	require.Equal(t, []string{"a@x.com"}, chess.Participants)
	require.Equal(t, 9, chess.SpotsLeft())

	art := catalog[2]
	require.NotNil(t, art.Participants)
	require.Empty(t, art.Participants)
	require.Equal(t, 5, art.SpotsLeft())
}

func TestDecodeCatalog_NullParticipantsIsEmpty(t *testing.T) {
	body := `{"Gym": {"description": "d", "schedule": "s", "max_participants": 3, "participants": null}}`

	catalog, err := DecodeCatalog(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	require.Empty(t, catalog[0].Participants)
	require.Equal(t, 3, catalog[0].SpotsLeft())
}

func TestDecodeCatalog_EmptyObject(t *testing.T) {
	catalog, err := DecodeCatalog(strings.NewReader(`{}`))
	require.NoError(t, err)
	require.Empty(t, catalog)
}

func TestDecodeCatalog_RepeatedKeyKeepsFirstPosition(t *testing.T) {
	body := `{
		"A": {"description": "old", "schedule": "s", "max_participants": 1},
		"B": {"description": "b", "schedule": "s", "max_participants": 1},
		"A": {"description": "new", "schedule": "s", "max_participants": 1}
	}`

	catalog, err := DecodeCatalog(strings.NewReader(body))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, Names(catalog))
	require.Equal(t, "new", catalog[0].Description)
}

func TestDecodeCatalog_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":                  `<html>oops</html>`,
		"array instead of object":   `[]`,
		"missing description":       `{"A": {"schedule": "s", "max_participants": 1}}`,
		"missing schedule":          `{"A": {"description": "d", "max_participants": 1}}`,
		"missing max_participants":  `{"A": {"description": "d", "schedule": "s"}}`,
		"fractional capacity":       `{"A": {"description": "d", "schedule": "s", "max_participants": 1.5}}`,
		"string capacity":           `{"A": {"description": "d", "schedule": "s", "max_participants": "10"}}`,
		"participants not strings":  `{"A": {"description": "d", "schedule": "s", "max_participants": 1, "participants": [1]}}`,
		"activity is not an object": `{"A": 42}`,
		"truncated":                 `{"A": {"description": "d"`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeCatalog(strings.NewReader(body))
			require.Error(t, err)
			require.Equal(t, KindMalformed, KindOf(err))
			require.True(t, errors.Is(err, ErrMalformedResponse))
		})
	}
}

func TestEncodeCatalog_DecodesBackInOrder(t *testing.T) {
	catalog := []Activity{
		{Name: "Zumba", Description: "Dance", Schedule: "Mon", MaxParticipants: 2},
		{Name: "Art", Description: "Paint", Schedule: "Tue", MaxParticipants: 4, Participants: []string{"x@y.z"}},
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeCatalog(&buf, catalog))
	require.Contains(t, buf.String(), `"participants":[]`)

	decoded, err := DecodeCatalog(&buf)
	require.NoError(t, err)
	require.Equal(t, []string{"Zumba", "Art"}, Names(decoded))
	require.Equal(t, []string{"x@y.z"}, decoded[1].Participants)
}

func TestActivity_SpotsLeftClampsOverCapacity(t *testing.T) {
	a := Activity{MaxParticipants: 1, Participants: []string{"a", "b", "c"}}

	require.Equal(t, 0, a.SpotsLeft())
	require.True(t, a.OverCapacity())

	a.MaxParticipants = 3
	require.Equal(t, 0, a.SpotsLeft())
	require.False(t, a.OverCapacity())
}
