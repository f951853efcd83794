package extractor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	set := ParseResponse(`{"tables": [{"page": 1, "headers": ["Esame", "Risultato"], "data": [["FOLATI", "3,15"]]}]}`)

	require.Len(t, set.Tables, 1)
	require.Equal(t, 1, set.Tables[0].Page)
	require.Equal(t, []string{"Esame", "Risultato"}, set.Tables[0].Headers)
	require.Equal(t, [][]string{{"FOLATI", "3,15"}}, set.Tables[0].Data)
}

func TestParseResponseFenced(t *testing.T) {
	text := "```json\n{\"tables\": [{\"page\": 2, \"headers\": [\"A\"], \"data\": [[\"1\"]]}]}\n```"

	set := ParseResponse(text)

	require.Len(t, set.Tables, 1)
	require.Equal(t, 2, set.Tables[0].Page)
}

func TestParseResponseEmbedded(t *testing.T) {
	text := `Here are the tables I found: {"tables": [{"page": 1, "headers": ["A"], "data": [["x"]]}]} Hope this helps!`

	set := ParseResponse(text)

	require.Len(t, set.Tables, 1)
	require.Equal(t, [][]string{{"x"}}, set.Tables[0].Data)
}

func TestParseResponseBareTable(t *testing.T) {
	set := ParseResponse(`{"page": 3, "headers": ["A", "B"], "data": [["1", "2"]]}`)

	require.Len(t, set.Tables, 1)
	require.Equal(t, 3, set.Tables[0].Page)
}

func TestParseResponseInvalid(t *testing.T) {
	for _, text := range []string{
		"",
		"no tables on this page",
		"{broken json",
		`["not", "an", "object"]`,
	} {
		set := ParseResponse(text)

		require.NotNil(t, set)
		require.Empty(t, set.Tables)
	}
}

func TestParseResponseCoercesCells(t *testing.T) {
	set := ParseResponse(`{"tables": [{"page": 1, "headers": ["Esame", "Valore"], "data": [["WBC", 6.2], ["RBC", null], ["OK", true]]}]}`)

	require.Len(t, set.Tables, 1)
	require.Equal(t, [][]string{
		{"WBC", "6.2"},
		{"RBC", ""},
		{"OK", "true"},
	}, set.Tables[0].Data)
}

func TestParseResponseDropsNonObjectTables(t *testing.T) {
	set := ParseResponse(`{"tables": [{"page": 1, "headers": ["A"], "data": [["1"]]}, "junk", 42]}`)

	require.Len(t, set.Tables, 1)
}
