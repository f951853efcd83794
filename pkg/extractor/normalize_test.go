package extractor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	set := &TableSet{
		Tables: []Table{
			{
				Page: 1,

				Headers: []string{" Esame ", "", "Valore"},

				Data: [][]string{
					{" FOLATI ", " 3,15 "},
					{"", "  "},
					{"WBC", "6.2"},
				},
			},
		},
	}

	Normalize(set)

	require.Equal(t, []string{"Esame", "Valore"}, set.Tables[0].Headers)
	require.Equal(t, [][]string{
		{"FOLATI", "3,15"},
		{"WBC", "6.2"},
	}, set.Tables[0].Data)
}

func TestNormalizeEmptyTable(t *testing.T) {
	set := &TableSet{
		Tables: []Table{
			{
				Page: 1,

				Headers: []string{"A"},
				Data:    [][]string{{" "}, {""}},
			},
		},
	}

	Normalize(set)

	require.Empty(t, set.Tables[0].Data)
}
