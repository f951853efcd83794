package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/morfeolab/morfeo/pkg/extractor"
	"github.com/morfeolab/morfeo/pkg/provider"
	"github.com/morfeolab/morfeo/pkg/structurer"

	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	text string
	err  error

	options *provider.CompleteOptions
}

func (f *fakeCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	f.options = options

	if f.err != nil {
		return nil, f.err
	}

	return &provider.Completion{
		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,

			Content: []provider.Content{
				{
					Text: f.text,
				},
			},
		},
	}, nil
}

func testRows() []extractor.Row {
	return []extractor.Row{
		{
			"esame":               "FOLATI",
			"risultato":           "3,15",
			"unitaDiMisura":       "ng/mL",
			"valoriDiRiferimento": "3,1 - 20,5",
		},
	}
}

func TestStructure(t *testing.T) {
	completer := &fakeCompleter{
		text: `{"medical_fields": [{"field_name": "FOLATI", "field_value": "3.15", "field_unit_of_measure": "ng/mL", "reference_range_low": "3.1", "reference_range_high": "20.5"}]}`,
	}

	client, err := New(completer)
	require.NoError(t, err)

	fields, err := client.Structure(context.Background(), testRows())
	require.NoError(t, err)

	require.Equal(t, []structurer.Field{
		{
			Name:  "FOLATI",
			Value: "3.15",
			Unit:  "ng/mL",

			RangeLow:  "3.1",
			RangeHigh: "20.5",
		},
	}, fields)

	require.NotNil(t, completer.options.Schema)
	require.Equal(t, "medical_data", completer.options.Schema.Name)
}

func TestStructureEmptyRows(t *testing.T) {
	completer := &fakeCompleter{}

	client, err := New(completer)
	require.NoError(t, err)

	fields, err := client.Structure(context.Background(), nil)
	require.NoError(t, err)

	require.Empty(t, fields)
	require.Nil(t, completer.options, "no completion expected for empty input")
}

func TestStructureBackfillsMissingFields(t *testing.T) {
	completer := &fakeCompleter{
		text: `{"medical_fields": [{"field_name": "ESAME URINE", "field_value": "", "field_unit_of_measure": "", "reference_range_low": "", "reference_range_high": ""}]}`,
	}

	client, err := New(completer)
	require.NoError(t, err)

	fields, err := client.Structure(context.Background(), testRows())
	require.NoError(t, err)

	require.Equal(t, "N/A", fields[0].Value)
	require.Equal(t, "N/A", fields[0].Unit)

	// open range bounds stay empty
	require.Equal(t, "", fields[0].RangeLow)
	require.Equal(t, "", fields[0].RangeHigh)
}

func TestStructureCompletionError(t *testing.T) {
	completer := &fakeCompleter{
		err: errors.New("model overloaded"),
	}

	client, err := New(completer)
	require.NoError(t, err)

	_, err = client.Structure(context.Background(), testRows())

	require.ErrorIs(t, err, structurer.ErrStructuring)
}

func TestStructureInvalidResponse(t *testing.T) {
	for _, text := range []string{
		"not json at all",
		`{"wrong_key": []}`,
		`{"medical_fields": "not a list"}`,
	} {
		completer := &fakeCompleter{text: text}

		client, err := New(completer)
		require.NoError(t, err)

		_, err = client.Structure(context.Background(), testRows())

		require.ErrorIs(t, err, structurer.ErrStructuring, "response %q", text)
	}
}
