package vision

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/morfeolab/morfeo/pkg/document"
	"github.com/morfeolab/morfeo/pkg/provider"

	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	text string
	err  error

	messages []provider.Message
	options  *provider.CompleteOptions
}

func (f *fakeCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	f.messages = messages
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

type blockingCompleter struct{}

func (blockingCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func testPages() []document.Encoded {
	return []document.Encoded{
		{ContentType: "image/png", Content: []byte("fake-png")},
	}
}

func TestExtractTables(t *testing.T) {
	completer := &fakeCompleter{
		text: "```json\n{\"tables\": [{\"page\": 1, \"headers\": [\"Esame\", \"Risultato\"], \"data\": [[\" FOLATI \", \"3,15\"]]}]}\n```",
	}

	client, err := New(completer)
	require.NoError(t, err)

	set, err := client.ExtractTables(context.Background(), testPages())
	require.NoError(t, err)

	require.Len(t, set.Tables, 1)
	require.Equal(t, [][]string{{"FOLATI", "3,15"}}, set.Tables[0].Data)

	// one image part per page, plus the instruction text
	require.Len(t, completer.messages, 2)
	require.Len(t, completer.messages[1].Content, 2)
	require.NotNil(t, completer.messages[1].Content[1].File)

	require.Equal(t, 4096, *completer.options.MaxTokens)
	require.Equal(t, float32(0), *completer.options.Temperature)
}

func TestExtractTablesGarbageResponse(t *testing.T) {
	completer := &fakeCompleter{
		text: "I could not find any tables in these images.",
	}

	client, err := New(completer)
	require.NoError(t, err)

	set, err := client.ExtractTables(context.Background(), testPages())
	require.NoError(t, err)

	require.Empty(t, set.Tables)
}

func TestExtractTablesTimeout(t *testing.T) {
	client, err := New(blockingCompleter{}, WithTimeout(10*time.Millisecond))
	require.NoError(t, err)

	_, err = client.ExtractTables(context.Background(), testPages())

	require.ErrorIs(t, err, ErrTimeout)
}

func TestExtractTablesUpstreamError(t *testing.T) {
	completer := &fakeCompleter{
		err: errors.New("model overloaded"),
	}

	client, err := New(completer)
	require.NoError(t, err)

	_, err = client.ExtractTables(context.Background(), testPages())

	require.ErrorIs(t, err, ErrUpstream)
	require.ErrorContains(t, err, "model overloaded")
}

func TestNewRequiresCompleter(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}
