package anthropic

import (
	"context"
	"testing"

	"github.com/morfeolab/morfeo/pkg/provider"

	"github.com/stretchr/testify/require"
)

func TestCompleteRejectsSchema(t *testing.T) {
	c, err := NewCompleter("", "claude-sonnet-4-5")
	require.NoError(t, err)

	messages := []provider.Message{
		provider.UserMessage("structure this"),
	}

	_, err = c.Complete(context.Background(), messages, &provider.CompleteOptions{
		Schema: &provider.Schema{
			Name:   "medical_data",
			Schema: map[string]any{"type": "object"},
		},
	})

	require.ErrorContains(t, err, "schema")
}
