package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/morfeolab/morfeo/pkg/extractor"
	"github.com/morfeolab/morfeo/pkg/provider"
	"github.com/morfeolab/morfeo/pkg/structurer"
)

var _ structurer.Provider = (*Client)(nil)

// Client turns flattened report rows into standardized medical fields via a
// single schema-constrained completion for the whole batch.
type Client struct {
	completer provider.Completer

	maxTokens   int
	temperature float32
}

type Option func(*Client)

func WithMaxTokens(maxTokens int) Option {
	return func(c *Client) {
		c.maxTokens = maxTokens
	}
}

func New(completer provider.Completer, options ...Option) (*Client, error) {
	if completer == nil {
		return nil, errors.New("completer is required")
	}

	c := &Client{
		completer: completer,

		maxTokens:   4096,
		temperature: 0,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Structure(ctx context.Context, rows []extractor.Row) ([]structurer.Field, error) {
	if len(rows) == 0 {
		return []structurer.Field{}, nil
	}

	payload, err := json.Marshal(rows)

	if err != nil {
		return nil, err
	}

	messages := []provider.Message{
		provider.SystemMessage(systemPrompt),
		provider.UserMessage(userPrompt + string(payload)),
	}

	options := &provider.CompleteOptions{
		MaxTokens:   &c.maxTokens,
		Temperature: &c.temperature,

		Schema: responseSchema(),
	}

	completion, err := c.completer.Complete(ctx, messages, options)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", structurer.ErrStructuring, err)
	}

	fields, err := coerceFields(completion.Message.Text())

	if err != nil {
		return nil, err
	}

	slog.Info("rows structured", "rows", len(rows), "fields", len(fields))

	return fields, nil
}

// coerceFields validates the completion against the fixed schema shape. Any
// mismatch aborts the batch; there is no partial-success path.
func coerceFields(text string) ([]structurer.Field, error) {
	var probe map[string]json.RawMessage

	if err := json.Unmarshal([]byte(text), &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", structurer.ErrStructuring, err)
	}

	raw, ok := probe["medical_fields"]

	if !ok {
		return nil, fmt.Errorf("%w: response is missing medical_fields", structurer.ErrStructuring)
	}

	var fields []structurer.Field

	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", structurer.ErrStructuring, err)
	}

	for i := range fields {
		// Open range bounds are legitimately empty; the descriptive fields
		// are not, so an absent one becomes an explicit N/A.
		if fields[i].Name == "" {
			fields[i].Name = "N/A"
		}

		if fields[i].Value == "" {
			fields[i].Value = "N/A"
		}

		if fields[i].Unit == "" {
			fields[i].Unit = "N/A"
		}
	}

	return fields, nil
}
