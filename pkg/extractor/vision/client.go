package vision

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/morfeolab/morfeo/pkg/document"
	"github.com/morfeolab/morfeo/pkg/extractor"
	"github.com/morfeolab/morfeo/pkg/provider"
)

var _ extractor.Provider = (*Client)(nil)

var (
	// ErrTimeout marks an extraction call that exceeded its time budget.
	ErrTimeout = errors.New("vision extraction timed out")

	// ErrUpstream marks a failed call to the vision completion service.
	ErrUpstream = errors.New("vision extraction failed")
)

// Client sends report page images to a vision-capable completer and recovers
// a table set from the response text. One batched request carries all pages;
// no retry is attempted on failure.
type Client struct {
	completer provider.Completer

	timeout     time.Duration
	maxTokens   int
	temperature float32
}

type Option func(*Client)

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

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

		timeout:     180 * time.Second,
		maxTokens:   4096,
		temperature: 0,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) ExtractTables(ctx context.Context, pages []document.Encoded) (*extractor.TableSet, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	content := []provider.Content{
		provider.TextContent(userPrompt),
	}

	for _, page := range pages {
		content = append(content, provider.FileContent(&provider.File{
			Content:     page.Content,
			ContentType: page.ContentType,
		}))
	}

	messages := []provider.Message{
		provider.SystemMessage(systemPrompt),
		{
			Role:    provider.MessageRoleUser,
			Content: content,
		},
	}

	options := &provider.CompleteOptions{
		MaxTokens:   &c.maxTokens,
		Temperature: &c.temperature,
	}

	completion, err := c.completer.Complete(ctx, messages, options)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", ErrTimeout, c.timeout)
		}

		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	set := extractor.ParseResponse(completion.Message.Text())
	extractor.Normalize(set)

	slog.Info("tables extracted", "pages", len(pages), "tables", len(set.Tables))

	return set, nil
}
