package anthropic

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/morfeolab/morfeo/pkg/provider"

	"github.com/anthropics/anthropic-sdk-go"
)

var _ provider.Completer = (*Completer)(nil)

// Completer handles vision completions against the Anthropic Messages API.
// Schema-constrained output is not part of that API, so requests carrying a
// schema are rejected and must be routed to a schema-capable backend.
type Completer struct {
	*Config
	messages anthropic.MessageService
}

func NewCompleter(url, model string, options ...Option) (*Completer, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Completer{
		Config:   cfg,
		messages: anthropic.NewMessageService(cfg.Options()...),
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	if options.Schema != nil {
		return nil, errors.New("anthropic does not support schema-constrained completions")
	}

	req, err := c.convertMessageRequest(messages, options)

	if err != nil {
		return nil, err
	}

	message, err := c.messages.New(ctx, *req)

	if err != nil {
		return nil, err
	}

	result := &provider.Completion{
		ID:    message.ID,
		Model: c.model,

		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,
		},

		Usage: &provider.Usage{
			InputTokens:  int(message.Usage.InputTokens),
			OutputTokens: int(message.Usage.OutputTokens),
		},
	}

	for _, block := range message.Content {
		switch block := block.AsAny().(type) {
		case anthropic.TextBlock:
			result.Message.Content = append(result.Message.Content, provider.TextContent(block.Text))
		}
	}

	return result, nil
}

func (c *Completer) convertMessageRequest(input []provider.Message, options *provider.CompleteOptions) (*anthropic.MessageNewParams, error) {
	maxTokens := 4096

	if options.MaxTokens != nil {
		maxTokens = *options.MaxTokens
	}

	req := &anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(maxTokens),
	}

	if options.Temperature != nil {
		req.Temperature = anthropic.Float(float64(*options.Temperature))
	}

	for _, m := range input {
		switch m.Role {
		case provider.MessageRoleSystem:
			req.System = append(req.System, anthropic.TextBlockParam{Text: m.Text()})

		case provider.MessageRoleUser:
			var blocks []anthropic.ContentBlockParamUnion

			for _, c := range m.Content {
				if c.Text != "" {
					blocks = append(blocks, anthropic.NewTextBlock(c.Text))
				}

				if c.File != nil {
					switch c.File.ContentType {
					case "image/png", "image/jpeg", "image/webp", "image/gif":
						data := base64.StdEncoding.EncodeToString(c.File.Content)
						blocks = append(blocks, anthropic.NewImageBlockBase64(c.File.ContentType, data))

					default:
						return nil, errors.New("unsupported content type: " + c.File.ContentType)
					}
				}
			}

			req.Messages = append(req.Messages, anthropic.NewUserMessage(blocks...))

		case provider.MessageRoleAssistant:
			req.Messages = append(req.Messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Text())))
		}
	}

	return req, nil
}
