package otel

import (
	"context"
	"time"

	"github.com/morfeolab/morfeo/pkg/provider"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Completer interface {
	Observable
	provider.Completer
}

type observableCompleter struct {
	model    string
	provider string

	completer provider.Completer

	tokenUsage        metric.Int64Counter
	operationDuration metric.Float64Histogram
}

func NewCompleter(provider, model string, p provider.Completer) Completer {
	meter := otel.Meter(instrumentationName)

	tokenUsage, _ := meter.Int64Counter("gen_ai.client.token.usage")
	operationDuration, _ := meter.Float64Histogram("gen_ai.client.operation.duration", metric.WithUnit("s"))

	return &observableCompleter{
		completer: p,

		model:    model,
		provider: provider,

		tokenUsage:        tokenUsage,
		operationDuration: operationDuration,
	}
}

func (p *observableCompleter) otelSetup() {
}

func (p *observableCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "chat "+p.model)
	defer span.End()

	timestamp := time.Now()

	completion, err := p.completer.Complete(ctx, messages, options)

	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	attrs := metric.WithAttributes(
		attribute.String("gen_ai.provider.name", p.provider),
		attribute.String("gen_ai.request.model", p.model),
	)

	p.operationDuration.Record(ctx, time.Since(timestamp).Seconds(), attrs)

	if completion.Usage != nil {
		if completion.Usage.InputTokens > 0 {
			p.tokenUsage.Add(ctx, int64(completion.Usage.InputTokens),
				attrs,
				metric.WithAttributes(attribute.String("gen_ai.token.type", "input")),
			)
		}

		if completion.Usage.OutputTokens > 0 {
			p.tokenUsage.Add(ctx, int64(completion.Usage.OutputTokens),
				attrs,
				metric.WithAttributes(attribute.String("gen_ai.token.type", "output")),
			)
		}
	}

	return completion, nil
}
