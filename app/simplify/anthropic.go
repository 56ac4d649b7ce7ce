package simplify

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const DefaultAnthropicModel = "claude-haiku-4-5"

type AnthropicGenerator struct {
	client    *anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

var _ Generator = (*AnthropicGenerator)(nil)

func NewAnthropicGenerator(apiKey, modelName string, opts ...option.RequestOption) *AnthropicGenerator {
	if modelName == "" {
		modelName = DefaultAnthropicModel
	}

	client := anthropic.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)
	return &AnthropicGenerator{
		client:    &client,
		model:     anthropic.Model(modelName),
		maxTokens: 400,
	}
}

func (g *AnthropicGenerator) Name() string {
	return "anthropic/" + string(g.model)
}

func (g *AnthropicGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     g.model,
		MaxTokens: g.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	var b strings.Builder
	for _, block := range resp.Content {
		b.WriteString(block.Text)
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("no response from anthropic")
	}

	return b.String(), nil
}
