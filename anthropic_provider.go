package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/charmbracelet/log"
)

// AnthropicProvider implements InsightProvider for Anthropic's Claude API.
type AnthropicProvider struct {
	client *anthropic.Client
}

// NewAnthropicProvider creates a new Anthropic AI provider.
func NewAnthropicProvider(apiKey string) *AnthropicProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &AnthropicProvider{
		client: &client,
	}
}

// Summarize implements InsightProvider interface.
func (p *AnthropicProvider) Summarize(ctx context.Context, digest string) (string, error) {
	log.Debug("sending insight request to Anthropic", "model", insightModel)

	response, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     insightModel,
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildInsightPrompt(digest))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call Anthropic API: %w", err)
	}

	var responseText string
	if len(response.Content) > 0 {
		responseText = strings.TrimSpace(response.Content[0].Text)
	}

	if responseText == "" {
		return "", errors.New("empty response from Anthropic API")
	}

	return responseText, nil
}

func buildInsightPrompt(digest string) string {
	return fmt.Sprintf(`You are a personal finance assistant for a household in Sri Lanka.
Review the following summary of their finances and write a short commentary.

%s

Guidelines:
- Respond in markdown with at most five bullet points
- Mention budget pressure if more than 80%% of the budget is spent
- Comment on holdings performance per owner where it stands out
- Do not invent figures that are not in the summary
- Keep it under 150 words`, digest)
}
