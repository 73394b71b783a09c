package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicClient struct {
	client    *anthropic.Client
	model     anthropic.Model
	modelName string
}

func NewAnthropicClient(apiKey string) *AnthropicClient {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicClient{
		client:    &client,
		model:     anthropic.ModelClaudeHaiku4_5,
		modelName: "claude-4.5-haiku",
	}
}

func (c *AnthropicClient) Name() string {
	return "anthropic/" + c.modelName
}

func (c *AnthropicClient) Summarize(text string) (string, error) {
	userPrompt := fmt.Sprintf(summarizeUserPrompt, truncate(text, maxArticleChars))

	content, err := c.complete(summarizeSystemPrompt, userPrompt, 200)
	if err != nil {
		return "", err
	}
	return content, nil
}

func (c *AnthropicClient) ExtractCompanies(text string) ([]string, error) {
	userPrompt := fmt.Sprintf(extractUserPrompt, truncate(text, maxArticleChars))

	content, err := c.complete(extractSystemPrompt, userPrompt, 100)
	if err != nil {
		return nil, err
	}
	return parseCompanyList(content), nil
}

func (c *AnthropicClient) ResolveTicker(company string) (string, error) {
	userPrompt := fmt.Sprintf(tickerUserPrompt, company)

	content, err := c.complete(tickerSystemPrompt, userPrompt, 10)
	if err != nil {
		return "", err
	}
	return parseTicker(content), nil
}

func (c *AnthropicClient) complete(system, user string, maxTokens int64) (string, error) {
	resp, err := c.client.Messages.New(context.Background(), anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})

	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("no response from anthropic")
	}

	return strings.TrimSpace(resp.Content[0].Text), nil
}
