package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// GroqClient talks to Groq's OpenAI-compatible chat completions endpoint.
type GroqClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewGroqClient(apiKey string) *GroqClient {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(groqBaseURL),
	)
	return &GroqClient{
		client:    &client,
		model:     openai.ChatModel("llama-3.3-70b-versatile"),
		modelName: "llama-3.3-70b-versatile",
	}
}

func (c *GroqClient) Name() string {
	return "groq/" + c.modelName
}

func (c *GroqClient) Summarize(text string) (string, error) {
	userPrompt := fmt.Sprintf(summarizeUserPrompt, truncate(text, maxArticleChars))

	content, err := c.complete(summarizeSystemPrompt, userPrompt, 0.3, 200)
	if err != nil {
		return "", err
	}
	return content, nil
}

func (c *GroqClient) ExtractCompanies(text string) ([]string, error) {
	userPrompt := fmt.Sprintf(extractUserPrompt, truncate(text, maxArticleChars))

	content, err := c.complete(extractSystemPrompt, userPrompt, 0.1, 100)
	if err != nil {
		return nil, err
	}
	return parseCompanyList(content), nil
}

func (c *GroqClient) ResolveTicker(company string) (string, error) {
	userPrompt := fmt.Sprintf(tickerUserPrompt, company)

	content, err := c.complete(tickerSystemPrompt, userPrompt, 0.1, 10)
	if err != nil {
		return "", err
	}
	return parseTicker(content), nil
}

func (c *GroqClient) complete(system, user string, temperature float64, maxTokens int64) (string, error) {
	resp, err := c.client.Chat.Completions.New(context.Background(), openai.ChatCompletionNewParams{
		Model:       c.model,
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})

	if err != nil {
		return "", fmt.Errorf("groq API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from groq")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
