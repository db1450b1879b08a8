package summarize

import (
	"context"
	"fmt"
	neturl "net/url"
	"strings"

	anthropicclient "github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/aisumm/core/internal/config"
	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
)

const (
	maxCompletionTokens   = 200
	completionTemperature = 0.5

	defaultEndpoint = "https://api.together.xyz"
	defaultModel    = "meta-llama/Llama-3.3-70B-Instruct-Turbo-Free"
)

// ModelClient sends text to a language model and returns the raw completion.
type ModelClient interface {
	Complete(ctx context.Context, text string) (string, error)
}

// NewModelClient builds a client for the configured provider type. The
// default is an OpenAI-compatible chat-completions endpoint (Together).
func NewModelClient(cfg config.AIProvider) (ModelClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("model provider api key is empty")
	}

	switch normalizeProviderType(cfg.Type) {
	case "anthropic":
		return newAnthropicClient(cfg), nil
	case "", "openai", "openai-compatible", "openaicompatible", "together":
		return newOpenAIClient(cfg), nil
	default:
		return nil, fmt.Errorf("unknown model provider type %q", cfg.Type)
	}
}

func normalizeProviderType(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	t = strings.ReplaceAll(t, "_", "-")
	t = strings.ReplaceAll(t, " ", "")
	return t
}

type openAIClient struct {
	client openaiclient.Client
	model  string
}

func newOpenAIClient(cfg config.AIProvider) *openAIClient {
	endpoint := cfg.Endpoint
	if strings.TrimSpace(endpoint) == "" {
		endpoint = defaultEndpoint
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}

	client := openaiclient.NewClient(
		openaioption.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
		openaioption.WithBaseURL(normalizeOpenAIBaseURL(endpoint)),
		openaioption.WithMaxRetries(0),
	)
	return &openAIClient{client: client, model: model}
}

func (c *openAIClient) Complete(ctx context.Context, text string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openaiclient.ChatCompletionNewParams{
		Model: openaiclient.ChatModel(c.model),
		Messages: []openaiclient.ChatCompletionMessageParamUnion{
			openaiclient.SystemMessage(summarySystemPrompt),
			openaiclient.UserMessage(buildSummaryPrompt(text)),
		},
		MaxTokens:   openaiclient.Int(maxCompletionTokens),
		Temperature: openaiclient.Float(completionTemperature),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelCall, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", ErrModelCall)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

type anthropicModelClient struct {
	client anthropicclient.Client
	model  string
}

func newAnthropicClient(cfg config.AIProvider) *anthropicModelClient {
	opts := []anthropicoption.RequestOption{
		anthropicoption.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
		anthropicoption.WithMaxRetries(0),
	}
	if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
		opts = append(opts, anthropicoption.WithBaseURL(strings.TrimRight(endpoint, "/")))
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "claude-haiku-4-5-20251001"
	}
	return &anthropicModelClient{client: anthropicclient.NewClient(opts...), model: model}
}

func (c *anthropicModelClient) Complete(ctx context.Context, text string) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropicclient.MessageNewParams{
		Model:       anthropicclient.Model(c.model),
		MaxTokens:   maxCompletionTokens,
		Temperature: anthropicclient.Float(completionTemperature),
		System: []anthropicclient.TextBlockParam{
			{Text: summarySystemPrompt},
		},
		Messages: []anthropicclient.MessageParam{
			anthropicclient.NewUserMessage(anthropicclient.NewTextBlock(buildSummaryPrompt(text))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelCall, err)
	}

	var full strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			full.WriteString(block.Text)
		}
	}
	result := strings.TrimSpace(full.String())
	if result == "" {
		return "", fmt.Errorf("%w: empty completion", ErrModelCall)
	}
	return result, nil
}

// normalizeOpenAIBaseURL appends /v1 when the endpoint lacks it, so both
// "https://api.together.xyz" and ".../v1" configs work.
func normalizeOpenAIBaseURL(raw string) string {
	base := strings.TrimSpace(raw)
	parsed, err := neturl.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return strings.TrimRight(base, "/")
	}

	path := strings.TrimRight(parsed.Path, "/")
	if !strings.HasSuffix(path, "/v1") {
		path += "/v1"
	}
	parsed.Path = path
	return strings.TrimRight(parsed.String(), "/")
}
