package oracle

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/cohere"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// ErrAdvisoryGenerationFailed is the only error the pipeline is allowed to
// abort a request with. Oracle failures of any kind surface as this error.
var ErrAdvisoryGenerationFailed = errors.New("advisory generation failed")

// Oracle is the external reasoning service, opaque to the pipeline. The call
// is synchronous from the pipeline's perspective; sampling parameters come
// from the prompt template, not from global configuration.
type Oracle interface {
	Invoke(ctx context.Context, systemText, userText string, maxTokens int, temperature float64) (string, error)
}

// Provider names a supported model backend.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
	ProviderClaude Provider = "claude"
	ProviderCohere Provider = "cohere"
	ProviderOllama Provider = "ollama"
)

// Options configures a connector.
type Options struct {
	Provider Provider `json:"provider"`
	APIKey   string   `json:"api_key"`
	BaseURL  string   `json:"base_url,omitempty"`
	Model    string   `json:"model,omitempty"`
}

// Connector is an Oracle backed by a langchain model.
type Connector struct {
	provider Provider
	llm      llms.Model
	options  Options
}

// NewConnector creates a connector for the configured provider.
func NewConnector(ctx context.Context, options Options) (*Connector, error) {
	var model llms.Model
	var err error

	log.Debug().
		Str("provider", string(options.Provider)).
		Str("model", options.Model).
		Msg("Creating oracle connector")

	switch options.Provider {
	case ProviderOpenAI:
		model, err = createOpenAIModel(options)
	case ProviderGemini:
		model, err = createGeminiModel(ctx, options)
	case ProviderClaude:
		model, err = createAnthropicModel(options)
	case ProviderCohere:
		model, err = createCohereModel(options)
	case ProviderOllama:
		model, err = createOllamaModel(options)
	default:
		return nil, fmt.Errorf("unsupported oracle provider: %s", options.Provider)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create model for provider %s: %w", options.Provider, err)
	}

	return &Connector{
		provider: options.Provider,
		llm:      model,
		options:  options,
	}, nil
}

// Invoke sends the system and user segments as a two-part chat message and
// returns the model's text reply.
func (c *Connector) Invoke(ctx context.Context, systemText, userText string, maxTokens int, temperature float64) (string, error) {
	content := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemText),
		llms.TextParts(llms.ChatMessageTypeHuman, userText),
	}

	callOptions := []llms.CallOption{
		llms.WithTemperature(temperature),
	}
	if maxTokens > 0 {
		callOptions = append(callOptions, llms.WithMaxTokens(maxTokens))
	}
	if c.options.Model != "" {
		callOptions = append(callOptions, llms.WithModel(c.options.Model))
	}

	resp, err := c.llm.GenerateContent(ctx, content, callOptions...)
	if err != nil {
		return "", fmt.Errorf("oracle call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("oracle returned no choices")
	}

	return resp.Choices[0].Content, nil
}

// ProviderName returns the provider of this connector.
func (c *Connector) ProviderName() Provider {
	return c.provider
}

func createOpenAIModel(options Options) (llms.Model, error) {
	opts := []openai.Option{
		openai.WithModel(options.Model),
		openai.WithToken(options.APIKey),
	}
	if options.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(options.BaseURL))
	}
	return openai.New(opts...)
}

func createGeminiModel(ctx context.Context, options Options) (llms.Model, error) {
	opts := []googleai.Option{
		googleai.WithAPIKey(options.APIKey),
	}
	return googleai.New(ctx, opts...)
}

func createAnthropicModel(options Options) (llms.Model, error) {
	opts := []anthropic.Option{
		anthropic.WithToken(options.APIKey),
		anthropic.WithModel(options.Model),
	}
	return anthropic.New(opts...)
}

func createCohereModel(options Options) (llms.Model, error) {
	opts := []cohere.Option{
		cohere.WithToken(options.APIKey),
		cohere.WithModel(options.Model),
	}
	return cohere.New(opts...)
}

func createOllamaModel(options Options) (llms.Model, error) {
	if options.BaseURL == "" {
		options.BaseURL = "http://localhost:11434"
	}
	opts := []ollama.Option{
		ollama.WithServerURL(options.BaseURL),
		ollama.WithModel(options.Model),
	}
	return ollama.New(opts...)
}
