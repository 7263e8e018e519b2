package llm

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration.
// The provider is wrapped with retry and, when configured, transcript
// logging middleware.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → timeout → retry → logging → base.
	// The timeout sits outermost so cfg.Timeout bounds the whole request,
	// retries included.
	wrapped := base
	if cfg.LogFile != "" {
		logged, logErr := WithLogging(base, cfg.LogFile)
		if logErr != nil {
			return nil, fmt.Errorf("open LLM transcript log: %w", logErr)
		}
		wrapped = logged
	}

	return WithTimeout(WithRetry(wrapped, cfg.Retry), cfg.Timeout), nil
}

// NewProviderFromEnv builds a provider from QUIZSTATION_* env vars; when no
// provider is explicitly selected it falls back to probing the standard
// API key env vars.
func NewProviderFromEnv(ctx context.Context) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		discovered.LogFile = cfg.LogFile
		cfg = discovered
	}
	return NewProvider(ctx, cfg)
}
