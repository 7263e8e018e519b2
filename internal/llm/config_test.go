package llm

import (
	"testing"
)

// clearProviderEnv blanks every env var the config layer reads so tests
// are insulated from the developer's shell.
func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"QUIZSTATION_LLM_PROVIDER",
		"QUIZSTATION_ANTHROPIC_API_KEY", "QUIZSTATION_ANTHROPIC_MODEL",
		"QUIZSTATION_OPENAI_API_KEY", "QUIZSTATION_OPENAI_MODEL", "QUIZSTATION_OPENAI_BASE_URL",
		"QUIZSTATION_GEMINI_API_KEY", "QUIZSTATION_GEMINI_MODEL",
		"QUIZSTATION_OPENROUTER_API_KEY", "QUIZSTATION_OPENROUTER_MODEL",
		"QUIZSTATION_LLM_LOG",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	clearProviderEnv(t)

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d, want 3", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("QUIZSTATION_LLM_PROVIDER", "anthropic")
	t.Setenv("QUIZSTATION_ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("QUIZSTATION_ANTHROPIC_MODEL", "claude-custom")
	t.Setenv("QUIZSTATION_LLM_LOG", "/tmp/transcript.jsonl")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("Provider = %q, want anthropic", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "sk-test" {
		t.Errorf("APIKey = %q", cfg.Anthropic.APIKey)
	}
	if cfg.Anthropic.Model != "claude-custom" {
		t.Errorf("Model = %q", cfg.Anthropic.Model)
	}
	if cfg.LogFile != "/tmp/transcript.jsonl" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
}

func TestValidate_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openai"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing API key")
	}

	cfg.OpenAI.APIKey = "sk-test"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "chatbot9000"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestValidate_MockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDiscoverConfig_PriorityOrder(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-anthropic")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai (higher priority than anthropic)", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-openai" {
		t.Errorf("APIKey = %q", cfg.OpenAI.APIKey)
	}
}

func TestDiscoverConfig_NothingSet(t *testing.T) {
	clearProviderEnv(t)

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected discovery to fail with no keys set")
	}
}
