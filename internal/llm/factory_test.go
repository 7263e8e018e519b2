package llm

import (
	"context"
	"testing"
)

func TestNewProvider_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	p, err := NewProvider(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("ModelID = %q, want mock", p.ModelID())
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "nope"

	if _, err := NewProvider(context.Background(), cfg); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNewProviderFromEnv_NoKeysAnywhere(t *testing.T) {
	clearProviderEnv(t)

	if _, err := NewProviderFromEnv(context.Background()); err == nil {
		t.Fatal("expected error with no provider configured")
	}
}

func TestNewProviderFromEnv_FallsBackToDiscovery(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")

	p, err := NewProviderFromEnv(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil {
		t.Fatal("provider is nil")
	}
}
