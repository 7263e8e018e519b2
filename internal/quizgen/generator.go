package quizgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/quizstation/internal/ingest"
	"github.com/abhisek/quizstation/internal/llm"
)

// ErrUpstreamUnavailable indicates the generation collaborator returned no
// usable output at all. Callers treat it the same as ingest.ErrEmptyResult:
// the attempt fails, no session is created, any prior session is untouched.
var ErrUpstreamUnavailable = errors.New("quiz generator returned no output")

// Generator produces quiz questions from a topic or document text by
// prompting an LLM for pseudo-CSV lines and feeding the raw response to
// the generated-text ingestion adapter.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// FromTopic generates n questions about a free-text topic.
func (g *Generator) FromTopic(ctx context.Context, topic string, n int) (ingest.Result, error) {
	ctx = llm.WithPurpose(ctx, "quiz-from-topic")
	n = g.config.clampCount(n)
	return g.generate(ctx, buildTopicPrompt(topic, n))
}

// FromDocument generates n questions grounded in extracted document text.
func (g *Generator) FromDocument(ctx context.Context, documentText string, n int) (ingest.Result, error) {
	ctx = llm.WithPurpose(ctx, "quiz-from-document")
	n = g.config.clampCount(n)
	return g.generate(ctx, buildDocumentPrompt(documentText, n, g.config.MaxDocumentChars))
}

// generate runs one provider call and parses the raw text it returns.
// Per-line parse failures surface as warnings in the Result; only a fully
// unusable response is an error.
func (g *Generator) generate(ctx context.Context, userMsg string) (ingest.Result, error) {
	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return ingest.Result{}, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return ingest.Result{}, ErrUpstreamUnavailable
	}

	return ingest.ParseGenerated(resp.Content)
}
