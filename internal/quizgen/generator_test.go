package quizgen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizstation/internal/ingest"
	"github.com/abhisek/quizstation/internal/llm"
)

const goodOutput = `"Capital of France?","Paris","Lyon","Nice","Lille","Paris"
"2+2?","3","4","5","6","4"`

func TestFromTopic_ParsesProviderOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: goodOutput})
	gen := New(mock, DefaultConfig())

	res, err := gen.FromTopic(context.Background(), "arithmetic", 2)
	require.NoError(t, err)
	require.Len(t, res.Questions, 2)
	assert.Equal(t, "Capital of France?", res.Questions[0].Stem)
	assert.Empty(t, res.Warnings)
}

func TestFromTopic_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: goodOutput})
	gen := New(mock, DefaultConfig())

	_, err := gen.FromTopic(context.Background(), "the French Revolution", 7)
	require.NoError(t, err)
	require.Len(t, mock.Calls, 1)

	req := mock.Calls[0]
	assert.Equal(t, systemPrompt, req.System)
	require.Len(t, req.Messages, 1)
	assert.Contains(t, req.Messages[0].Content, "7 quiz questions")
	assert.Contains(t, req.Messages[0].Content, "the French Revolution")
	assert.Contains(t, req.Messages[0].Content, rowFormat)
}

func TestFromTopic_CountClampedAndDefaulted(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: goodOutput},
		llm.MockResponse{Content: goodOutput},
	)
	gen := New(mock, DefaultConfig())

	_, err := gen.FromTopic(context.Background(), "x", 0)
	require.NoError(t, err)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "5 quiz questions")

	_, err = gen.FromTopic(context.Background(), "x", 99)
	require.NoError(t, err)
	assert.Contains(t, mock.Calls[1].Messages[0].Content, "20 quiz questions")
}

func TestFromDocument_TruncatesLongDocuments(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: goodOutput})
	cfg := DefaultConfig()
	cfg.MaxDocumentChars = 100
	gen := New(mock, cfg)

	doc := strings.Repeat("z", 5000)
	_, err := gen.FromDocument(context.Background(), doc, 3)
	require.NoError(t, err)

	prompt := mock.Calls[0].Messages[0].Content
	assert.Contains(t, prompt, strings.Repeat("z", 100))
	assert.NotContains(t, prompt, strings.Repeat("z", 101))
}

func TestGenerate_ProviderErrorWrapped(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	gen := New(mock, DefaultConfig())

	_, err := gen.FromTopic(context.Background(), "x", 3)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestGenerate_EmptyContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "   \n  "})
	gen := New(mock, DefaultConfig())

	_, err := gen.FromTopic(context.Background(), "x", 3)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestGenerate_UnusableOutputIsEmptyResult(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "Sorry, I can't do that."})
	gen := New(mock, DefaultConfig())

	res, err := gen.FromTopic(context.Background(), "x", 3)
	assert.ErrorIs(t, err, ingest.ErrEmptyResult)
	assert.Len(t, res.Warnings, 1)
}

func TestGenerate_PartialOutputKeptWithWarnings(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: "Here you go:\n" + goodOutput,
	})
	gen := New(mock, DefaultConfig())

	res, err := gen.FromTopic(context.Background(), "x", 2)
	require.NoError(t, err)
	assert.Len(t, res.Questions, 2)
	assert.Len(t, res.Warnings, 1)
}
