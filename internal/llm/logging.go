package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// transcriptEntry is one JSON line in the transcript file.
type transcriptEntry struct {
	Time         time.Time `json:"time"`
	Purpose      string    `json:"purpose"`
	Model        string    `json:"model"`
	System       string    `json:"system,omitempty"`
	Prompt       string    `json:"prompt"`
	Response     string    `json:"response,omitempty"`
	Error        string    `json:"error,omitempty"`
	LatencyMs    int64     `json:"latency_ms"`
	InputTokens  int       `json:"input_tokens,omitempty"`
	OutputTokens int       `json:"output_tokens,omitempty"`
}

// LoggingProvider is a decorator that appends every request/response pair
// to a JSON-lines transcript file. Logging failures never fail the request.
type LoggingProvider struct {
	inner Provider
	mu    sync.Mutex
	file  *os.File
}

// WithLogging wraps a Provider with transcript logging to the given path.
func WithLogging(p Provider, path string) (*LoggingProvider, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &LoggingProvider{inner: p, file: f}, nil
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	entry := transcriptEntry{
		Time:      start,
		Purpose:   PurposeFrom(ctx),
		Model:     l.inner.ModelID(),
		System:    req.System,
		Prompt:    lastUserMessage(req),
		LatencyMs: time.Since(start).Milliseconds(),
	}
	if resp != nil {
		entry.Response = resp.Content
		entry.Model = resp.Model
		entry.InputTokens = resp.Usage.InputTokens
		entry.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		entry.Error = err.Error()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if data, mErr := json.Marshal(entry); mErr == nil {
		if _, wErr := fmt.Fprintln(l.file, string(data)); wErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to write LLM transcript: %v\n", wErr)
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// Close closes the transcript file.
func (l *LoggingProvider) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

func lastUserMessage(req Request) string {
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == RoleUser {
			return req.Messages[i].Content
		}
	}
	return ""
}
