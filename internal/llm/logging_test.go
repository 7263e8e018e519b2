package llm

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func readEntries(t *testing.T, path string) []transcriptEntry {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open transcript: %v", err)
	}
	defer f.Close()

	var entries []transcriptEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e transcriptEntry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatalf("bad transcript line %q: %v", scanner.Text(), err)
		}
		entries = append(entries, e)
	}
	return entries
}

func TestLogging_RecordsRequestAndResponse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.jsonl")

	mock := NewMockProvider(MockResponse{
		Content: "the answer",
		Usage:   Usage{InputTokens: 10, OutputTokens: 20},
	})
	p, err := WithLogging(mock, path)
	if err != nil {
		t.Fatalf("WithLogging: %v", err)
	}
	defer p.Close()

	ctx := WithPurpose(context.Background(), "quiz-from-topic")
	req := Request{
		System: "be helpful",
		Messages: []Message{
			{Role: RoleUser, Content: "make a quiz"},
		},
	}
	if _, err := p.Generate(ctx, req); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	entries := readEntries(t, path)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Purpose != "quiz-from-topic" {
		t.Errorf("Purpose = %q", e.Purpose)
	}
	if e.Prompt != "make a quiz" {
		t.Errorf("Prompt = %q", e.Prompt)
	}
	if e.Response != "the answer" {
		t.Errorf("Response = %q", e.Response)
	}
	if e.InputTokens != 10 || e.OutputTokens != 20 {
		t.Errorf("tokens = %d/%d, want 10/20", e.InputTokens, e.OutputTokens)
	}
	if e.Error != "" {
		t.Errorf("Error = %q, want empty", e.Error)
	}
}

func TestLogging_RecordsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.jsonl")

	mock := NewMockProvider(MockResponse{
		Err: &ErrProviderUnavailable{Err: errors.New("down")},
	})
	p, err := WithLogging(mock, path)
	if err != nil {
		t.Fatalf("WithLogging: %v", err)
	}
	defer p.Close()

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error to pass through")
	}

	entries := readEntries(t, path)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Error == "" {
		t.Error("Error is empty, want the provider error")
	}
	if entries[0].Purpose != "unknown" {
		t.Errorf("Purpose = %q, want unknown", entries[0].Purpose)
	}
}

func TestLogging_AppendsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.jsonl")

	for i := 0; i < 2; i++ {
		mock := NewMockProvider(MockResponse{Content: "ok"})
		p, err := WithLogging(mock, path)
		if err != nil {
			t.Fatalf("WithLogging: %v", err)
		}
		if _, err := p.Generate(context.Background(), Request{}); err != nil {
			t.Fatalf("Generate: %v", err)
		}
		p.Close()
	}

	if entries := readEntries(t, path); len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
}
