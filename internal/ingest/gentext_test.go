package ingest

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/abhisek/quizstation/internal/question"
)

func genLine(stem string) string {
	return `"` + stem + `","a","b","c","d","a"`
}

func TestParseGenerated_WellFormedLines(t *testing.T) {
	text := strings.Join([]string{
		`"Capital of France?","Paris","Lyon","Nice","Lille","Paris"`,
		`"2+2?","3","4","5","6","4"`,
	}, "\n")

	res, err := ParseGenerated(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(res.Questions))
	}
	if len(res.Warnings) != 0 {
		t.Errorf("got %d warnings, want 0", len(res.Warnings))
	}

	q := res.Questions[0]
	if q.Stem != "Capital of France?" {
		t.Errorf("Stem = %q", q.Stem)
	}
	want := []string{"Paris", "Lyon", "Nice", "Lille"}
	if !reflect.DeepEqual(q.Options, want) {
		t.Errorf("Options = %v, want %v", q.Options, want)
	}
}

func TestParseGenerated_MalformedLinesDroppedWithWarnings(t *testing.T) {
	text := strings.Join([]string{
		genLine("q1"),
		"Sure! Here are your quiz questions:",
		genLine("q2"),
		`"only","three","fields"`,
		genLine("q3"),
	}, "\n")

	res, err := ParseGenerated(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(res.Questions))
	}
	if len(res.Warnings) != 2 {
		t.Fatalf("got %d warnings, want 2", len(res.Warnings))
	}
	if res.Warnings[0].LineNo != 2 {
		t.Errorf("first warning line = %d, want 2", res.Warnings[0].LineNo)
	}
	if res.Warnings[1].LineNo != 4 {
		t.Errorf("second warning line = %d, want 4", res.Warnings[1].LineNo)
	}
}

func TestParseGenerated_NothingUsable(t *testing.T) {
	res, err := ParseGenerated("I cannot help with that.\nSorry.")
	if !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("got %v, want ErrEmptyResult", err)
	}
	// Warnings still surface so the user can see what was rejected.
	if len(res.Warnings) != 2 {
		t.Errorf("got %d warnings, want 2", len(res.Warnings))
	}
}

func TestParseGenerated_OrdinalPrefixStripped(t *testing.T) {
	cases := map[string]string{
		genLine("1. Who wrote Hamlet?"): "Who wrote Hamlet?",
		genLine("2) Who wrote Hamlet?"): "Who wrote Hamlet?",
		genLine("3 Who wrote Hamlet?"):  "Who wrote Hamlet?",
		genLine("Who wrote Hamlet?"):    "Who wrote Hamlet?",
	}
	for line, want := range cases {
		res, err := ParseGenerated(line)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", line, err)
		}
		if got := res.Questions[0].Stem; got != want {
			t.Errorf("stem for %q = %q, want %q", line, got, want)
		}
	}
}

func TestParseGenerated_HeaderEchoDroppedSilently(t *testing.T) {
	text := strings.Join([]string{
		`"question","option1","option2","option3","option4","correct_answer"`,
		genLine("real question"),
	}, "\n")

	res, err := ParseGenerated(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(res.Questions))
	}
	if len(res.Warnings) != 0 {
		t.Errorf("header echo should not warn, got %v", res.Warnings)
	}
}

func TestParseGenerated_NormalizesNone(t *testing.T) {
	res, err := ParseGenerated(`"q","a","b","c","none","None"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := res.Questions[0]
	if q.Options[3] != question.NoneDisplay {
		t.Errorf("option4 = %q, want %q", q.Options[3], question.NoneDisplay)
	}
	if q.CorrectAnswer != question.NoneDisplay {
		t.Errorf("CorrectAnswer = %q, want %q", q.CorrectAnswer, question.NoneDisplay)
	}
}

func TestParseGenerated_SurroundingWhitespace(t *testing.T) {
	text := "\n\n" + genLine("q1") + "\n\n"

	res, err := ParseGenerated(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(res.Questions))
	}
}
