package ingest

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/abhisek/quizstation/internal/question"
)

const goodCSV = `question,option1,option2,option3,option4,correct_answer
Capital of France?,Paris,Lyon,Nice,Lille,Paris
"2+2?",3,4,5,none,4
`

func TestLoadCSV_GoodFile(t *testing.T) {
	res, err := LoadCSV(strings.NewReader(goodCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(res.Questions))
	}

	q := res.Questions[0]
	if q.Stem != "Capital of France?" {
		t.Errorf("Stem = %q", q.Stem)
	}
	want := []string{"Paris", "Lyon", "Nice", "Lille"}
	if !reflect.DeepEqual(q.Options, want) {
		t.Errorf("Options = %v, want %v", q.Options, want)
	}
	if q.CorrectAnswer != "Paris" {
		t.Errorf("CorrectAnswer = %q", q.CorrectAnswer)
	}
}

func TestLoadCSV_NormalizesNone(t *testing.T) {
	res, err := LoadCSV(strings.NewReader(goodCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Questions[1].Options[3]; got != question.NoneDisplay {
		t.Errorf("option4 = %q, want %q", got, question.NoneDisplay)
	}
}

func TestLoadCSV_MissingColumns(t *testing.T) {
	src := "question,option1,option2,correct_answer\nstem,a,b,a\n"

	_, err := LoadCSV(strings.NewReader(src))
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("got %v, want *FormatError", err)
	}
	want := []string{"option3", "option4"}
	if !reflect.DeepEqual(ferr.Missing, want) {
		t.Errorf("Missing = %v, want %v", ferr.Missing, want)
	}
}

func TestLoadCSV_HeaderOnly(t *testing.T) {
	src := "question,option1,option2,option3,option4,correct_answer\n"

	_, err := LoadCSV(strings.NewReader(src))
	if !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("got %v, want ErrEmptyResult", err)
	}
}

func TestLoadCSV_EmptyInput(t *testing.T) {
	_, err := LoadCSV(strings.NewReader(""))
	if !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("got %v, want ErrEmptyResult", err)
	}
}

func TestLoadCSV_ExtraColumnsIgnored(t *testing.T) {
	src := "id,question,option1,option2,option3,option4,correct_answer,notes\n" +
		"7,stem,a,b,c,d,b,whatever\n"

	res, err := LoadCSV(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Questions[0].Stem != "stem" {
		t.Errorf("Stem = %q, want %q", res.Questions[0].Stem, "stem")
	}
	if res.Questions[0].CorrectAnswer != "b" {
		t.Errorf("CorrectAnswer = %q, want %q", res.Questions[0].CorrectAnswer, "b")
	}
}

func TestLoadCSV_HeaderWhitespaceTrimmed(t *testing.T) {
	src := "question , option1,option2,option3,option4, correct_answer \nstem,a,b,c,d,a\n"

	res, err := LoadCSV(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(res.Questions))
	}
}

func TestLoadCSV_ShortRowPadsEmptyFields(t *testing.T) {
	src := "question,option1,option2,option3,option4,correct_answer\nstem,a,b\n"

	res, err := LoadCSV(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := res.Questions[0]
	if q.Options[2] != "" || q.Options[3] != "" || q.CorrectAnswer != "" {
		t.Errorf("short row not padded: %+v", q)
	}
}
