package question

import (
	"reflect"
	"testing"
)

func TestNormalize_NoneVariants(t *testing.T) {
	for _, in := range []string{"none", "None", "NONE", "nOnE"} {
		if got := Normalize(in); got != NoneDisplay {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, NoneDisplay)
		}
	}
}

func TestNormalize_LeavesOtherValuesAlone(t *testing.T) {
	for _, in := range []string{"Paris", "none of them", " none", "nones", ""} {
		if got := Normalize(in); got != in {
			t.Errorf("Normalize(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	once := Normalize("none")
	if got := Normalize(once); got != once {
		t.Errorf("Normalize(Normalize(%q)) = %q, want %q", "none", got, once)
	}
}

func TestNew_NormalizesOptionsAndCorrectAnswer(t *testing.T) {
	q := New("Which is a prime?", [NumOptions]string{"4", "6", "7", "None"}, "NONE")

	want := []string{"4", "6", "7", NoneDisplay}
	if !reflect.DeepEqual(q.Options, want) {
		t.Errorf("Options = %v, want %v", q.Options, want)
	}
	if q.CorrectAnswer != NoneDisplay {
		t.Errorf("CorrectAnswer = %q, want %q", q.CorrectAnswer, NoneDisplay)
	}
}

func TestValidate_CompleteRecord(t *testing.T) {
	q := New("Capital of France?", [NumOptions]string{"Paris", "Lyon", "Nice", "Lille"}, "Paris")
	if missing := Validate(q); len(missing) != 0 {
		t.Errorf("Validate = %v, want empty", missing)
	}
	if !Valid(q) {
		t.Error("Valid = false, want true")
	}
}

func TestValidate_ReportsMissingFields(t *testing.T) {
	q := New("", [NumOptions]string{"a", "", "c", "  "}, "")

	want := []string{"stem", "option2", "option4", "correct_answer"}
	if got := Validate(q); !reflect.DeepEqual(got, want) {
		t.Errorf("Validate = %v, want %v", got, want)
	}
	if Valid(q) {
		t.Error("Valid = true, want false")
	}
}

func TestValidate_ShortOptionSlice(t *testing.T) {
	q := Question{Stem: "s", Options: []string{"a", "b"}, CorrectAnswer: "a"}

	want := []string{"option3", "option4"}
	if got := Validate(q); !reflect.DeepEqual(got, want) {
		t.Errorf("Validate = %v, want %v", got, want)
	}
}
