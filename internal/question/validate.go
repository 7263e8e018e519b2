package question

import (
	"fmt"
	"strings"
)

// Validate reports which required fields of q are missing or empty.
// The returned slice contains field names from the set
// {stem, option1, option2, option3, option4, correct_answer};
// an empty slice means the record is structurally valid.
func Validate(q Question) []string {
	var missing []string

	if strings.TrimSpace(q.Stem) == "" {
		missing = append(missing, "stem")
	}
	for i := 0; i < NumOptions; i++ {
		if i >= len(q.Options) || strings.TrimSpace(q.Options[i]) == "" {
			missing = append(missing, fmt.Sprintf("option%d", i+1))
		}
	}
	if strings.TrimSpace(q.CorrectAnswer) == "" {
		missing = append(missing, "correct_answer")
	}

	return missing
}

// Valid reports whether q has a stem, 4 populated options, and a correct answer.
func Valid(q Question) bool {
	return len(Validate(q)) == 0
}
