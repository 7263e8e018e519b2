package question

import "strings"

// NumOptions is the number of answer options every question carries.
const NumOptions = 4

// NoneDisplay is the display string substituted for the literal token "none".
// Bare "none" confuses learners when options are shuffled, so the source
// data convention rewrites it to an explicit phrase.
const NoneDisplay = "None of these"

// Question represents a single multiple-choice question ready for display.
type Question struct {
	// Stem is the question prompt shown to the user.
	Stem string

	// Options holds exactly 4 answer options in source order.
	// Display order is decided per session, not here.
	Options []string

	// CorrectAnswer is the text of the correct option. The ingestion layer
	// does not verify it matches one of Options; scoring treats a
	// non-matching value as never answered correctly.
	CorrectAnswer string
}

// Normalize rewrites an option or correct-answer value for display.
// Any value case-insensitively equal to "none" becomes NoneDisplay.
// Applying Normalize twice yields the same result as applying it once.
func Normalize(s string) string {
	if strings.EqualFold(s, "none") {
		return NoneDisplay
	}
	return s
}

// New builds a Question from raw field values, applying Normalize to each
// option and to the correct answer.
func New(stem string, options [NumOptions]string, correctAnswer string) Question {
	opts := make([]string, NumOptions)
	for i, o := range options {
		opts[i] = Normalize(o)
	}
	return Question{
		Stem:          stem,
		Options:       opts,
		CorrectAnswer: Normalize(correctAnswer),
	}
}
