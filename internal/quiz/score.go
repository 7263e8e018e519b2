package quiz

import (
	"strings"
	"time"

	"github.com/abhisek/quizstation/internal/question"
)

// Feedback is the per-question comparison shown on the results view.
type Feedback struct {
	Stem          string
	UserAnswer    string // raw selected text, empty if unanswered
	CorrectAnswer string
	Correct       bool
}

// Results aggregates the outcome of a completed quiz.
type Results struct {
	// SessionID identifies the session that produced these results, so a
	// score on screen can be matched to its transcript log entries.
	SessionID string

	// Score is the number of correctly answered questions.
	Score int

	// Total is the number of questions in the quiz.
	Total int

	// Duration is the elapsed time from first question display to submission.
	Duration time.Duration

	// Feedback holds one entry per question, in presentation order,
	// including unanswered questions.
	Feedback []Feedback
}

// score compares the captured answers against the correct answers.
// Comparison is case-insensitive after trimming whitespace; an absent
// answer compares as the empty string. A correct answer that matches
// none of the options still only matches itself, so such a question
// simply never scores.
func score(questions []question.Question, answers map[int]string, duration time.Duration) *Results {
	res := &Results{
		Total:    len(questions),
		Duration: duration,
		Feedback: make([]Feedback, 0, len(questions)),
	}

	for i, q := range questions {
		user := answers[i]
		correct := answersMatch(user, q.CorrectAnswer)
		if correct {
			res.Score++
		}
		res.Feedback = append(res.Feedback, Feedback{
			Stem:          q.Stem,
			UserAnswer:    user,
			CorrectAnswer: q.CorrectAnswer,
			Correct:       correct,
		})
	}

	return res
}

func answersMatch(user, correct string) bool {
	return strings.EqualFold(strings.TrimSpace(user), strings.TrimSpace(correct))
}
