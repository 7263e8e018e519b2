package quiz

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizstation/internal/question"
)

// State is the lifecycle state of a quiz session.
type State string

const (
	StateNotStarted State = "not_started"
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
)

var (
	// ErrNoQuestions is returned when creating a session from an empty set.
	ErrNoQuestions = errors.New("quiz has no questions")

	// ErrNotInProgress is returned by operations that require an active quiz.
	ErrNotInProgress = errors.New("quiz is not in progress")

	// ErrNotAtEnd is returned when submitting from any index but the last.
	ErrNotAtEnd = errors.New("quiz can only be submitted from the last question")
)

// Session tracks one user's progress through one question set.
//
// A Session is owned by a single interactive context and is not safe for
// concurrent use. The question slice is fixed at creation; its order is the
// presentation order and the index space for option orders and answers.
type Session struct {
	// ID identifies the session. Completed results carry it, so a score
	// shown on screen can be traced back to a specific quiz run.
	ID string

	questions []question.Question
	state     State
	position  int

	// optionOrder memoizes the shuffled display order per question index.
	// An entry is created the first time that index is displayed and never
	// regenerated, so revisiting a question shows the same order.
	optionOrder map[int][]string

	// answers maps question index to the selected option text. Absent until
	// the user picks; overwritten on re-selection; cleared only by Reset.
	answers map[int]string

	startedAt time.Time
	duration  time.Duration
	results   *Results

	rng *rand.Rand
}

// NewSession creates a not-started session over the given question set.
func NewSession(questions []question.Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	qs := make([]question.Question, len(questions))
	copy(qs, questions)

	seed := uint64(time.Now().UnixNano())
	return &Session{
		ID:          uuid.NewString(),
		questions:   qs,
		state:       StateNotStarted,
		optionOrder: make(map[int][]string),
		answers:     make(map[int]string),
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}, nil
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Len returns the number of questions.
func (s *Session) Len() int { return len(s.questions) }

// Position returns the current 0-based question index.
func (s *Session) Position() int { return s.position }

// Question returns the question at index i.
func (s *Session) Question(i int) question.Question {
	if len(s.questions) == 0 {
		return question.Question{}
	}
	return s.questions[s.clamp(i)]
}

// Current returns the question at the current position.
func (s *Session) Current() question.Question {
	return s.Question(s.position)
}

// Start moves a not-started session into in_progress. Any option orders or
// answers from a previous run are discarded. The timer does not start here:
// startedAt is stamped by the first display-path call, tolerating a render
// cycle between the transition and the first question being shown.
func (s *Session) Start() error {
	if s.state != StateNotStarted {
		return errors.New("quiz already started")
	}
	s.state = StateInProgress
	s.position = 0
	s.optionOrder = make(map[int][]string)
	s.answers = make(map[int]string)
	s.startedAt = time.Time{}
	s.duration = 0
	s.results = nil
	return nil
}

// Options is the display path for question i: it returns the shuffled
// option order for that index, creating it exactly once on first display.
// The first call after Start also stamps the session start time.
func (s *Session) Options(i int) []string {
	if len(s.questions) == 0 {
		return nil
	}
	i = s.clamp(i)

	if s.state == StateInProgress && s.startedAt.IsZero() {
		s.startedAt = time.Now()
	}

	if order, ok := s.optionOrder[i]; ok {
		return order
	}
	order := make([]string, len(s.questions[i].Options))
	copy(order, s.questions[i].Options)
	s.rng.Shuffle(len(order), func(a, b int) {
		order[a], order[b] = order[b], order[a]
	})
	s.optionOrder[i] = order
	return order
}

// Next advances to the following question. No effect at the last index or
// outside in_progress. Navigation never discards answers or option orders.
func (s *Session) Next() {
	if s.state != StateInProgress {
		return
	}
	s.position = s.clamp(s.position + 1)
}

// Prev moves back one question. No effect at index 0 or outside in_progress.
func (s *Session) Prev() {
	if s.state != StateInProgress {
		return
	}
	s.position = s.clamp(s.position - 1)
}

// AtStart reports whether the session is at the first question.
func (s *Session) AtStart() bool { return s.position == 0 }

// AtEnd reports whether the session is at the last question.
func (s *Session) AtEnd() bool { return s.position == len(s.questions)-1 }

// SelectAnswer records the user's choice for question i, overwriting any
// previous selection. Ignored outside in_progress.
func (s *Session) SelectAnswer(i int, option string) {
	if s.state != StateInProgress {
		return
	}
	s.answers[s.clamp(i)] = option
}

// Answer returns the recorded answer for question i, if any.
func (s *Session) Answer(i int) (string, bool) {
	a, ok := s.answers[s.clamp(i)]
	return a, ok
}

// Submit completes the quiz. Allowed only from the last question of an
// in-progress session. It freezes the session, captures the elapsed time,
// and computes the score and per-question feedback.
func (s *Session) Submit() (*Results, error) {
	if s.state != StateInProgress {
		return nil, ErrNotInProgress
	}
	if !s.AtEnd() {
		return nil, ErrNotAtEnd
	}

	if !s.startedAt.IsZero() {
		s.duration = time.Since(s.startedAt)
	}
	s.state = StateCompleted
	s.results = score(s.questions, s.answers, s.duration)
	s.results.SessionID = s.ID
	return s.results, nil
}

// Results returns the computed results, or nil before completion.
func (s *Session) Results() *Results { return s.results }

// Reset discards everything: questions, answers, option orders, timer and
// results. The session returns to the boundary state equivalent to a fresh
// not_started session with no question set loaded.
func (s *Session) Reset() {
	s.questions = nil
	s.state = StateNotStarted
	s.position = 0
	s.optionOrder = make(map[int][]string)
	s.answers = make(map[int]string)
	s.startedAt = time.Time{}
	s.duration = 0
	s.results = nil
}

// clamp bounds i to the valid question index range.
func (s *Session) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i > len(s.questions)-1 {
		return len(s.questions) - 1
	}
	return i
}
