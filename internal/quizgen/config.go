package quizgen

// Config controls the behavior of the Generator.
type Config struct {
	// MinQuestions and MaxQuestions bound a single generation request.
	MinQuestions int
	MaxQuestions int

	// DefaultQuestions is used when the caller asks for 0 questions.
	DefaultQuestions int

	// MaxDocumentChars caps how much extracted document text is sent to
	// the model. Longer documents are truncated, not rejected.
	MaxDocumentChars int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MinQuestions:     1,
		MaxQuestions:     20,
		DefaultQuestions: 5,
		MaxDocumentChars: 12000,
		MaxTokens:        2048,
		Temperature:      0.7,
	}
}

// clampCount bounds a requested question count to the configured range.
func (c Config) clampCount(n int) int {
	if n == 0 {
		n = c.DefaultQuestions
	}
	if n < c.MinQuestions {
		return c.MinQuestions
	}
	if n > c.MaxQuestions {
		return c.MaxQuestions
	}
	return n
}
