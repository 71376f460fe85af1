package authoring

// Config controls the behavior of the LLM generator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// ContextLimit caps the characters of study material included in
	// the prompt.
	ContextLimit int

	// MaxAvoidTexts is the maximum number of existing question texts
	// to include in the prompt for deduplication.
	MaxAvoidTexts int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:     4096,
		Temperature:   0.7,
		ContextLimit:  30000,
		MaxAvoidTexts: 20,
	}
}
