package scoring

import "github.com/abhisek/examiz/internal/exam"

// Thresholds are the timing windows of the answer classifiers, in seconds.
type Thresholds struct {
	// BlindGuessSeconds: any answer faster than this is a blind guess.
	BlindGuessSeconds int
	// RushSeconds: a non-easy answer faster than this is a blind guess;
	// an unchanged answer at or above it can be sure.
	RushSeconds int
	// DeliberationSeconds: answers slower than this are educated guesses.
	DeliberationSeconds int
}

// DefaultThresholds returns the standard classification windows.
func DefaultThresholds() Thresholds {
	return Thresholds{
		BlindGuessSeconds:   3,
		RushSeconds:         5,
		DeliberationSeconds: 45,
	}
}

// ClassifyInput carries the telemetry of one answered question.
type ClassifyInput struct {
	TimeSpentSeconds     int
	SelectionChangeCount int
	HoverCount           int
	Difficulty           exam.Difficulty
}

// Classifier is a rule-based answer classifier. Returns the classification
// or "" when the rule doesn't apply.
type Classifier interface {
	Name() string
	Classify(input *ClassifyInput) exam.Classification
}

// Classifiers returns classifiers in priority order for the given
// thresholds. Blind guess detection runs first: an instant answer tells
// more than any later hesitation signal.
func Classifiers(t Thresholds) []Classifier {
	return []Classifier{
		&BlindGuessClassifier{Thresholds: t},
		&EducatedGuessClassifier{Thresholds: t},
		&SureClassifier{Thresholds: t},
	}
}

// DefaultClassifiers returns Classifiers with the standard windows.
func DefaultClassifiers() []Classifier {
	return Classifiers(DefaultThresholds())
}

// RunClassifiers executes classifiers in order and returns the first
// match, or Unknown when no rule applies.
func RunClassifiers(classifiers []Classifier, input *ClassifyInput) exam.Classification {
	for _, c := range classifiers {
		if cls := c.Classify(input); cls != "" {
			return cls
		}
	}
	return exam.Unknown
}

// BlindGuessClassifier flags answers given too fast to have been read
// properly. Non-easy questions get a wider window.
type BlindGuessClassifier struct {
	Thresholds Thresholds
}

func (*BlindGuessClassifier) Name() string { return "blind-guess" }

func (c *BlindGuessClassifier) Classify(in *ClassifyInput) exam.Classification {
	if in.TimeSpentSeconds < c.Thresholds.BlindGuessSeconds {
		return exam.BlindGuess
	}
	if in.TimeSpentSeconds < c.Thresholds.RushSeconds && in.Difficulty != exam.Easy {
		return exam.BlindGuess
	}
	return ""
}

// EducatedGuessClassifier flags hesitation: selection changes, heavy
// option hovering, or a long deliberation.
type EducatedGuessClassifier struct {
	Thresholds Thresholds
}

func (*EducatedGuessClassifier) Name() string { return "educated-guess" }

func (c *EducatedGuessClassifier) Classify(in *ClassifyInput) exam.Classification {
	if in.SelectionChangeCount > 0 || in.HoverCount > 2 || in.TimeSpentSeconds > c.Thresholds.DeliberationSeconds {
		return exam.EducatedGuess
	}
	return ""
}

// SureClassifier flags a settled answer: enough reading time and no
// second-guessing.
type SureClassifier struct {
	Thresholds Thresholds
}

func (*SureClassifier) Name() string { return "sure" }

func (c *SureClassifier) Classify(in *ClassifyInput) exam.Classification {
	if in.TimeSpentSeconds >= c.Thresholds.RushSeconds && in.SelectionChangeCount == 0 {
		return exam.Sure
	}
	return ""
}
