// Package behavior derives aggregate cognitive metrics from the answer
// telemetry of a completed attempt.
package behavior

import (
	"math"

	"github.com/abhisek/examiz/internal/exam"
)

// Config carries the tunable weights and timing windows of the
// calculator. Windows are seconds.
type Config struct {
	// NegativeMarkWeight is the penalty per wrong answer.
	NegativeMarkWeight float64
	// RushSeconds: a wrong answer faster than this is an impulsive error.
	RushSeconds int
	// OverthinkingSeconds: a wrong answer slower than this with repeated
	// selection changes is an overthinking error.
	OverthinkingSeconds int
	// ConfidentGuessSeconds: an unchanged correct answer faster than this
	// counts toward the guess probability.
	ConfidentGuessSeconds int
}

// DefaultConfig returns the standard UPSC prelims penalty scheme and
// timing windows.
func DefaultConfig() Config {
	return Config{
		NegativeMarkWeight:    0.66,
		RushSeconds:           5,
		OverthinkingSeconds:   60,
		ConfidentGuessSeconds: 8,
	}
}

// Calculator computes an attempt's behavioral profile. Questions must be
// in presentation order; records must be parallel to questions.
type Calculator struct {
	config Config
}

// NewCalculator returns a Calculator with the given config.
func NewCalculator(config Config) *Calculator {
	return &Calculator{config: config}
}

// Calculate derives the full metrics set. All percentages are rounded
// half-up to two decimals; any ratio with a zero denominator is 0.
func (c *Calculator) Calculate(questions []exam.Question, records []exam.AnswerRecord) exam.Metrics {
	byQuestion := make(map[int]exam.AnswerRecord, len(records))
	for _, r := range records {
		byQuestion[r.QuestionID] = r
	}

	total := len(questions)
	var (
		attempted int
		correct   int
		wrong     int

		firstSelections  int
		firstCorrect     int
		withEliminations int
		cleanElims       int

		impulsive    int
		overthinking int
		fastCorrect  int

		totalChanges int
	)

	perDifficulty := map[exam.Difficulty]*struct{ attempted, correct int }{}

	var hardTotal, hardAttempted int

	for _, q := range questions {
		if q.Difficulty == exam.Hard {
			hardTotal++
		}

		rec, ok := byQuestion[q.ID]
		if !ok || !rec.Answered() {
			continue
		}
		attempted++
		totalChanges += rec.SelectionChangeCount
		if q.Difficulty == exam.Hard {
			hardAttempted++
		}

		level := perDifficulty[q.Difficulty]
		if level == nil {
			level = &struct{ attempted, correct int }{}
			perDifficulty[q.Difficulty] = level
		}
		level.attempted++

		if rec.Correct {
			correct++
			level.correct++
			if rec.TimeSpentSeconds < c.config.ConfidentGuessSeconds && rec.SelectionChangeCount == 0 {
				fastCorrect++
			}
		} else {
			wrong++
			if rec.TimeSpentSeconds < c.config.RushSeconds {
				impulsive++
			}
			if rec.SelectionChangeCount > 1 && rec.TimeSpentSeconds > c.config.OverthinkingSeconds {
				overthinking++
			}
		}

		if rec.FirstSelectedOptionID != 0 {
			firstSelections++
			if opt := q.OptionByID(rec.FirstSelectedOptionID); opt != nil && opt.Correct {
				firstCorrect++
			}
		}

		if len(rec.EliminatedOptionIDs) > 0 {
			withEliminations++
			if cleanElimination(q, rec.EliminatedOptionIDs) {
				cleanElims++
			}
		}
	}

	firstInstinct := percent(firstCorrect, firstSelections)

	m := exam.Metrics{
		Accuracy:               percent(correct, attempted),
		AttemptRatio:           percent(attempted, total),
		NegativeMarks:          round2(float64(wrong) * c.config.NegativeMarkWeight),
		FirstInstinctAccuracy:  firstInstinct,
		EliminationEfficiency:  percent(cleanElims, withEliminations),
		ImpulsiveErrorCount:    impulsive,
		OverthinkingErrorCount: overthinking,
		GuessProbability:       percent(fastCorrect, attempted),
		CognitiveBreakdown:     cognitiveBreakdown(questions, byQuestion),
		RiskAppetite:           percent(hardAttempted, hardTotal),
		ConfidenceIndex:        clamp(firstInstinct-float64(totalChanges)*2, 0, 100),
		ConsistencyIndex:       consistency(perDifficulty),
	}
	m.FatigueIndex, m.AccuracyDrop = fatigueCurve(questions, byQuestion)
	return m
}

// cleanElimination reports whether no eliminated option was a correct one.
func cleanElimination(q exam.Question, eliminated []int) bool {
	for _, id := range eliminated {
		if opt := q.OptionByID(id); opt != nil && opt.Correct {
			return false
		}
	}
	return true
}

// cognitiveBreakdown splits the presentation order into four contiguous
// quarters and reports per-quarter accuracy. The last quarter absorbs the
// remainder.
func cognitiveBreakdown(questions []exam.Question, byQuestion map[int]exam.AnswerRecord) map[string]float64 {
	out := map[string]float64{
		"q1_accuracy": 0,
		"q2_accuracy": 0,
		"q3_accuracy": 0,
		"q4_accuracy": 0,
	}
	n := len(questions)
	if n == 0 {
		return out
	}
	size := (n + 3) / 4

	keys := []string{"q1_accuracy", "q2_accuracy", "q3_accuracy", "q4_accuracy"}
	for i, key := range keys {
		start := i * size
		if start >= n {
			break
		}
		end := start + size
		if i == len(keys)-1 || end > n {
			end = n
		}
		var attempted, correct int
		for _, q := range questions[start:end] {
			rec, ok := byQuestion[q.ID]
			if !ok || !rec.Answered() {
				continue
			}
			attempted++
			if rec.Correct {
				correct++
			}
		}
		out[key] = percent(correct, attempted)
	}
	return out
}

// fatigueCurve compares the two halves of the presentation order: time
// spent decides the index, correct counts decide the drop.
func fatigueCurve(questions []exam.Question, byQuestion map[int]exam.AnswerRecord) (string, int) {
	mid := len(questions) / 2

	var firstTime, secondTime int
	var firstCorrect, secondCorrect int
	for i, q := range questions {
		rec, ok := byQuestion[q.ID]
		if !ok {
			continue
		}
		if i < mid {
			firstTime += rec.TimeSpentSeconds
			if rec.Correct {
				firstCorrect++
			}
		} else {
			secondTime += rec.TimeSpentSeconds
			if rec.Correct {
				secondCorrect++
			}
		}
	}

	index := exam.FatigueConsistent
	if secondTime > firstTime {
		index = exam.FatigueSlowingDown
	}
	return index, firstCorrect - secondCorrect
}

// consistency averages per-level accuracy over the difficulty levels the
// user actually attempted.
func consistency(perDifficulty map[exam.Difficulty]*struct{ attempted, correct int }) float64 {
	if len(perDifficulty) == 0 {
		return 0
	}
	var sum float64
	for _, level := range perDifficulty {
		sum += percent(level.correct, level.attempted)
	}
	return round2(sum / float64(len(perDifficulty)))
}

func percent(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return round2(float64(num) / float64(den) * 100)
}

// round2 rounds half-up to two decimals.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
