package behavior

import (
	"testing"

	"github.com/abhisek/examiz/internal/exam"
)

// mcq builds a four-option question whose second option is correct.
// Option ids follow the id*10+i scheme.
func mcq(id int, difficulty exam.Difficulty) exam.Question {
	q := exam.Question{ID: id, Type: exam.TypeMCQ, Text: "question", Difficulty: difficulty}
	for i := 1; i <= 4; i++ {
		q.Options = append(q.Options, exam.Option{ID: id*10 + i, Correct: i == 2, Order: i})
	}
	return q
}

func TestCalculateFullScenario(t *testing.T) {
	questions := []exam.Question{
		mcq(1, exam.Easy), mcq(2, exam.Easy), mcq(3, exam.Easy), mcq(4, exam.Easy),
		mcq(5, exam.Medium), mcq(6, exam.Medium), mcq(7, exam.Medium),
		mcq(8, exam.Hard), mcq(9, exam.Hard), mcq(10, exam.Hard),
	}
	records := []exam.AnswerRecord{
		{QuestionID: 1, SelectedOptionID: 12, FirstSelectedOptionID: 12, TimeSpentSeconds: 10, EliminatedOptionIDs: []int{11, 13}, Correct: true},
		{QuestionID: 2, SelectedOptionID: 22, FirstSelectedOptionID: 22, TimeSpentSeconds: 10, Correct: true},
		{QuestionID: 3, SelectedOptionID: 31, FirstSelectedOptionID: 31, TimeSpentSeconds: 3, EliminatedOptionIDs: []int{32, 33}},
		{QuestionID: 4, SelectedOptionID: 42, FirstSelectedOptionID: 42, TimeSpentSeconds: 10, Correct: true},
		{QuestionID: 5, SelectedOptionID: 51, FirstSelectedOptionID: 51, TimeSpentSeconds: 4},
		{QuestionID: 6, SelectedOptionID: 62, FirstSelectedOptionID: 62, TimeSpentSeconds: 10, SelectionChangeCount: 1, Correct: true},
		{QuestionID: 7, SelectedOptionID: 72, FirstSelectedOptionID: 72, TimeSpentSeconds: 6, Correct: true},
		{QuestionID: 8, SelectedOptionID: 81, FirstSelectedOptionID: 81, TimeSpentSeconds: 70, SelectionChangeCount: 2},
		{QuestionID: 9, SelectedOptionID: 92, FirstSelectedOptionID: 92, TimeSpentSeconds: 12, Correct: true},
		{QuestionID: 10}, // shown but never answered
	}

	m := NewCalculator(DefaultConfig()).Calculate(questions, records)

	if m.Accuracy != 66.67 {
		t.Errorf("Accuracy = %v, want 66.67", m.Accuracy)
	}
	if m.AttemptRatio != 90.00 {
		t.Errorf("AttemptRatio = %v, want 90.00", m.AttemptRatio)
	}
	if m.NegativeMarks != 1.98 {
		t.Errorf("NegativeMarks = %v, want 1.98", m.NegativeMarks)
	}
	if m.FirstInstinctAccuracy != 66.67 {
		t.Errorf("FirstInstinctAccuracy = %v, want 66.67", m.FirstInstinctAccuracy)
	}
	if m.EliminationEfficiency != 50.00 {
		t.Errorf("EliminationEfficiency = %v, want 50.00", m.EliminationEfficiency)
	}
	if m.ImpulsiveErrorCount != 2 {
		t.Errorf("ImpulsiveErrorCount = %d, want 2", m.ImpulsiveErrorCount)
	}
	if m.OverthinkingErrorCount != 1 {
		t.Errorf("OverthinkingErrorCount = %d, want 1", m.OverthinkingErrorCount)
	}
	if m.GuessProbability != 11.11 {
		t.Errorf("GuessProbability = %v, want 11.11", m.GuessProbability)
	}
	if m.RiskAppetite != 66.67 {
		t.Errorf("RiskAppetite = %v, want 66.67", m.RiskAppetite)
	}
	if m.ConfidenceIndex != 60.67 {
		t.Errorf("ConfidenceIndex = %v, want 60.67", m.ConfidenceIndex)
	}
	if m.ConsistencyIndex != 63.89 {
		t.Errorf("ConsistencyIndex = %v, want 63.89", m.ConsistencyIndex)
	}
}

func TestCalculateCognitiveBreakdown(t *testing.T) {
	questions := []exam.Question{
		mcq(1, exam.Easy), mcq(2, exam.Easy), mcq(3, exam.Easy), mcq(4, exam.Easy),
		mcq(5, exam.Medium), mcq(6, exam.Medium), mcq(7, exam.Medium),
		mcq(8, exam.Hard), mcq(9, exam.Hard), mcq(10, exam.Hard),
	}
	records := []exam.AnswerRecord{
		{QuestionID: 1, SelectedOptionID: 12, TimeSpentSeconds: 10, Correct: true},
		{QuestionID: 2, SelectedOptionID: 22, TimeSpentSeconds: 10, Correct: true},
		{QuestionID: 3, SelectedOptionID: 31, TimeSpentSeconds: 10},
		{QuestionID: 4, SelectedOptionID: 42, TimeSpentSeconds: 10, Correct: true},
		{QuestionID: 5, SelectedOptionID: 51, TimeSpentSeconds: 10},
		{QuestionID: 6, SelectedOptionID: 62, TimeSpentSeconds: 10, Correct: true},
		{QuestionID: 7, SelectedOptionID: 72, TimeSpentSeconds: 10, Correct: true},
		{QuestionID: 8, SelectedOptionID: 81, TimeSpentSeconds: 10},
		{QuestionID: 9, SelectedOptionID: 92, TimeSpentSeconds: 10, Correct: true},
		{QuestionID: 10},
	}

	m := NewCalculator(DefaultConfig()).Calculate(questions, records)

	// n=10 splits into quarters of 3, 3, 3 and a final quarter of 1.
	want := map[string]float64{
		"q1_accuracy": 66.67,
		"q2_accuracy": 66.67,
		"q3_accuracy": 66.67,
		"q4_accuracy": 0,
	}
	for key, wantV := range want {
		if got := m.CognitiveBreakdown[key]; got != wantV {
			t.Errorf("%s = %v, want %v", key, got, wantV)
		}
	}
}

func TestCalculateFatigueCurve(t *testing.T) {
	questions := []exam.Question{
		mcq(1, exam.Medium), mcq(2, exam.Medium), mcq(3, exam.Medium), mcq(4, exam.Medium),
	}
	records := []exam.AnswerRecord{
		{QuestionID: 1, SelectedOptionID: 12, TimeSpentSeconds: 5, Correct: true},
		{QuestionID: 2, SelectedOptionID: 22, TimeSpentSeconds: 5, Correct: true},
		{QuestionID: 3, SelectedOptionID: 31, TimeSpentSeconds: 40},
		{QuestionID: 4, SelectedOptionID: 41, TimeSpentSeconds: 50},
	}

	m := NewCalculator(DefaultConfig()).Calculate(questions, records)

	if m.FatigueIndex != exam.FatigueSlowingDown {
		t.Errorf("FatigueIndex = %q, want %q", m.FatigueIndex, exam.FatigueSlowingDown)
	}
	if m.AccuracyDrop != 2 {
		t.Errorf("AccuracyDrop = %d, want 2", m.AccuracyDrop)
	}

	// Reversed timing reads as consistent.
	records[0].TimeSpentSeconds = 60
	records[1].TimeSpentSeconds = 60
	m = NewCalculator(DefaultConfig()).Calculate(questions, records)
	if m.FatigueIndex != exam.FatigueConsistent {
		t.Errorf("FatigueIndex = %q, want %q", m.FatigueIndex, exam.FatigueConsistent)
	}
}

func TestCalculateEmptyAttempt(t *testing.T) {
	questions := []exam.Question{mcq(1, exam.Easy), mcq(2, exam.Hard)}
	records := []exam.AnswerRecord{{QuestionID: 1}, {QuestionID: 2}}

	m := NewCalculator(DefaultConfig()).Calculate(questions, records)

	if m.Accuracy != 0 || m.AttemptRatio != 0 || m.NegativeMarks != 0 {
		t.Errorf("zero-attempt metrics = %+v, want zero ratios", m)
	}
	if m.RiskAppetite != 0 {
		t.Errorf("RiskAppetite = %v, want 0", m.RiskAppetite)
	}
	if m.FatigueIndex != exam.FatigueConsistent {
		t.Errorf("FatigueIndex = %q, want %q", m.FatigueIndex, exam.FatigueConsistent)
	}
	if m.ConsistencyIndex != 0 {
		t.Errorf("ConsistencyIndex = %v, want 0", m.ConsistencyIndex)
	}
}

func TestCalculateHonorsTimingWindows(t *testing.T) {
	questions := []exam.Question{mcq(1, exam.Medium), mcq(2, exam.Medium), mcq(3, exam.Medium)}
	records := []exam.AnswerRecord{
		{QuestionID: 1, SelectedOptionID: 11, TimeSpentSeconds: 7},
		{QuestionID: 2, SelectedOptionID: 21, TimeSpentSeconds: 40, SelectionChangeCount: 3},
		{QuestionID: 3, SelectedOptionID: 32, TimeSpentSeconds: 12},
	}

	// Under the default windows none of these trip a counter.
	m := NewCalculator(DefaultConfig()).Calculate(questions, records)
	if m.ImpulsiveErrorCount != 0 || m.OverthinkingErrorCount != 0 || m.GuessProbability != 0 {
		t.Errorf("default windows: impulsive=%d overthinking=%d guess=%v, want all zero",
			m.ImpulsiveErrorCount, m.OverthinkingErrorCount, m.GuessProbability)
	}

	m = NewCalculator(Config{
		NegativeMarkWeight:    0.66,
		RushSeconds:           10,
		OverthinkingSeconds:   30,
		ConfidentGuessSeconds: 15,
	}).Calculate(questions, records)

	if m.ImpulsiveErrorCount != 1 {
		t.Errorf("ImpulsiveErrorCount = %d, want 1", m.ImpulsiveErrorCount)
	}
	if m.OverthinkingErrorCount != 1 {
		t.Errorf("OverthinkingErrorCount = %d, want 1", m.OverthinkingErrorCount)
	}
	if m.GuessProbability != 33.33 {
		t.Errorf("GuessProbability = %v, want 33.33", m.GuessProbability)
	}
}

func TestCalculateConfidenceClampsAtZero(t *testing.T) {
	questions := []exam.Question{mcq(1, exam.Medium)}
	records := []exam.AnswerRecord{
		{QuestionID: 1, SelectedOptionID: 11, FirstSelectedOptionID: 11, TimeSpentSeconds: 90, SelectionChangeCount: 60},
	}

	m := NewCalculator(DefaultConfig()).Calculate(questions, records)

	if m.ConfidenceIndex != 0 {
		t.Errorf("ConfidenceIndex = %v, want clamp at 0", m.ConfidenceIndex)
	}
}
