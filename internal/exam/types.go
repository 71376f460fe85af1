// Package exam defines the shared domain vocabulary of the engine:
// question and test aggregates, closed enum types, difficulty escalation,
// content fingerprints, and the error taxonomy surfaced to callers.
package exam

import "time"

// QuestionType describes how a question is answered.
type QuestionType string

const (
	TypeMCQ        QuestionType = "MCQ"
	TypeSubjective QuestionType = "SUBJECTIVE"
	TypeTrueFalse  QuestionType = "TRUE_FALSE"
)

// Valid reports whether t is a known question type.
func (t QuestionType) Valid() bool {
	switch t {
	case TypeMCQ, TypeSubjective, TypeTrueFalse:
		return true
	}
	return false
}

// Difficulty is the difficulty level of a question or test request.
type Difficulty string

const (
	Easy   Difficulty = "EASY"
	Medium Difficulty = "MEDIUM"
	Hard   Difficulty = "HARD"
)

// Valid reports whether d is a known difficulty level.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// Source tags where a persisted question came from.
type Source string

const (
	SourcePYQ  Source = "PYQ"  // curated previous-year questions, highest trust
	SourceAI   Source = "AI"   // machine-generated, persisted for reuse
	SourceUser Source = "USER" // manually entered
)

// TestType categorizes an assembled test.
type TestType string

const (
	TestMock         TestType = "MOCK"
	TestPractice     TestType = "PRACTICE"
	TestPreviousYear TestType = "PREVIOUS_YEAR"
	TestAIGenerated  TestType = "AI_GENERATED"
)

// AttemptStatus is the lifecycle state of an attempt.
// Transitions are one-way: IN_PROGRESS -> COMPLETED or ABANDONED,
// both terminal.
type AttemptStatus string

const (
	AttemptInProgress AttemptStatus = "IN_PROGRESS"
	AttemptCompleted  AttemptStatus = "COMPLETED"
	AttemptAbandoned  AttemptStatus = "ABANDONED"
)

// Classification is the behavioral label derived for an answered question.
type Classification string

const (
	BlindGuess    Classification = "BLIND_GUESS"
	EducatedGuess Classification = "EDUCATED_GUESS"
	Sure          Classification = "SURE"
	Unknown       Classification = "UNKNOWN"
)

// Subject is a top-level content area (e.g. History, Polity).
type Subject struct {
	ID   int
	Name string
}

// Topic is a subdivision of a subject.
type Topic struct {
	ID        int
	SubjectID int
	Name      string
}

// Option is one answer choice of a question. Order is 1-based.
type Option struct {
	ID      int
	Text    string
	Correct bool
	Order   int
}

// Question is a persisted bank question. Questions are never hard-deleted;
// retiring one clears Active.
type Question struct {
	ID          int
	Text        string
	Type        QuestionType
	Difficulty  Difficulty
	Explanation string
	Source      Source
	Verified    bool
	Active      bool
	Fingerprint string
	SubjectID   int
	TopicID     int // 0 when the question is not tagged with a topic
	Options     []Option
}

// CorrectOption returns the first option marked correct, or nil.
func (q *Question) CorrectOption() *Option {
	for i := range q.Options {
		if q.Options[i].Correct {
			return &q.Options[i]
		}
	}
	return nil
}

// OptionByID returns the option with the given id, or nil.
func (q *Question) OptionByID(id int) *Option {
	for i := range q.Options {
		if q.Options[i].ID == id {
			return &q.Options[i]
		}
	}
	return nil
}

// Test is an assembled test aggregate. QuestionIDs is an ordered snapshot
// taken at assembly time and never mutated afterwards.
type Test struct {
	ID               int
	PublicID         string
	SubjectID        int
	TopicID          int
	TargetDifficulty Difficulty
	Type             TestType
	TotalQuestions   int
	TotalMarks       int
	DurationMinutes  int
	QuestionIDs      []int
	CreatedBy        string
	CreatedAt        time.Time
}

// Attempt is one user's run through a test. TotalMarks is copied from the
// test at start so later test edits cannot change historical attempts.
type Attempt struct {
	ID          int
	PublicID    string
	TestID      int
	UserID      string
	Status      AttemptStatus
	Score       int
	TotalMarks  int
	StartedAt   time.Time
	CompletedAt time.Time // zero until the attempt is completed
}

// AnswerRecord is the per-question telemetry captured for an attempt.
// A record with SelectedOptionID == 0 means the question was shown but
// not answered.
type AnswerRecord struct {
	QuestionID            int
	SelectedOptionID      int
	FirstSelectedOptionID int
	TimeSpentSeconds      int
	SelectionChangeCount  int
	HoverCount            int
	EliminatedOptionIDs   []int
	Correct               bool
	Classification        Classification
}

// Answered reports whether the record carries an actual selection.
func (r *AnswerRecord) Answered() bool {
	return r.SelectedOptionID != 0
}
