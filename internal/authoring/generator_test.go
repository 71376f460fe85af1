package authoring

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/abhisek/examiz/internal/exam"
	"github.com/abhisek/examiz/internal/llm"
)

const sampleBatch = `{
	"questions": [
		{
			"question_text": "Who founded the Maurya Empire?",
			"question_type": "MCQ",
			"difficulty": "EASY",
			"options": [
				{"text": "Chandragupta Maurya", "correct": true},
				{"text": "Ashoka", "correct": false},
				{"text": "Bindusara", "correct": false},
				{"text": "Bimbisara", "correct": false}
			],
			"explanation": "Chandragupta Maurya founded the empire around 321 BCE."
		},
		{
			"question_text": "The Arthashastra was written by?",
			"question_type": "MCQ",
			"difficulty": "MEDIUM",
			"options": [
				{"text": "Megasthenes", "correct": false},
				{"text": "Kautilya", "correct": true},
				{"text": "Banabhatta", "correct": false},
				{"text": "Kalidasa", "correct": false}
			],
			"explanation": "Kautilya, also known as Chanakya, authored the Arthashastra."
		}
	]
}`

func TestGenerateParsesBatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(sampleBatch)})
	gen := New(mock, DefaultConfig())

	drafts, err := gen.Generate(context.Background(), GenerateRequest{
		Subject:         "History",
		Topic:           "Ancient India",
		DifficultyFloor: exam.Easy,
		Count:           2,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(drafts) != 2 {
		t.Fatalf("got %d drafts, want 2", len(drafts))
	}

	first := drafts[0]
	if first.Text != "Who founded the Maurya Empire?" {
		t.Errorf("text = %q", first.Text)
	}
	if first.Type != exam.TypeMCQ {
		t.Errorf("type = %s, want MCQ", first.Type)
	}
	if first.Difficulty != exam.Easy {
		t.Errorf("difficulty = %s, want EASY", first.Difficulty)
	}
	if len(first.Options) != 4 {
		t.Fatalf("got %d options, want 4", len(first.Options))
	}
	if !first.Options[0].Correct {
		t.Error("first option must be marked correct")
	}
	for _, d := range drafts {
		if err := ValidateDraft(d); err != nil {
			t.Errorf("parsed draft failed validation: %v", err)
		}
	}
}

func TestGenerateSendsSchemaAndPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions": []}`)})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateRequest{
		Subject:         "Polity",
		DifficultyFloor: exam.Hard,
		Count:           1,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("got %d provider calls, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema != QuestionBatchSchema {
		t.Error("request must carry the question batch schema")
	}
	if req.System != systemPrompt {
		t.Error("request must carry the generation system prompt")
	}
}

func TestGeneratePropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateRequest{Subject: "History", Count: 1})
	if err == nil {
		t.Fatal("expected error from unavailable provider")
	}
}

func TestGenerateRejectsMalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateRequest{Subject: "History", Count: 1})
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFallbackPrefersSubject(t *testing.T) {
	var fb FallbackGenerator

	drafts, err := fb.Generate(context.Background(), GenerateRequest{Subject: "History", Count: 10})
	if err != nil {
		t.Fatalf("fallback: %v", err)
	}
	if len(drafts) != 1 {
		t.Fatalf("got %d drafts for History, want 1", len(drafts))
	}
	for _, d := range drafts {
		if err := ValidateDraft(d); err != nil {
			t.Errorf("fallback draft failed validation: %v", err)
		}
	}
}

func TestFallbackServesWholePoolForUnknownSubject(t *testing.T) {
	var fb FallbackGenerator

	drafts, err := fb.Generate(context.Background(), GenerateRequest{Subject: "Astrology", Count: 2})
	if err != nil {
		t.Fatalf("fallback: %v", err)
	}
	if len(drafts) != 2 {
		t.Errorf("got %d drafts, want count cap 2", len(drafts))
	}
}
