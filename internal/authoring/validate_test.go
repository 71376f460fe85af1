package authoring

import (
	"testing"

	"github.com/abhisek/examiz/internal/exam"
)

func validDraft() Draft {
	return Draft{
		Text:       "Which Article of the Constitution deals with the Right to Equality?",
		Type:       exam.TypeMCQ,
		Difficulty: exam.Medium,
		Options: []DraftOption{
			{Text: "Article 14", Correct: true},
			{Text: "Article 19"},
			{Text: "Article 21"},
			{Text: "Article 32"},
		},
		Explanation: "Article 14 guarantees equality before the law.",
	}
}

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Draft)
		wantErr bool
	}{
		{"valid", func(d *Draft) {}, false},
		{"empty text", func(d *Draft) { d.Text = "" }, true},
		{"bad difficulty", func(d *Draft) { d.Difficulty = "EXTREME" }, true},
		{"bad question type", func(d *Draft) { d.Type = "ESSAY" }, true},
		{"missing question type", func(d *Draft) { d.Type = "" }, true},
		{"one option", func(d *Draft) { d.Options = d.Options[:1] }, true},
		{"no correct option", func(d *Draft) { d.Options[0].Correct = false }, true},
		{"two correct options", func(d *Draft) { d.Options[1].Correct = true }, true},
		{"empty option text", func(d *Draft) { d.Options[2].Text = "" }, true},
		{"two options is enough", func(d *Draft) { d.Options = d.Options[:2] }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			err := ValidateDraft(d)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDraft() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFilterValid(t *testing.T) {
	good := validDraft()
	bad := validDraft()
	bad.Text = ""

	valid, errs := FilterValid([]Draft{good, bad, good})
	if len(valid) != 2 {
		t.Errorf("got %d valid drafts, want 2", len(valid))
	}
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	verr, ok := errs[0].(*ValidationError)
	if !ok {
		t.Fatalf("error type = %T, want *ValidationError", errs[0])
	}
	if verr.Index != 1 {
		t.Errorf("failed draft index = %d, want 1", verr.Index)
	}
}
