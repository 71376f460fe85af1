package authoring

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/abhisek/examiz/internal/exam"
)

func TestTruncateContext(t *testing.T) {
	tests := []struct {
		name     string
		material string
		limit    int
		want     string
	}{
		{"under limit", "short material", 100, "short material"},
		{"at limit", "12345", 5, "12345"},
		{"over limit", "1234567890", 5, "12345" + truncationMarker},
		{"zero limit disables", "anything", 0, "anything"},
		// "अशोक" is 4 runes of 3 bytes each; a 7-byte limit falls inside
		// the third rune and must back up to the rune boundary.
		{"multi-byte boundary", "अशोक", 7, "अश" + truncationMarker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateContext(tt.material, tt.limit)
			if got != tt.want {
				t.Errorf("truncateContext() = %q, want %q", got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncateContext() produced invalid UTF-8: %q", got)
			}
		})
	}
}

func TestBuildUserMessage(t *testing.T) {
	req := GenerateRequest{
		Subject:         "History",
		Topic:           "Mughal Empire",
		DifficultyFloor: exam.Medium,
		Count:           5,
		Context:         "Akbar ruled from 1556 to 1605.",
		AvoidTexts:      []string{"Who was Akbar's regent?"},
	}
	msg := buildUserMessage(req, DefaultConfig())

	for _, want := range []string{
		"Subject: History",
		"Topic: Mughal Empire",
		"Difficulty: MEDIUM or harder",
		"Number of questions: 5",
		"1. Who was Akbar's regent?",
		"Akbar ruled from 1556 to 1605.",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildUserMessageOmitsEmptySections(t *testing.T) {
	req := GenerateRequest{
		Subject:         "Polity",
		DifficultyFloor: exam.Easy,
		Count:           3,
	}
	msg := buildUserMessage(req, DefaultConfig())

	if strings.Contains(msg, "Topic:") {
		t.Error("empty topic must be omitted")
	}
	if strings.Contains(msg, "Study material:") {
		t.Error("empty context must be omitted")
	}
	if !strings.Contains(msg, "Already in the bank:\nNone") {
		t.Errorf("empty avoid list must read None:\n%s", msg)
	}
}

func TestBuildAvoidListCapsAtMax(t *testing.T) {
	texts := []string{"q1", "q2", "q3", "q4"}
	got := buildAvoidList(texts, 2)

	if strings.Contains(got, "q1") || strings.Contains(got, "q2") {
		t.Errorf("oldest entries must be dropped: %q", got)
	}
	if !strings.Contains(got, "q3") || !strings.Contains(got, "q4") {
		t.Errorf("newest entries must be kept: %q", got)
	}
}
