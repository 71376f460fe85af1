package authoring

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const systemPrompt = `You are a senior UPSC examiner creating multiple choice practice questions for civil services aspirants.

Rules:
- Generate exactly the requested number of questions for the given subject, topic, and difficulty.
- Each question must be factually accurate and phrased in the style of actual UPSC preliminary examination questions.
- Each question has exactly 4 options. Exactly one option is correct. Distractors must be plausible, reflecting common misconceptions rather than obviously wrong statements.
- The difficulty of each question must be at the requested level or harder, never easier.
- Provide a detailed explanation for each question covering why the correct option is right and why the distractors are wrong.
- When study material is provided, ground the questions strictly in that material.
- Do not repeat any question from the "already in the bank" list.`

// truncationMarker is appended when study material exceeds the limit.
const truncationMarker = "... [TRUNCATED FOR PROMPT]"

// truncateContext caps study material at limit bytes, cutting at a rune
// boundary so multi-byte text stays valid UTF-8.
func truncateContext(material string, limit int) string {
	if limit <= 0 || len(material) <= limit {
		return material
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(material[cut]) {
		cut--
	}
	return material[:cut] + truncationMarker
}

// buildUserMessage constructs the user message from the request.
func buildUserMessage(req GenerateRequest, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", req.Subject)
	if req.Topic != "" {
		fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	}
	fmt.Fprintf(&b, "Difficulty: %s or harder\n", req.DifficultyFloor)
	fmt.Fprintf(&b, "Number of questions: %d\n", req.Count)

	b.WriteString("\nAlready in the bank:\n")
	b.WriteString(buildAvoidList(req.AvoidTexts, cfg.MaxAvoidTexts))

	if req.Context != "" {
		b.WriteString("\n\nStudy material:\n")
		b.WriteString(truncateContext(req.Context, cfg.ContextLimit))
	}

	return b.String()
}

// buildAvoidList formats existing question texts for the prompt,
// respecting the max limit.
func buildAvoidList(texts []string, max int) string {
	if len(texts) == 0 {
		return "None"
	}
	if max > 0 && len(texts) > max {
		texts = texts[len(texts)-max:]
	}
	var b strings.Builder
	for i, t := range texts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, t)
	}
	return strings.TrimRight(b.String(), "\n")
}
