package authoring

import (
	"context"
	"math/rand/v2"

	"github.com/abhisek/examiz/internal/exam"
)

// poolEntry is one pre-authored question in the fallback pool.
type poolEntry struct {
	Subject string
	Topic   string
	Draft   Draft
}

// fallbackPool holds pre-authored questions served when the LLM provider
// is unavailable or returns unusable output.
var fallbackPool = []poolEntry{
	{
		Subject: "History",
		Topic:   "Ancient India",
		Draft: Draft{
			Type:       exam.TypeMCQ,
			Text:       "With reference to the history of ancient India, Bhavabhuti, Hastimalla and Kshemeshvara were famous?",
			Difficulty: exam.Hard,
			Options: []DraftOption{
				{Text: "Jain monks"},
				{Text: "Playwrights", Correct: true},
				{Text: "Temple architects"},
				{Text: "Philosophers"},
			},
			Explanation: "These were famous playwrights in ancient India. Bhavabhuti wrote Mahaviracharita, Uttaramacharita and Malatimadhava.",
		},
	},
	{
		Subject: "Environment",
		Topic:   "Fauna",
		Draft: Draft{
			Type:       exam.TypeMCQ,
			Text:       "Which one of the following is not a bird?",
			Difficulty: exam.Medium,
			Options: []DraftOption{
				{Text: "Golden Mahseer", Correct: true},
				{Text: "Indian Nightjar"},
				{Text: "Spoonbill"},
				{Text: "White Ibis"},
			},
			Explanation: "Golden Mahseer is a large cyprinid and is considered a fish, not a bird.",
		},
	},
	{
		Subject: "Economy",
		Topic:   "International Institutions",
		Draft: Draft{
			Type:       exam.TypeMCQ,
			Text:       "The 'Global Financial Stability Report' is prepared by the?",
			Difficulty: exam.Easy,
			Options: []DraftOption{
				{Text: "European Central Bank"},
				{Text: "International Monetary Fund", Correct: true},
				{Text: "International Bank for Reconstruction and Development"},
				{Text: "Organization for Economic Cooperation and Development"},
			},
			Explanation: "The Global Financial Stability Report (GFSR) is a semiannual report by the International Monetary Fund (IMF).",
		},
	},
	{
		Subject: "Geography",
		Topic:   "World Geography",
		Draft: Draft{
			Type:       exam.TypeMCQ,
			Text:       "Which of the following is the correct sequence of the occurrence of the following cities in South-East Asia as one proceeds from South to North?",
			Difficulty: exam.Hard,
			Options: []DraftOption{
				{Text: "Bangkok - Singapore - Jakarta - Hanoi"},
				{Text: "Jakarta - Singapore - Bangkok - Hanoi", Correct: true},
				{Text: "Jakarta - Bangkok - Singapore - Hanoi"},
				{Text: "Singapore - Jakarta - Bangkok - Hanoi"},
			},
			Explanation: "The correct order from South to North is: Jakarta (Indonesia), Singapore, Bangkok (Thailand), Hanoi (Vietnam).",
		},
	},
}

// FallbackGenerator serves drafts from the static pool. It never fails
// and never calls a remote service.
type FallbackGenerator struct{}

// Generate returns up to req.Count pool drafts. Entries matching the
// requested subject are preferred; when none match, the whole pool is
// eligible. Results are shuffled.
func (FallbackGenerator) Generate(_ context.Context, req GenerateRequest) ([]Draft, error) {
	matched := make([]Draft, 0, len(fallbackPool))
	for _, e := range fallbackPool {
		if e.Subject == req.Subject {
			matched = append(matched, e.Draft)
		}
	}
	if len(matched) == 0 {
		for _, e := range fallbackPool {
			matched = append(matched, e.Draft)
		}
	}

	rand.Shuffle(len(matched), func(i, j int) {
		matched[i], matched[j] = matched[j], matched[i]
	})
	if req.Count > 0 && len(matched) > req.Count {
		matched = matched[:req.Count]
	}
	return matched, nil
}
