package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/examiz/internal/exam"
	"github.com/abhisek/examiz/internal/insight"
	"github.com/abhisek/examiz/internal/ui/theme"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <attempt-id>",
	Short: "Show the diagnostic analysis of a completed attempt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		attemptID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid attempt id %q", args[0])
		}

		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}
		defer engine.Close()

		analysis, err := engine.Analyzer.Analyze(cmd.Context(), attemptID, currentUser(cmd))
		if err != nil {
			return err
		}

		fmt.Println(renderAnalysis(analysis))
		return nil
	},
}

func renderAnalysis(a *insight.Analysis) string {
	var sections []string

	header := theme.Title.Render(fmt.Sprintf("Attempt %d", a.Attempt.ID)) + "  " +
		theme.Subtitle.Render(fmt.Sprintf("scored %d/%d", a.Attempt.Score, a.Attempt.TotalMarks))
	sections = append(sections, header)

	sections = append(sections, theme.Card.Render(renderMetrics(a.Metrics)))

	if len(a.Topics) > 0 {
		sections = append(sections, theme.Card.Render(renderTopics(a.Topics)))
	}

	sections = append(sections, theme.Card.Render(renderNarrative(a)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderMetrics(m exam.Metrics) string {
	rows := []struct {
		label string
		value string
	}{
		{"Accuracy", fmt.Sprintf("%.2f%%", m.Accuracy)},
		{"Attempt ratio", fmt.Sprintf("%.2f%%", m.AttemptRatio)},
		{"Negative marks", fmt.Sprintf("%.2f", m.NegativeMarks)},
		{"First instinct", fmt.Sprintf("%.2f%%", m.FirstInstinctAccuracy)},
		{"Elimination efficiency", fmt.Sprintf("%.2f%%", m.EliminationEfficiency)},
		{"Impulsive errors", strconv.Itoa(m.ImpulsiveErrorCount)},
		{"Overthinking errors", strconv.Itoa(m.OverthinkingErrorCount)},
		{"Guess probability", fmt.Sprintf("%.2f%%", m.GuessProbability)},
		{"Fatigue", fmt.Sprintf("%s (drop %d)", m.FatigueIndex, m.AccuracyDrop)},
		{"Risk appetite", fmt.Sprintf("%.2f%%", m.RiskAppetite)},
		{"Confidence index", fmt.Sprintf("%.2f", m.ConfidenceIndex)},
		{"Consistency index", fmt.Sprintf("%.2f", m.ConsistencyIndex)},
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Behavioral metrics") + "\n\n")

	// Quarter accuracies in order, not map order.
	keys := make([]string, 0, len(m.CognitiveBreakdown))
	for k := range m.CognitiveBreakdown {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%s %s\n",
			theme.Label.Render(fmt.Sprintf("%-24s", r.label)),
			theme.Value.Render(r.value)))
	}
	for _, k := range keys {
		label := strings.ReplaceAll(strings.TrimSuffix(k, "_accuracy"), "q", "Quarter ")
		b.WriteString(fmt.Sprintf("%s %s\n",
			theme.Label.Render(fmt.Sprintf("%-24s", label)),
			theme.Value.Render(fmt.Sprintf("%.2f%%", m.CognitiveBreakdown[k]))))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderTopics(topics []insight.TopicPerformance) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Topics") + "\n\n")
	for _, tp := range topics {
		status := theme.Good
		switch tp.Status {
		case insight.StatusWeak:
			status = theme.Bad
		case insight.StatusNeedPractice:
			status = theme.Caution
		}
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			theme.Label.Render(fmt.Sprintf("%-28s", tp.TopicName)),
			theme.Value.Render(fmt.Sprintf("%d/%d (%.2f%%, avg %.0fs)", tp.Correct, tp.Total, tp.Accuracy, tp.AvgTimeSeconds)),
			status.Render(tp.Status)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderNarrative(a *insight.Analysis) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Diagnosis") + "\n\n")
	b.WriteString(theme.Body.Render(a.Narrative.DiagnosticSummary) + "\n")

	for _, sw := range a.Narrative.StrengthWeaknessPairs {
		b.WriteString("\n" + theme.Value.Render(sw.Point) + "\n")
		b.WriteString(theme.Hint.Render(sw.Strategy) + "\n")
	}

	if len(a.MistakeTally) > 0 {
		b.WriteString("\n" + theme.Subtitle.Render("Mistake types") + "\n")
		types := make([]string, 0, len(a.MistakeTally))
		for t := range a.MistakeTally {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			b.WriteString(fmt.Sprintf("  %s ×%d\n", t, a.MistakeTally[t]))
		}
	}

	if a.Narrative.StudyNotes != "" {
		b.WriteString("\n" + theme.Subtitle.Render("Study notes") + "\n")
		b.WriteString(theme.Body.Render(a.Narrative.StudyNotes) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
