package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/examiz/internal/exam"
	"github.com/abhisek/examiz/internal/scoring"
)

var attemptCmd = &cobra.Command{
	Use:   "attempt",
	Short: "Start, submit and list test attempts",
}

var attemptStartCmd = &cobra.Command{
	Use:   "start <test-id>",
	Short: "Start an attempt (resumes an in-progress one)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		testID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid test id %q", args[0])
		}

		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}
		defer engine.Close()

		attempt, created, err := engine.Scoring.StartAttempt(cmd.Context(), testID, currentUser(cmd))
		if err != nil {
			return err
		}

		if created {
			fmt.Printf("Attempt %d started (%s), %d marks total\n",
				attempt.ID, attempt.PublicID, attempt.TotalMarks)
		} else {
			fmt.Printf("Resuming attempt %d (%s), started %s\n",
				attempt.ID, attempt.PublicID, attempt.StartedAt.Local().Format("2006-01-02 15:04"))
		}

		// Print the snapshot so answers can be filled in.
		test, err := engine.Store.Tests().ByID(cmd.Context(), attempt.TestID)
		if err != nil {
			return err
		}
		questions, err := engine.Store.Questions().ByIDs(cmd.Context(), test.QuestionIDs)
		if err != nil {
			return err
		}
		for i, q := range questions {
			fmt.Printf("\n%d. [%s] %s\n", i+1, q.Difficulty, q.Text)
			for _, opt := range q.Options {
				fmt.Printf("   (%d) %s\n", opt.ID, opt.Text)
			}
		}
		fmt.Printf("\nSubmit with: examiz attempt submit %d --answers answers.json\n", attempt.ID)
		return nil
	},
}

// answerFile is one entry of the --answers JSON array.
type answerFile struct {
	QuestionID            int   `json:"question_id"`
	SelectedOptionID      int   `json:"selected_option_id"`
	FirstSelectedOptionID int   `json:"first_selected_option_id"`
	TimeSpentSeconds      int   `json:"time_spent_seconds"`
	SelectionChangeCount  int   `json:"selection_change_count"`
	HoverCount            int   `json:"hover_count"`
	EliminatedOptionIDs   []int `json:"eliminated_option_ids"`
}

var attemptSubmitCmd = &cobra.Command{
	Use:   "submit <attempt-id>",
	Short: "Submit answers and score the attempt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		attemptID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid attempt id %q", args[0])
		}
		answersPath, _ := cmd.Flags().GetString("answers")

		raw, err := os.ReadFile(answersPath)
		if err != nil {
			return fmt.Errorf("read answers file: %w", err)
		}
		var entries []answerFile
		if err := json.Unmarshal(raw, &entries); err != nil {
			return fmt.Errorf("parse answers file: %w", err)
		}

		inputs := make([]scoring.AnswerInput, len(entries))
		for i, e := range entries {
			inputs[i] = scoring.AnswerInput{
				QuestionID:            e.QuestionID,
				SelectedOptionID:      e.SelectedOptionID,
				FirstSelectedOptionID: e.FirstSelectedOptionID,
				TimeSpentSeconds:      e.TimeSpentSeconds,
				SelectionChangeCount:  e.SelectionChangeCount,
				HoverCount:            e.HoverCount,
				EliminatedOptionIDs:   e.EliminatedOptionIDs,
			}
		}

		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}
		defer engine.Close()

		result, err := engine.Scoring.Submit(cmd.Context(), attemptID, currentUser(cmd), inputs)
		if err != nil {
			return err
		}

		fmt.Printf("Scored %d/%d\n\n", result.Attempt.Score, result.Attempt.TotalMarks)
		for i, q := range result.Questions {
			mark := "·"
			switch {
			case !q.Answered:
				mark = "—"
			case q.Correct:
				mark = "✓"
			default:
				mark = "✗"
			}
			fmt.Printf("%2d. %s %s\n", i+1, mark, q.Text)
			if q.Answered && !q.Correct && q.Explanation != "" {
				fmt.Printf("      %s\n", q.Explanation)
			}
		}
		fmt.Printf("\nAnalyze with: examiz analyze %d\n", result.Attempt.ID)
		return nil
	},
}

var attemptListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your attempts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}
		defer engine.Close()

		attempts, err := engine.Scoring.ListAttempts(cmd.Context(), currentUser(cmd), limit)
		if err != nil {
			return err
		}
		if len(attempts) == 0 {
			fmt.Println("No attempts yet.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-12s  %s\n", "ID", "Started", "Status", "Score")
		for _, a := range attempts {
			score := "-"
			if a.Status == exam.AttemptCompleted {
				score = fmt.Sprintf("%d/%d", a.Score, a.TotalMarks)
			}
			fmt.Printf("%-5d  %-19s  %-12s  %s\n",
				a.ID, a.StartedAt.Local().Format("2006-01-02 15:04:05"), a.Status, score)
		}
		return nil
	},
}

func init() {
	attemptSubmitCmd.Flags().String("answers", "answers.json", "JSON file with per-question answer telemetry")
	attemptListCmd.Flags().Int("limit", 20, "Maximum attempts to list")

	attemptCmd.AddCommand(attemptStartCmd)
	attemptCmd.AddCommand(attemptSubmitCmd)
	attemptCmd.AddCommand(attemptListCmd)
}
