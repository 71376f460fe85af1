package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/examiz/internal/assembly"
	"github.com/abhisek/examiz/internal/exam"
)

var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Assemble a new test",
	Long: `Assemble a test from the question bank for a subject, optional topic,
and difficulty. Shortfalls are covered by real-time AI generation when a
provider is configured, otherwise by the static fallback pool.`,
	RunE: runAssemble,
}

func init() {
	assembleCmd.Flags().String("subject", "", "Subject name, e.g. History (required)")
	assembleCmd.Flags().String("topic", "", "Topic name within the subject")
	assembleCmd.Flags().String("difficulty", "MEDIUM", "Difficulty floor: EASY, MEDIUM or HARD")
	assembleCmd.Flags().Int("count", 10, "Number of questions")
	assembleCmd.Flags().String("context-file", "", "File with study material to ground generated questions")
	_ = assembleCmd.MarkFlagRequired("subject")
}

func runAssemble(cmd *cobra.Command, args []string) error {
	subjectName, _ := cmd.Flags().GetString("subject")
	topicName, _ := cmd.Flags().GetString("topic")
	difficulty, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")
	contextFile, _ := cmd.Flags().GetString("context-file")

	engine, err := newEngine(cmd)
	if err != nil {
		return err
	}
	defer engine.Close()

	ctx := cmd.Context()
	subject, err := engine.Store.Subjects().Ensure(ctx, subjectName)
	if err != nil {
		return fmt.Errorf("resolve subject: %w", err)
	}

	req := assembly.Request{
		UserID:     currentUser(cmd),
		SubjectID:  subject.ID,
		Difficulty: exam.Difficulty(strings.ToUpper(difficulty)),
		Count:      count,
	}
	if topicName != "" {
		topic, err := engine.Store.Topics().Ensure(ctx, subject.ID, topicName)
		if err != nil {
			return fmt.Errorf("resolve topic: %w", err)
		}
		req.TopicID = topic.ID
	}
	if contextFile != "" {
		material, err := os.ReadFile(contextFile)
		if err != nil {
			return fmt.Errorf("read context file: %w", err)
		}
		req.Context = string(material)
	}

	test, err := engine.Assembler.Assemble(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("Test %d assembled (%s)\n", test.ID, test.PublicID)
	fmt.Printf("  %s / %s, %d questions, %d marks, %d minutes\n",
		subjectName, orDash(topicName), test.TotalQuestions, test.TotalMarks, test.DurationMinutes)
	fmt.Printf("\nStart it with: examiz attempt start %d\n", test.ID)
	return nil
}

var remedialCmd = &cobra.Command{
	Use:   "remedial <attempt-id>",
	Short: "Assemble a remedial test from a completed attempt's weak topics",
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

		test, err := engine.Assembler.AssembleRemedial(cmd.Context(), attemptID, currentUser(cmd))
		if err != nil {
			return err
		}

		fmt.Printf("Remedial test %d assembled (%s): %d questions, %d minutes\n",
			test.ID, test.PublicID, test.TotalQuestions, test.DurationMinutes)
		fmt.Printf("\nStart it with: examiz attempt start %d\n", test.ID)
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
