package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgreer/studyprep/internal/curriculum"
	"github.com/mgreer/studyprep/internal/problemgen"
	"github.com/mgreer/studyprep/internal/session"
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate a batch of practice problems and start a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := args[0]
		difficulty, _ := cmd.Flags().GetString("difficulty")
		count, _ := cmd.Flags().GetInt("count")
		course, _ := cmd.Flags().GetString("course")
		grade, _ := cmd.Flags().GetInt("grade")
		level, _ := cmd.Flags().GetString("level")
		standardIDs, _ := cmd.Flags().GetStringSlice("standard")
		materialFile, _ := cmd.Flags().GetString("material")

		materialContext := ""
		if materialFile != "" {
			raw, err := os.ReadFile(materialFile)
			if err != nil {
				return fmt.Errorf("read material: %w", err)
			}
			materialContext = string(raw)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		provider, _, err := newProvider(ctx, s)
		if err != nil {
			return err
		}

		catalog := curriculum.NewCatalog()
		gen := problemgen.New(provider, catalog)

		input := problemgen.GenerateInput{
			Topic:           topic,
			Difficulty:      problemgen.Difficulty(difficulty),
			Count:           count,
			MaterialContext: materialContext,
			Course: problemgen.CourseContext{
				Grade:        grade,
				Level:        level,
				CourseName:   course,
				ChapterTitle: topic,
				StandardIDs:  standardIDs,
			},
		}

		problems, err := gen.Generate(ctx, input)
		if err != nil {
			return fmt.Errorf("generate problems: %w", err)
		}
		if len(problems) < count {
			fmt.Fprintf(os.Stderr, "Warning: recovered %d of %d requested problems\n", len(problems), count)
		}

		stored, err := s.CreateProblems(ctx, problems)
		if err != nil {
			return fmt.Errorf("store problems: %w", err)
		}

		ids := make([]string, len(stored))
		for i, p := range stored {
			ids[i] = p.ID
		}
		sess, err := s.CreateSession(ctx, &session.Session{
			Name:          topic,
			Difficulty:    input.Difficulty,
			TotalProblems: len(ids),
			ProblemIDs:    ids,
		})
		if err != nil {
			return fmt.Errorf("create session: %w", err)
		}

		fmt.Printf("Created session %s with %d %s problems on %q.\n",
			sess.ID, len(ids), input.Difficulty, topic)
		for i, p := range stored {
			fmt.Printf("\n%d. %s\n", i+1, firstLine(p.QuestionText))
		}
		fmt.Printf("\nRun 'studyprep play %s' to start.\n", sess.ID)
		return nil
	},
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func init() {
	generateCmd.Flags().StringP("difficulty", "d", "medium", "Difficulty: easy, medium, or hard")
	generateCmd.Flags().IntP("count", "n", 5, "Number of problems to generate")
	generateCmd.Flags().StringP("course", "c", "", "Course name for grade-level context")
	generateCmd.Flags().Int("grade", 0, "Grade level (e.g. 10)")
	generateCmd.Flags().String("level", "", "Course level (e.g. Honors, AP)")
	generateCmd.Flags().StringSlice("standard", nil, "Standard ID to align problems with (repeatable)")
	generateCmd.Flags().StringP("material", "m", "", "File with study material to ground problems in")
}
