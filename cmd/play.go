package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgreer/studyprep/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play <session-id>",
	Short: "Work through a practice session",
	Long:  "Runs an interactive loop over the session's problems. Use --review to step through a completed session with all solutions visible.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := args[0]
		review, _ := cmd.Flags().GetBool("review")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()

		var runner *session.Runner
		if review {
			runner, err = session.OpenReview(ctx, s, sessionID)
		} else {
			sess, gerr := s.GetSession(ctx, sessionID)
			if gerr != nil {
				return fmt.Errorf("load session: %w", gerr)
			}
			runner, err = session.StartLive(ctx, s, sessionID, sess.ProblemIDs)
		}
		if err != nil {
			return fmt.Errorf("open session: %w", err)
		}

		fmt.Printf("Session %q: %d problems\n", runner.Session().Name, runner.Len())
		fmt.Println("Commands: [s]olution  [c]orrect  [x] incorrect  [n]ext  [p]rev  [q]uit")

		in := bufio.NewScanner(os.Stdin)
		for {
			printProblem(runner)
			if runner.Completed() && !runner.ReviewMode() {
				sess := runner.Session()
				fmt.Printf("\nSession complete: %d correct, %d incorrect.\n",
					sess.CorrectCount, sess.IncorrectCount)
				return nil
			}

			fmt.Print("> ")
			if !in.Scan() {
				return in.Err()
			}
			switch strings.TrimSpace(strings.ToLower(in.Text())) {
			case "s", "solution":
				runner.Reveal()
			case "c", "correct":
				if err := runner.RecordGrade(ctx, true); err != nil {
					fmt.Println(gradeMessage(err))
				}
			case "x", "incorrect":
				if err := runner.RecordGrade(ctx, false); err != nil {
					fmt.Println(gradeMessage(err))
				}
			case "n", "next":
				runner.Next()
			case "p", "prev":
				runner.Prev()
			case "q", "quit":
				return nil
			default:
				fmt.Println("Unknown command.")
			}
		}
	},
}

func printProblem(r *session.Runner) {
	p := r.Current()
	if p == nil {
		return
	}
	fmt.Printf("\n[%d/%d] %s\n", r.CurrentIndex()+1, r.Len(), p.QuestionText)
	if r.SolutionRevealed() {
		fmt.Printf("\nSolution:\n%s\n", p.SolutionText)
	}
	if r.Answered(r.CurrentIndex()) {
		fmt.Println("(already graded)")
	}
}

func gradeMessage(err error) string {
	switch {
	case err == session.ErrSolutionHidden:
		return "Reveal the solution first ('s')."
	case err == session.ErrAlreadyAnswered:
		return "This problem is already graded."
	case err == session.ErrReviewMode:
		return "Review sessions cannot be graded."
	case err == session.ErrSessionCompleted:
		return "This session is already complete."
	}
	return fmt.Sprintf("Grade failed: %v", err)
}

func init() {
	playCmd.Flags().Bool("review", false, "Open a completed session in review mode")
}
