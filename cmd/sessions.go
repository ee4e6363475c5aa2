package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List practice sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		sessions, err := s.ListSessions(cmd.Context())
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions yet. Run 'studyprep generate' to create one.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-9s  %-8s  %s\n",
			"ID", "Started", "Status", "Score", "Name")
		fmt.Println(strings.Repeat("─", 96))
		for _, sess := range sessions {
			score := fmt.Sprintf("%d/%d", sess.CorrectCount, sess.TotalProblems)
			fmt.Printf("%-36s  %-19s  %-9s  %-8s  %s\n",
				sess.ID,
				sess.StartedAt.Local().Format("2006-01-02 15:04:05"),
				sess.Status,
				score,
				sess.Name,
			)
		}
		return nil
	},
}
