package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgreer/studyprep/internal/align"
	"github.com/mgreer/studyprep/internal/curriculum"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <course> <chapter-title>",
	Short: "Suggest standards for a chapter title",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		course, title := args[0], args[1]

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
		matcher := align.New(provider, catalog)

		suggestions := matcher.SuggestForTitle(ctx, title, course)
		if len(suggestions) == 0 {
			fmt.Println("No confident suggestions.")
			return nil
		}

		for _, sg := range suggestions {
			desc := ""
			if std, ok := catalog.StandardByID(sg.StandardID); ok {
				desc = std.Description
			}
			fmt.Printf("%-14s %.0f%%  %s\n", sg.StandardID, sg.Confidence*100, desc)
			if sg.Reason != "" {
				fmt.Printf("%-14s       %s\n", "", sg.Reason)
			}
		}
		return nil
	},
}
