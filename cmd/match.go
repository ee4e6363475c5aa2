package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgreer/studyprep/internal/align"
	"github.com/mgreer/studyprep/internal/curriculum"
	"github.com/mgreer/studyprep/internal/materials"
)

var matchCmd = &cobra.Command{
	Use:   "match <course> [file]",
	Short: "Extract study material and match it against standards",
	Long:  "Reads study material from a file (or stdin), extracts its content with the configured LLM, then matches the extracted topics and text against the course's standards.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		course := args[0]

		var raw []byte
		var err error
		if len(args) == 2 {
			raw, err = os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read material: %w", err)
			}
		} else {
			raw, err = io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
		}
		if len(strings.TrimSpace(string(raw))) == 0 {
			return fmt.Errorf("no material text provided")
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		provider, cfg, err := newProvider(ctx, s)
		if err != nil {
			return err
		}

		extractor := materials.New(provider, cfg.Retry)
		extraction, err := extractor.ExtractText(ctx, string(raw))
		if err != nil {
			return fmt.Errorf("extract content: %w", err)
		}

		fmt.Printf("Document type: %s (confidence %.0f%%)\n", extraction.DocumentType, extraction.Confidence*100)
		if len(extraction.Topics) > 0 {
			fmt.Printf("Topics:        %s\n", strings.Join(extraction.Topics, ", "))
		}
		if len(extraction.Problems) > 0 {
			fmt.Printf("Problems:      %d found\n", len(extraction.Problems))
		}

		catalog := curriculum.NewCatalog()
		matcher := align.New(provider, catalog)

		matches := matcher.MatchContent(ctx, extraction.Topics, extraction.ExtractedText, course)
		if len(matches) == 0 {
			fmt.Println("\nNo confident standard matches.")
			return nil
		}

		fmt.Println("\nMatched standards:")
		for _, m := range matches {
			desc := ""
			if std, ok := catalog.StandardByID(m.StandardID); ok {
				desc = std.Description
			}
			fmt.Printf("%-14s %.0f%%  %s\n", m.StandardID, m.Confidence*100, desc)
		}
		return nil
	},
}
