package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgreer/studyprep/internal/curriculum"
)

var standardsCmd = &cobra.Command{
	Use:   "standards [course]",
	Short: "List curriculum standards, grouped by domain",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := curriculum.NewCatalog()

		if len(args) == 0 {
			fmt.Println("Available courses:")
			for _, course := range catalog.Courses() {
				subject := curriculum.SubjectForCourse(course)
				fmt.Printf("  %-22s  %s\n", course, subject)
			}
			return nil
		}

		course := args[0]
		domains := catalog.DomainsForCourse(course)
		if len(domains) == 0 {
			return fmt.Errorf("unknown course %q (run 'studyprep standards' for the list)", course)
		}

		fmt.Println(course)
		fmt.Println(strings.Repeat("─", 72))
		for _, group := range domains {
			fmt.Printf("\n%s\n", group.Domain)
			for _, std := range group.Standards {
				fmt.Printf("  %-14s %s\n", std.ID, std.Description)
				if len(std.KeyVocabulary) > 0 {
					fmt.Printf("  %-14s vocab: %s\n", "", strings.Join(std.KeyVocabulary, ", "))
				}
			}
		}
		return nil
	},
}
