package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lightxeditor/lightx-go/pkg/features"
)

func init() {
	RootCmd.AddCommand(promptsCmd)
}

var promptsCmd = &cobra.Command{
	Use:         "prompts <feature> [category]",
	Short:       "Show curated prompt suggestions for a feature",
	Args:        cobra.RangeArgs(1, 2),
	Annotations: map[string]string{annotationLocal: "true"},
	RunE: func(_ *cobra.Command, args []string) error {
		feature := args[0]

		categories := features.Categories(feature)
		if len(categories) == 0 {
			return fmt.Errorf("no prompt catalog for feature %q", feature)
		}

		if len(args) == 1 {
			fmt.Printf("Categories for %s: %s\n", feature, strings.Join(categories, ", "))
			return nil
		}

		suggestions := features.Suggestions(feature, args[1])
		if len(suggestions) == 0 {
			return fmt.Errorf("no suggestions for %s/%s (categories: %s)", feature, args[1], strings.Join(categories, ", "))
		}
		for _, s := range suggestions {
			fmt.Println(s)
		}
		return nil
	},
}
