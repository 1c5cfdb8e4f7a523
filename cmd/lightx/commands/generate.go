package commands

import (
	"github.com/spf13/cobra"

	"github.com/lightxeditor/lightx-go/pkg/features"
)

// Text-only generators; no image upload involved.

func init() {
	designCmd.Flags().StringP("prompt", "p", "", "Text prompt describing the design")
	designCmd.Flags().StringP("resolution", "r", "1:1", "Output aspect ratio: 1:1, 9:16, 3:4, 2:3, 16:9 or 4:3")
	designCmd.Flags().Bool("enhance", true, "Let the service enhance the prompt")
	_ = designCmd.MarkFlagRequired("prompt")
	addOutputFlags(designCmd)

	logoCmd.Flags().StringP("prompt", "p", "", "Text prompt describing the logo")
	logoCmd.Flags().Bool("enhance", true, "Let the service enhance the prompt")
	_ = logoCmd.MarkFlagRequired("prompt")
	addOutputFlags(logoCmd)

	RootCmd.AddCommand(designCmd)
	RootCmd.AddCommand(logoCmd)
}

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Generate a design from text",
	RunE: func(cmd *cobra.Command, _ []string) error {
		prompt, _ := cmd.Flags().GetString("prompt")
		resolution, _ := cmd.Flags().GetString("resolution")
		enhance, _ := cmd.Flags().GetBool("enhance")
		return runRequest(cmd, features.AIDesignRequest{
			TextPrompt:    prompt,
			Resolution:    resolution,
			EnhancePrompt: enhance,
		})
	},
}

var logoCmd = &cobra.Command{
	Use:   "logo",
	Short: "Generate a logo from text",
	RunE: func(cmd *cobra.Command, _ []string) error {
		prompt, _ := cmd.Flags().GetString("prompt")
		enhance, _ := cmd.Flags().GetBool("enhance")
		return runRequest(cmd, features.LogoGeneratorRequest{
			TextPrompt:    prompt,
			EnhancePrompt: enhance,
		})
	},
}
