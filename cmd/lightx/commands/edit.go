package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lightxeditor/lightx-go/pkg/api/client"
	"github.com/lightxeditor/lightx-go/pkg/features"
)

// Mask-driven and retouch commands. The mask convention is black background,
// white regions to edit; see the mask command for generating one locally.

func init() {
	removeBackgroundCmd.Flags().String("background", "", "Replacement background: color code, preset name or reference URL (empty removes it)")
	addOutputFlags(removeBackgroundCmd)

	addOutputFlags(cleanupCmd)

	expandCmd.Flags().Int("left", 0, "Pixels to expand on the left")
	expandCmd.Flags().Int("right", 0, "Pixels to expand on the right")
	expandCmd.Flags().Int("top", 0, "Pixels to expand on the top")
	expandCmd.Flags().Int("bottom", 0, "Pixels to expand on the bottom")
	addOutputFlags(expandCmd)

	replaceCmd.Flags().StringP("prompt", "p", "", "What to put in the masked region")
	_ = replaceCmd.MarkFlagRequired("prompt")
	addOutputFlags(replaceCmd)

	addOutputFlags(watermarkCmd)

	RootCmd.AddCommand(removeBackgroundCmd)
	RootCmd.AddCommand(cleanupCmd)
	RootCmd.AddCommand(expandCmd)
	RootCmd.AddCommand(replaceCmd)
	RootCmd.AddCommand(watermarkCmd)
}

var removeBackgroundCmd = &cobra.Command{
	Use:   "remove-background <image>",
	Short: "Remove or replace the image background",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		background, _ := cmd.Flags().GetString("background")
		return runJob(cmd, func(urls []string) (client.Request, error) {
			return features.RemoveBackgroundRequest{ImageURL: urls[0], Background: background}, nil
		}, args[0])
	},
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup <image> <mask>",
	Short: "Erase the regions marked white in the mask",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runJob(cmd, func(urls []string) (client.Request, error) {
			return features.CleanupPictureRequest{ImageURL: urls[0], MaskedImageURL: urls[1]}, nil
		}, args[0], args[1])
	},
}

var expandCmd = &cobra.Command{
	Use:   "expand <image>",
	Short: "Expand (outpaint) the image by per-side padding",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		left, _ := cmd.Flags().GetInt("left")
		right, _ := cmd.Flags().GetInt("right")
		top, _ := cmd.Flags().GetInt("top")
		bottom, _ := cmd.Flags().GetInt("bottom")
		return runJob(cmd, func(urls []string) (client.Request, error) {
			return features.ExpandPhotoRequest{
				ImageURL:      urls[0],
				LeftPadding:   left,
				RightPadding:  right,
				TopPadding:    top,
				BottomPadding: bottom,
			}, nil
		}, args[0])
	},
}

var replaceCmd = &cobra.Command{
	Use:   "replace <image> <mask>",
	Short: "Replace the masked region with what the prompt describes",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, _ := cmd.Flags().GetString("prompt")
		return runJob(cmd, func(urls []string) (client.Request, error) {
			if len(urls) != 2 {
				return nil, fmt.Errorf("expected 2 uploaded images, got %d", len(urls))
			}
			return features.ReplaceItemRequest{
				ImageURL:       urls[0],
				MaskedImageURL: urls[1],
				TextPrompt:     prompt,
			}, nil
		}, args[0], args[1])
	},
}

var watermarkCmd = &cobra.Command{
	Use:   "watermark <image>",
	Short: "Remove watermarks from the image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runJob(cmd, func(urls []string) (client.Request, error) {
			return features.WatermarkRemoverRequest{ImageURL: urls[0]}, nil
		}, args[0])
	},
}
