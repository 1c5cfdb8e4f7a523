package commands

import (
	"github.com/spf13/cobra"

	"github.com/lightxeditor/lightx-go/pkg/api/client"
	"github.com/lightxeditor/lightx-go/pkg/features"
)

// The stylize features share one payload shape: a subject image plus an
// optional style reference image and/or text prompt.

type stylizeSpec struct {
	use   string
	short string
	build func(imageURL, styleURL, prompt string) client.Request
}

var stylizeSpecs = []stylizeSpec{
	{
		use:   "cartoon <image>",
		short: "Turn a photo into a cartoon character",
		build: func(img, style, prompt string) client.Request {
			return features.CartoonRequest{ImageURL: img, StyleImageURL: style, TextPrompt: prompt}
		},
	},
	{
		use:   "caricature <image>",
		short: "Generate a caricature",
		build: func(img, style, prompt string) client.Request {
			return features.CaricatureRequest{ImageURL: img, StyleImageURL: style, TextPrompt: prompt}
		},
	},
	{
		use:   "avatar <image>",
		short: "Generate an AI avatar",
		build: func(img, style, prompt string) client.Request {
			return features.AvatarRequest{ImageURL: img, StyleImageURL: style, TextPrompt: prompt}
		},
	},
	{
		use:   "photoshoot <image>",
		short: "Stage an AI product photoshoot",
		build: func(img, style, prompt string) client.Request {
			return features.ProductPhotoshootRequest{ImageURL: img, StyleImageURL: style, TextPrompt: prompt}
		},
	},
	{
		use:   "portrait <image>",
		short: "Generate an AI portrait",
		build: func(img, style, prompt string) client.Request {
			return features.PortraitRequest{ImageURL: img, StyleImageURL: style, TextPrompt: prompt}
		},
	},
}

func init() {
	for _, spec := range stylizeSpecs {
		RootCmd.AddCommand(newStylizeCmd(spec))
	}
}

func newStylizeCmd(spec stylizeSpec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   spec.use,
		Short: spec.short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt, _ := cmd.Flags().GetString("prompt")
			stylePath, _ := cmd.Flags().GetString("style")

			paths := []string{args[0]}
			if stylePath != "" {
				paths = append(paths, stylePath)
			}
			return runJob(cmd, func(urls []string) (client.Request, error) {
				styleURL := ""
				if len(urls) > 1 {
					styleURL = urls[1]
				}
				return spec.build(urls[0], styleURL, prompt), nil
			}, paths...)
		},
	}
	cmd.Flags().StringP("prompt", "p", "", "Optional text prompt guiding the style")
	cmd.Flags().StringP("style", "s", "", "Optional style reference image file")
	addOutputFlags(cmd)
	return cmd
}
