package commands

import (
	"github.com/spf13/cobra"

	"github.com/lightxeditor/lightx-go/pkg/api/client"
	"github.com/lightxeditor/lightx-go/pkg/features"
)

func init() {
	faceSwapCmd.Flags().StringP("face", "f", "", "Image file with the face to swap in")
	_ = faceSwapCmd.MarkFlagRequired("face")
	addOutputFlags(faceSwapCmd)

	tryonCmd.Flags().StringP("garment", "g", "", "Image file of the garment to try on")
	_ = tryonCmd.MarkFlagRequired("garment")
	addOutputFlags(tryonCmd)

	for _, c := range []*cobra.Command{outfitCmd, hairstyleCmd, haircolorCmd, headshotCmd} {
		c.Flags().StringP("prompt", "p", "", "Text prompt")
		_ = c.MarkFlagRequired("prompt")
		addOutputFlags(c)
	}

	filterCmd.Flags().StringP("prompt", "p", "", "Text prompt describing the filter")
	filterCmd.Flags().String("reference", "", "Optional filter reference image file")
	_ = filterCmd.MarkFlagRequired("prompt")
	addOutputFlags(filterCmd)

	for _, c := range []*cobra.Command{image2imageCmd, sketch2imageCmd} {
		c.Flags().StringP("prompt", "p", "", "Text prompt")
		c.Flags().Float64("strength", 0.5, "How strongly to restyle the source (0-1)")
		c.Flags().StringP("style", "s", "", "Optional style reference image file")
		c.Flags().Float64("style-strength", 0, "Style influence (0-1, with --style)")
		_ = c.MarkFlagRequired("prompt")
		addOutputFlags(c)
	}

	upscaleCmd.Flags().IntP("quality", "q", features.UpscaleQuality2x, "Upscale factor: 2 or 4")
	addOutputFlags(upscaleCmd)

	haircolorRGBCmd.Flags().String("hex", "", "Hex hair color, e.g. #FF0000")
	haircolorRGBCmd.Flags().Float64("strength", 0.5, "Color strength (0.1-1)")
	_ = haircolorRGBCmd.MarkFlagRequired("hex")
	addOutputFlags(haircolorRGBCmd)

	backgroundCmd.Flags().StringP("prompt", "p", "", "Text prompt describing the new background")
	_ = backgroundCmd.MarkFlagRequired("prompt")
	addOutputFlags(backgroundCmd)

	RootCmd.AddCommand(faceSwapCmd)
	RootCmd.AddCommand(tryonCmd)
	RootCmd.AddCommand(outfitCmd)
	RootCmd.AddCommand(hairstyleCmd)
	RootCmd.AddCommand(haircolorCmd)
	RootCmd.AddCommand(headshotCmd)
	RootCmd.AddCommand(filterCmd)
	RootCmd.AddCommand(image2imageCmd)
	RootCmd.AddCommand(sketch2imageCmd)
	RootCmd.AddCommand(upscaleCmd)
	RootCmd.AddCommand(haircolorRGBCmd)
	RootCmd.AddCommand(backgroundCmd)
}

var faceSwapCmd = &cobra.Command{
	Use:   "face-swap <image>",
	Short: "Swap a face onto the source image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		facePath, _ := cmd.Flags().GetString("face")
		return runJob(cmd, func(urls []string) (client.Request, error) {
			return features.FaceSwapRequest{ImageURL: urls[0], StyleImageURL: urls[1]}, nil
		}, args[0], facePath)
	},
}

var tryonCmd = &cobra.Command{
	Use:   "tryon <image>",
	Short: "Virtually try on a garment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		garmentPath, _ := cmd.Flags().GetString("garment")
		return runJob(cmd, func(urls []string) (client.Request, error) {
			return features.VirtualTryOnRequest{ImageURL: urls[0], StyleImageURL: urls[1]}, nil
		}, args[0], garmentPath)
	},
}

var outfitCmd = &cobra.Command{
	Use:   "outfit <image>",
	Short: "Redress the subject per the prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, _ := cmd.Flags().GetString("prompt")
		return runJob(cmd, func(urls []string) (client.Request, error) {
			return features.OutfitRequest{ImageURL: urls[0], TextPrompt: prompt}, nil
		}, args[0])
	},
}

var hairstyleCmd = &cobra.Command{
	Use:   "hairstyle <image>",
	Short: "Try a new hairstyle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, _ := cmd.Flags().GetString("prompt")
		return runJob(cmd, func(urls []string) (client.Request, error) {
			return features.HairstyleRequest{ImageURL: urls[0], TextPrompt: prompt}, nil
		}, args[0])
	},
}

var haircolorCmd = &cobra.Command{
	Use:   "haircolor <image>",
	Short: "Recolor hair per the prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, _ := cmd.Flags().GetString("prompt")
		return runJob(cmd, func(urls []string) (client.Request, error) {
			return features.HaircolorRequest{ImageURL: urls[0], TextPrompt: prompt}, nil
		}, args[0])
	},
}

var headshotCmd = &cobra.Command{
	Use:   "headshot <image>",
	Short: "Generate a professional headshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, _ := cmd.Flags().GetString("prompt")
		return runJob(cmd, func(urls []string) (client.Request, error) {
			return features.HeadshotRequest{ImageURL: urls[0], TextPrompt: prompt}, nil
		}, args[0])
	},
}

var filterCmd = &cobra.Command{
	Use:   "filter <image>",
	Short: "Apply an AI filter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, _ := cmd.Flags().GetString("prompt")
		referencePath, _ := cmd.Flags().GetString("reference")

		paths := []string{args[0]}
		if referencePath != "" {
			paths = append(paths, referencePath)
		}
		return runJob(cmd, func(urls []string) (client.Request, error) {
			req := features.AIFilterRequest{ImageURL: urls[0], TextPrompt: prompt}
			if len(urls) > 1 {
				req.FilterReferenceURL = urls[1]
			}
			return req, nil
		}, paths...)
	},
}

var image2imageCmd = &cobra.Command{
	Use:   "image2image <image>",
	Short: "Restyle an image with a prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImageTransform(cmd, args[0], false)
	},
}

var sketch2imageCmd = &cobra.Command{
	Use:   "sketch2image <sketch>",
	Short: "Render a sketch into a full image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImageTransform(cmd, args[0], true)
	},
}

// runImageTransform covers image2image and sketch2image, which share flags
// and payload shape.
func runImageTransform(cmd *cobra.Command, imagePath string, sketch bool) error {
	prompt, _ := cmd.Flags().GetString("prompt")
	strength, _ := cmd.Flags().GetFloat64("strength")
	stylePath, _ := cmd.Flags().GetString("style")
	styleStrength, _ := cmd.Flags().GetFloat64("style-strength")

	paths := []string{imagePath}
	if stylePath != "" {
		paths = append(paths, stylePath)
	}
	return runJob(cmd, func(urls []string) (client.Request, error) {
		styleURL := ""
		var stylePtr *float64
		if len(urls) > 1 {
			styleURL = urls[1]
			if cmd.Flags().Changed("style-strength") {
				stylePtr = &styleStrength
			}
		}
		if sketch {
			return features.Sketch2ImageRequest{
				ImageURL:      urls[0],
				Strength:      strength,
				TextPrompt:    prompt,
				StyleImageURL: styleURL,
				StyleStrength: stylePtr,
			}, nil
		}
		return features.Image2ImageRequest{
			ImageURL:      urls[0],
			Strength:      strength,
			TextPrompt:    prompt,
			StyleImageURL: styleURL,
			StyleStrength: stylePtr,
		}, nil
	}, paths...)
}

var upscaleCmd = &cobra.Command{
	Use:   "upscale <image>",
	Short: "Upscale an image 2x or 4x",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		quality, _ := cmd.Flags().GetInt("quality")
		return runJob(cmd, func(urls []string) (client.Request, error) {
			return features.UpscaleRequest{ImageURL: urls[0], Quality: quality}, nil
		}, args[0])
	},
}

var haircolorRGBCmd = &cobra.Command{
	Use:   "haircolor-rgb <image>",
	Short: "Recolor hair to an exact hex color",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hex, _ := cmd.Flags().GetString("hex")
		strength, _ := cmd.Flags().GetFloat64("strength")
		return runJob(cmd, func(urls []string) (client.Request, error) {
			return features.HaircolorRGBRequest{
				ImageURL:      urls[0],
				HairHexColor:  hex,
				ColorStrength: strength,
			}, nil
		}, args[0])
	},
}

var backgroundCmd = &cobra.Command{
	Use:   "background <image>",
	Short: "Generate a new background from a prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, _ := cmd.Flags().GetString("prompt")
		return runJob(cmd, func(urls []string) (client.Request, error) {
			return features.BackgroundGeneratorRequest{ImageURL: urls[0], TextPrompt: prompt}, nil
		}, args[0])
	},
}
