package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lightxeditor/lightx-go/internal/imaging"
)

func init() {
	maskCmd.Flags().String("size", "", "Mask dimensions as WIDTHxHEIGHT (default: dimensions of --from image)")
	maskCmd.Flags().String("from", "", "Image file to take dimensions from")
	maskCmd.Flags().StringArrayP("rect", "r", nil, "Editable rectangle as x,y,width,height (repeatable)")
	maskCmd.Flags().StringP("output", "o", "mask.png", "Where to write the mask PNG")
	_ = maskCmd.MarkFlagRequired("rect")

	RootCmd.AddCommand(maskCmd)
}

var maskCmd = &cobra.Command{
	Use:         "mask",
	Short:       "Generate a black/white edit mask from rectangles",
	Annotations: map[string]string{annotationLocal: "true"},
	RunE: func(cmd *cobra.Command, _ []string) error {
		size, _ := cmd.Flags().GetString("size")
		from, _ := cmd.Flags().GetString("from")
		rectSpecs, _ := cmd.Flags().GetStringArray("rect")
		output, _ := cmd.Flags().GetString("output")

		width, height, err := maskDimensions(size, from)
		if err != nil {
			return err
		}

		rects := make([]imaging.Rect, 0, len(rectSpecs))
		for _, spec := range rectSpecs {
			r, err := parseRect(spec)
			if err != nil {
				return err
			}
			rects = append(rects, r)
		}

		data, err := imaging.Mask(width, height, rects)
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("error writing mask: %w", err)
		}
		fmt.Printf("Wrote %dx%d mask to %s\n", width, height, output)
		return nil
	},
}

func maskDimensions(size, from string) (int, int, error) {
	switch {
	case size != "":
		parts := strings.SplitN(size, "x", 2)
		if len(parts) != 2 {
			return 0, 0, fmt.Errorf("invalid --size %q (want WIDTHxHEIGHT)", size)
		}
		width, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid --size %q: %w", size, err)
		}
		height, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid --size %q: %w", size, err)
		}
		return width, height, nil
	case from != "":
		data, err := os.ReadFile(from)
		if err != nil {
			return 0, 0, fmt.Errorf("error reading %s: %w", from, err)
		}
		return dimensionsOf(data, from)
	default:
		return 0, 0, fmt.Errorf("either --size or --from is required")
	}
}

func dimensionsOf(data []byte, path string) (int, int, error) {
	width, height, err := imaging.Dimensions(data)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", path, err)
	}
	return width, height, nil
}

func parseRect(spec string) (imaging.Rect, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return imaging.Rect{}, fmt.Errorf("invalid --rect %q (want x,y,width,height)", spec)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return imaging.Rect{}, fmt.Errorf("invalid --rect %q: %w", spec, err)
		}
		vals[i] = v
	}
	return imaging.Rect{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}
