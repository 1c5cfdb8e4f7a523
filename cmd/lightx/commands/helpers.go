package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lightxeditor/lightx-go/internal/imaging"
	"github.com/lightxeditor/lightx-go/pkg/api/client"
)

// shared flag names for job commands
const (
	flagOut    = "out"
	flagSaveAs = "save-as"
)

// addOutputFlags registers the download flags shared by every job command.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(flagOut, "o", "", "Directory to download the output asset into")
	cmd.Flags().String(flagSaveAs, "png", "Format to save the output as: png, jpg or raw")
}

// loadImages reads local image files and classifies their content types.
func loadImages(paths ...string) ([]client.Image, error) {
	images := make([]client.Image, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", path, err)
		}
		contentType, err := imaging.SniffContentType(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		images = append(images, client.Image{Data: data, ContentType: contentType})
	}
	return images, nil
}

// runJob uploads the images, runs the composite workflow, and reports the
// result.
func runJob(cmd *cobra.Command, build client.PayloadBuilder, imagePaths ...string) error {
	images, err := loadImages(imagePaths...)
	if err != nil {
		return err
	}

	result, err := lightxClient.Run(cmd.Context(), build, images...)
	if err != nil {
		return err
	}
	return reportResult(cmd, result)
}

// runRequest submits a ready payload (no uploads) and reports the result.
func runRequest(cmd *cobra.Command, req client.Request) error {
	result, err := lightxClient.Do(cmd.Context(), req)
	if err != nil {
		return err
	}
	return reportResult(cmd, result)
}

// reportResult pretty-prints the final order status and downloads the output
// asset when --out was given.
func reportResult(cmd *cobra.Command, result *client.OrderStatus) error {
	if err := printJSON(result); err != nil {
		return err
	}

	outDir, _ := cmd.Flags().GetString(flagOut)
	if outDir == "" || result.Output == "" {
		return nil
	}
	return downloadOutput(cmd, result.Output, outDir)
}

// downloadOutput fetches the output asset and writes it to outDir, converting
// to the requested format. Output URLs often serve webp regardless of input
// format, so png/jpg conversion goes through the imaging decoder.
func downloadOutput(cmd *cobra.Command, assetURL, outDir string) error {
	data, err := lightxClient.Download(cmd.Context(), assetURL)
	if err != nil {
		return err
	}

	saveAs, _ := cmd.Flags().GetString(flagSaveAs)
	ext := strings.ToLower(saveAs)
	switch ext {
	case "png":
		if data, err = imaging.ToPNG(data); err != nil {
			return fmt.Errorf("error converting output to png: %w", err)
		}
	case "jpg", "jpeg":
		if data, err = imaging.ToJPEG(data); err != nil {
			return fmt.Errorf("error converting output to jpeg: %w", err)
		}
		ext = "jpg"
	case "raw":
		ext = "bin"
	default:
		return fmt.Errorf("invalid --%s value %q (want png, jpg or raw)", flagSaveAs, saveAs)
	}

	name := fmt.Sprintf("%s-%s.%s", cmd.Name(), uuid.NewString()[:8], ext)
	path := filepath.Join(outDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error saving output: %w", err)
	}
	fmt.Println("Saved output to", path)
	return nil
}
