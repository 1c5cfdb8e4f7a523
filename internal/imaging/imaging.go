// Package imaging holds the local image utilities used around the LightX
// client: content-type sniffing for uploads, dimension probing, mask
// synthesis, and output-format conversion.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/kolesa-team/go-webp/decoder"
	"github.com/kolesa-team/go-webp/webp"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// SniffContentType classifies image bytes by their magic numbers. The upload
// API accepts only JPEG and PNG, so anything else is an error.
func SniffContentType(data []byte) (string, error) {
	switch {
	case isJPEG(data):
		return "image/jpeg", nil
	case isPNG(data):
		return "image/png", nil
	default:
		return "", errors.New("unsupported image format (want jpeg or png)")
	}
}

// Dimensions returns the pixel width and height of an image without decoding
// the full pixel data (except for webp, which lacks a config-only decoder
// here).
func Dimensions(data []byte) (int, int, error) {
	if isWEBP(data) {
		img, err := webp.Decode(bytes.NewReader(data), &decoder.Options{})
		if err != nil {
			return 0, 0, fmt.Errorf("error decoding webp: %w", err)
		}
		b := img.Bounds()
		return b.Dx(), b.Dy(), nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("error reading image dimensions: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

func isJPEG(data []byte) bool {
	return len(data) >= 3 && data[0] == 0xff && data[1] == 0xd8 && data[2] == 0xff
}

func isPNG(data []byte) bool {
	return len(data) >= 8 && bytes.Equal(data[:8], pngMagic)
}

func isWEBP(data []byte) bool {
	if len(data) < 12 {
		return false
	}
	return string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP"
}
