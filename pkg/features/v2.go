package features

import (
	"fmt"

	"github.com/lightxeditor/lightx-go/pkg/api/routes"
)

// Upscale quality factors accepted by the service.
const (
	UpscaleQuality2x = 2
	UpscaleQuality4x = 4
)

// UpscaleRequest upscales the image by the given quality factor.
type UpscaleRequest struct {
	ImageURL string `json:"imageUrl"`
	Quality  int    `json:"quality"`
}

func (UpscaleRequest) SubmitPath() string { return routes.Upscale }
func (UpscaleRequest) StatusPath() string { return routes.OrderStatusV2 }

func (r UpscaleRequest) Validate() error {
	if r.Quality != UpscaleQuality2x && r.Quality != UpscaleQuality4x {
		return fmt.Errorf("quality must be %d or %d, got %d", UpscaleQuality2x, UpscaleQuality4x, r.Quality)
	}
	return nil
}

// AIFilterRequest applies a prompt-described filter, optionally matched to a
// reference image.
type AIFilterRequest struct {
	ImageURL           string `json:"imageUrl"`
	TextPrompt         string `json:"textPrompt"`
	FilterReferenceURL string `json:"filterReferenceUrl,omitempty"`
}

func (AIFilterRequest) SubmitPath() string { return routes.AIFilter }
func (AIFilterRequest) StatusPath() string { return routes.OrderStatusV2 }

func (r AIFilterRequest) Validate() error { return validPrompt(r.TextPrompt) }

// HaircolorRequest recolors hair per the prompt.
type HaircolorRequest struct {
	ImageURL   string `json:"imageUrl"`
	TextPrompt string `json:"textPrompt"`
}

func (HaircolorRequest) SubmitPath() string { return routes.Haircolor }
func (HaircolorRequest) StatusPath() string { return routes.OrderStatusV2 }

func (r HaircolorRequest) Validate() error { return validPrompt(r.TextPrompt) }

// VirtualTryOnRequest dresses the subject in the garment from the style
// image.
type VirtualTryOnRequest struct {
	ImageURL      string `json:"imageUrl"`
	StyleImageURL string `json:"styleImageUrl"`
}

func (VirtualTryOnRequest) SubmitPath() string { return routes.VirtualTryOn }
func (VirtualTryOnRequest) StatusPath() string { return routes.OrderStatusV2 }

// HeadshotRequest produces a professional headshot per the prompt.
type HeadshotRequest struct {
	ImageURL   string `json:"imageUrl"`
	TextPrompt string `json:"textPrompt"`
}

func (HeadshotRequest) SubmitPath() string { return routes.Headshot }
func (HeadshotRequest) StatusPath() string { return routes.OrderStatusV2 }

func (r HeadshotRequest) Validate() error { return validPrompt(r.TextPrompt) }

// HaircolorRGBRequest recolors hair to an exact hex color. ColorStrength is
// in [0.1, 1].
type HaircolorRGBRequest struct {
	ImageURL      string  `json:"imageUrl"`
	HairHexColor  string  `json:"hairHexColor"`
	ColorStrength float64 `json:"colorStrength"`
}

func (HaircolorRGBRequest) SubmitPath() string { return routes.HaircolorRGB }
func (HaircolorRGBRequest) StatusPath() string { return routes.OrderStatusV2 }

func (r HaircolorRGBRequest) Validate() error {
	if !hexColorPattern.MatchString(r.HairHexColor) {
		return fmt.Errorf("invalid hex color %q (use format like #FF0000)", r.HairHexColor)
	}
	if r.ColorStrength < 0.1 || r.ColorStrength > 1 {
		return fmt.Errorf("color strength must be between 0.1 and 1, got %v", r.ColorStrength)
	}
	return nil
}

// Resolutions accepted by the design generator.
var validResolutions = map[string]bool{
	"1:1":  true,
	"9:16": true,
	"3:4":  true,
	"2:3":  true,
	"16:9": true,
	"4:3":  true,
}

// AIDesignRequest generates a design from text only; no image upload is
// involved.
type AIDesignRequest struct {
	TextPrompt    string `json:"textPrompt"`
	Resolution    string `json:"resolution"`
	EnhancePrompt bool   `json:"enhancePrompt"`
}

func (AIDesignRequest) SubmitPath() string { return routes.AIDesign }
func (AIDesignRequest) StatusPath() string { return routes.OrderStatusV2 }

func (r AIDesignRequest) Validate() error {
	if err := validPrompt(r.TextPrompt); err != nil {
		return err
	}
	if !validResolutions[r.Resolution] {
		return fmt.Errorf("invalid resolution %q (valid: 1:1, 9:16, 3:4, 2:3, 16:9, 4:3)", r.Resolution)
	}
	return nil
}

// LogoGeneratorRequest generates a logo from text only.
type LogoGeneratorRequest struct {
	TextPrompt    string `json:"textPrompt"`
	EnhancePrompt bool   `json:"enhancePrompt"`
}

func (LogoGeneratorRequest) SubmitPath() string { return routes.LogoGenerator }
func (LogoGeneratorRequest) StatusPath() string { return routes.OrderStatusV2 }

func (r LogoGeneratorRequest) Validate() error { return validPrompt(r.TextPrompt) }

// WatermarkRemoverRequest removes watermarks from the image.
type WatermarkRemoverRequest struct {
	ImageURL string `json:"imageUrl"`
}

func (WatermarkRemoverRequest) SubmitPath() string { return routes.WatermarkRemover }
func (WatermarkRemoverRequest) StatusPath() string { return routes.OrderStatusV2 }
