package features

import (
	"errors"
	"fmt"

	"github.com/lightxeditor/lightx-go/pkg/api/routes"
)

// RemoveBackgroundRequest removes or replaces the image background.
// Background may be a color code, a preset name, or a reference image URL;
// empty means plain removal.
type RemoveBackgroundRequest struct {
	ImageURL   string `json:"imageUrl"`
	Background string `json:"background,omitempty"`
}

func (RemoveBackgroundRequest) SubmitPath() string { return routes.RemoveBackground }
func (RemoveBackgroundRequest) StatusPath() string { return routes.OrderStatusV1 }

// CleanupPictureRequest erases the regions marked white in the mask.
type CleanupPictureRequest struct {
	ImageURL       string `json:"imageUrl"`
	MaskedImageURL string `json:"maskedImageUrl"`
}

func (CleanupPictureRequest) SubmitPath() string { return routes.CleanupPicture }
func (CleanupPictureRequest) StatusPath() string { return routes.OrderStatusV1 }

// ExpandPhotoRequest outpaints the image by the given per-side padding in
// pixels.
type ExpandPhotoRequest struct {
	ImageURL      string `json:"imageUrl"`
	LeftPadding   int    `json:"leftPadding"`
	RightPadding  int    `json:"rightPadding"`
	TopPadding    int    `json:"topPadding"`
	BottomPadding int    `json:"bottomPadding"`
}

func (ExpandPhotoRequest) SubmitPath() string { return routes.ExpandPhoto }
func (ExpandPhotoRequest) StatusPath() string { return routes.OrderStatusV1 }

// Validate requires non-negative padding with at least one expanded side.
func (r ExpandPhotoRequest) Validate() error {
	if r.LeftPadding < 0 || r.RightPadding < 0 || r.TopPadding < 0 || r.BottomPadding < 0 {
		return errors.New("padding cannot be negative")
	}
	if r.LeftPadding+r.RightPadding+r.TopPadding+r.BottomPadding == 0 {
		return errors.New("at least one side must be expanded")
	}
	return nil
}

// ReplaceItemRequest replaces the masked region with whatever the prompt
// describes.
type ReplaceItemRequest struct {
	ImageURL       string `json:"imageUrl"`
	MaskedImageURL string `json:"maskedImageUrl"`
	TextPrompt     string `json:"textPrompt"`
}

func (ReplaceItemRequest) SubmitPath() string { return routes.Replace }
func (ReplaceItemRequest) StatusPath() string { return routes.OrderStatusV1 }

func (r ReplaceItemRequest) Validate() error { return validPrompt(r.TextPrompt) }

// CartoonRequest turns a photo into a cartoon character, optionally guided by
// a style reference image and/or a prompt.
type CartoonRequest struct {
	ImageURL      string `json:"imageUrl"`
	StyleImageURL string `json:"styleImageUrl,omitempty"`
	TextPrompt    string `json:"textPrompt,omitempty"`
}

func (CartoonRequest) SubmitPath() string { return routes.Cartoon }
func (CartoonRequest) StatusPath() string { return routes.OrderStatusV1 }

func (r CartoonRequest) Validate() error { return validOptionalPrompt(r.TextPrompt) }

// CaricatureRequest generates a caricature, optionally style-guided.
type CaricatureRequest struct {
	ImageURL      string `json:"imageUrl"`
	StyleImageURL string `json:"styleImageUrl,omitempty"`
	TextPrompt    string `json:"textPrompt,omitempty"`
}

func (CaricatureRequest) SubmitPath() string { return routes.Caricature }
func (CaricatureRequest) StatusPath() string { return routes.OrderStatusV1 }

func (r CaricatureRequest) Validate() error { return validOptionalPrompt(r.TextPrompt) }

// AvatarRequest generates an AI avatar, optionally style-guided.
type AvatarRequest struct {
	ImageURL      string `json:"imageUrl"`
	StyleImageURL string `json:"styleImageUrl,omitempty"`
	TextPrompt    string `json:"textPrompt,omitempty"`
}

func (AvatarRequest) SubmitPath() string { return routes.Avatar }
func (AvatarRequest) StatusPath() string { return routes.OrderStatusV1 }

func (r AvatarRequest) Validate() error { return validOptionalPrompt(r.TextPrompt) }

// ProductPhotoshootRequest stages a product shot, optionally style-guided.
type ProductPhotoshootRequest struct {
	ImageURL      string `json:"imageUrl"`
	StyleImageURL string `json:"styleImageUrl,omitempty"`
	TextPrompt    string `json:"textPrompt,omitempty"`
}

func (ProductPhotoshootRequest) SubmitPath() string { return routes.ProductPhotoshoot }
func (ProductPhotoshootRequest) StatusPath() string { return routes.OrderStatusV1 }

func (r ProductPhotoshootRequest) Validate() error { return validOptionalPrompt(r.TextPrompt) }

// BackgroundGeneratorRequest renders a new background from a prompt.
type BackgroundGeneratorRequest struct {
	ImageURL   string `json:"imageUrl"`
	TextPrompt string `json:"textPrompt"`
}

func (BackgroundGeneratorRequest) SubmitPath() string { return routes.BackgroundGenerator }
func (BackgroundGeneratorRequest) StatusPath() string { return routes.OrderStatusV1 }

func (r BackgroundGeneratorRequest) Validate() error { return validPrompt(r.TextPrompt) }

// PortraitRequest generates an AI portrait, optionally style-guided.
type PortraitRequest struct {
	ImageURL      string `json:"imageUrl"`
	StyleImageURL string `json:"styleImageUrl,omitempty"`
	TextPrompt    string `json:"textPrompt,omitempty"`
}

func (PortraitRequest) SubmitPath() string { return routes.Portrait }
func (PortraitRequest) StatusPath() string { return routes.OrderStatusV1 }

func (r PortraitRequest) Validate() error { return validOptionalPrompt(r.TextPrompt) }

// FaceSwapRequest swaps the face from the style image onto the source image.
type FaceSwapRequest struct {
	ImageURL      string `json:"imageUrl"`
	StyleImageURL string `json:"styleImageUrl"`
}

func (FaceSwapRequest) SubmitPath() string { return routes.FaceSwap }
func (FaceSwapRequest) StatusPath() string { return routes.OrderStatusV1 }

// OutfitRequest redresses the subject per the prompt.
type OutfitRequest struct {
	ImageURL   string `json:"imageUrl"`
	TextPrompt string `json:"textPrompt"`
}

func (OutfitRequest) SubmitPath() string { return routes.Outfit }
func (OutfitRequest) StatusPath() string { return routes.OrderStatusV1 }

func (r OutfitRequest) Validate() error { return validPrompt(r.TextPrompt) }

// Image2ImageRequest restyles an image with a prompt; Strength controls how
// much of the original is preserved. An optional style image with its own
// strength may guide the result.
type Image2ImageRequest struct {
	ImageURL      string   `json:"imageUrl"`
	Strength      float64  `json:"strength"`
	TextPrompt    string   `json:"textPrompt"`
	StyleImageURL string   `json:"styleImageUrl,omitempty"`
	StyleStrength *float64 `json:"styleStrength,omitempty"`
}

func (Image2ImageRequest) SubmitPath() string { return routes.Image2Image }
func (Image2ImageRequest) StatusPath() string { return routes.OrderStatusV1 }

func (r Image2ImageRequest) Validate() error {
	if err := validPrompt(r.TextPrompt); err != nil {
		return err
	}
	if r.Strength < 0 || r.Strength > 1 {
		return fmt.Errorf("strength must be between 0 and 1, got %v", r.Strength)
	}
	if r.StyleStrength != nil && (*r.StyleStrength < 0 || *r.StyleStrength > 1) {
		return fmt.Errorf("style strength must be between 0 and 1, got %v", *r.StyleStrength)
	}
	return nil
}

// Sketch2ImageRequest renders a sketch into a full image; same tuning knobs
// as image2image.
type Sketch2ImageRequest struct {
	ImageURL      string   `json:"imageUrl"`
	Strength      float64  `json:"strength"`
	TextPrompt    string   `json:"textPrompt"`
	StyleImageURL string   `json:"styleImageUrl,omitempty"`
	StyleStrength *float64 `json:"styleStrength,omitempty"`
}

func (Sketch2ImageRequest) SubmitPath() string { return routes.Sketch2Image }
func (Sketch2ImageRequest) StatusPath() string { return routes.OrderStatusV1 }

func (r Sketch2ImageRequest) Validate() error {
	if err := validPrompt(r.TextPrompt); err != nil {
		return err
	}
	if r.Strength < 0 || r.Strength > 1 {
		return fmt.Errorf("strength must be between 0 and 1, got %v", r.Strength)
	}
	if r.StyleStrength != nil && (*r.StyleStrength < 0 || *r.StyleStrength > 1) {
		return fmt.Errorf("style strength must be between 0 and 1, got %v", *r.StyleStrength)
	}
	return nil
}

// HairstyleRequest tries a new hairstyle described by the prompt.
type HairstyleRequest struct {
	ImageURL   string `json:"imageUrl"`
	TextPrompt string `json:"textPrompt"`
}

func (HairstyleRequest) SubmitPath() string { return routes.Hairstyle }
func (HairstyleRequest) StatusPath() string { return routes.OrderStatusV1 }

func (r HairstyleRequest) Validate() error { return validPrompt(r.TextPrompt) }
