// Package features defines one typed request payload per LightX feature
// endpoint. The payload shapes, validation rules and endpoint pairing (every
// submit endpoint polls the order-status endpoint of its own API version) are
// part of the wire contract; the generic client is agnostic to all of it.
package features

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lightxeditor/lightx-go/pkg/api/client"
)

// maxPromptLength is the documented limit on text prompts.
const maxPromptLength = 500

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// validPrompt checks a required text prompt: non-empty after trimming and
// within the length limit.
func validPrompt(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return errors.New("text prompt cannot be empty")
	}
	if len(prompt) > maxPromptLength {
		return fmt.Errorf("text prompt is too long (max %d characters)", maxPromptLength)
	}
	return nil
}

// validOptionalPrompt checks a prompt that may be omitted.
func validOptionalPrompt(prompt string) error {
	if prompt == "" {
		return nil
	}
	return validPrompt(prompt)
}

// Compile-time checks that every feature payload satisfies the client's
// Request contract.
var (
	_ client.Request = RemoveBackgroundRequest{}
	_ client.Request = CleanupPictureRequest{}
	_ client.Request = ExpandPhotoRequest{}
	_ client.Request = ReplaceItemRequest{}
	_ client.Request = CartoonRequest{}
	_ client.Request = CaricatureRequest{}
	_ client.Request = AvatarRequest{}
	_ client.Request = ProductPhotoshootRequest{}
	_ client.Request = BackgroundGeneratorRequest{}
	_ client.Request = PortraitRequest{}
	_ client.Request = FaceSwapRequest{}
	_ client.Request = OutfitRequest{}
	_ client.Request = Image2ImageRequest{}
	_ client.Request = Sketch2ImageRequest{}
	_ client.Request = HairstyleRequest{}
	_ client.Request = UpscaleRequest{}
	_ client.Request = AIFilterRequest{}
	_ client.Request = HaircolorRequest{}
	_ client.Request = VirtualTryOnRequest{}
	_ client.Request = HeadshotRequest{}
	_ client.Request = HaircolorRGBRequest{}
	_ client.Request = AIDesignRequest{}
	_ client.Request = LogoGeneratorRequest{}
	_ client.Request = WatermarkRemoverRequest{}
)
