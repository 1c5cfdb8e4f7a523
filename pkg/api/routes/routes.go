// Package routes defines the LightX API endpoint paths and URL structure
package routes

/*

To keep this file organized, endpoints are grouped in the following way:

1. Shared endpoints first (upload, order status).
2. Feature submit endpoints, v1 before v2, alphabetical within a version.
3. Trailing slashes are part of the wire contract for some v2 endpoints
   (haircolor, headshot, upscale, watermark-remover) and must be preserved.

*/

// DefaultBaseURL is the production LightX API base URL.
const DefaultBaseURL = "https://api.lightxeditor.com/external/api"

// Shared endpoints
const (
	// UploadImageURL negotiates a signed upload URL for raw image bytes.
	UploadImageURL = "/v2/uploadImageUrl"

	// OrderStatusV1 is polled by jobs submitted to v1 feature endpoints.
	OrderStatusV1 = "/v1/order-status"
	// OrderStatusV2 is polled by jobs submitted to v2 feature endpoints.
	OrderStatusV2 = "/v2/order-status"
)

// v1 feature submit endpoints
const (
	Avatar              = "/v1/avatar"
	BackgroundGenerator = "/v1/background-generator"
	Caricature          = "/v1/caricature"
	Cartoon             = "/v1/cartoon"
	CleanupPicture      = "/v1/cleanup-picture"
	ExpandPhoto         = "/v1/expand-photo"
	FaceSwap            = "/v1/face-swap"
	Hairstyle           = "/v1/hairstyle"
	Image2Image         = "/v1/image2image"
	Outfit              = "/v1/outfit"
	Portrait            = "/v1/portrait"
	ProductPhotoshoot   = "/v1/product-photoshoot"
	RemoveBackground    = "/v1/remove-background"
	Replace             = "/v1/replace"
	Sketch2Image        = "/v1/sketch2image"
)

// v2 feature submit endpoints
const (
	AIDesign         = "/v2/ai-design"
	AIFilter         = "/v2/aifilter"
	Haircolor        = "/v2/haircolor/"
	HaircolorRGB     = "/v2/haircolor-rgb"
	Headshot         = "/v2/headshot/"
	LogoGenerator    = "/v2/logo-generator"
	Upscale          = "/v2/upscale/"
	VirtualTryOn     = "/v2/aivirtualtryon"
	WatermarkRemover = "/v2/watermark-remover/"
)
