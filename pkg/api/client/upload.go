package client

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/lightxeditor/lightx-go/internal/imaging"
	"github.com/lightxeditor/lightx-go/internal/logger"
	"github.com/lightxeditor/lightx-go/pkg/api/routes"
)

// MaxUploadSize is the hard cap on uploaded image bytes, enforced client-side
// before any network call.
const MaxUploadSize = 5242880 // 5 MB

// Accepted upload content types.
const (
	ContentTypeJPEG = "image/jpeg"
	ContentTypePNG  = "image/png"
)

// uploadRequest negotiates a signed upload URL.
type uploadRequest struct {
	UploadType  string `json:"uploadType"`
	Size        int    `json:"size"`
	ContentType string `json:"contentType"`
}

// UploadImage uploads raw image bytes and returns the durable image URL used
// in subsequent feature calls. The one-time signed PUT target from the
// negotiation response is consumed here and discarded. Neither step is
// retried; the service decides asset identity, so uploading identical bytes
// twice yields two independent URLs.
func (c *Client) UploadImage(ctx context.Context, data []byte, contentType string) (string, error) {
	if len(data) > MaxUploadSize {
		return "", &Error{
			Kind:    KindPayloadTooLarge,
			Message: fmt.Sprintf("image size %d exceeds %d byte limit", len(data), MaxUploadSize),
		}
	}
	if contentType != ContentTypeJPEG && contentType != ContentTypePNG {
		return "", fmt.Errorf("unsupported content type %q (want %s or %s)", contentType, ContentTypeJPEG, ContentTypePNG)
	}

	// Step 1: negotiate the signed upload URL.
	var ticket uploadTicket
	negotiation := uploadRequest{
		UploadType:  "imageUrl",
		Size:        len(data),
		ContentType: contentType,
	}
	if err := c.postJSON(ctx, routes.UploadImageURL, negotiation, &ticket); err != nil {
		return "", err
	}

	// Step 2: PUT the raw bytes to the signed target.
	agent, err := c.createAgent(ctx, http.MethodPut, ticket.UploadImage)
	if err != nil {
		return "", err
	}
	agent.Set("Content-Type", contentType)
	agent.Body(data)

	statusCode, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return "", fmt.Errorf("error uploading image bytes: %w", errs[0])
	}
	if statusCode < 200 || statusCode >= 300 {
		return "", &Error{Kind: KindUploadFailed, Message: string(body), HTTPStatus: statusCode}
	}

	logger.Debugf("uploaded %d bytes (%s) -> %s", len(data), contentType, ticket.ImageURL)
	return ticket.ImageURL, nil
}

// UploadFile reads an image file, classifies it by content (jpeg or png), and
// uploads it.
func (c *Client) UploadFile(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading image file: %w", err)
	}
	contentType, err := imaging.SniffContentType(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return c.UploadImage(ctx, data, contentType)
}
