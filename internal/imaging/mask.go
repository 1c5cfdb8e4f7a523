package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
)

// Rect is one rectangular region to keep editable in a mask, in pixel
// coordinates from the image's top-left corner.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Mask renders a PNG mask of the given dimensions: black background, white
// rectangles marking the regions to edit. Rectangles are clipped to the
// canvas. Cleanup and replace endpoints expect exactly this convention.
func Mask(width, height int, rects []Rect) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid mask dimensions %dx%d", width, height)
	}
	if len(rects) == 0 {
		return nil, errors.New("mask requires at least one rectangle")
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	for _, r := range rects {
		if r.Width <= 0 || r.Height <= 0 {
			return nil, fmt.Errorf("invalid rectangle %+v", r)
		}
		area := image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height).Intersect(canvas.Bounds())
		draw.Draw(canvas, area, image.NewUniform(color.White), image.Point{}, draw.Src)
	}

	var out bytes.Buffer
	if err := png.Encode(&out, canvas); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
