package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeTestImage renders a small solid image in the given format.
func encodeTestImage(t *testing.T, format string, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	var buf bytes.Buffer
	switch format {
	case "png":
		require.NoError(t, png.Encode(&buf, img))
	case "jpeg":
		require.NoError(t, jpeg.Encode(&buf, img, nil))
	default:
		t.Fatalf("unknown format %s", format)
	}
	return buf.Bytes()
}

func TestSniffContentType(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    string
		wantErr bool
	}{
		{"png", encodeTestImage(t, "png", 4, 4), "image/png", false},
		{"jpeg", encodeTestImage(t, "jpeg", 4, 4), "image/jpeg", false},
		{"gif magic", []byte("GIF89a..."), "", true},
		{"empty", nil, "", true},
		{"truncated png magic", []byte{0x89, 'P', 'N'}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SniffContentType(tt.data)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDimensions(t *testing.T) {
	data := encodeTestImage(t, "png", 37, 21)
	w, h, err := Dimensions(data)
	require.NoError(t, err)
	assert.Equal(t, 37, w)
	assert.Equal(t, 21, h)

	data = encodeTestImage(t, "jpeg", 8, 16)
	w, h, err = Dimensions(data)
	require.NoError(t, err)
	assert.Equal(t, 8, w)
	assert.Equal(t, 16, h)

	_, _, err = Dimensions([]byte("not an image"))
	assert.Error(t, err)
}

func TestMask(t *testing.T) {
	data, err := Mask(100, 80, []Rect{{X: 10, Y: 20, Width: 30, Height: 40}})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())

	// Inside the rectangle is white, outside stays black.
	assertLuma := func(x, y int, white bool) {
		t.Helper()
		r, g, b, _ := img.At(x, y).RGBA()
		if white {
			assert.Equal(t, uint32(0xffff), r, "pixel (%d,%d) should be white", x, y)
			assert.Equal(t, uint32(0xffff), g)
			assert.Equal(t, uint32(0xffff), b)
		} else {
			assert.Zero(t, r, "pixel (%d,%d) should be black", x, y)
			assert.Zero(t, g)
			assert.Zero(t, b)
		}
	}
	assertLuma(10, 20, true)  // top-left corner of the rect
	assertLuma(39, 59, true)  // bottom-right inside edge
	assertLuma(9, 20, false)  // just left of the rect
	assertLuma(40, 60, false) // just past the rect
	assertLuma(0, 0, false)
	assertLuma(99, 79, false)
}

func TestMask_ClipsToCanvas(t *testing.T) {
	// A rectangle extending past the canvas is clipped, not an error.
	data, err := Mask(50, 50, []Rect{{X: 40, Y: 40, Width: 100, Height: 100}})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	r, _, _, _ := img.At(45, 45).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestMask_Invalid(t *testing.T) {
	_, err := Mask(0, 100, []Rect{{Width: 1, Height: 1}})
	assert.Error(t, err)

	_, err = Mask(100, 100, nil)
	assert.Error(t, err)

	_, err = Mask(100, 100, []Rect{{X: 1, Y: 1, Width: 0, Height: 5}})
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	src := encodeTestImage(t, "jpeg", 12, 9)

	out, err := ToPNG(src)
	require.NoError(t, err)
	ct, err := SniffContentType(out)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)

	w, h, err := Dimensions(out)
	require.NoError(t, err)
	assert.Equal(t, 12, w)
	assert.Equal(t, 9, h)

	back, err := ToJPEG(out)
	require.NoError(t, err)
	ct, err = SniffContentType(back)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", ct)
}

func TestConvert_Invalid(t *testing.T) {
	_, err := ToPNG([]byte("garbage"))
	assert.Error(t, err)
	_, err = ToJPEG(nil)
	assert.Error(t, err)
}
