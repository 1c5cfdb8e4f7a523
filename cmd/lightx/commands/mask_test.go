package commands

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightxeditor/lightx-go/internal/imaging"
)

func TestParseRect(t *testing.T) {
	tests := []struct {
		spec    string
		want    imaging.Rect
		wantErr bool
	}{
		{spec: "10,20,30,40", want: imaging.Rect{X: 10, Y: 20, Width: 30, Height: 40}},
		{spec: " 1, 2, 3, 4 ", want: imaging.Rect{X: 1, Y: 2, Width: 3, Height: 4}},
		{spec: "10,20,30", wantErr: true},
		{spec: "10,20,30,40,50", wantErr: true},
		{spec: "a,b,c,d", wantErr: true},
		{spec: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := parseRect(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMaskDimensions(t *testing.T) {
	w, h, err := maskDimensions("640x480", "")
	require.NoError(t, err)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)

	_, _, err = maskDimensions("640", "")
	assert.Error(t, err)

	_, _, err = maskDimensions("wxh", "")
	assert.Error(t, err)

	_, _, err = maskDimensions("", "")
	assert.Error(t, err)
}

func TestMaskDimensions_FromImage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 64, 32))))

	path := filepath.Join(t.TempDir(), "source.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	w, h, err := maskDimensions("", path)
	require.NoError(t, err)
	assert.Equal(t, 64, w)
	assert.Equal(t, 32, h)

	// --size wins when both are given.
	w, h, err = maskDimensions("10x10", path)
	require.NoError(t, err)
	assert.Equal(t, 10, w)
	assert.Equal(t, 10, h)

	_, _, err = maskDimensions("", filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}
