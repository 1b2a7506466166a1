package sink

import (
	"bytes"
	"image/png"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestPNG_Encodes(t *testing.T) {
	data, err := PNG(testScene())
	if err != nil {
		t.Fatalf("PNG() error = %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Fatal("output is not a PNG stream")
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 200 || bounds.Dy() != 100 {
		t.Errorf("image size = %dx%d, want 200x100", bounds.Dx(), bounds.Dy())
	}
}

func TestPNG_Scale(t *testing.T) {
	data, err := PNG(testScene(), WithPNGScale(2))
	if err != nil {
		t.Fatalf("PNG() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 400 || bounds.Dy() != 200 {
		t.Errorf("scaled image size = %dx%d, want 400x200", bounds.Dx(), bounds.Dy())
	}
}

func TestPNG_Background(t *testing.T) {
	data, err := PNG(testScene(), WithPNGBackground("#FF0000"))
	if err != nil {
		t.Fatalf("PNG() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	// Sample an empty corner.
	r, g, b, _ := img.At(1, 1).RGBA()
	if r>>8 != 0xFF || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("background pixel = (%d, %d, %d), want red", r>>8, g>>8, b>>8)
	}
}
