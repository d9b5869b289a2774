package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"

	"github.com/BruksfildServices01/accounts-api/internal/config"
)

func pngOf(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return &buf
}

func TestEncodePicture_ScalesLongestSide(t *testing.T) {
	tests := []struct {
		name          string
		w, h, maxSide int
		wantW, wantH  int
	}{
		{"landscape", 200, 100, 50, 50, 25},
		{"portrait", 100, 200, 50, 25, 50},
		{"already small", 40, 30, 50, 40, 30},
		{"no limit", 60, 20, 0, 60, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := EncodePicture(pngOf(t, tt.w, tt.h), tt.maxSide)
			if err != nil {
				t.Fatalf("EncodePicture: %v", err)
			}
			cfg, err := webp.DecodeConfig(bytes.NewReader(out))
			if err != nil {
				t.Fatalf("output is not webp: %v", err)
			}
			if cfg.Width != tt.wantW || cfg.Height != tt.wantH {
				t.Fatalf("got %dx%d, want %dx%d", cfg.Width, cfg.Height, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestEncodePicture_RejectsGarbage(t *testing.T) {
	if _, err := EncodePicture(bytes.NewBufferString("not an image"), 64); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestS3Store_URL(t *testing.T) {
	s := NewS3Store(&config.Config{S3Bucket: "pics", S3Region: "sa-east-1", MediaBaseURL: "https://cdn.example.com/"})
	if got := s.URL("profiles/staff/1/a.webp"); got != "https://cdn.example.com/profiles/staff/1/a.webp" {
		t.Fatalf("URL() = %q", got)
	}
	if got := s.URL(""); got != "" {
		t.Fatalf("URL(\"\") = %q, want empty", got)
	}

	s = NewS3Store(&config.Config{S3Bucket: "pics", S3Region: "sa-east-1"})
	if got := s.URL("k"); got != "https://pics.s3.sa-east-1.amazonaws.com/k" {
		t.Fatalf("default URL() = %q", got)
	}
}
