package output

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 40), uint8(y * 40), 128, 255})
		}
	}
	return img
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		wantErr  bool
	}{
		{"frame.png", PNG, false},
		{"out/FRAME.PNG", PNG, false},
		{"frame.bmp", BMP, false},
		{"frame.tif", TIFF, false},
		{"frame.tiff", TIFF, false},
		{"frame.jpg", "", true},
		{"frame", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, err := FormatFromPath(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("Expected ErrUnknownFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if format != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, format)
			}
		})
	}
}

func TestEncodeDecodes(t *testing.T) {
	src := testImage(5, 4)

	decoders := map[Format]func(io.Reader) (image.Image, error){
		PNG:  png.Decode,
		BMP:  bmp.Decode,
		TIFF: tiff.Decode,
	}

	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			data, err := EncodeBytes(src, format)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			decoded, err := decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if decoded.Bounds() != src.Bounds() {
				t.Fatalf("Bounds changed: %v", decoded.Bounds())
			}

			r, g, b, _ := decoded.At(3, 2).RGBA()
			if r>>8 != 120 || g>>8 != 80 || b>>8 != 128 {
				t.Errorf("Pixel (3,2) = %d,%d,%d", r>>8, g>>8, b>>8)
			}
		})
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	err := Encode(io.Discard, testImage(1, 1), Format("gif"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.png")

	if err := Save(path, testImage(3, 3)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open saved file: %v", err)
	}
	defer file.Close()
	if _, err := png.Decode(file); err != nil {
		t.Errorf("Saved file is not a PNG: %v", err)
	}

	if err := Save(filepath.Join(dir, "frame.webp"), testImage(1, 1)); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}

func TestThumbnail(t *testing.T) {
	tests := []struct {
		name           string
		width, height  int
		maxDim         int
		expectedWidth  int
		expectedHeight int
	}{
		{"landscape", 200, 100, 50, 50, 25},
		{"portrait", 60, 120, 40, 20, 40},
		{"already small", 30, 20, 64, 30, 20},
		{"disabled", 30, 20, 0, 30, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			thumb := Thumbnail(testImage(tt.width, tt.height), tt.maxDim)
			bounds := thumb.Bounds()
			if bounds.Dx() != tt.expectedWidth || bounds.Dy() != tt.expectedHeight {
				t.Errorf("Expected %dx%d, got %dx%d", tt.expectedWidth, tt.expectedHeight, bounds.Dx(), bounds.Dy())
			}
		})
	}
}

func TestThumbnailPath(t *testing.T) {
	tests := map[string]string{
		"frame.png":       "frame_thumb.png",
		"out/render.tiff": "out/render_thumb.tiff",
		"noext":           "noext_thumb",
	}
	for in, expected := range tests {
		if got := ThumbnailPath(in); got != expected {
			t.Errorf("ThumbnailPath(%q) = %q, want %q", in, got, expected)
		}
	}
}

// MockPutter records the last upload
type MockPutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (m *MockPutter) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	m.input = input
	m.body, _ = io.ReadAll(input.Body)
	if m.err != nil {
		return nil, m.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Uploader_Upload(t *testing.T) {
	mock := &MockPutter{}
	uploader := &S3Uploader{client: mock, bucket: "renders"}

	data := []byte("image bytes")
	if err := uploader.Upload(context.Background(), "frames/0001.png", data, PNG.ContentType()); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if aws.StringValue(mock.input.Bucket) != "renders" || aws.StringValue(mock.input.Key) != "frames/0001.png" {
		t.Errorf("Unexpected target %s/%s", aws.StringValue(mock.input.Bucket), aws.StringValue(mock.input.Key))
	}
	if aws.StringValue(mock.input.ContentType) != "image/png" {
		t.Errorf("Unexpected content type %q", aws.StringValue(mock.input.ContentType))
	}
	if aws.Int64Value(mock.input.ContentLength) != int64(len(data)) || !bytes.Equal(mock.body, data) {
		t.Errorf("Unexpected body %q (length %d)", mock.body, aws.Int64Value(mock.input.ContentLength))
	}
}

func TestS3Uploader_UploadError(t *testing.T) {
	cause := errors.New("access denied")
	uploader := &S3Uploader{client: &MockPutter{err: cause}, bucket: "renders"}

	err := uploader.Upload(context.Background(), "frame.png", []byte{1}, "image/png")
	if !errors.Is(err, cause) {
		t.Errorf("Expected wrapped cause, got %v", err)
	}
}

func TestNewS3Uploader(t *testing.T) {
	if _, err := NewS3Uploader(S3Config{}); !errors.Is(err, ErrMissingBucket) {
		t.Errorf("Expected ErrMissingBucket, got %v", err)
	}

	uploader, err := NewS3Uploader(S3Config{
		AccessKey: "key",
		SecretKey: "secret",
		Endpoint:  "http://localhost:9000",
		Region:    "us-east-1",
		Bucket:    "renders",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if uploader.Bucket() != "renders" {
		t.Errorf("Expected bucket renders, got %q", uploader.Bucket())
	}
}

func TestS3ConfigFromEnv(t *testing.T) {
	t.Setenv("S3_BUCKET", "env-bucket")
	t.Setenv("S3_REGION", "eu-west-1")

	cfg := S3ConfigFromEnv()
	if cfg.Bucket != "env-bucket" || cfg.Region != "eu-west-1" {
		t.Errorf("Unexpected config %+v", cfg)
	}
}
