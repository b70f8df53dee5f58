package imageproc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"

	"github.com/disintegration/imaging"
)

// ErrFetchImage is returned when the source image cannot be downloaded.
var ErrFetchImage = errors.New("failed to fetch image")

// maxSourceBytes caps how much of a remote image is read.
const maxSourceBytes = 5 << 20

// Processor downloads remote images and turns them into thumbnails.
type Processor struct {
	client *http.Client
}

// NewProcessor creates a new Processor. A nil client falls back to http.DefaultClient.
func NewProcessor(client *http.Client) *Processor {
	if client == nil {
		client = http.DefaultClient
	}
	return &Processor{client: client}
}

// Thumbnail creates a size x size square from the source image, cropping
// around the center. It returns the thumbnail content as a JPEG.
func (p *Processor) Thumbnail(content io.Reader, size int) (io.Reader, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid thumbnail size %d", size)
	}

	// Decode original image
	img, _, err := image.Decode(content)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	thumbnail := imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, thumbnail, &jpeg.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	return buf, nil
}

// FetchThumbnail downloads the image at url and returns its square thumbnail.
func (p *Processor) FetchThumbnail(ctx context.Context, url string, size int) (io.Reader, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchImage, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchImage, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetchImage, resp.StatusCode)
	}

	return p.Thumbnail(io.LimitReader(resp.Body, maxSourceBytes), size)
}
