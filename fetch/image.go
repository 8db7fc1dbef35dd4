package fetch

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/srwiley/oksvg"
)

// ImageDecodeError reports a blob that no registered raster decoder
// accepted.
type ImageDecodeError struct {
	URL string
	Err error
}

func (e *ImageDecodeError) Error() string {
	return fmt.Sprintf("fetch: cannot decode image %q: %v", e.URL, e.Err)
}

func (e *ImageDecodeError) Unwrap() error { return e.Err }

// SVGParseError reports a blob that failed vector parsing after raster
// decoding had already failed.
type SVGParseError struct {
	URL string
	Err error
}

func (e *SVGParseError) Error() string {
	return fmt.Sprintf("fetch: cannot parse SVG %q: %v", e.URL, e.Err)
}

func (e *SVGParseError) Unwrap() error { return e.Err }

// ImageResource is a decoded image: either a raster image or a parsed
// vector document, never both.
type ImageResource struct {
	Raster image.Image
	Vector *oksvg.SvgIcon
}

// IsVector is true for vector resources.
func (r *ImageResource) IsVector() bool {
	return r.Vector != nil
}

// Image fetches and decodes the image behind a URL. Raster decoding is
// attempted first (PNG, JPEG, GIF, WebP); on failure the blob is parsed
// as SVG, with the service's shared font database loaded for text
// resolution. Fetch errors pass through typed; decode failures report
// the vector cause, since vector parsing is the last resort.
func (s *Service) Image(rawURL string) (*ImageResource, error) {
	blob, err := s.Blob(rawURL)
	if err != nil {
		return nil, err
	}

	if img, _, err := image.Decode(bytes.NewReader(blob)); err == nil {
		return &ImageResource{Raster: img}, nil
	}

	s.fonts.Load()

	icon, err := oksvg.ReadIconStream(bytes.NewReader(blob))
	if err != nil {
		return nil, &SVGParseError{URL: rawURL, Err: err}
	}
	return &ImageResource{Vector: icon}, nil
}
