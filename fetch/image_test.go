package fetch

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func pngDataURL(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestImageRasterDecode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.fetch")
	defer teardown()
	//
	svc := NewService(nil, NewFontDB(t.TempDir()))
	res, err := svc.Image(pngDataURL(t))
	if err != nil {
		t.Fatalf("cannot decode PNG: %v", err)
	}
	if res.IsVector() || res.Raster == nil {
		t.Fatal("expected a raster resource")
	}
	if b := res.Raster.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("unexpected image bounds %v", b)
	}
}

func TestImageVectorFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.fetch")
	defer teardown()
	//
	const svg = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">` +
		`<rect x="0" y="0" width="10" height="10" fill="#ff0000"/></svg>`
	svc := NewService(nil, NewFontDB(t.TempDir()))
	res, err := svc.Image("data:image/svg+xml," + svg)
	if err != nil {
		t.Fatalf("cannot parse SVG: %v", err)
	}
	if !res.IsVector() || res.Vector == nil {
		t.Fatal("expected a vector resource")
	}
}

func TestImageUndecodableBlob(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.fetch")
	defer teardown()
	//
	svc := NewService(nil, NewFontDB(t.TempDir()))
	var svgErr *SVGParseError
	if _, err := svc.Image("data:,certainly-not-an-image"); !errors.As(err, &svgErr) {
		t.Errorf("expected an SVGParseError after the raster fallback, got %v", err)
	}
}

func TestImageFetchErrorPassesThrough(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "verdin.fetch")
	defer teardown()
	//
	svc := NewService(nil, NewFontDB(t.TempDir()))
	var urlErr *URLError
	if _, err := svc.Image("data:no-comma"); !errors.As(err, &urlErr) {
		t.Errorf("expected the fetch error to pass through typed, got %v", err)
	}
}
