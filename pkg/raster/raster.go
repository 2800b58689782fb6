// Package raster converts rendered SVG markup into PNG images.
//
// Rasterization goes through oksvg, which understands the subset of SVG
// that svgtree scenes typically produce: paths, basic shapes, groups,
// strokes, fills and gradients. Elements oksvg does not support (text,
// filters) are skipped rather than rejected.
//
// The output size is the document's viewBox multiplied by a scale factor.
// Without a viewBox the width and height attributes are used instead; a
// document with neither cannot be rasterized.
package raster

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/matzehuels/svgtree/pkg/errors"
)

// MaxDimension bounds the width and height of a rasterized image in pixels.
const MaxDimension = 8192

// DefaultScale is used when a scale of zero is requested.
const DefaultScale = 1.0

// Size returns the pixel dimensions of svgData at scale.
func Size(svgData []byte, scale float64) (int, int, error) {
	icon, err := read(svgData)
	if err != nil {
		return 0, 0, err
	}
	return size(icon, scale)
}

// RenderPNG rasterizes svgData and encodes the result as PNG.
func RenderPNG(ctx context.Context, svgData []byte, scale float64) ([]byte, error) {
	icon, err := read(svgData)
	if err != nil {
		return nil, err
	}
	w, h, err := size(icon, scale)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.SetTarget(0, 0, float64(w), float64(h))
	icon.Draw(dasher, 1)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

func read(svgData []byte) (*oksvg.SvgIcon, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse svg")
	}
	return icon, nil
}

func size(icon *oksvg.SvgIcon, scale float64) (int, int, error) {
	if scale == 0 {
		scale = DefaultScale
	}
	if scale < 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid scale %v", scale)
	}
	fw := math.Ceil(icon.ViewBox.W * scale)
	fh := math.Ceil(icon.ViewBox.H * scale)
	if fw > MaxDimension || fh > MaxDimension {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "image %.0fx%.0f exceeds %d pixels per side", fw, fh, MaxDimension)
	}
	if !(fw > 0 && fh > 0) {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "document has no size; set view_box or width and height to rasterize")
	}
	return int(fw), int(fh), nil
}
