package pipeline

import (
	"bytes"
	"context"

	"github.com/matzehuels/svgtree/pkg/errors"
	"github.com/matzehuels/svgtree/pkg/inspect"
	"github.com/matzehuels/svgtree/pkg/raster"
	"github.com/matzehuels/svgtree/pkg/svg"
)

// RenderDocument produces doc in opts.Format. It does not consult a cache.
func RenderDocument(ctx context.Context, doc *svg.Document, opts Options) ([]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	iopts := inspect.Options{Attributes: opts.Attributes}

	switch opts.Format {
	case FormatSVG:
		var buf bytes.Buffer
		if err := doc.Write(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatDOT:
		dot, err := inspect.ToDOT(doc, iopts)
		if err != nil {
			return nil, err
		}
		return []byte(dot), nil
	case FormatTree:
		dot, err := inspect.ToDOT(doc, iopts)
		if err != nil {
			return nil, err
		}
		return inspect.RenderDOT(ctx, dot)
	case FormatOutline:
		out, err := inspect.Outline(doc, iopts)
		if err != nil {
			return nil, err
		}
		return []byte(out), nil
	case FormatPNG:
		var buf bytes.Buffer
		if err := doc.Write(&buf); err != nil {
			return nil, err
		}
		return raster.RenderPNG(ctx, buf.Bytes(), opts.Scale)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", opts.Format)
	}
}
