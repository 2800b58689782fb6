// Package pkg provides the libraries behind svgtree, a toolkit for building
// SVG documents in Go.
//
// # Overview
//
// svgtree models an SVG document as a tree of nodes that render themselves
// to markup. Attribute values are converted from Go scalars and tuples,
// path data is assembled from typed commands, and the finished tree is
// written out as compact, well-formed XML. The pkg directory is organized
// into three areas:
//
//  1. Core - the document model ([svg], [svg/path], [svg/tag])
//  2. Inputs and views - declarative scenes ([scene]) and tree views ([inspect])
//  3. Infrastructure - caching, storage and orchestration ([cache], [store],
//     [pipeline], [raster])
//
// # Architecture
//
// The data flow from a scene file to rendered output:
//
//	scene file (TOML, JSON or YAML)
//	         ↓
//	    [scene] package (decode + build)
//	         ↓
//	    [svg] package (element tree)
//	         ↓
//	    [pipeline] package (render + cache)
//	         ↓
//	    SVG/DOT/PNG/outline output
//
// # Quick Start
//
// Build a document directly:
//
//	import (
//	    "os"
//	    "github.com/matzehuels/svgtree/pkg/svg"
//	    "github.com/matzehuels/svgtree/pkg/svg/path"
//	)
//
//	doc := svg.NewDocument()
//	_ = doc.Assign("viewBox", svg.Tuple{0, 0, 70, 70})
//
//	p := svg.NewElement("path")
//	_ = p.Assign("fill", "none")
//	_ = p.Assign("d", path.NewData().MoveTo(10, 10).LineBy(0, 50).LineBy(50, 0).Close())
//	doc.Append(p)
//
//	_ = doc.Write(os.Stdout)
//
// # Main Packages
//
// [svg] - Element and Node types, attribute value conversion, text nodes,
// the Document root and a read-only tree walker.
//
// [svg/path] - The path data sub-language: commands with a fixed operand
// count per kind, absolute or relative positioning, and ordered Data.
//
// [svg/tag] - Chainable builders for the standard SVG 1.1 elements with a
// sticky first error.
//
// [scene] - Declarative drawing descriptions decoded from TOML, JSON or YAML
// and built into documents with located error messages.
//
// [inspect] - Views of a built tree: indented outline, Graphviz DOT and a
// Graphviz-rendered diagram.
//
// [pipeline] - Decode, build and render with caching. Used by the CLI and the
// HTTP service so both behave the same way.
//
// [raster] - PNG output for rendered documents.
//
// [cache] - Render cache backends: file, Redis and a no-op cache.
//
// [store] - Scene storage for the HTTP service: in-memory and MongoDB.
//
// [errors] - Structured errors with stable codes.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/svg/...       # Document model only
//	go test -run Example ./...  # Examples only
//
// [svg]: https://pkg.go.dev/github.com/matzehuels/svgtree/pkg/svg
// [svg/path]: https://pkg.go.dev/github.com/matzehuels/svgtree/pkg/svg/path
// [svg/tag]: https://pkg.go.dev/github.com/matzehuels/svgtree/pkg/svg/tag
// [scene]: https://pkg.go.dev/github.com/matzehuels/svgtree/pkg/scene
// [inspect]: https://pkg.go.dev/github.com/matzehuels/svgtree/pkg/inspect
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/svgtree/pkg/pipeline
// [raster]: https://pkg.go.dev/github.com/matzehuels/svgtree/pkg/raster
// [cache]: https://pkg.go.dev/github.com/matzehuels/svgtree/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/svgtree/pkg/store
// [errors]: https://pkg.go.dev/github.com/matzehuels/svgtree/pkg/errors
package pkg
