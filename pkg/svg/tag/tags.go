package tag

import "slices"

// names lists the element names of SVG 1.1 in alphabetical order.
var names = []string{
	"a", "altGlyph", "altGlyphDef", "altGlyphItem", "animate", "animateColor", "animateMotion",
	"animateTransform", "circle", "clipPath", "color-profile", "cursor", "defs", "desc", "ellipse",
	"feBlend", "feColorMatrix", "feComponentTransfer", "feComposite", "feConvolveMatrix",
	"feDiffuseLighting", "feDisplacementMap", "feDistantLight", "feFlood", "feFuncA", "feFuncB",
	"feFuncG", "feFuncR", "feGaussianBlur", "feImage", "feMerge", "feMergeNode", "feMorphology",
	"feOffset", "fePointLight", "feSpecularLighting", "feSpotLight", "feTile", "feTurbulence",
	"filter", "font", "font-face", "font-face-format", "font-face-name", "font-face-src",
	"font-face-uri", "foreignObject", "g", "glyph", "glyphRef", "hkern", "image", "line",
	"linearGradient", "marker", "mask", "metadata", "missing-glyph", "mpath", "path", "pattern",
	"polygon", "polyline", "radialGradient", "rect", "script", "set", "stop", "style", "svg",
	"switch", "symbol", "text", "textPath", "title", "tref", "tspan", "use", "view", "vkern",
}

// Names returns the known element names.
func Names() []string { return slices.Clone(names) }

// Lookup returns a builder for the named element, or false when name is not
// an SVG 1.1 element.
func Lookup(name string) (*Builder, bool) {
	if _, ok := slices.BinarySearch(names, name); !ok {
		return nil, false
	}
	return New(name), true
}

// Anchor creates an <a> hyperlink element.
func Anchor() *Builder { return New("a") }

// Circle creates a <circle> element.
func Circle() *Builder { return New("circle") }

// ClipPath creates a <clipPath> element.
func ClipPath() *Builder { return New("clipPath") }

// Defs creates a <defs> container element.
func Defs() *Builder { return New("defs") }

// Description creates a <desc> element.
func Description() *Builder { return New("desc") }

// Ellipse creates an <ellipse> element.
func Ellipse() *Builder { return New("ellipse") }

// Filter creates a <filter> element.
func Filter() *Builder { return New("filter") }

// Group creates a <g> group element.
func Group() *Builder { return New("g") }

// Image creates an <image> element.
func Image() *Builder { return New("image") }

// Line creates a <line> element.
func Line() *Builder { return New("line") }

// LinearGradient creates a <linearGradient> element.
func LinearGradient() *Builder { return New("linearGradient") }

// Marker creates a <marker> element.
func Marker() *Builder { return New("marker") }

// Mask creates a <mask> element.
func Mask() *Builder { return New("mask") }

// Path creates a <path> element.
func Path() *Builder { return New("path") }

// Pattern creates a <pattern> element.
func Pattern() *Builder { return New("pattern") }

// Polygon creates a <polygon> element.
func Polygon() *Builder { return New("polygon") }

// Polyline creates a <polyline> element.
func Polyline() *Builder { return New("polyline") }

// RadialGradient creates a <radialGradient> element.
func RadialGradient() *Builder { return New("radialGradient") }

// Rect creates a <rect> element.
func Rect() *Builder { return New("rect") }

// Script creates a <script> element.
func Script() *Builder { return New("script") }

// Stop creates a gradient <stop> element.
func Stop() *Builder { return New("stop") }

// Style creates a <style> element.
func Style() *Builder { return New("style") }

// SVG creates a nested <svg> element.
func SVG() *Builder { return New("svg") }

// Symbol creates a <symbol> element.
func Symbol() *Builder { return New("symbol") }

// Text creates a <text> element.
func Text() *Builder { return New("text") }

// TextPath creates a <textPath> element.
func TextPath() *Builder { return New("textPath") }

// Title creates a <title> element.
func Title() *Builder { return New("title") }

// TSpan creates a <tspan> element.
func TSpan() *Builder { return New("tspan") }

// Use creates a <use> element.
func Use() *Builder { return New("use") }
