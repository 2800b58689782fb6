package svg

import (
	"bytes"
	"encoding/xml"
)

// Text is a leaf node holding character data, such as the content of a
// <text> or <title> element. Unlike attribute values its content is escaped.
type Text struct {
	content string
}

// NewText creates a text node.
func NewText(content string) *Text {
	return &Text{content: content}
}

// Content returns the unescaped text.
func (t *Text) Content() string { return t.content }

// Render implements [Node].
func (t *Text) Render(buf *bytes.Buffer) {
	// Writes to a bytes.Buffer do not fail.
	_ = xml.EscapeText(buf, []byte(t.content))
}

func (t *Text) String() string { return Render(t) }
