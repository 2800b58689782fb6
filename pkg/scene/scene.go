package scene

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/svgtree/pkg/errors"
)

// Format names a scene encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// MaxDepth bounds the nesting of children accepted by [Scene.Build].
const MaxDepth = 64

// Scene is the root of a drawing description.
type Scene struct {
	Width    any       `toml:"width,omitempty" json:"width,omitempty" yaml:"width,omitempty"`
	Height   any       `toml:"height,omitempty" json:"height,omitempty" yaml:"height,omitempty"`
	ViewBox  []float64 `toml:"view_box,omitempty" json:"view_box,omitempty" yaml:"view_box,omitempty"`
	Strict   bool      `toml:"strict,omitempty" json:"strict,omitempty" yaml:"strict,omitempty"` // reject tag names outside SVG 1.1
	Attrs    [][]any   `toml:"attrs,omitempty" json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Children []Node    `toml:"children,omitempty" json:"children,omitempty" yaml:"children,omitempty"`
}

// Node describes one element or text node.
// A node with a Text but no Name becomes a bare text node.
type Node struct {
	Name     string  `toml:"name,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	Attrs    [][]any `toml:"attrs,omitempty" json:"attrs,omitempty" yaml:"attrs,omitempty"`
	D        [][]any `toml:"d,omitempty" json:"d,omitempty" yaml:"d,omitempty"` // path data, assigned after Attrs
	Text     string  `toml:"text,omitempty" json:"text,omitempty" yaml:"text,omitempty"`
	Children []Node  `toml:"children,omitempty" json:"children,omitempty" yaml:"children,omitempty"`
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	if err := errors.ValidateFormat(s, string(FormatTOML), string(FormatJSON), string(FormatYAML)); err != nil {
		return "", err
	}
	return Format(strings.ToLower(s)), nil
}

// DetectFormat picks the format from a file name, falling back to sniffing
// data: a document starting with '{' is JSON, one starting with a "---"
// marker is YAML, anything else TOML.
func DetectFormat(name string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	}
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.HasPrefix(trimmed, []byte("{")):
		return FormatJSON
	case bytes.HasPrefix(trimmed, []byte("---")):
		return FormatYAML
	}
	return FormatTOML
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (*Scene, error) {
	var s Scene
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &s)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidScene, "unknown key %q", undecoded[0].String())
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode json")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported scene format %q", format)
	}
	return &s, nil
}

// Load reads and decodes the scene file at path.
func Load(path string) (*Scene, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	return Decode(data, DetectFormat(path, data))
}
