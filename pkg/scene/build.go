package scene

import (
	"fmt"
	"math"

	"github.com/matzehuels/svgtree/pkg/errors"
	"github.com/matzehuels/svgtree/pkg/svg"
	"github.com/matzehuels/svgtree/pkg/svg/path"
	"github.com/matzehuels/svgtree/pkg/svg/tag"
)

// Build creates the document the scene describes.
func (s *Scene) Build() (*svg.Document, error) {
	doc := svg.NewDocument()

	if len(s.ViewBox) > 0 {
		if len(s.ViewBox) != 4 {
			return nil, errors.New(errors.ErrCodeInvalidScene, "view_box needs 4 numbers, got %d", len(s.ViewBox))
		}
		vb := s.ViewBox
		if err := doc.SetViewBox(vb[0], vb[1], vb[2], vb[3]); err != nil {
			return nil, at(err, "view_box")
		}
	}
	if s.Width != nil {
		if err := doc.Assign("width", s.Width); err != nil {
			return nil, at(err, "width")
		}
	}
	if s.Height != nil {
		if err := doc.Assign("height", s.Height); err != nil {
			return nil, at(err, "height")
		}
	}
	for i, a := range s.Attrs {
		name, value, err := attr(a)
		if err != nil {
			return nil, at(err, "attrs[%d]", i)
		}
		if err := doc.Assign(name, value); err != nil {
			return nil, at(err, "attrs[%d]", i)
		}
	}

	b := builder{strict: s.Strict}
	for i := range s.Children {
		n, err := b.node(&s.Children[i], 1)
		if err != nil {
			return nil, at(err, "children[%d]", i)
		}
		doc.Append(n)
	}
	return doc, nil
}

type builder struct {
	strict bool
}

func (b builder) node(n *Node, depth int) (svg.Node, error) {
	if depth > MaxDepth {
		return nil, errors.New(errors.ErrCodeInvalidScene, "nesting deeper than %d", MaxDepth)
	}
	if n.Name == "" {
		if n.Text == "" || len(n.Attrs) > 0 || len(n.D) > 0 || len(n.Children) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidScene, "node needs a name")
		}
		return svg.NewText(n.Text), nil
	}
	if err := errors.ValidateName(n.Name); err != nil {
		return nil, err
	}

	el := tag.New(n.Name)
	if b.strict {
		var ok bool
		if el, ok = tag.Lookup(n.Name); !ok {
			return nil, errors.New(errors.ErrCodeInvalidScene, "unknown element <%s>", n.Name)
		}
	}

	for i, a := range n.Attrs {
		name, value, err := attr(a)
		if err != nil {
			return nil, at(err, "attrs[%d]", i)
		}
		if err := el.Set(name, value).Err(); err != nil {
			return nil, at(err, "attrs[%d]", i)
		}
	}
	if len(n.D) > 0 {
		data, err := pathData(n.D)
		if err != nil {
			return nil, err
		}
		if err := el.D(data).Err(); err != nil {
			return nil, at(err, "d")
		}
	}
	if n.Text != "" {
		el.Text(n.Text)
	}
	for i := range n.Children {
		c, err := b.node(&n.Children[i], depth+1)
		if err != nil {
			return nil, at(err, "children[%d]", i)
		}
		el.Add(c)
	}
	return el, nil
}

func attr(pair []any) (string, any, error) {
	if len(pair) != 2 {
		return "", nil, errors.New(errors.ErrCodeInvalidScene, "attribute needs [name, value], got %d items", len(pair))
	}
	name, ok := pair[0].(string)
	if !ok {
		return "", nil, errors.New(errors.ErrCodeInvalidScene, "attribute name must be a string, got %T", pair[0])
	}
	if err := errors.ValidateName(name); err != nil {
		return "", nil, err
	}
	return name, pair[1], nil
}

func pathData(cmds [][]any) (*path.Data, error) {
	data := path.NewData()
	for i, raw := range cmds {
		c, err := command(raw)
		if err != nil {
			return nil, at(err, "d[%d]", i)
		}
		data.Append(c)
	}
	return data, nil
}

func command(raw []any) (path.Command, error) {
	if len(raw) == 0 {
		return path.Command{}, errors.New(errors.ErrCodeInvalidScene, "empty path command")
	}
	letter, ok := raw[0].(string)
	if !ok || len(letter) != 1 {
		return path.Command{}, errors.New(errors.ErrCodeInvalidScene, "path command must start with a letter, got %v", raw[0])
	}
	kind, pos, ok := path.ParseLetter(letter[0])
	if !ok {
		return path.Command{}, errors.New(errors.ErrCodeInvalidScene, "unknown path command %q", letter)
	}
	params := make([]path.Number, 0, len(raw)-1)
	for _, v := range raw[1:] {
		n, err := number(v)
		if err != nil {
			return path.Command{}, err
		}
		params = append(params, n)
	}
	return path.NewCommand(kind, pos, params...)
}

func number(v any) (path.Number, error) {
	var f float64
	switch v := v.(type) {
	case int64:
		f = float64(v)
	case int:
		f = float64(v)
	case float64:
		f = v
	default:
		return 0, errors.New(errors.ErrCodeInvalidScene, "path operand must be a number, got %T", v)
	}
	if math.Abs(f) > math.MaxFloat32 {
		return 0, errors.New(errors.ErrCodeInvalidValue, "operand %v out of range", f)
	}
	return path.Number(f), nil
}

// at prefixes err with a location inside the scene while keeping its code.
func at(err error, format string, args ...any) error {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInvalidScene
	}
	loc := fmt.Sprintf(format, args...)
	if e, ok := err.(*errors.Error); ok {
		return &errors.Error{Code: code, Message: loc + ": " + e.Message, Cause: e.Cause}
	}
	return errors.Wrap(code, err, "%s", loc)
}
