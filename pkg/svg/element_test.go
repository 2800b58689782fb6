package svg

import (
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/svgtree/pkg/errors"
)

func TestElementRender(t *testing.T) {
	element := NewElement("foo")
	mustAssign(t, element, "x", -15)
	mustAssign(t, element, "y", "10px")
	mustAssign(t, element, "size", Tuple{42.5, 69.0})
	mustAssign(t, element, "color", "green")
	element.Append(NewElement("bar"))

	want := "<foo x='-15' y='10px' size='42.5 69' color='green'>\n<bar/>\n</foo>"
	if got := element.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestElementSelfClosing(t *testing.T) {
	tests := []struct {
		name  string
		attrs [][2]any
		want  string
	}{
		{"bare", nil, "<rect/>"},
		{"one attribute", [][2]any{{"x", 1}}, "<rect x='1'/>"},
		{"several attributes", [][2]any{{"x", 1}, {"y", 2.5}, {"fill", "red"}}, "<rect x='1' y='2.5' fill='red'/>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewElement("rect")
			for _, a := range tt.attrs {
				mustAssign(t, e, a[0].(string), a[1])
			}
			got := Render(e)
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
			if !strings.HasSuffix(got, "/>") || strings.Contains(got, "\n") {
				t.Errorf("childless element should be one self-closing line, got %q", got)
			}
		})
	}
}

func TestElementChildrenBlocks(t *testing.T) {
	for n := 1; n <= 4; n++ {
		g := NewElement("g")
		for i := 0; i < n; i++ {
			c := NewElement("circle")
			mustAssign(t, c, "r", i)
			g.Append(c)
		}
		lines := strings.Split(Render(g), "\n")
		if len(lines) != n+2 {
			t.Fatalf("%d children: got %d lines, want %d", n, len(lines), n+2)
		}
		if lines[0] != "<g>" || lines[len(lines)-1] != "</g>" {
			t.Errorf("unexpected framing: %q ... %q", lines[0], lines[len(lines)-1])
		}
		if g.Len() != n {
			t.Errorf("Len() = %d, want %d", g.Len(), n)
		}
	}
}

func TestElementNested(t *testing.T) {
	inner := NewElement("g")
	inner.Append(NewElement("rect"))
	outer := NewElement("g")
	outer.Append(inner)
	outer.Append(NewText("hi"))

	want := "<g>\n<g>\n<rect/>\n</g>\nhi\n</g>"
	if got := Render(outer); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestElementAssignOrderAndDuplicates(t *testing.T) {
	e := NewElement("path")
	mustAssign(t, e, "fill", "red")
	mustAssign(t, e, "stroke", "blue")
	mustAssign(t, e, "fill", "green")

	want := "<path fill='red' stroke='blue' fill='green'/>"
	if got := Render(e); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	if v, ok := e.Get("fill"); !ok || v != "green" {
		t.Errorf("Get(fill) = %q, %v; want green, true", v, ok)
	}
	if _, ok := e.Get("opacity"); ok {
		t.Error("Get(opacity) should report missing")
	}

	attrs := e.Attributes()
	attrs[0].Value = "changed"
	if v := e.Attributes()[0].Value; v != "red" {
		t.Errorf("Attributes() should return a copy, element now has %q", v)
	}
}

func TestElementAssignInvalid(t *testing.T) {
	e := NewElement("circle")
	err := e.Assign("r", math.NaN())
	if !errors.Is(err, errors.ErrCodeInvalidValue) {
		t.Fatalf("Assign(NaN) error = %v, want INVALID_VALUE", err)
	}
	if !strings.Contains(err.Error(), "attribute r of <circle>") {
		t.Errorf("error should name the attribute, got %q", err.Error())
	}
	if got := Render(e); got != "<circle/>" {
		t.Errorf("failed Assign must not append, got %q", got)
	}
}

func TestText(t *testing.T) {
	txt := NewText(`a < b & "c"`)
	if got := Render(txt); got != "a &lt; b &amp; &#34;c&#34;" {
		t.Errorf("Render() = %q", got)
	}
	if txt.Content() != `a < b & "c"` {
		t.Errorf("Content() = %q", txt.Content())
	}
}

func mustAssign(t *testing.T, e *Element, name string, value any) {
	t.Helper()
	if err := e.Assign(name, value); err != nil {
		t.Fatalf("Assign(%s) error: %v", name, err)
	}
}
