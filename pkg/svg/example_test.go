package svg_test

import (
	"fmt"
	"os"

	"github.com/matzehuels/svgtree/pkg/svg"
)

func ExampleElement() {
	element := svg.NewElement("foo")
	_ = element.Assign("x", -15)
	_ = element.Assign("y", "10px")
	_ = element.Assign("size", svg.Tuple{42.5, 69.0})
	_ = element.Assign("color", "green")
	element.Append(svg.NewElement("bar"))

	fmt.Println(element)
	// Output:
	// <foo x='-15' y='10px' size='42.5 69' color='green'>
	// <bar/>
	// </foo>
}

func ExampleValue() {
	for _, v := range []any{-15, "10px", svg.Tuple{42.5, 69.0}, float32(0.5)} {
		s, _ := svg.Value(v)
		fmt.Printf("%q\n", s)
	}
	// Output:
	// "-15"
	// "10px"
	// "42.5 69"
	// "0.5"
}

func ExampleDocument() {
	doc := svg.NewDocument()
	_ = doc.SetViewBox(0, 0, 10, 10)

	title := svg.NewElement("title")
	title.Append(svg.NewText("A & B"))
	doc.Append(title)

	if err := doc.Write(os.Stdout); err != nil {
		fmt.Println("Error:", err)
	}
	// Output:
	// <svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 10 10'>
	// <title>
	// A &amp; B
	// </title>
	// </svg>
}
