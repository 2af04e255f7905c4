// Package document implements a generic, order-preserving element tree parser
// for self-contained XML text. It carries no GEOM knowledge whatsoever; the
// interpretation of tags and fields is left to the consuming packages. Sibling
// order is preserved exactly as encountered, since later pipeline stages
// derive deterministic orderings from document order.
package document

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Element is a single node of the generic element tree.
type Element struct {
	// Tag is the element's local name.
	Tag string

	// Attr maps attribute names to their raw values.
	Attr map[string]string

	// Children holds the element's child elements, in document order.
	Children []*Element

	// Text is the element's accumulated character data, whitespace-trimmed.
	Text string
}

// Parse reads a self-contained XML document into a generic [Element] tree,
// returning the root element. Truncated or syntactically invalid input fails
// with an error wrapping [ErrMalformed].
func Parse(data []byte) (*Element, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.Strict = true

	var root *Element
	var stack []*Element

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			element := &Element{
				Tag:  t.Name.Local,
				Attr: make(map[string]string, len(t.Attr)),
			}
			for _, attr := range t.Attr {
				element.Attr[attr.Name.Local] = attr.Value
			}

			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: %s", ErrMultipleRoots, t.Name.Local)
				}
				root = element
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, element)
			}

			stack = append(stack, element)

		case xml.EndElement:
			// The strict decoder guarantees matched tags, so the stack
			// cannot underflow here.
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) > 0 {
				element := stack[len(stack)-1]
				element.Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformed)
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("%w: unclosed element %s", ErrMalformed, stack[len(stack)-1].Tag)
	}

	trimText(root)

	return root, nil
}

// trimText strips surrounding whitespace from the accumulated character data
// of an element and all of its descendants.
func trimText(element *Element) {
	element.Text = strings.TrimSpace(element.Text)
	for _, child := range element.Children {
		trimText(child)
	}
}

// ChildText returns the trimmed text content of the first child element with
// the given tag, and whether such a child exists.
func (e *Element) ChildText(tag string) (string, bool) {
	if child := e.FirstChild(tag); child != nil {
		return child.Text, true
	}

	return "", false
}

// FirstChild returns the first child element with the given tag, or nil when
// no such child exists.
func (e *Element) FirstChild(tag string) *Element {
	for _, child := range e.Children {
		if child.Tag == tag {
			return child
		}
	}

	return nil
}

// ChildrenByTag returns all child elements with the given tag, in document
// order.
func (e *Element) ChildrenByTag(tag string) []*Element {
	var matched []*Element

	for _, child := range e.Children {
		if child.Tag == tag {
			matched = append(matched, child)
		}
	}

	return matched
}
