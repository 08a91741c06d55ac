package xmltree

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

var (
	// ErrNoRoot is returned for documents without any element
	ErrNoRoot = errors.New("document has no root element")
	// ErrMultipleRoots is returned when elements follow the closed root element
	ErrMultipleRoots = errors.New("document has more than one root element")
)

// Parse reads a whole XML document and returns its root element.
// Comments, processing instructions and directives are dropped.
// Non UTF-8 documents are decoded according to their XML declaration.
func Parse(r io.Reader) (*Node, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		root  *Node
		stack []*Node
	)
	for {
		// RawToken keeps namespace prefixes as written
		tok, err := decoder.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "decode xml")
		}
		line, _ := decoder.InputPos()

		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, errors.Wrapf(ErrMultipleRoots, "line %d", line)
			}
			node := &Node{Name: qualifiedName(t.Name), Line: line}
			for _, a := range t.Attr {
				node.Attrs = append(node.Attrs, Attr{Name: qualifiedName(a.Name), Value: a.Value})
			}
			if len(stack) == 0 {
				root = node
			} else {
				stack[len(stack)-1].appendChild(node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			name := qualifiedName(t.Name)
			if len(stack) == 0 {
				return nil, errors.Errorf("unexpected end element </%s> at line %d", name, line)
			}
			if open := stack[len(stack)-1]; open.Name != name {
				return nil, errors.Errorf(
					"element <%s> opened at line %d closed by </%s> at line %d",
					open.Name, open.Line, name, line,
				)
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				if strings.TrimSpace(string(t)) != "" {
					return nil, errors.Errorf("character data outside of root element at line %d", line)
				}
				continue
			}
			stack[len(stack)-1].appendText(string(t))
		}
	}
	if len(stack) != 0 {
		open := stack[len(stack)-1]
		return nil, errors.Errorf("unexpected EOF: element <%s> opened at line %d is not closed", open.Name, open.Line)
	}
	if root == nil {
		return nil, ErrNoRoot
	}
	return root, nil
}

func qualifiedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}
