package xmltree

import "strings"

// Attr is a single attribute as it appeared in the document
type Attr struct {
	Name  string
	Value string
}

// Node is an element of a parsed XML document
type Node struct {
	Name     string
	Attrs    []Attr
	Children []*Node
	// Line of the element start tag in the source document
	Line int

	content []content
}

// content is either character data or a child element, in document order
type content struct {
	text string
	node *Node
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
		"\n", "&#10;", "\r", "&#13;", "\t", "&#09;",
	)
)

// Text returns character data preceding the first child element.
// Empty string means the element has no leading text.
func (n *Node) Text() string {
	var b strings.Builder
	for _, c := range n.content {
		if c.node != nil {
			break
		}
		b.WriteString(c.text)
	}
	return b.String()
}

// Child returns first direct child with given name or nil
func (n *Node) Child(name string) *Node {
	for _, child := range n.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// Attr returns attribute value by name
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// String serializes the element with all nested markup back to an XML fragment.
// Elements without content are written as <name />.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(n.Name)
	for _, a := range n.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(attrEscaper.Replace(a.Value))
		b.WriteByte('"')
	}
	if len(n.content) == 0 {
		b.WriteString(" />")
		return
	}
	b.WriteByte('>')
	for _, c := range n.content {
		if c.node != nil {
			c.node.write(b)
			continue
		}
		b.WriteString(textEscaper.Replace(c.text))
	}
	b.WriteString("</")
	b.WriteString(n.Name)
	b.WriteByte('>')
}

func (n *Node) appendText(text string) {
	if last := len(n.content) - 1; last >= 0 && n.content[last].node == nil {
		n.content[last].text += text
		return
	}
	n.content = append(n.content, content{text: text})
}

func (n *Node) appendChild(child *Node) {
	n.Children = append(n.Children, child)
	n.content = append(n.content, content{node: child})
}
