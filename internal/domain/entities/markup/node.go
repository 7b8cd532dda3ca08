// Package markup provides the immutable node tree that dialog renderers emit
// and the presentation layer serializes to HTML.
package markup

import (
	"reflect"
	"strings"
)

// Attr is a single markup attribute. Attributes are ordered; when the same key
// appears more than once the last occurrence wins at serialization time, so
// caller-supplied attributes can override generated ones.
type Attr struct {
	Key   string
	Value string
}

// Node is one node in a markup tree. A node is either an element (Tag set) or
// a text node (Tag empty, Text holds the content). OnActivate carries an
// opaque action descriptor dispatched when the node is activated; this package
// never inspects it — encoding is owned by the presentation layer.
type Node struct {
	Tag        string
	Attrs      []Attr
	Children   []Node
	Text       string
	OnActivate any
}

// Element builds an element node with the given tag, attributes and children.
func Element(tag string, attrs []Attr, children ...Node) Node {
	return Node{Tag: tag, Attrs: attrs, Children: children}
}

// Text builds a text node.
func Text(s string) Node {
	return Node{Text: s}
}

// Class builds a class attribute from the given names joined by single spaces.
// Empty names are dropped, matching the class-string trimming done by the
// fragment templates.
func Class(names ...string) Attr {
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if name != "" {
			kept = append(kept, name)
		}
	}
	return Attr{Key: "class", Value: strings.Join(kept, " ")}
}

// IsText reports whether the node is a text node.
func (n Node) IsText() bool {
	return n.Tag == ""
}

// Attr returns the effective value of the named attribute (last occurrence
// wins) and whether it was present at all.
func (n Node) Attr(key string) (string, bool) {
	value, found := "", false
	for _, a := range n.Attrs {
		if a.Key == key {
			value, found = a.Value, true
		}
	}
	return value, found
}

// ClassList returns the effective class attribute split into tokens.
func (n Node) ClassList() []string {
	value, ok := n.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(value)
}

// Equal reports structural equality of two trees: tag, text, attributes in
// order, activation action, and children, recursively.
func (n Node) Equal(other Node) bool {
	if n.Tag != other.Tag || n.Text != other.Text {
		return false
	}
	if !reflect.DeepEqual(n.OnActivate, other.OnActivate) {
		return false
	}
	if len(n.Attrs) != len(other.Attrs) || len(n.Children) != len(other.Children) {
		return false
	}
	for i := range n.Attrs {
		if n.Attrs[i] != other.Attrs[i] {
			return false
		}
	}
	for i := range n.Children {
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}
