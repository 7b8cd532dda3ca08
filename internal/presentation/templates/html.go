// Package templates serializes markup node trees to HTML fragments.
package templates

import (
	"html/template"
	"strings"

	"github.com/pullpane/pullpane-go/internal/domain/entities/markup"
)

// ActionEncoder turns an opaque activation action into the markup attributes
// that make the host page dispatch it. Encoders return nil for action values
// they do not recognize.
type ActionEncoder interface {
	EncodeAction(action any) []markup.Attr
}

// voidTags never receive a closing tag.
var voidTags = map[string]bool{
	"br": true, "hr": true, "img": true, "input": true, "meta": true, "link": true,
}

// HTMLRenderer walks a markup tree and emits an HTML string. Attribute values
// and text content are HTML-escaped; activation actions are expanded to
// attributes through the injected encoder.
type HTMLRenderer struct {
	actions ActionEncoder
}

// NewHTMLRenderer creates a renderer with the given action encoder.
func NewHTMLRenderer(actions ActionEncoder) *HTMLRenderer {
	return &HTMLRenderer{actions: actions}
}

// Render serializes one node tree.
func (r *HTMLRenderer) Render(node markup.Node) string {
	var html strings.Builder
	r.writeNode(&html, node)
	return html.String()
}

func (r *HTMLRenderer) writeNode(html *strings.Builder, node markup.Node) {
	if node.IsText() {
		html.WriteString(template.HTMLEscapeString(node.Text))
		return
	}

	attrs := node.Attrs
	if node.OnActivate != nil && r.actions != nil {
		attrs = append(append([]markup.Attr{}, attrs...), r.actions.EncodeAction(node.OnActivate)...)
	}

	html.WriteString("<")
	html.WriteString(node.Tag)
	for _, a := range mergeAttrs(attrs) {
		html.WriteString(" ")
		html.WriteString(a.Key)
		html.WriteString(`="`)
		html.WriteString(template.HTMLEscapeString(a.Value))
		html.WriteString(`"`)
	}

	if voidTags[node.Tag] {
		html.WriteString(" />")
		return
	}

	html.WriteString(">")
	for _, child := range node.Children {
		r.writeNode(html, child)
	}
	html.WriteString("</")
	html.WriteString(node.Tag)
	html.WriteString(">")
}

// mergeAttrs collapses duplicate keys with last-wins semantics while keeping
// each key at its first position, so caller-supplied attributes override the
// generated ones without reordering the output.
func mergeAttrs(attrs []markup.Attr) []markup.Attr {
	if len(attrs) < 2 {
		return attrs
	}

	position := make(map[string]int, len(attrs))
	merged := make([]markup.Attr, 0, len(attrs))
	for _, a := range attrs {
		if i, seen := position[a.Key]; seen {
			merged[i].Value = a.Value
			continue
		}
		position[a.Key] = len(merged)
		merged = append(merged, a)
	}
	return merged
}
