// Package modal builds the markup skeleton for pull-style modal dialogs:
// a root region carrying the open/closed class toggle, a content container,
// and a click-to-close backdrop. Visual rules for the emitted class names are
// owned entirely by external CSS.
package modal

import "github.com/pullpane/pullpane-go/internal/domain/entities/markup"

// Direction is the screen edge a dialog pulls in from. It is purely
// descriptive; its only effect is selecting a CSS class suffix.
type Direction int

const (
	Top Direction = iota
	Right
	Bottom
	Left
)

// Suffix returns the CSS class suffix for the direction. The mapping is part
// of the stylesheet contract and must not change.
func (d Direction) Suffix() string {
	switch d {
	case Top:
		return "--top"
	case Right:
		return "--right"
	case Bottom:
		return "--bottom"
	case Left:
		return "--left"
	default:
		return ""
	}
}

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// ParseDirection maps a direction slug to its Direction. The second return
// value is false for unrecognized slugs.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "top":
		return Top, true
	case "right":
		return Right, true
	case "bottom":
		return Bottom, true
	case "left":
		return Left, true
	default:
		return Top, false
	}
}

// Config holds the derived class names and close action for one dialog. All
// class fields are computed from the module name and direction at construction
// time and never change independently. A is the host application's opaque
// action type; this package stores it and attaches it to the backdrop without
// ever inspecting it.
type Config[A any] struct {
	MainClass      string
	Direction      Direction
	OpenClass      string
	ContainerClass string
	BackdropClass  string
	CloseMsg       A
}

// NewConfig derives a dialog configuration from a module name, a pull
// direction, and the action to dispatch when the backdrop is activated. The
// module name is used verbatim; no validation is performed.
func NewConfig[A any](moduleName string, direction Direction, closeMsg A) Config[A] {
	return Config[A]{
		MainClass:      moduleName + " " + moduleName + direction.Suffix(),
		Direction:      direction,
		OpenClass:      moduleName + "-isOpen",
		ContainerClass: moduleName + "-container",
		BackdropClass:  moduleName + "-backdrop",
		CloseMsg:       closeMsg,
	}
}

// Render builds the dialog markup tree. The root node carries the main class
// plus the open class when isOpen, followed by caller attributes (applied
// after, so callers can override). It always has exactly two children, in
// order: the content container wrapping the supplied children unmodified, then
// the backdrop with the close action attached and no children of its own.
//
// Render is a pure function of its inputs: identical inputs yield structurally
// identical trees.
func Render[A any](cfg Config[A], isOpen bool, attrs []markup.Attr, children []markup.Node) markup.Node {
	openClass := ""
	if isOpen {
		openClass = cfg.OpenClass
	}

	rootAttrs := make([]markup.Attr, 0, len(attrs)+1)
	rootAttrs = append(rootAttrs, markup.Class(cfg.MainClass, openClass))
	rootAttrs = append(rootAttrs, attrs...)

	container := markup.Element("div", []markup.Attr{markup.Class(cfg.ContainerClass)}, children...)

	backdrop := markup.Element("div", []markup.Attr{markup.Class(cfg.BackdropClass)})
	backdrop.OnActivate = cfg.CloseMsg

	return markup.Element("div", rootAttrs, container, backdrop)
}

// RenderOptional adapts Render to an optional value. When the value is absent
// the dialog renders closed with a single empty text node as content; when
// present it renders open with the content produced by content, which is
// invoked exactly once with the unwrapped value. Panics from content propagate
// unmodified.
func RenderOptional[A, T any](cfg Config[A], value Option[T], attrs []markup.Attr, content func(T) []markup.Node) markup.Node {
	v, ok := value.Get()
	if !ok {
		return Render(cfg, false, attrs, []markup.Node{markup.Text("")})
	}
	return Render(cfg, true, attrs, content(v))
}
