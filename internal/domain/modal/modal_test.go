package modal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pullpane/pullpane-go/internal/domain/entities/markup"
)

type closeAction struct {
	ID string
}

func TestNewConfigDerivation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		moduleName string
		direction  Direction
		wantMain   string
	}{
		{name: "top", moduleName: "m", direction: Top, wantMain: "m m--top"},
		{name: "right", moduleName: "m", direction: Right, wantMain: "m m--right"},
		{name: "bottom", moduleName: "m", direction: Bottom, wantMain: "m m--bottom"},
		{name: "left", moduleName: "m", direction: Left, wantMain: "m m--left"},
		{name: "longer module name", moduleName: "site-drawer", direction: Left, wantMain: "site-drawer site-drawer--left"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig(tt.moduleName, tt.direction, closeAction{ID: "x"})

			assert.Equal(t, tt.wantMain, cfg.MainClass)
			assert.Equal(t, tt.direction, cfg.Direction)
			assert.Equal(t, tt.moduleName+"-isOpen", cfg.OpenClass)
			assert.Equal(t, tt.moduleName+"-container", cfg.ContainerClass)
			assert.Equal(t, tt.moduleName+"-backdrop", cfg.BackdropClass)
			assert.Equal(t, closeAction{ID: "x"}, cfg.CloseMsg)
		})
	}
}

func TestNewConfigLiteralScenario(t *testing.T) {
	t.Parallel()

	close := closeAction{ID: "close"}
	cfg := NewConfig("m", Top, close)

	want := Config[closeAction]{
		MainClass:      "m m--top",
		Direction:      Top,
		OpenClass:      "m-isOpen",
		ContainerClass: "m-container",
		BackdropClass:  "m-backdrop",
		CloseMsg:       close,
	}
	assert.Equal(t, want, cfg)
}

func TestRenderOpenClassToggling(t *testing.T) {
	t.Parallel()

	cfg := NewConfig("m", Top, closeAction{})

	open := Render(cfg, true, nil, nil)
	assert.Contains(t, open.ClassList(), "m-isOpen")

	closed := Render(cfg, false, nil, nil)
	assert.NotContains(t, closed.ClassList(), "m-isOpen")
	assert.Equal(t, []string{"m", "m--top"}, closed.ClassList())
}

func TestRenderStructuralShape(t *testing.T) {
	t.Parallel()

	close := closeAction{ID: "dialog-1"}
	cfg := NewConfig("m", Right, close)
	children := []markup.Node{
		markup.Element("h2", nil, markup.Text("Title")),
		markup.Text("body copy"),
	}

	root := Render(cfg, true, nil, children)

	require.Len(t, root.Children, 2)

	container := root.Children[0]
	assert.Equal(t, "div", container.Tag)
	assert.Equal(t, []string{"m-container"}, container.ClassList())
	require.Len(t, container.Children, 2)
	assert.True(t, container.Children[0].Equal(children[0]))
	assert.True(t, container.Children[1].Equal(children[1]))

	backdrop := root.Children[1]
	assert.Equal(t, "div", backdrop.Tag)
	assert.Equal(t, []string{"m-backdrop"}, backdrop.ClassList())
	assert.Empty(t, backdrop.Children)
	assert.Equal(t, close, backdrop.OnActivate)
}

func TestRenderCallerAttrsApplyAfter(t *testing.T) {
	t.Parallel()

	cfg := NewConfig("m", Bottom, closeAction{})
	root := Render(cfg, false, []markup.Attr{
		{Key: "id", Value: "dialog-m"},
		{Key: "class", Value: "custom"},
	}, nil)

	// Last occurrence wins, so the caller's class overrides the generated one.
	got, ok := root.Attr("class")
	require.True(t, ok)
	assert.Equal(t, "custom", got)

	id, ok := root.Attr("id")
	require.True(t, ok)
	assert.Equal(t, "dialog-m", id)
}

func TestRenderOptionalAbsent(t *testing.T) {
	t.Parallel()

	cfg := NewConfig("m", Left, closeAction{})
	calls := 0
	content := func(v string) []markup.Node {
		calls++
		return []markup.Node{markup.Text(v)}
	}

	got := RenderOptional(cfg, None[string](), nil, content)
	want := Render(cfg, false, nil, []markup.Node{markup.Text("")})

	assert.True(t, got.Equal(want))
	assert.Zero(t, calls, "content must not run for an absent value")
}

func TestRenderOptionalPresent(t *testing.T) {
	t.Parallel()

	cfg := NewConfig("m", Left, closeAction{})
	calls := 0
	var seen string
	content := func(v string) []markup.Node {
		calls++
		seen = v
		return []markup.Node{markup.Element("p", nil, markup.Text(v))}
	}

	got := RenderOptional(cfg, Some("hello"), nil, content)
	want := Render(cfg, true, nil, []markup.Node{markup.Element("p", nil, markup.Text("hello"))})

	assert.True(t, got.Equal(want))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "hello", seen)
}

func TestRenderIdempotence(t *testing.T) {
	t.Parallel()

	cfg := NewConfig("m", Top, closeAction{ID: "x"})
	attrs := []markup.Attr{{Key: "id", Value: "dialog-x"}}
	children := []markup.Node{markup.Text("stable")}

	first := Render(cfg, true, attrs, children)
	second := Render(cfg, true, attrs, children)

	assert.True(t, first.Equal(second))
}

func TestParseDirection(t *testing.T) {
	t.Parallel()

	for _, d := range []Direction{Top, Right, Bottom, Left} {
		got, ok := ParseDirection(d.String())
		require.True(t, ok)
		assert.Equal(t, d, got)
	}

	_, ok := ParseDirection("diagonal")
	assert.False(t, ok)
}

func TestOptionZeroValueIsNone(t *testing.T) {
	t.Parallel()

	var opt Option[int]
	_, ok := opt.Get()
	assert.False(t, ok)
	assert.False(t, opt.IsSome())

	v, ok := Some(42).Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}
