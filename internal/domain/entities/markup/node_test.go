package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassDropsEmptyNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Attr{Key: "class", Value: "a b"}, Class("a", "", "b"))
	assert.Equal(t, Attr{Key: "class", Value: ""}, Class("", ""))
	assert.Equal(t, Attr{Key: "class", Value: "solo"}, Class("solo"))
}

func TestAttrLastWins(t *testing.T) {
	t.Parallel()

	n := Element("div", []Attr{
		{Key: "class", Value: "first"},
		{Key: "id", Value: "x"},
		{Key: "class", Value: "second"},
	})

	got, ok := n.Attr("class")
	assert.True(t, ok)
	assert.Equal(t, "second", got)

	_, ok = n.Attr("missing")
	assert.False(t, ok)
}

func TestClassList(t *testing.T) {
	t.Parallel()

	n := Element("div", []Attr{Class("m m--top", "m-isOpen")})
	assert.Equal(t, []string{"m", "m--top", "m-isOpen"}, n.ClassList())

	assert.Nil(t, Element("div", nil).ClassList())
}

func TestTextNodes(t *testing.T) {
	t.Parallel()

	n := Text("hello")
	assert.True(t, n.IsText())
	assert.False(t, Element("p", nil).IsText())
}

func TestEqual(t *testing.T) {
	t.Parallel()

	type action struct{ ID string }

	base := func() Node {
		n := Element("div", []Attr{Class("m")}, Element("p", nil, Text("hi")))
		n.OnActivate = action{ID: "close"}
		return n
	}

	assert.True(t, base().Equal(base()))

	differentTag := base()
	differentTag.Tag = "span"
	assert.False(t, base().Equal(differentTag))

	differentAction := base()
	differentAction.OnActivate = action{ID: "other"}
	assert.False(t, base().Equal(differentAction))

	differentChild := base()
	differentChild.Children[0].Children[0].Text = "bye"
	assert.False(t, base().Equal(differentChild))

	extraAttr := base()
	extraAttr.Attrs = append(extraAttr.Attrs, Attr{Key: "id", Value: "x"})
	assert.False(t, base().Equal(extraAttr))
}
