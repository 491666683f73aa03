package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bcoopers/poiboi/internal/scope"
)

func TestFrameChildShadowsParent(t *testing.T) {
	parent := scope.NewFrame()
	parent.Declare("a", "outer")
	child := parent.Child()
	child.Declare("a", "inner")

	v, ok := child.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "inner", v)

	v, ok = parent.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "outer", v)
}

func TestFrameSetUpdatesOnAncestorWhenUnshadowed(t *testing.T) {
	parent := scope.NewFrame()
	parent.Declare("a", "outer")
	child := parent.Child()

	ok := child.Set("a", "updated")
	assert.True(t, ok)

	v, _ := parent.Get("a")
	assert.Equal(t, "updated", v)
}

func TestFrameSetReturnsFalseWhenUnbound(t *testing.T) {
	f := scope.NewFrame()
	assert.False(t, f.Set("never-declared", "x"))
}

func TestFrameGetMissesPastTop(t *testing.T) {
	f := scope.NewFrame()
	_, ok := f.Get("nope")
	assert.False(t, ok)
}

func TestHasLocalOnlyChecksExactFrame(t *testing.T) {
	parent := scope.NewFrame()
	parent.Declare("a", "1")
	child := parent.Child()
	assert.False(t, child.HasLocal("a"))
	assert.True(t, parent.HasLocal("a"))
}

func TestGlobalsUnboundReadIsEmptyString(t *testing.T) {
	g := scope.NewGlobals()
	assert.Equal(t, "", g.Get("missing"))
	assert.False(t, g.Has("missing"))

	g.Set("missing", "now set")
	assert.Equal(t, "now set", g.Get("missing"))
	assert.True(t, g.Has("missing"))
}
