package flaretree_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flarelath/flaretree"
)

func TestForest_BirthAddContains(t *testing.T) {
	f := flaretree.NewForest()
	a := f.Birth("a", 1)
	b := f.Birth("b", 2)
	f.Add(a, "x")

	assert.True(t, f.Contains(a, "x"))
	assert.False(t, f.Contains(b, "x"))
	assert.False(t, f.Contains(a, "ghost"))

	require.NoError(t, f.Attach(a, b))
	assert.True(t, f.Contains(a, "b"), "subtree members belong to the root")
	assert.False(t, f.Contains(b, "a"))

	root, ok := f.Root("b")
	require.True(t, ok)
	assert.Equal(t, a, root)
	assert.Equal(t, []int{a}, f.Roots())
	assert.Equal(t, []int{b}, f.Children(a))
	assert.Equal(t, a, f.Parent(b))
	assert.Equal(t, -1, f.Parent(a))
}

func TestForest_AttachInvariants(t *testing.T) {
	f := flaretree.NewForest()
	a := f.Birth("a", 0)
	b := f.Birth("b", 0)
	c := f.Birth("c", 0)
	require.NoError(t, f.Attach(a, b))

	err := f.Attach(c, b)
	require.ErrorIs(t, err, flaretree.ErrInvariant)
	var inv *flaretree.InvariantError
	require.True(t, errors.As(err, &inv))
	assert.Equal(t, "attach", inv.Op)
	assert.Equal(t, b, inv.Slot)
	assert.Equal(t, c, inv.Parent)
	assert.Equal(t, "b", inv.Origin)

	assert.ErrorIs(t, f.Attach(a, a), flaretree.ErrInvariant)
}

func TestForest_CollapseRequiresDirectChild(t *testing.T) {
	f := flaretree.NewForest()
	a := f.Birth("a", 0)
	b := f.Birth("b", 0)
	c := f.Birth("c", 0)
	require.NoError(t, f.Attach(a, b))
	require.NoError(t, f.Attach(b, c))

	err := f.Collapse(a, c)
	var inv *flaretree.InvariantError
	require.True(t, errors.As(err, &inv))
	assert.Equal(t, "collapse", inv.Op)
}

func TestForest_TerminateTwice(t *testing.T) {
	f := flaretree.NewForest()
	a := f.Birth("a", 0)
	require.NoError(t, f.Terminate(a, 2, "z"))
	assert.ErrorIs(t, f.Terminate(a, 3, "y"), flaretree.ErrInvariant)

	fl := f.Flare(a)
	assert.Equal(t, 2.0, fl.Lifespan())
	assert.Equal(t, "z", fl.Terminator)
	assert.False(t, fl.Alive())
}

// Folding a subtree whose descendants were already folded must not repeat members.
func TestForest_CollapseIsIdempotentOnMembers(t *testing.T) {
	f := flaretree.NewForest()
	r := f.Birth("r", 0)
	c := f.Birth("c", 1)
	d := f.Birth("d", 2)
	f.Add(d, "x")

	require.NoError(t, f.Attach(c, d))
	require.NoError(t, f.Collapse(c, d))
	f.Add(c, "x")
	require.NoError(t, f.Attach(r, c))
	require.NoError(t, f.Collapse(r, c))

	assert.Equal(t, []string{"c", "d", "r", "x"}, f.Flare(r).Members)
	assert.Equal(t, []string{"d", "x"}, f.Flare(d).Members, "historical record kept")
	assert.Empty(t, f.Children(r))
	assert.Equal(t, []int{r}, f.Roots())

	owner, ok := f.Owner("x")
	require.True(t, ok)
	assert.Equal(t, r, owner)
	assert.Equal(t, []int{r, c, d}, f.Walk())
	assert.Equal(t, 3, f.Len())
}

func TestForest_WalkDepthFirst(t *testing.T) {
	f := flaretree.NewForest()
	a := f.Birth("a", 0)
	b := f.Birth("b", 0)
	c := f.Birth("c", 0)
	d := f.Birth("d", 0)
	require.NoError(t, f.Attach(a, b))
	require.NoError(t, f.Attach(b, c))
	require.NoError(t, f.Attach(a, d))

	assert.Equal(t, []int{a, b, c, d}, f.Walk())
}
