package fdspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpaceFreezeThenRestoreIsIndependent(t *testing.T) {
	sp := NewSpace()
	x := sp.VStore.Alloc(NewInterval(1, 10))

	frozen := sp.Freeze()
	child1 := frozen.Restore()
	child2 := frozen.Restore()

	child1.VStore.Update(x, NewInterval(1, 5))
	child2.VStore.Update(x, NewInterval(6, 10))

	assert.Equal(t, NewInterval(1, 5), child1.VStore.Read(x))
	assert.Equal(t, NewInterval(6, 10), child2.VStore.Read(x))
}

func TestSpaceDoubleFreezePanics(t *testing.T) {
	sp := NewSpace()
	sp.Freeze()
	assert.Panics(t, func() { sp.Freeze() })
}

func TestSpaceLabelsAreUnique(t *testing.T) {
	sp1 := NewSpace()
	sp2 := NewSpace()
	l1 := sp1.Freeze().Label()
	l2 := sp2.Freeze().Label()
	assert.NotEqual(t, l1, l2)
}

func TestSpaceIsSolved(t *testing.T) {
	sp := NewSpace()
	x := sp.VStore.Alloc(NewInterval(1, 1))
	assert.True(t, sp.IsSolved())
	sp.VStore.Alloc(NewInterval(1, 5))
	assert.False(t, sp.IsSolved())
	_ = x
}

func TestSpaceRestorePreservesConstraints(t *testing.T) {
	sp := NewSpace()
	x := sp.VStore.Alloc(NewInterval(0, 10))
	y := sp.VStore.Alloc(NewInterval(0, 10))
	sp.CStore.Alloc(NewLessEqual(Var(x), Var(y)))

	frozen := sp.Freeze()
	restored := frozen.Restore()
	require.Equal(t, 1, restored.CStore.Len())
	assert.True(t, restored.CStore.Live(0))
}
