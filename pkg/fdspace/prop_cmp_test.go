package fdspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessEqualSubsumption(t *testing.T) {
	s := NewVStore()
	x := s.Alloc(NewInterval(0, 2))
	y := s.Alloc(NewInterval(5, 10))
	p := NewLessEqual(Var(x), Var(y))
	assert.Equal(t, True, p.IsSubsumed(s))

	s2 := NewVStore()
	x2 := s2.Alloc(NewInterval(5, 10))
	y2 := s2.Alloc(NewInterval(0, 2))
	p2 := NewLessEqual(Var(x2), Var(y2))
	assert.Equal(t, False, p2.IsSubsumed(s2))
}

func TestLessEqualPropagateNarrowsBothSides(t *testing.T) {
	s := NewVStore()
	x := s.Alloc(NewInterval(0, 10))
	y := s.Alloc(NewInterval(5, 20))
	p := NewLessEqual(Var(x), Var(y))
	ok := p.Propagate(s)
	require.True(t, ok)
	assert.Equal(t, NewInterval(0, 10), s.Read(x), "x.hi already <= y.hi, no narrowing needed")
	assert.Equal(t, NewInterval(5, 20), s.Read(y))

	s2 := NewVStore()
	x2 := s2.Alloc(NewInterval(0, 15))
	y2 := s2.Alloc(NewInterval(3, 8))
	p2 := NewLessEqual(Var(x2), Var(y2))
	ok = p2.Propagate(s2)
	require.True(t, ok)
	assert.Equal(t, NewInterval(0, 8), s2.Read(x2))
	assert.Equal(t, NewInterval(3, 8), s2.Read(y2))
}

func TestLessEqualPropagateFailsOnCrossedBounds(t *testing.T) {
	s := NewVStore()
	x := s.Alloc(NewInterval(8, 10))
	y := s.Alloc(NewInterval(0, 5))
	p := NewLessEqual(Var(x), Var(y))
	assert.False(t, p.Propagate(s))
}

func TestLessThanIsLessEqualShiftedByOne(t *testing.T) {
	s := NewVStore()
	x := s.Alloc(NewInterval(0, 10))
	y := s.Alloc(NewInterval(0, 10))
	p := NewLessThan(Var(x), Var(y))
	require.True(t, p.Propagate(s))
	assert.Equal(t, NewInterval(0, 9), s.Read(x))
	assert.Equal(t, NewInterval(1, 10), s.Read(y))
}

func TestEqualPropagateIntersectsBothSides(t *testing.T) {
	s := NewVStore()
	x := s.Alloc(NewInterval(0, 5))
	y := s.Alloc(NewInterval(3, 8))
	p := NewEqual(Var(x), Var(y))
	require.True(t, p.Propagate(s))
	assert.Equal(t, NewInterval(3, 5), s.Read(x))
	assert.Equal(t, NewInterval(3, 5), s.Read(y))
}

func TestEqualSubsumption(t *testing.T) {
	s := NewVStore()
	x := s.Alloc(Singleton(4))
	y := s.Alloc(Singleton(4))
	p := NewEqual(Var(x), Var(y))
	assert.Equal(t, True, p.IsSubsumed(s))

	s2 := NewVStore()
	x2 := s2.Alloc(NewInterval(0, 2))
	y2 := s2.Alloc(NewInterval(5, 8))
	p2 := NewEqual(Var(x2), Var(y2))
	assert.Equal(t, False, p2.IsSubsumed(s2))
}

func TestEqualPropagateFailsWhenDisjoint(t *testing.T) {
	s := NewVStore()
	x := s.Alloc(NewInterval(0, 2))
	y := s.Alloc(NewInterval(5, 8))
	p := NewEqual(Var(x), Var(y))
	assert.False(t, p.Propagate(s))
}

func TestNotEqualRemovesSingletonFromOtherSide(t *testing.T) {
	s := NewVStore()
	x := s.Alloc(Singleton(0))
	y := s.Alloc(NewInterval(0, 3))
	p := NewNotEqual(Var(x), Var(y))
	require.True(t, p.Propagate(s))
	assert.Equal(t, NewInterval(1, 3), s.Read(y))
}

func TestNotEqualIsNoOpWhenSingletonIsInterior(t *testing.T) {
	s := NewVStore()
	x := s.Alloc(Singleton(2))
	y := s.Alloc(NewInterval(0, 5))
	p := NewNotEqual(Var(x), Var(y))
	require.True(t, p.Propagate(s))
	assert.Equal(t, NewInterval(0, 5), s.Read(y), "2 is interior to [0,5]; removal is a no-op on this hole-free domain")
}

func TestNotEqualSubsumption(t *testing.T) {
	s := NewVStore()
	x := s.Alloc(NewInterval(0, 2))
	y := s.Alloc(NewInterval(5, 8))
	p := NewNotEqual(Var(x), Var(y))
	assert.Equal(t, True, p.IsSubsumed(s))

	s2 := NewVStore()
	x2 := s2.Alloc(Singleton(3))
	y2 := s2.Alloc(Singleton(3))
	p2 := NewNotEqual(Var(x2), Var(y2))
	assert.Equal(t, False, p2.IsSubsumed(s2))
	assert.False(t, p2.Propagate(s2))
}
