package fdspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFDEventJoinIsMax(t *testing.T) {
	cases := []struct {
		a, b, want FDEvent
	}{
		{Inner, Bound, Bound},
		{Assignment, Inner, Assignment},
		{Bound, Bound, Bound},
		{Assignment, Assignment, Assignment},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.a.Join(c.b))
		assert.Equal(t, c.want, c.b.Join(c.a), "join must be commutative")
	}
}

func TestFDEventSatisfiesThreshold(t *testing.T) {
	assert.True(t, Assignment.Satisfies(Inner))
	assert.True(t, Assignment.Satisfies(Bound))
	assert.True(t, Assignment.Satisfies(Assignment))
	assert.True(t, Bound.Satisfies(Inner))
	assert.False(t, Bound.Satisfies(Assignment))
	assert.False(t, Inner.Satisfies(Bound))
}
