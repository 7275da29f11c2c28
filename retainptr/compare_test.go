package retainptr

import (
	"testing"

	"github.com/peterlauro/smart-ptrs/x/hash"

	"github.com/stretchr/testify/require"
)

func TestEqualIsIdentity(t *testing.T) {
	var live int
	a := Own(newTestResource(&live))
	b := a.Clone()
	c := Own(newTestResource(&live))

	require.True(t, Equal(a, b))
	require.False(t, Equal(a, c))

	a.Clear()
	b.Clear()
	c.Clear()
}

func TestEqualAcrossHandleTypes(t *testing.T) {
	var live int
	d := Own(newDog(&live))
	a := Convert[animal, animalTraits](d, toAnimal)

	require.True(t, Equal(d, a))
	require.True(t, Equal(a, d))

	a.Clear()
	require.False(t, Equal(d, a))

	d.Clear()
	// Two empty handles are equal.
	require.True(t, Equal(d, a))
}

func TestOrderingIsConsistent(t *testing.T) {
	var live int
	a := Own(newTestResource(&live))
	b := Own(newTestResource(&live))

	less := Less(a, b)
	require.Equal(t, !less, Less(b, a))
	require.Equal(t, less, Greater(b, a))
	require.True(t, LessEqual(a, a))
	require.True(t, GreaterEqual(a, a))
	require.False(t, Less(a, a))

	// Empty handles order before owning ones.
	var empty testPtr
	require.True(t, Less(empty, a))
	require.False(t, Less(a, empty))

	a.Clear()
	b.Clear()
}

func TestHashIdentity(t *testing.T) {
	var live int
	a := Own(newTestResource(&live))
	b := a.Clone()
	c := Own(newTestResource(&live))

	require.Equal(t, a.Hash(), b.Hash())
	require.NotEqual(t, a.Hash(), c.Hash())

	a.Clear()
	b.Clear()
	c.Clear()
}

func TestHashEmptyMatchesNilAddress(t *testing.T) {
	var p testPtr
	require.Equal(t, hash.AddrHash(0), p.Hash())
}

func TestHashAcrossHandleTypes(t *testing.T) {
	var live int
	d := Own(newDog(&live))
	a := Convert[animal, animalTraits](d, toAnimal)

	require.Equal(t, d.Hash(), a.Hash())

	a.Clear()
	d.Clear()
}
