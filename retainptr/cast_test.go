package retainptr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type animal interface {
	Name() string
}

type dog struct {
	AtomicCount

	live *int
}

func newDog(live *int) *dog {
	*live++
	return &dog{AtomicCount: NewAtomicCount(), live: live}
}

func (d *dog) Name() string { return "dog" }

func (d *dog) Dispose() { *d.live-- }

type cat struct {
	AtomicCount
}

func (c *cat) Name() string { return "cat" }

type (
	dogTraits    = DefaultTraits[dog, *dog]
	animalTraits = DynamicTraits[animal]

	dogPtr    = Ptr[*dog, dogTraits]
	animalPtr = Ptr[animal, animalTraits]
)

func toAnimal(d *dog) animal { return d }

func TestConvertSharesOwnership(t *testing.T) {
	var live int
	d := Own(newDog(&live))

	a := Convert[animal, animalTraits](d, toAnimal)
	require.True(t, a.Valid())
	require.Equal(t, "dog", a.Get().Name())
	require.Equal(t, int32(2), d.UseCount())
	require.Equal(t, int32(2), a.UseCount())

	d.Clear()
	require.Equal(t, int32(1), a.UseCount())
	require.Equal(t, 1, live)

	a.Clear()
	require.Equal(t, 0, live)
}

func TestConvertEmptySource(t *testing.T) {
	var d dogPtr
	a := Convert[animal, animalTraits](d, func(*dog) animal {
		t.Fatal("conversion of an empty handle must not be invoked")
		return nil
	})
	require.False(t, a.Valid())
}

func TestConvertMovedTransfersOwnership(t *testing.T) {
	var live int
	d := Own(newDog(&live))

	a := ConvertMoved[animal, animalTraits](&d, toAnimal)
	require.False(t, d.Valid())
	require.True(t, a.Valid())
	require.Equal(t, int32(1), a.UseCount())
	require.Equal(t, 1, live)

	a.Clear()
	require.Equal(t, 0, live)
}

func TestAsRecoversConcreteType(t *testing.T) {
	var live int
	d := Own(newDog(&live))
	a := ConvertMoved[animal, animalTraits](&d, toAnimal)

	back := As[*dog, dogTraits](a)
	require.True(t, back.Valid())
	require.Equal(t, int32(2), back.UseCount())

	a.Clear()
	require.Equal(t, int32(1), back.UseCount())
	back.Clear()
	require.Equal(t, 0, live)
}

func TestAsMismatchLeavesSourceUntouched(t *testing.T) {
	var live int
	d := Own(newDog(&live))
	a := ConvertMoved[animal, animalTraits](&d, toAnimal)

	miss := As[*cat, DefaultTraits[cat, *cat]](a)
	require.False(t, miss.Valid())
	require.True(t, a.Valid())
	require.Equal(t, int32(1), a.UseCount())

	a.Clear()
	require.Equal(t, 0, live)
}

func TestAsMovedMatch(t *testing.T) {
	var live int
	d := Own(newDog(&live))
	a := ConvertMoved[animal, animalTraits](&d, toAnimal)

	back := AsMoved[*dog, dogTraits](&a)
	require.False(t, a.Valid())
	require.True(t, back.Valid())
	require.Equal(t, int32(1), back.UseCount())

	back.Clear()
	require.Equal(t, 0, live)
}

func TestAsMovedMismatchDoesNotLeak(t *testing.T) {
	var live int
	d := Own(newDog(&live))
	a := ConvertMoved[animal, animalTraits](&d, toAnimal)

	// The source held the last reference: a failed moved cast must still
	// drop it so the object is disposed, not leaked.
	miss := AsMoved[*cat, DefaultTraits[cat, *cat]](&a)
	require.False(t, miss.Valid())
	require.False(t, a.Valid())
	require.Equal(t, 0, live)
}

func TestAsMovedEmptySource(t *testing.T) {
	var a animalPtr
	miss := AsMoved[*dog, dogTraits](&a)
	require.False(t, miss.Valid())
}
