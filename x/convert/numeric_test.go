package convert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInt64AsInt32Saturated(t *testing.T) {
	inputs := []struct {
		v        int64
		expected int32
	}{
		{v: 0, expected: 0},
		{v: 1234, expected: 1234},
		{v: -1234, expected: -1234},
		{v: math.MaxInt32, expected: math.MaxInt32},
		{v: math.MaxInt32 + 1, expected: math.MaxInt32},
		{v: math.MaxInt64, expected: math.MaxInt32},
		{v: math.MinInt32, expected: math.MinInt32},
		{v: math.MinInt64, expected: math.MinInt32},
	}

	for _, input := range inputs {
		require.Equal(t, input.expected, Int64AsInt32Saturated(input.v))
	}
}

func TestUint64AsInt32Saturated(t *testing.T) {
	inputs := []struct {
		v        uint64
		expected int32
	}{
		{v: 0, expected: 0},
		{v: 1234, expected: 1234},
		{v: math.MaxInt32, expected: math.MaxInt32},
		{v: math.MaxInt32 + 1, expected: math.MaxInt32},
		{v: math.MaxUint64, expected: math.MaxInt32},
	}

	for _, input := range inputs {
		require.Equal(t, input.expected, Uint64AsInt32Saturated(input.v))
	}
}
