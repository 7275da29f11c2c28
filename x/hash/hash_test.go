package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesHashMatchesStringHash(t *testing.T) {
	inputs := []string{
		"",
		"abc",
		"a longer input exercising more than one block",
	}

	for _, input := range inputs {
		require.Equal(t, BytesHash([]byte(input)), StringHash(input))
	}
}

func TestAddrHashIsDeterministic(t *testing.T) {
	require.Equal(t, AddrHash(0), AddrHash(0))
	require.Equal(t, AddrHash(0xdeadbeef), AddrHash(0xdeadbeef))
	require.NotEqual(t, AddrHash(0), AddrHash(0xdeadbeef))
}
