package bindings_test

import (
	"testing"

	"github.com/cosmos/cosmos-sdk/types/bech32"
	"github.com/stretchr/testify/require"
)

const testPrefix = "wormhole"

// accountAddress returns a 20 byte bech32 address filled with fill.
func accountAddress(t *testing.T, prefix string, fill byte) string {
	t.Helper()
	bz := make([]byte, 20)
	for i := range bz {
		bz[i] = fill
	}
	addr, err := bech32.ConvertAndEncode(prefix, bz)
	require.NoError(t, err)
	return addr
}
