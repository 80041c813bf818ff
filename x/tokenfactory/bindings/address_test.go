package bindings_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cosmos/tokenfactory/x/tokenfactory/bindings"
	"github.com/cosmos/tokenfactory/x/tokenfactory/types"
)

func TestBech32AddressValidator(t *testing.T) {
	valid := accountAddress(t, testPrefix, 0x01)
	corrupted := valid[:len(valid)-1] + "q"
	if strings.HasSuffix(valid, "q") {
		corrupted = valid[:len(valid)-1] + "p"
	}

	specs := map[string]struct {
		prefix    string
		addr      string
		expErrMsg string
	}{
		"valid": {
			prefix: testPrefix,
			addr:   valid,
		},
		"any prefix accepted when unset": {
			addr: accountAddress(t, "cosmos", 0x02),
		},
		"empty address": {
			prefix:    testPrefix,
			addr:      "",
			expErrMsg: "empty address string is not allowed",
		},
		"upper case": {
			prefix:    testPrefix,
			addr:      strings.ToUpper(valid),
			expErrMsg: "address not normalized",
		},
		"wrong prefix": {
			prefix:    testPrefix,
			addr:      accountAddress(t, "cosmos", 0x01),
			expErrMsg: "invalid bech32 prefix; expected wormhole, got cosmos",
		},
		"bad checksum": {
			prefix:    testPrefix,
			addr:      corrupted,
			expErrMsg: "address from bech32",
		},
		"not bech32": {
			prefix:    testPrefix,
			addr:      "transferme",
			expErrMsg: "address from bech32",
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			err := bindings.NewBech32AddressValidator(spec.prefix).ValidateAddress(spec.addr)
			if spec.expErrMsg == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, types.ErrInvalidAddress)
			require.ErrorContains(t, err, spec.expErrMsg)
		})
	}
}
