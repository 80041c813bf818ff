package bindings_test

import (
	"encoding/json"
	"testing"

	wasmvmtypes "github.com/CosmWasm/wasmvm/types"
	"github.com/stretchr/testify/require"

	"github.com/cosmos/tokenfactory/x/tokenfactory/bindings"
	bindingstypes "github.com/cosmos/tokenfactory/x/tokenfactory/bindings/types"
	"github.com/cosmos/tokenfactory/x/tokenfactory/types"
)

func newTestQuerier() *bindings.CustomQuerier {
	addresses := bindings.NewBech32AddressValidator(testPrefix)
	return bindings.NewCustomQuerier(bindings.NewChainResolver(addresses))
}

func TestTokenQuerierFullDenom(t *testing.T) {
	creator := accountAddress(t, testPrefix, 0x07)
	tq := bindings.NewTokenQuerier(newTestQuerier(), bindings.DefaultQueryGasLimit)

	specs := map[string]struct {
		creator   string
		subdenom  string
		expDenom  string
		expErrMsg string
	}{
		"valid": {
			creator:  creator,
			subdenom: "moon",
			expDenom: "factory/" + creator + "/moon",
		},
		"empty creator": {
			creator:   "",
			subdenom:  "moon",
			expErrMsg: "empty address string is not allowed",
		},
		"foreign prefix": {
			creator:   accountAddress(t, "cosmos", 0x07),
			subdenom:  "moon",
			expErrMsg: "invalid bech32 prefix",
		},
		"subdenom too long": {
			creator:   creator,
			subdenom:  "adsfadsfadsfadsfadsfadsfadsfadsfadsfadsfadsfadsf",
			expErrMsg: "subdenom too long",
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			denom, err := tq.FullDenom(spec.creator, spec.subdenom)
			if spec.expErrMsg != "" {
				require.ErrorContains(t, err, spec.expErrMsg)
				return
			}
			require.NoError(t, err)
			require.Equal(t, spec.expDenom, denom)
		})
	}
}

func TestCustomQuerierRejectsOtherRequests(t *testing.T) {
	q := newTestQuerier()

	_, err := q.Query(wasmvmtypes.QueryRequest{}, bindings.DefaultQueryGasLimit)
	require.ErrorAs(t, err, &wasmvmtypes.UnsupportedRequest{})

	_, err = q.Query(wasmvmtypes.QueryRequest{Custom: json.RawMessage(`{}`)}, bindings.DefaultQueryGasLimit)
	require.ErrorIs(t, err, types.ErrInvalidRequest)

	_, err = q.Query(wasmvmtypes.QueryRequest{Custom: json.RawMessage(`{"token":{}}`)}, bindings.DefaultQueryGasLimit)
	require.ErrorAs(t, err, &wasmvmtypes.UnsupportedRequest{})

	_, err = q.Query(wasmvmtypes.QueryRequest{Custom: json.RawMessage(`not json`)}, bindings.DefaultQueryGasLimit)
	require.Error(t, err)

	require.Zero(t, q.GasConsumed())
}

func TestCustomQuerierWireFormat(t *testing.T) {
	creator := accountAddress(t, testPrefix, 0x03)
	request, err := json.Marshal(bindingstypes.NewFullDenomQuery(creator, "moon"))
	require.NoError(t, err)
	require.JSONEq(t, `{"token":{"full_denom":{"creator_addr":"`+creator+`","subdenom":"moon"}}}`, string(request))

	bz, err := newTestQuerier().Query(wasmvmtypes.QueryRequest{Custom: request}, bindings.DefaultQueryGasLimit)
	require.NoError(t, err)
	require.JSONEq(t, `{"denom":"factory/`+creator+`/moon"}`, string(bz))
}
