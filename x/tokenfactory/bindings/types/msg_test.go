package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	bindingstypes "github.com/cosmos/tokenfactory/x/tokenfactory/bindings/types"
	tokenfactorytypes "github.com/cosmos/tokenfactory/x/tokenfactory/types"
)

func TestBurnTokensSerialization(t *testing.T) {
	amount := tokenfactorytypes.NewUint128(100)

	bz, err := json.Marshal(bindingstypes.BurnContractTokensFromSelf("factory/cosmos1.../subdenom", amount))
	require.NoError(t, err)
	require.NotContains(t, string(bz), "burn_from_address", "burn_from_address should not appear when absent: %s", bz)

	bz, err = json.Marshal(bindingstypes.BurnContractTokens("factory/cosmos1.../subdenom", amount, "cosmos1abc"))
	require.NoError(t, err)
	require.Contains(t, string(bz), "burn_from_address")
	require.Contains(t, string(bz), "cosmos1abc")
}

func TestCreateDenomOmitsMetadata(t *testing.T) {
	bz, err := json.Marshal(bindingstypes.CreateDenomMsg("moon"))
	require.NoError(t, err)
	require.JSONEq(t, `{"token":{"create_denom":{"subdenom":"moon"}}}`, string(bz))
}

func TestTokenFactoryMsgValidateBasic(t *testing.T) {
	amount := tokenfactorytypes.NewUint128(1)

	specs := map[string]struct {
		msg    bindingstypes.TokenFactoryMsg
		expErr bool
	}{
		"create denom":   {msg: bindingstypes.CreateDenomMsg("moon")},
		"change admin":   {msg: bindingstypes.ChangeAdminMsg("factory/a/b", "admin")},
		"mint":           {msg: bindingstypes.MintContractTokens("factory/a/b", amount, "to")},
		"burn":           {msg: bindingstypes.BurnContractTokensFromSelf("factory/a/b", amount)},
		"force transfer": {msg: bindingstypes.ForceTransferTokens("factory/a/b", amount, "from", "to")},
		"nil token":      {msg: bindingstypes.TokenFactoryMsg{}, expErr: true},
		"no variant":     {msg: bindingstypes.TokenFactoryMsg{Token: &bindingstypes.TokenMsg{}}, expErr: true},
		"two variants": {
			msg: bindingstypes.TokenFactoryMsg{Token: &bindingstypes.TokenMsg{
				CreateDenom: &bindingstypes.CreateDenom{Subdenom: "moon"},
				ChangeAdmin: &bindingstypes.ChangeAdmin{Denom: "factory/a/b"},
			}},
			expErr: true,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			cosmosMsg, err := spec.msg.ToCosmosMsg()
			if spec.expErr {
				require.ErrorIs(t, err, tokenfactorytypes.ErrInvalidRequest)
				return
			}
			require.NoError(t, err)

			var decoded bindingstypes.TokenFactoryMsg
			require.NoError(t, json.Unmarshal(cosmosMsg.Custom, &decoded))
			require.NoError(t, decoded.ValidateBasic())
		})
	}
}
