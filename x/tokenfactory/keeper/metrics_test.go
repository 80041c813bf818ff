package keeper

import (
	"testing"

	dbm "github.com/cometbft/cometbft-db"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/cosmos/tokenfactory/x/tokenfactory/bindings"
	"github.com/cosmos/tokenfactory/x/tokenfactory/types"
)

func TestDispatchCountsCommands(t *testing.T) {
	addresses := bindings.NewBech32AddressValidator("")
	k := NewKeeper(dbm.NewMemDB(), bindings.NewChainResolver(addresses), addresses, nil)

	accepted := commandsTotal.WithLabelValues(types.MethodCreateDenom, "accepted")
	rejected := commandsTotal.WithLabelValues(types.MethodCreateDenom, "rejected")
	beforeAccepted := testutil.ToFloat64(accepted)
	beforeRejected := testutil.ToFloat64(rejected)

	_, _, err := k.Dispatch("self", types.CreateDenom{Subdenom: "moon"})
	require.NoError(t, err)
	_, _, err = k.Dispatch("self", types.CreateDenom{})
	require.Error(t, err)

	require.Equal(t, beforeAccepted+1, testutil.ToFloat64(accepted))
	require.Equal(t, beforeRejected+1, testutil.ToFloat64(rejected))
}

func TestDispatchUnknownCommand(t *testing.T) {
	k := NewKeeper(dbm.NewMemDB(), nil, nil, nil)

	_, _, err := k.Dispatch("self", nil)
	require.ErrorIs(t, err, types.ErrInvalidRequest)
}
