package keeper

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/tokenfactory/x/tokenfactory/types"
)

// Query answers a contract query with its JSON encoded response.
func (k Keeper) Query(msg types.QueryMsg) ([]byte, error) {
	switch {
	case msg.GetDenom != nil:
		res, err := k.GetDenom(msg.GetDenom.CreatorAddress, msg.GetDenom.Subdenom)
		if err != nil {
			return nil, err
		}
		bz, err := json.Marshal(res)
		if err != nil {
			return nil, errorsmod.Wrap(err, "failed to marshal GetDenomResponse")
		}
		return bz, nil

	default:
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "unknown query variant")
	}
}

// GetDenom resolves the full denom for creatorAddr and subdenom. A resolver
// failure fails the query; there is no fallback.
func (k Keeper) GetDenom(creatorAddr string, subdenom string) (types.GetDenomResponse, error) {
	denom, err := k.resolver.FullDenom(creatorAddr, subdenom)
	getDenomQueriesTotal.WithLabelValues(resultLabel(err)).Inc()
	if err != nil {
		return types.GetDenomResponse{}, errorsmod.Wrap(err, "get denom")
	}
	return types.GetDenomResponse{Denom: denom}, nil
}
