package keeper

import (
	"strings"

	"github.com/cosmos/tokenfactory/x/tokenfactory/types"
)

// ValidateDenom checks the shape of a factory denom and then asks the
// resolver whether the creator and subdenom segments form a real denom.
func (k Keeper) ValidateDenom(denom string) error {
	parts := strings.Split(denom, "/")
	if len(parts) != types.DenomParts {
		return types.NewInvalidDenomError(denom, "denom must have 3 parts separated by /, had %d", len(parts))
	}

	prefix, creator, subdenom := parts[0], parts[1], parts[2]
	if !strings.EqualFold(prefix, types.DenomPrefix) {
		return types.NewInvalidDenomError(denom, "prefix must be 'factory', was %s", prefix)
	}

	if _, err := k.resolver.FullDenom(creator, subdenom); err != nil {
		return &types.InvalidDenomError{Denom: denom, Message: err.Error()}
	}
	return nil
}
