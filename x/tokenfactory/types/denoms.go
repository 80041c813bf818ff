package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	MaxSubdenomLength = 44
	MaxHrpLength      = 16
	MaxCreatorLength = 59 + MaxHrpLength
)

// GetTokenDenom constructs a denom string for tokens created by tokenfactory
// based on an input creator address and a subdenom
// The denom constructed is factory/{creator}/{subdenom}
func GetTokenDenom(creator, subdenom string) (string, error) {
	if len(subdenom) > MaxSubdenomLength {
		return "", errorsmod.Wrapf(ErrInvalidDenom, "subdenom too long, max length is %d bytes", MaxSubdenomLength)
	}
	if len(creator) > MaxCreatorLength {
		return "", errorsmod.Wrapf(ErrInvalidDenom, "creator too long, max length is %d bytes", MaxCreatorLength)
	}
	if strings.Contains(creator, "/") {
		return "", errorsmod.Wrap(ErrInvalidAddress, "creator address cannot contain \"/\"")
	}
	denom := strings.Join([]string{DenomPrefix, creator, subdenom}, "/")
	if err := sdk.ValidateDenom(denom); err != nil {
		return "", errorsmod.Wrap(ErrInvalidDenom, err.Error())
	}
	return denom, nil
}
