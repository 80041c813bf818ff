package bindings

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	wasmvmtypes "github.com/CosmWasm/wasmvm/types"

	bindingstypes "github.com/cosmos/tokenfactory/x/tokenfactory/bindings/types"
	"github.com/cosmos/tokenfactory/x/tokenfactory/types"
)

// CustomQuerier is the host side of the token query bindings. It answers
// full_denom queries from a Resolver and rejects everything else.
type CustomQuerier struct {
	resolver types.Resolver
}

var _ wasmvmtypes.Querier = (*CustomQuerier)(nil)

func NewCustomQuerier(resolver types.Resolver) *CustomQuerier {
	return &CustomQuerier{resolver: resolver}
}

func (q *CustomQuerier) Query(request wasmvmtypes.QueryRequest, _ uint64) ([]byte, error) {
	if request.Custom == nil {
		return nil, wasmvmtypes.UnsupportedRequest{Kind: "only custom token queries are supported"}
	}

	var contractQuery bindingstypes.TokenFactoryQuery
	if err := json.Unmarshal(request.Custom, &contractQuery); err != nil {
		return nil, errorsmod.Wrap(err, "token factory query")
	}
	if contractQuery.Token == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "nil token field")
	}
	tokenQuery := contractQuery.Token

	switch {
	case tokenQuery.FullDenom != nil:
		fullDenom, err := q.resolver.FullDenom(tokenQuery.FullDenom.CreatorAddr, tokenQuery.FullDenom.Subdenom)
		if err != nil {
			return nil, errorsmod.Wrap(err, "full denom query")
		}

		bz, err := json.Marshal(bindingstypes.FullDenomResponse{Denom: fullDenom})
		if err != nil {
			return nil, errorsmod.Wrap(err, "failed to marshal FullDenomResponse")
		}
		return bz, nil

	default:
		return nil, wasmvmtypes.UnsupportedRequest{Kind: "unknown token query variant"}
	}
}

// GasConsumed is always zero; denom resolution is not metered here.
func (q *CustomQuerier) GasConsumed() uint64 {
	return 0
}
