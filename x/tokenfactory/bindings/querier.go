package bindings

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	wasmvmtypes "github.com/CosmWasm/wasmvm/types"

	bindingstypes "github.com/cosmos/tokenfactory/x/tokenfactory/bindings/types"
	"github.com/cosmos/tokenfactory/x/tokenfactory/types"
)

// DefaultQueryGasLimit bounds each token query sent to the host.
const DefaultQueryGasLimit uint64 = 1_000_000

// TokenQuerier resolves denoms by sending custom token queries through the
// host's querier. Host errors are returned untouched so their text reaches
// the caller.
type TokenQuerier struct {
	querier  wasmvmtypes.Querier
	gasLimit uint64
}

var _ types.Resolver = (*TokenQuerier)(nil)

func NewTokenQuerier(querier wasmvmtypes.Querier, gasLimit uint64) *TokenQuerier {
	return &TokenQuerier{querier: querier, gasLimit: gasLimit}
}

func (tq *TokenQuerier) FullDenom(creatorAddr string, subdenom string) (string, error) {
	request, err := json.Marshal(bindingstypes.NewFullDenomQuery(creatorAddr, subdenom))
	if err != nil {
		return "", errorsmod.Wrap(err, "failed to marshal full denom query")
	}

	bz, err := tq.querier.Query(wasmvmtypes.QueryRequest{Custom: request}, tq.gasLimit)
	if err != nil {
		return "", err
	}

	var res bindingstypes.FullDenomResponse
	if err := json.Unmarshal(bz, &res); err != nil {
		return "", errorsmod.Wrap(err, "failed to unmarshal FullDenomResponse")
	}
	return res.Denom, nil
}
