package keeper

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	wasmvmtypes "github.com/CosmWasm/wasmvm/types"

	"github.com/cosmos/tokenfactory/x/tokenfactory/types"
)

// Instantiate records the sender as owner along with the contract version.
// It emits no messages.
func (k Keeper) Instantiate(info wasmvmtypes.MessageInfo, _ types.InstantiateMsg) (*wasmvmtypes.Response, error) {
	state := types.State{Owner: info.Sender}

	if err := k.setJSON(types.ContractInfoKey, types.ContractInfo{
		Contract: types.ContractName,
		Version:  types.ContractVersion,
	}); err != nil {
		return nil, err
	}
	if err := k.setJSON(types.StateKey, state); err != nil {
		return nil, err
	}

	k.Logger().Info("instantiated contract", "owner", state.Owner, "version", types.ContractVersion)
	return &wasmvmtypes.Response{
		Attributes: []wasmvmtypes.EventAttribute{
			{Key: types.AttributeKeyMethod, Value: types.MethodInstantiate},
			{Key: types.AttributeKeyOwner, Value: state.Owner},
		},
	}, nil
}

// GetState returns the owner record written at instantiation.
func (k Keeper) GetState() (types.State, error) {
	var state types.State
	err := k.getJSON(types.StateKey, &state)
	return state, err
}

func (k Keeper) GetContractInfo() (types.ContractInfo, error) {
	var info types.ContractInfo
	err := k.getJSON(types.ContractInfoKey, &info)
	return info, err
}

func (k Keeper) setJSON(key []byte, v interface{}) error {
	bz, err := json.Marshal(v)
	if err != nil {
		return errorsmod.Wrapf(err, "failed to marshal %s", key)
	}
	if err := k.store.Set(key, bz); err != nil {
		return errorsmod.Wrapf(err, "failed to write %s", key)
	}
	return nil
}

func (k Keeper) getJSON(key []byte, v interface{}) error {
	bz, err := k.store.Get(key)
	if err != nil {
		return errorsmod.Wrapf(err, "failed to read %s", key)
	}
	if bz == nil {
		return errorsmod.Wrapf(types.ErrStateNotFound, "%s", key)
	}
	if err := json.Unmarshal(bz, v); err != nil {
		return errorsmod.Wrapf(err, "failed to unmarshal %s", key)
	}
	return nil
}
