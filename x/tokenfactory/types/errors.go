package types

// DONTCOVER

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
)

// x/tokenfactory contract sentinel errors
var (
	ErrInvalidSubdenom = errorsmod.Register(ModuleName, 2, "invalid subdenom")
	ErrInvalidDenom    = errorsmod.Register(ModuleName, 3, "invalid denom")
	ErrZeroAmount      = errorsmod.Register(ModuleName, 4, "amount must be greater than zero")
	ErrInvalidAddress  = errorsmod.Register(ModuleName, 5, "invalid address")
	ErrAmountOverflow  = errorsmod.Register(ModuleName, 6, "amount does not fit in 128 bits")
	ErrInvalidRequest  = errorsmod.Register(ModuleName, 7, "invalid request")
	ErrStateNotFound   = errorsmod.Register(ModuleName, 8, "contract state not found")
)

// InvalidDenomError reports a denom that failed validation together with the reason.
type InvalidDenomError struct {
	Denom   string
	Message string
}

func NewInvalidDenomError(denom string, format string, args ...interface{}) *InvalidDenomError {
	return &InvalidDenomError{Denom: denom, Message: fmt.Sprintf(format, args...)}
}

func (e *InvalidDenomError) Error() string {
	return fmt.Sprintf("invalid denom %q: %s", e.Denom, e.Message)
}

func (e *InvalidDenomError) Unwrap() error { return ErrInvalidDenom }

// Cause lets errorsmod resolve the registered ABCI code.
func (e *InvalidDenomError) Cause() error { return ErrInvalidDenom }

// InvalidSubdenomError reports a subdenom rejected before any action is built.
type InvalidSubdenomError struct {
	Subdenom string
}

func (e *InvalidSubdenomError) Error() string {
	return fmt.Sprintf("invalid subdenom %q", e.Subdenom)
}

func (e *InvalidSubdenomError) Unwrap() error { return ErrInvalidSubdenom }

func (e *InvalidSubdenomError) Cause() error { return ErrInvalidSubdenom }
