package types

const (
	// ModuleName defines the module name and error codespace
	ModuleName = "tokenfactory"

	// ContractName and ContractVersion are recorded in storage at instantiation
	ContractName    = "crates.io:tokenfactory-demo"
	ContractVersion = "0.1.0"

	// DenomPrefix is the first segment of every factory denom
	DenomPrefix = "factory"

	// DenomParts is the number of "/" separated segments in a factory denom
	DenomParts = 3
)

var (
	StateKey        = []byte("state")
	ContractInfoKey = []byte("contract_info")
)

// Response attribute keys and method names.
const (
	AttributeKeyMethod = "method"
	AttributeKeyOwner  = "owner"

	MethodInstantiate   = "instantiate"
	MethodCreateDenom   = "create_denom"
	MethodChangeAdmin   = "change_admin"
	MethodMintTokens    = "mint_tokens"
	MethodBurnTokens    = "burn_tokens"
	MethodForceTransfer = "force_transfer_tokens"
)
