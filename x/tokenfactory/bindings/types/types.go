package types

// Metadata is attached to a denom at creation. The contract never sets it,
// but the chain accepts it on CreateDenom.
type Metadata struct {
	Description string `json:"description"`
	// DenomUnits represents the list of DenomUnit's for a given coin
	DenomUnits []DenomUnit `json:"denom_units"`
	// Base represents the base denom (should be the DenomUnit with exponent = 0).
	Base string `json:"base"`
	// Display indicates the suggested denom that should be displayed in clients.
	Display string `json:"display"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

type DenomUnit struct {
	Denom string `json:"denom"`
	// Exponent is the power of 10 relating this unit to the base denom.
	Exponent uint32   `json:"exponent"`
	Aliases  []string `json:"aliases"`
}
