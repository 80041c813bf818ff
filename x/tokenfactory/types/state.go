package types

// State is written once at instantiation and never mutated afterwards.
type State struct {
	Owner string `json:"owner"`
}

// ContractInfo identifies the code that instantiated the contract.
type ContractInfo struct {
	Contract string `json:"contract"`
	Version  string `json:"version"`
}
