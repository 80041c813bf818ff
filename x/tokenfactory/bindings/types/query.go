package types

type TokenFactoryQuery struct {
	Token *TokenQuery `json:"token,omitempty"`
}

// See https://github.com/CosmWasm/token-bindings/blob/main/packages/bindings/src/query.rs
type TokenQuery struct {
	/// Given a subdenom minted by a contract via `TokenMsg::MintTokens`,
	/// returns the full denom as used by `BankMsg::Send`.
	FullDenom *FullDenom `json:"full_denom,omitempty"`
}

type FullDenom struct {
	CreatorAddr string `json:"creator_addr"`
	Subdenom    string `json:"subdenom"`
}

type FullDenomResponse struct {
	Denom string `json:"denom"`
}

func NewFullDenomQuery(creatorAddr, subdenom string) TokenFactoryQuery {
	return TokenFactoryQuery{Token: &TokenQuery{FullDenom: &FullDenom{
		CreatorAddr: creatorAddr,
		Subdenom:    subdenom,
	}}}
}
