package types

// Resolver is the authority that maps a creator and subdenom to the canonical
// factory denom, or rejects the pair.
type Resolver interface {
	FullDenom(creatorAddr string, subdenom string) (string, error)
}

// AddressValidator checks the format of a human readable address.
type AddressValidator interface {
	ValidateAddress(addr string) error
}

// KVStore is the persistent storage supplied by the host.
type KVStore interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
}
