package domain

// Identity is the canonical form of an address, as produced by auth.ValidateIdentity.
// Two identities are the same caller iff their strings are equal.
type Identity string

func (i Identity) String() string {
	return string(i)
}

// Config is the registry configuration, written once at instantiation.
type Config struct {
	Owner Identity `cbor:"owner"`
}
