package domain

const (
	// AddressLength is the canonical length of a 0x-prefixed EVM address.
	AddressLength = 42

	// ZeroAddress is the all-zero EVM address in normalized form.
	ZeroAddress = "0x0000000000000000000000000000000000000000"
)
