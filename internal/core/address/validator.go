// Package address validates and normalizes EVM wallet addresses.
//
// Validation is purely syntactic; nothing here touches the network.
package address

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/vietddude/airdrop-checker/internal/core/domain"
)

// Partition splits input addresses by validity.
type Partition struct {
	Valid   []string // normalized
	Invalid []string // as given
}

// IsValid reports whether s is a 0x-prefixed, 42 character hex address.
// The prefix must be a lowercase "0x"; checksum casing of the hex digits is
// not enforced.
func IsValid(s string) bool {
	if len(s) != domain.AddressLength {
		return false
	}
	if !strings.HasPrefix(s, "0x") {
		return false
	}
	return common.IsHexAddress(s)
}

// Check returns an error wrapping domain.ErrInvalidAddress when s is not a
// valid address.
func Check(s string) error {
	if !IsValid(s) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidAddress, s)
	}
	return nil
}

// Normalize returns the lowercase form of a valid address.
func Normalize(s string) (string, bool) {
	if !IsValid(s) {
		return "", false
	}
	return strings.ToLower(s), true
}

// ValidateMany partitions addresses into normalized valid ones and the
// original strings that failed validation.
func ValidateMany(addresses []string) Partition {
	var p Partition
	for _, a := range addresses {
		if n, ok := Normalize(a); ok {
			p.Valid = append(p.Valid, n)
		} else {
			p.Invalid = append(p.Invalid, a)
		}
	}
	return p
}

// RemoveDuplicates normalizes addresses, drops invalid ones and keeps the
// first occurrence of each.
func RemoveDuplicates(addresses []string) []string {
	set := NewSet(len(addresses))
	for _, a := range addresses {
		set.Add(a)
	}
	return set.Addresses()
}

// IsZeroAddress reports whether s is the all-zero address.
func IsZeroAddress(s string) bool {
	if !IsValid(s) {
		return false
	}
	return common.HexToAddress(s) == (common.Address{})
}

// IsContractCandidate is a syntactic pre-check only: a valid, non-zero
// address. Telling contracts from EOAs needs an RPC call.
func IsContractCandidate(s string) bool {
	return IsValid(s) && !IsZeroAddress(s)
}
