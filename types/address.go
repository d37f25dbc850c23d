package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// InvalidAddressError is returned when an address parameter does not look
// like a 20-byte, 0x-prefixed hex address. The check covers prefix, length
// and charset only; EIP-55 checksums are not verified.
type InvalidAddressError struct {
	Address string
}

// NewInvalidAddressError creates a new InvalidAddressError.
func NewInvalidAddressError(address string) *InvalidAddressError {
	return &InvalidAddressError{Address: address}
}

// Error implements the error interface.
func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid address: %q is not a 0x-prefixed 20-byte hex string", e.Address)
}

// ValidateAddress checks that the given string is a well-formed hex address.
// It is pure and performs no network calls, so operations can fail fast on
// malformed input before a request is ever issued.
func ValidateAddress(address string) error {
	if len(address) < 2 || address[0] != '0' || (address[1] != 'x' && address[1] != 'X') {
		return NewInvalidAddressError(address)
	}
	if !common.IsHexAddress(address) {
		return NewInvalidAddressError(address)
	}

	return nil
}

// ValidateAddresses validates every address in the slice, returning the
// first failure.
func ValidateAddresses(addresses []string) error {
	for _, a := range addresses {
		if err := ValidateAddress(a); err != nil {
			return err
		}
	}

	return nil
}
