package abibind

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ParseAddress parses a hex address with or without the 0x prefix.
// Mixed-case input is accepted without checksum verification.
func ParseAddress(s string) (common.Address, error) {
	return parseAddress(s, false)
}

// ParseChecksumAddress is like ParseAddress but rejects mixed-case input
// whose EIP-55 checksum is wrong.
func ParseChecksumAddress(s string) (common.Address, error) {
	return parseAddress(s, true)
}

func parseAddress(s string, strict bool) (common.Address, error) {
	if s == "" {
		return common.Address{}, &InvalidAddressError{Address: s, Reason: "empty"}
	}

	digits := s
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
	}
	if len(digits) != 2*common.AddressLength {
		return common.Address{}, &InvalidAddressError{
			Address: s,
			Reason:  fmt.Sprintf("expected %d hex characters, got %d", 2*common.AddressLength, len(digits)),
		}
	}
	for i, r := range digits {
		if !isHexDigit(r) {
			return common.Address{}, &InvalidAddressError{
				Address: s,
				Reason:  fmt.Sprintf("non-hex character %q at position %d", r, i),
			}
		}
	}

	addr := common.HexToAddress(digits)
	if strict && hasMixedCase(digits) && addr.Hex()[2:] != digits {
		return common.Address{}, &InvalidAddressError{Address: s, Reason: "bad checksum"}
	}
	return addr, nil
}

func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

func hasMixedCase(s string) bool {
	return strings.ToLower(s) != s && strings.ToUpper(s) != s
}
