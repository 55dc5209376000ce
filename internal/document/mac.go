package document

import (
	"fmt"
	"strings"
)

// MACLength is the number of hex digits in a normalized MAC address.
const MACLength = 12

// NormalizeMAC strips everything except hexadecimal digits from raw,
// uppercases the remainder, and truncates it to 12 characters. Short input
// stays short; ValidateMAC is the shape check.
//
// The UI layer calls this whenever the identity field is committed, so
// "AA:BB-cc 11 22 33" and "aabbcc112233" end up identical.
func NormalizeMAC(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if isHexDigit(r) {
			b.WriteRune(toUpperHex(r))
			if b.Len() == MACLength {
				break
			}
		}
	}
	return b.String()
}

// ValidateMAC reports a ShapeError unless mac is exactly 12 hex characters.
func ValidateMAC(mac string) error {
	if len(mac) != MACLength {
		return NewShapeError(fmt.Sprintf("MAC address must be %d hex characters, got %d", MACLength, len(mac)))
	}
	for _, r := range mac {
		if !isHexDigit(r) {
			return NewShapeError(fmt.Sprintf("MAC address contains non-hex character %q", r))
		}
	}
	return nil
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}

func toUpperHex(r rune) rune {
	if r >= 'a' && r <= 'f' {
		return r - ('a' - 'A')
	}
	return r
}
