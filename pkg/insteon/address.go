package insteon

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// addressPattern matches three 2-hex-digit groups, each optionally
// followed by one of the accepted separators.
var addressPattern = regexp.MustCompile(`^([0-9a-fA-F]{2})[:.\-]?([0-9a-fA-F]{2})[:.\-]?([0-9a-fA-F]{2})$`)

// Address is a canonical Insteon device address: six uppercase hex digits.
type Address string

// ParseAddress parses one textual device address (e.g. "0a:34:67", "0A-34-67",
// "0a.34.67" or "0a3467") into its canonical form.
func ParseAddress(text string) (Address, error) {
	trimmed := strings.TrimSpace(text)

	m := addressPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDeviceFormat, text)
	}

	return Address(strings.ToUpper(m[1] + m[2] + m[3])), nil
}

// ParseAddresses parses a comma-separated list of device addresses.
// It stops at the first invalid entry. Duplicates collapse and the result
// is sorted so callers iterate in a stable order.
func ParseAddresses(text string) ([]Address, error) {
	seen := make(map[Address]struct{})

	for _, fragment := range strings.Split(text, ",") {
		addr, err := ParseAddress(fragment)
		if err != nil {
			return nil, err
		}
		seen[addr] = struct{}{}
	}

	addrs := make([]Address, 0, len(seen))
	for addr := range seen {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })

	return addrs, nil
}

// String returns the canonical representation.
func (a Address) String() string {
	return string(a)
}

// Bytes returns the three address bytes, high byte first. It returns nil
// for a value that did not come from ParseAddress.
func (a Address) Bytes() []byte {
	b, err := hex.DecodeString(string(a))
	if err != nil || len(b) != 3 {
		return nil
	}
	return b
}

// AddressFromBytes builds an Address from three raw bytes.
func AddressFromBytes(b []byte) Address {
	return Address(fmt.Sprintf("%02X%02X%02X", b[0], b[1], b[2]))
}
