package insteon

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
)

// ExtendedDataLength is the number of hex digits in an extended message
// payload (14 bytes).
const ExtendedDataLength = 28

// NormalizeExtendedData validates a hex payload and left-pads it with zeros
// to ExtendedDataLength digits. Whitespace anywhere in the input is ignored.
func NormalizeExtendedData(text string) (string, error) {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)

	if len(stripped) > ExtendedDataLength {
		return "", fmt.Errorf("%w: %d hex digits exceeds %d", ErrInvalidExtendedData, len(stripped), ExtendedDataLength)
	}

	for _, r := range stripped {
		if !isHexDigit(r) {
			return "", fmt.Errorf("%w: %q is not hexadecimal", ErrInvalidExtendedData, text)
		}
	}

	return strings.Repeat("0", ExtendedDataLength-len(stripped)) + strings.ToUpper(stripped), nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// ChecksumExtendedData returns data with its last byte replaced by the I2CS
// checksum of cmd1, cmd2 and the first 13 data bytes.
func ChecksumExtendedData(cmd Command, data string) (string, error) {
	normalized, err := NormalizeExtendedData(data)
	if err != nil {
		return "", err
	}
	raw, err := hex.DecodeString(normalized)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidExtendedData, err)
	}

	sum := cmd.Cmd1() + cmd.Cmd2()
	for _, b := range raw[:len(raw)-1] {
		sum += b
	}
	raw[len(raw)-1] = -sum

	return strings.ToUpper(hex.EncodeToString(raw)), nil
}
