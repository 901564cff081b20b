package macid

import (
	"strings"
	"unicode/utf8"
)

// Lengths, in hex characters, of unseparated EUI-48 and EUI-64 addresses.
const (
	eui48HexLen = 12
	eui64HexLen = 16
)

// FormatAddress renders an unseparated EUI-48 or EUI-64 hex address as
// colon-separated byte pairs. Input of any other length, including an
// address that is already separated, is returned unchanged, as is input
// that is not valid UTF-8.
func FormatAddress(raw string) string {
	if !utf8.ValidString(raw) {
		return raw
	}

	chars := []rune(raw)
	if len(chars) != eui48HexLen && len(chars) != eui64HexLen {
		return raw
	}

	var sb strings.Builder
	sb.Grow(len(raw) + len(chars)/2 - 1)

	for i := 0; i < len(chars); i += 2 {
		if i > 0 {
			sb.WriteByte(':')
		}
		sb.WriteString(string(chars[i : i+2]))
	}

	return sb.String()
}

// Join combines addresses into the component value, keeping their order.
func Join(values []string) string {
	return strings.Join(values, ",")
}

// rawHex strips the separators from a formatted hardware address and
// upper-cases it, matching the raw encoding of the modern schema.
func rawHex(address string) string {
	address = strings.ToUpper(strings.TrimSpace(address))
	address = strings.ReplaceAll(address, ":", "")
	address = strings.ReplaceAll(address, "-", "")
	address = strings.ReplaceAll(address, ".", "")

	return address
}
