// Package phone normalises the phone numbers that identify chat users.
package phone

import "strings"

// CountryCode is prepended to national numbers.
const CountryCode = "55"

// Normalize keeps the digits of raw and prefixes CountryCode to national numbers
// (area code plus 8 or 9 digits). WhatsApp JIDs such as "5511999990000@s.whatsapp.net"
// are accepted. It returns "" when raw holds no digits.
func Normalize(raw string) string {
	if i := strings.IndexByte(raw, '@'); i >= 0 {
		raw = raw[:i]
	}

	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if len(digits) == 10 || len(digits) == 11 {
		return CountryCode + digits
	}
	return digits
}
