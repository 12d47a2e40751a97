// Package phone normalizes Brazilian WhatsApp numbers.
package phone

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// CountryCode is the calling code assumed for numbers without one.
const CountryCode = "55"

const defaultRegion = "BR"

// ValidationResult contains the result of phone number validation.
type ValidationResult struct {
	IsValid        bool   `json:"is_valid"`
	Canonical      string `json:"canonical"`
	E164Format     string `json:"e164_format"`
	NationalFormat string `json:"national_format"`
	Region         string `json:"region"`
	Mobile         bool   `json:"mobile"`
}

// Digits strips everything but digits.
func Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize returns the canonical form used as lead identity: digits only,
// prefixed with the Brazilian country code when missing. Numbers that
// libphonenumber accepts are reformatted from E.164; numbers it rejects
// (WhatsApp still delivers to some legacy 8-digit mobiles) keep their digits.
func Normalize(raw string) (string, error) {
	digits := Digits(raw)
	if len(digits) < 8 {
		return "", fmt.Errorf("phone number %q is too short", raw)
	}
	if !strings.HasPrefix(digits, CountryCode) {
		digits = CountryCode + digits
	}

	parsed, err := phonenumbers.Parse("+"+digits, defaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return digits, nil
	}
	return strings.TrimPrefix(phonenumbers.Format(parsed, phonenumbers.E164), "+"), nil
}

// JID returns the WhatsApp user address for a number.
func JID(raw string) (string, error) {
	n, err := Normalize(raw)
	if err != nil {
		return "", err
	}
	return n + "@s.whatsapp.net", nil
}

// FromJID extracts the number from a WhatsApp address.
func FromJID(jid string) string {
	n, _, _ := strings.Cut(jid, "@")
	return Digits(n)
}

// Validate returns detailed information about a number.
func Validate(raw string) (*ValidationResult, error) {
	canonical, err := Normalize(raw)
	if err != nil {
		return nil, err
	}

	parsed, err := phonenumbers.Parse("+"+canonical, defaultRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to parse phone number: %w", err)
	}

	numberType := phonenumbers.GetNumberType(parsed)
	return &ValidationResult{
		IsValid:        phonenumbers.IsValidNumber(parsed),
		Canonical:      canonical,
		E164Format:     phonenumbers.Format(parsed, phonenumbers.E164),
		NationalFormat: phonenumbers.Format(parsed, phonenumbers.NATIONAL),
		Region:         phonenumbers.GetRegionCodeForNumber(parsed),
		Mobile:         numberType == phonenumbers.MOBILE || numberType == phonenumbers.FIXED_LINE_OR_MOBILE,
	}, nil
}
