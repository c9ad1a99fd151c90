package vault

import (
	"fmt"
	"strings"
	"time"
)

// Known sandbox card numbers that skip the Luhn check outside production.
var testCardNumbers = map[string]bool{
	"4000000000000000": true,
	"4242424242424242": true,
	"5555555555554444": true,
	"378282246310005":  true,
}

// ValidateCardNumber normalizes the number (strips spaces and dashes),
// requires 13-19 digits and verifies the Luhn checksum. In non-production
// mode a fixed allow-list of test numbers bypasses Luhn.
func ValidateCardNumber(cardNumber string, production bool) error {
	normalized := normalizeCardNumber(cardNumber)
	if len(normalized) < 13 || len(normalized) > 19 {
		return fmt.Errorf("card number must be 13-19 digits")
	}
	for _, r := range normalized {
		if r < '0' || r > '9' {
			return fmt.Errorf("card number must contain only digits")
		}
	}

	if !production && testCardNumbers[normalized] {
		return nil
	}

	if !luhnValid(normalized) {
		return fmt.Errorf("card number failed checksum")
	}
	return nil
}

func normalizeCardNumber(cardNumber string) string {
	replacer := strings.NewReplacer(" ", "", "-", "")
	return replacer.Replace(cardNumber)
}

// luhnValid doubles every second digit from the rightmost, subtracts 9 from
// results above 9 and requires the sum to be divisible by 10.
func luhnValid(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// ValidateExpiryDate accepts 2-digit years as 2000+year and rejects months
// outside 1-12 or dates in the past.
func ValidateExpiryDate(month, year int, now time.Time) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("expiry month must be between 1 and 12")
	}
	if year < 100 {
		year += 2000
	}
	if year < now.Year() || (year == now.Year() && month < int(now.Month())) {
		return fmt.Errorf("card is expired")
	}
	return nil
}

func ValidateCVV(cvv string) error {
	if len(cvv) < 3 || len(cvv) > 4 {
		return fmt.Errorf("cvv must be 3 or 4 digits")
	}
	for _, r := range cvv {
		if r < '0' || r > '9' {
			return fmt.Errorf("cvv must be numeric")
		}
	}
	return nil
}

// MaskCardNumber keeps only the last four digits visible.
func MaskCardNumber(cardNumber string) string {
	normalized := normalizeCardNumber(cardNumber)
	if len(normalized) < 4 {
		return "****"
	}
	return "**** **** **** " + normalized[len(normalized)-4:]
}

func MaskCVV() string {
	return "***"
}

func MaskExpiry(month, year int) string {
	if year >= 100 {
		year %= 100
	}
	return fmt.Sprintf("%02d/%02d", month, year)
}
