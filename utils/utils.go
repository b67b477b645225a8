package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidFormat reports malformed input to a validator: wrong length,
// non-digit characters, or an unparseable date string.
var ErrInvalidFormat = errors.New("invalid format")

// FormatPrice renders a monetary amount as "R$ X,YY": two fraction digits
// with the decimal point swapped for a comma. There is no thousands
// separator; large amounts come out as "R$ 1234,50".
func FormatPrice(amount decimal.Decimal) string {
	return "R$ " + strings.Replace(amount.StringFixed(2), ".", ",", 1)
}

// FormatCPF renders an 11-digit CPF as XXX.XXX.XXX-YY. Pure slicing: a
// shorter input panics, so callers validate the length first.
func FormatCPF(cpf string) string {
	return cpf[:3] + "." + cpf[3:6] + "." + cpf[6:9] + "-" + cpf[9:]
}

// FormatCEP renders an 8-digit CEP as XXXXX-YYY. Same contract as FormatCPF.
func FormatCEP(cep string) string {
	return cep[:5] + "-" + cep[5:]
}

// ValidateCPF runs the CPF check-digit algorithm over an 11-digit numeric
// string. Inputs that are not exactly 11 ASCII digits fail with
// ErrInvalidFormat. Repeated-digit sequences such as 11111111111 satisfy the
// checksum arithmetic but are not valid documents, so they are rejected
// explicitly.
func ValidateCPF(cpf string) (bool, error) {
	if len(cpf) != 11 {
		return false, ErrInvalidFormat
	}
	for i := 0; i < len(cpf); i++ {
		if cpf[i] < '0' || cpf[i] > '9' {
			return false, ErrInvalidFormat
		}
	}

	// Two passes over the 9-digit base, each appending one check digit.
	digits := cpf[:9]
	for pass := 0; pass < 2; pass++ {
		sum := 0
		for i, weight := 0, len(digits)+1; weight > 1; i, weight = i+1, weight-1 {
			sum += int(digits[i]-'0') * weight
		}
		check := 11 - sum%11
		if check > 9 {
			check = 0
		}
		digits += string(rune('0' + check))
	}

	if digits != cpf {
		return false, nil
	}
	if digits == strings.Repeat(digits[:1], len(cpf)) {
		return false, nil
	}
	return true, nil
}

// AgeFromBirthdate computes age in whole years as days-since-birth divided
// by 365, truncated. Leap years and whether the birthday already happened
// this year are not accounted for.
func AgeFromBirthdate(birthdate time.Time) int {
	days := int(time.Since(birthdate).Hours() / 24)
	return days / 365
}

// FormatDate converts "DD/MM/YYYY" to "YYYY-MM-DD". An empty input returns
// the sentinel "0000-01-01" instead of failing; anything that does not split
// into three segments fails with ErrInvalidFormat.
func FormatDate(date string) (string, error) {
	if date == "" {
		return "0000-01-01", nil
	}
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return "", ErrInvalidFormat
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0], nil
}
