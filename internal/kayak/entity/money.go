package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Money is an amount in cents. Prices on the wire always carry exactly
// two fractional digits, so cents are lossless and comparison is integer
// comparison.
type Money int64

var ErrMoneyFormat = errors.New("money must be a non-negative amount with exactly two decimal places")

// ParseMoney parses amounts like "123.45". Both parts must be bare
// digits: no signs, spaces or other characters, and exactly two
// fractional digits.
func ParseMoney(value string) (Money, error) {
	whole, frac, ok := strings.Cut(value, ".")
	if !ok || whole == "" || len(frac) != 2 || !digits(whole) || !digits(frac) {
		return 0, ErrMoneyFormat
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrMoneyFormat
	}
	cents := int64(frac[0]-'0')*10 + int64(frac[1]-'0')
	return Money(units*100 + cents), nil
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m/100, m%100)
}
