package valueobject

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidMoney indicates a value that is not a decimal with at most two
// fraction digits.
var ErrInvalidMoney = errors.New("valueobject: invalid money amount")

// Money is an amount in cents, rendered in JSON as a decimal number such as
// 1250.50. Course prices, enrollment payments and job salaries use it.
// @swaggertype number
type Money int64

func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" || len(frac) > 2 {
		return 0, ErrInvalidMoney
	}
	frac += strings.Repeat("0", 2-len(frac))

	w, err := strconv.ParseUint(whole, 10, 62)
	if err != nil {
		return 0, ErrInvalidMoney
	}
	f, err := strconv.ParseUint(frac, 10, 8)
	if err != nil {
		return 0, ErrInvalidMoney
	}

	cents := Money(w*100 + f)
	if neg {
		cents = -cents
	}
	return cents, nil
}

func (m Money) Cents() int64 {
	return int64(m)
}

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign, v = "-", -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal.
func (m *Money) UnmarshalJSON(b []byte) error {
	v, err := ParseMoney(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
