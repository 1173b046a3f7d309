package otp

import (
	"crypto/rand"
	"io"
	"math"
	"math/big"

	"github.com/pquerna/otp"
)

// Generator produces one-time codes.
type Generator interface {
	Generate() (string, error)
}

// Numeric produces zero-padded decimal codes drawn uniformly from
// 0..10^digits-1 using a cryptographic random source.
type Numeric struct {
	digits otp.Digits
	random io.Reader
}

// NewNumeric returns a Numeric generator. Digits other than six or eight fall
// back to six.
func NewNumeric(digits otp.Digits) *Numeric {
	if digits != otp.DigitsSix && digits != otp.DigitsEight {
		digits = otp.DigitsSix
	}

	return &Numeric{digits: digits, random: rand.Reader}
}

// Generate returns a new code, e.g. "004271".
func (n *Numeric) Generate() (string, error) {
	upper := big.NewInt(int64(math.Pow10(n.digits.Length())))

	v, err := rand.Int(n.random, upper)
	if err != nil {
		return "", err
	}

	return n.digits.Format(int32(v.Int64())), nil
}
