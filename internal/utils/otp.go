package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// OtpLength is the number of decimal digits in a generated code.
const OtpLength = 6

// GenerateOTP produces a uniformly random 6-digit decimal code.
// Leading zeros are preserved ("000000" is a valid code).
func GenerateOTP() (string, error) {
	max := big.NewInt(1000000) // 10^6
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
