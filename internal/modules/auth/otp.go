package auth

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

var otpRange = big.NewInt(900000)

// generateOTP returns a random 6-digit passcode (100000-999999).
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpRange)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
