package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"os"
	"strings"
	"time"
)

const referenceCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// randomSuffix draws n chars from A-Z0-9 using crypto/rand + big.Int to
// avoid modulo bias.
func randomSuffix(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(referenceCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(referenceCharset[num.Int64()])
	}
	return sb.String(), nil
}

// GenerateBookingReference builds a human-readable booking reference in the
// form BK-YYYYMMDD-XXXX. exists reports whether a candidate is already
// taken; generation retries a bounded number of times before giving up so a
// pathological collision streak cannot spin forever.
func GenerateBookingReference(now time.Time, exists func(string) (bool, error)) (string, error) {
	day := now.UTC().Format("20060102")
	for attempt := 0; attempt < 10; attempt++ {
		suffix, err := randomSuffix(4)
		if err != nil {
			return "", err
		}
		ref := "BK-" + day + "-" + suffix
		taken, err := exists(ref)
		if err != nil {
			return "", err
		}
		if !taken {
			return ref, nil
		}
	}
	return "", errors.New("failed to generate unique booking reference")
}
