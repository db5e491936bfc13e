package rent

import (
	"crypto/rand"
	"fmt"
)

// CodeAlphabet is the character set of one-time pickup codes: uppercase
// letters and digits with the visually ambiguous I, O, 0 and 1 removed.
const CodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CodeLength is the fixed length of one-time pickup codes.
const CodeLength = 8

// GenerateCode produces a one-time pickup code from a cryptographically
// strong random source. With 32 alphabet characters each random byte maps
// uniformly onto the alphabet.
func GenerateCode() (string, error) {
	buf := make([]byte, CodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	code := make([]byte, CodeLength)
	for i, b := range buf {
		code[i] = CodeAlphabet[int(b)%len(CodeAlphabet)]
	}
	return string(code), nil
}
