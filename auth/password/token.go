package password

import (
	"encoding/hex"
	"fmt"
)

// GenerateToken creates a cryptographically secure random secret of the
// specified byte length, returned as a hex-encoded string. Used for seed
// material that must not be guessable, such as the authenticator's dummy
// verification hash.
func GenerateToken(length int) (string, error) {
	bytes, err := randomBytes(length)
	if err != nil {
		return "", fmt.Errorf("password: generate token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
