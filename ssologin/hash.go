package ssologin

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the hex-encoded sha256 digest of a session secret. It is
// deterministic and used only for comparison; the raw secret is never
// stored alongside the session.
func Hash(secret string) string {
	digest := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(digest[:])
}
