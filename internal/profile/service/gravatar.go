// Package service holds small profile domain services with no persistence
// dependencies.
package service

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// gravatarBaseURL is the public Gravatar endpoint. The identicon fallback
// renders a generated pattern for addresses without a registered avatar.
const gravatarBaseURL = "https://www.gravatar.com/avatar"

// GravatarURL derives the deterministic avatar URL for an email address.
// The input is trimmed and lower-cased before hashing, so equivalent
// addresses always map to the same URL.
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("%s/%s?d=identicon", gravatarBaseURL, hex.EncodeToString(hash[:]))
}
