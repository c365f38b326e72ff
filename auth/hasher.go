package auth

import (
	"crypto/md5"
	"encoding/hex"
)

// PasswordHasher produces deterministic password digests: the same plaintext
// and the same secret always yield the same digest. Sign-in relies on this to
// match users with a single email+digest equality lookup, so a salted scheme
// cannot be substituted here. The secret is injected at construction time
// rather than read from ambient process state.
type PasswordHasher struct {
	secret string
}

// NewPasswordHasher creates a PasswordHasher with the given process-wide
// secret. An empty secret still produces a digest; it is simply not mixed in.
func NewPasswordHasher(secret string) *PasswordHasher {
	return &PasswordHasher{secret: secret}
}

// Hash returns the hex digest of md5(md5(plaintext) + secret), matching the
// 32-character digest column in the users table.
func (h *PasswordHasher) Hash(plaintext string) string {
	return md5Hex(md5Hex(plaintext) + h.secret)
}

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
