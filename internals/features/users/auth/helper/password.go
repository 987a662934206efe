package helpers

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Stored format is "<hex-salt>:<hex-hash>", compatible with the node crypto
// pbkdf2Sync(password, saltHex, 1000, 64, 'sha512') hashes already in the users table.
// The salt bytes fed to the KDF are the hex string itself, not the decoded bytes.
const (
	pbkdf2Iterations = 1000
	pbkdf2KeyLen     = 64
	saltBytes        = 16
)

func HashPassword(password string) (string, error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	salt := hex.EncodeToString(raw)
	return salt + ":" + derive(password, salt), nil
}

func VerifyPassword(password, storedHash string) bool {
	salt, want, ok := strings.Cut(storedHash, ":")
	if !ok || salt == "" || want == "" {
		return false
	}
	got := derive(password, salt)
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

func derive(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, pbkdf2KeyLen, sha512.New)
	return hex.EncodeToString(key)
}
