package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// ErrMalformedHash indicates a stored hash that cannot be parsed.
var ErrMalformedHash = errors.New("malformed password hash")

// ErrHashMismatch indicates the password does not match the stored hash.
var ErrHashMismatch = errors.New("password hash mismatch")

// PasswordHasher defines hashing strategy for credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

const (
	defaultIterations = 600_000
	saltLength        = 16
	keyLength         = 32
	hashPrefix        = "pbkdf2:sha256"
)

// PBKDF2Hasher derives salted PBKDF2-SHA256 hashes. The encoded form is
// "pbkdf2:sha256:<iterations>$<salt-hex>$<key-hex>".
type PBKDF2Hasher struct {
	iterations int
}

// NewPBKDF2Hasher creates a hasher with the provided iteration count.
func NewPBKDF2Hasher(iterations int) *PBKDF2Hasher {
	if iterations <= 0 {
		iterations = defaultIterations
	}
	return &PBKDF2Hasher{iterations: iterations}
}

// Hash derives a new hash with a fresh random salt.
func (h *PBKDF2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key := pbkdf2.Key([]byte(password), salt, h.iterations, keyLength, sha256.New)
	return fmt.Sprintf("%s:%d$%s$%s", hashPrefix, h.iterations, hex.EncodeToString(salt), hex.EncodeToString(key)), nil
}

// Compare checks password against stored hash using the iteration count and
// salt encoded in the hash itself.
func (h *PBKDF2Hasher) Compare(hash string, password string) error {
	iterations, salt, key, err := parseHash(hash)
	if err != nil {
		return err
	}
	derived := pbkdf2.Key([]byte(password), salt, iterations, len(key), sha256.New)
	if subtle.ConstantTimeCompare(derived, key) != 1 {
		return ErrHashMismatch
	}
	return nil
}

func parseHash(hash string) (int, []byte, []byte, error) {
	parts := strings.Split(hash, "$")
	if len(parts) != 3 || !strings.HasPrefix(parts[0], hashPrefix+":") {
		return 0, nil, nil, ErrMalformedHash
	}
	iterations, err := strconv.Atoi(strings.TrimPrefix(parts[0], hashPrefix+":"))
	if err != nil || iterations <= 0 {
		return 0, nil, nil, ErrMalformedHash
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil || len(salt) == 0 {
		return 0, nil, nil, ErrMalformedHash
	}
	key, err := hex.DecodeString(parts[2])
	if err != nil || len(key) == 0 {
		return 0, nil, nil, ErrMalformedHash
	}
	return iterations, salt, key, nil
}
