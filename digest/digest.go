// Package digest derives non-secret strings from wrapped secrets.
//
// Every function here consumes a confidential.String and returns material
// that is safe to store or log: a salted password hash, a deterministic
// checksum, or a short fingerprint. The reveal happens inside the digest,
// so calling code never handles the raw value.
package digest

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"

	"github.com/zoobzio/confidential"
)

// Hasher produces a one-way digest of a wrapped secret.
type Hasher interface {
	// Hash returns the digest of the wrapped value as a string.
	// For password hashers (argon2, bcrypt), the result includes salt and
	// parameters. For deterministic hashers (sha256, sha512), the result
	// is a hex-encoded hash.
	Hash(s confidential.String) (string, error)
}

// ErrMalformedDigest indicates a digest string could not be parsed for
// verification.
var ErrMalformedDigest = errors.New("malformed digest")

// Argon2Params configures Argon2id hashing.
type Argon2Params struct {
	Time    uint32 // Number of iterations
	Memory  uint32 // Memory usage in KiB
	Threads uint8  // Parallelism factor
	KeyLen  uint32 // Output key length
	SaltLen uint32 // Salt length
}

// DefaultArgon2Params returns recommended Argon2id parameters.
// Based on OWASP recommendations for password hashing.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:    1,
		Memory:  64 * 1024, // 64 MiB
		Threads: 4,
		KeyLen:  32,
		SaltLen: 16,
	}
}

// argon2Hasher implements Argon2id password hashing.
type argon2Hasher struct {
	params Argon2Params
}

// Argon2 returns an Argon2id hasher with default parameters.
func Argon2() Hasher {
	return Argon2WithParams(DefaultArgon2Params())
}

// Argon2WithParams returns an Argon2id hasher with custom parameters.
func Argon2WithParams(params Argon2Params) Hasher {
	return &argon2Hasher{params: params}
}

func (h *argon2Hasher) Hash(s confidential.String) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	sum := argon2.IDKey([]byte(confidential.RevealStr(s)), salt,
		h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)

	// Encode as: $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory,
		h.params.Time,
		h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(sum),
	)

	return encoded, nil
}

// VerifyArgon2 reports whether the wrapped value matches an encoded
// Argon2id digest produced by this package.
func VerifyArgon2(s confidential.String, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, fmt.Errorf("%w: not argon2id", ErrMalformedDigest)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, fmt.Errorf("%w: version", ErrMalformedDigest)
	}

	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, fmt.Errorf("%w: parameters", ErrMalformedDigest)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("%w: salt", ErrMalformedDigest)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("%w: hash", ErrMalformedDigest)
	}

	got := argon2.IDKey([]byte(confidential.RevealStr(s)), salt,
		iterations, memory, threads, uint32(len(want)))

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

// BcryptCost represents the bcrypt cost factor.
type BcryptCost int

// Bcrypt cost constants.
const (
	BcryptMinCost     BcryptCost = BcryptCost(bcrypt.MinCost)
	BcryptDefaultCost BcryptCost = BcryptCost(bcrypt.DefaultCost)
	BcryptMaxCost     BcryptCost = BcryptCost(bcrypt.MaxCost)
)

// bcryptHasher implements bcrypt password hashing.
type bcryptHasher struct {
	cost int
}

// Bcrypt returns a bcrypt hasher with default cost.
func Bcrypt() Hasher {
	return BcryptWithCost(BcryptDefaultCost)
}

// BcryptWithCost returns a bcrypt hasher with a specific cost factor.
func BcryptWithCost(cost BcryptCost) Hasher {
	return &bcryptHasher{cost: int(cost)}
}

func (h *bcryptHasher) Hash(s confidential.String) (string, error) {
	sum, err := bcrypt.GenerateFromPassword([]byte(confidential.RevealStr(s)), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash failed: %w", err)
	}
	return string(sum), nil
}

// VerifyBcrypt reports whether the wrapped value matches a bcrypt digest.
func VerifyBcrypt(s confidential.String, encoded string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(confidential.RevealStr(s)))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrMalformedDigest, err)
	}
}

// sha256Hasher implements SHA-256 hashing.
// Use for fingerprinting/identification, NOT for passwords.
type sha256Hasher struct{}

// SHA256 returns a SHA-256 hasher.
// The result is a hex-encoded 64-character string.
// Use for fingerprinting/identification, NOT for passwords.
func SHA256() Hasher {
	return &sha256Hasher{}
}

func (h *sha256Hasher) Hash(s confidential.String) (string, error) {
	sum := sha256.Sum256([]byte(confidential.RevealStr(s)))
	return hex.EncodeToString(sum[:]), nil
}

// sha512Hasher implements SHA-512 hashing.
// Use for fingerprinting/identification, NOT for passwords.
type sha512Hasher struct{}

// SHA512 returns a SHA-512 hasher.
// The result is a hex-encoded 128-character string.
// Use for fingerprinting/identification, NOT for passwords.
func SHA512() Hasher {
	return &sha512Hasher{}
}

func (h *sha512Hasher) Hash(s confidential.String) (string, error) {
	sum := sha512.Sum512([]byte(confidential.RevealStr(s)))
	return hex.EncodeToString(sum[:]), nil
}

// Fingerprint returns a short, stable identifier for a wrapped secret:
// the first 12 hex characters of its SHA-256. Useful for correlating log
// lines about the same credential without disclosing it. The fingerprint
// of the empty string is still a fingerprint - do not treat it as absence.
func Fingerprint(s confidential.String) string {
	sum := sha256.Sum256([]byte(confidential.RevealStr(s)))
	return hex.EncodeToString(sum[:6])
}
