package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	defaultMemory      = 64 * 1024
	defaultIterations  = 3
	defaultParallelism = 2
	saltLength         = 16
	keyLength          = 32
)

// Argon2idHasher hashes passwords with Argon2id. Digests are encoded in
// the standard PHC format with the salt and parameters embedded, so the
// cost can be raised without invalidating existing credentials.
type Argon2idHasher struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
}

func NewArgon2idHasher(memory, iterations uint32, parallelism uint8) *Argon2idHasher {
	if memory == 0 {
		memory = defaultMemory
	}
	if iterations == 0 {
		iterations = defaultIterations
	}
	if parallelism == 0 {
		parallelism = defaultParallelism
	}
	return &Argon2idHasher{
		memory:      memory,
		iterations:  iterations,
		parallelism: parallelism,
	}
}

// Hash derives an Argon2id digest with a fresh random salt
func (h *Argon2idHasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.iterations, h.memory, h.parallelism, keyLength)

	digest := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memory,
		h.iterations,
		h.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return digest, nil
}

// Verify checks a plain password against a stored digest. It returns
// false for a wrong password and for a malformed digest alike; callers
// must not be able to tell the two apart.
func (h *Argon2idHasher) Verify(password, digest string) bool {
	memory, iterations, parallelism, salt, key, err := decodeDigest(digest)
	if err != nil {
		return false
	}

	other := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, other) == 1
}

func decodeDigest(digest string) (memory, iterations uint32, parallelism uint8, salt, key []byte, err error) {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, fmt.Errorf("malformed digest")
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("malformed digest version")
	}
	if version != argon2.Version {
		return 0, 0, 0, nil, nil, fmt.Errorf("unsupported argon2 version %d", version)
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("malformed digest parameters")
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("malformed digest salt")
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return 0, 0, 0, nil, nil, fmt.Errorf("malformed digest key")
	}

	return memory, iterations, parallelism, salt, key, nil
}
