package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2idHasher_HashAndVerify(t *testing.T) {
	hasher := NewArgon2idHasher(8*1024, 1, 1)

	digest, err := hasher.Hash("Sup3rSecret")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(digest, "$argon2id$v="))
	assert.True(t, hasher.Verify("Sup3rSecret", digest))
	assert.False(t, hasher.Verify("sup3rsecret", digest))
	assert.False(t, hasher.Verify("", digest))
}

func TestArgon2idHasher_UniqueSalts(t *testing.T) {
	hasher := NewArgon2idHasher(8*1024, 1, 1)

	first, err := hasher.Hash("Sup3rSecret")
	require.NoError(t, err)
	second, err := hasher.Hash("Sup3rSecret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("Sup3rSecret", first))
	assert.True(t, hasher.Verify("Sup3rSecret", second))
}

func TestArgon2idHasher_VerifyAcrossParameters(t *testing.T) {
	// Digests embed their own parameters, so a hasher configured with
	// different costs must still verify older credentials.
	old := NewArgon2idHasher(8*1024, 1, 1)
	digest, err := old.Hash("Sup3rSecret")
	require.NoError(t, err)

	current := NewArgon2idHasher(16*1024, 2, 2)
	assert.True(t, current.Verify("Sup3rSecret", digest))
}

func TestArgon2idHasher_MalformedDigest(t *testing.T) {
	hasher := NewArgon2idHasher(8*1024, 1, 1)

	tests := []struct {
		name   string
		digest string
	}{
		{"empty", ""},
		{"plain text", "not-a-digest"},
		{"wrong algorithm", "$argon2i$v=19$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5"},
		{"bad version", "$argon2id$v=12$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5a2V5"},
		{"bad parameters", "$argon2id$v=19$m=abc$c2FsdHNhbHRzYWx0c2FsdA$a2V5a2V5"},
		{"bad salt encoding", "$argon2id$v=19$m=8192,t=1,p=1$!!!$a2V5a2V5"},
		{"bad key encoding", "$argon2id$v=19$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$!!!"},
		{"missing segments", "$argon2id$v=19$m=8192,t=1,p=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, hasher.Verify("Sup3rSecret", tt.digest))
		})
	}
}

func TestNewArgon2idHasher_ZeroParametersFallBack(t *testing.T) {
	hasher := NewArgon2idHasher(0, 0, 0)

	assert.Equal(t, uint32(defaultMemory), hasher.memory)
	assert.Equal(t, uint32(defaultIterations), hasher.iterations)
	assert.Equal(t, uint8(defaultParallelism), hasher.parallelism)
}
