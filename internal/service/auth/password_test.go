package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptVerifier_Compare(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	v := NewBcryptVerifier()
	assert.NoError(t, v.Compare(string(hash), "correct horse"))
	assert.ErrorIs(t, v.Compare(string(hash), "battery staple"), bcrypt.ErrMismatchedHashAndPassword)
	assert.Error(t, v.Compare("not-a-hash", "correct horse"))
}
