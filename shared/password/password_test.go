package password_test

import (
	"testing"

	"campusbook/shared/password"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("s3cret-campus")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-campus", hash)

	assert.NoError(t, password.Verify("s3cret-campus", hash))
	assert.ErrorIs(t, password.Verify("wrong", hash), password.ErrInvalidPassword)
}

func TestHash_Empty(t *testing.T) {
	_, err := password.Hash("")
	assert.Error(t, err)
}

func TestVerify_EmptyInputs(t *testing.T) {
	assert.ErrorIs(t, password.Verify("", "hash"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("pass", ""), password.ErrInvalidPassword)
}
