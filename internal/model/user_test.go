package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPassword(t *testing.T) {
	u := &User{}
	require.NoError(t, u.SetPassword("secret1"))
	assert.NotEqual(t, []byte("secret1"), u.PasswordHash)
	assert.NoError(t, u.CheckPassword("secret1"))
	assert.Error(t, u.CheckPassword("secret2"))
}

func TestUserNeedsVerification(t *testing.T) {
	assert.True(t, (&User{UserType: UserTypeSchool}).NeedsVerification())
	assert.False(t, (&User{UserType: UserTypeSchool, IsVerified: true}).NeedsVerification())
	assert.False(t, (&User{UserType: UserTypeStudent}).NeedsVerification())
	assert.False(t, (&User{UserType: UserTypeIndividual}).NeedsVerification())
}
