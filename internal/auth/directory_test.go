package auth

import (
	"testing"

	"bookcatalog/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDirectory(t *testing.T) *Directory {
	t.Helper()
	adminHash, err := HashPassword("admin-pass")
	require.NoError(t, err)
	readerHash, err := HashPassword("reader-pass")
	require.NoError(t, err)

	return NewDirectory([]entity.User{
		{Username: "admin", PasswordHash: adminHash, IsAdmin: true, Token: "admin-token"},
		{Username: "reader", PasswordHash: readerHash, IsAdmin: false, Token: "reader-token"},
	})
}

func TestDirectory_Authenticate(t *testing.T) {
	d := testDirectory(t)

	token, err := d.Authenticate("admin", "admin-pass")
	require.NoError(t, err)
	assert.Equal(t, "admin-token", token)
}

func TestDirectory_AuthenticateFailureIsUniform(t *testing.T) {
	d := testDirectory(t)

	// wrong password and unknown username yield the same error, so a
	// caller cannot probe which usernames exist
	_, wrongPass := d.Authenticate("admin", "nope")
	_, unknownUser := d.Authenticate("ghost", "nope")

	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPass, unknownUser)
}

func TestDirectory_Resolve(t *testing.T) {
	d := testDirectory(t)

	identity, err := d.Resolve("reader-token")
	require.NoError(t, err)
	assert.Equal(t, "reader", identity.Username)
	assert.False(t, identity.IsAdmin)

	_, err = d.Resolve("bogus-token")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestDirectory_AuthenticateThenResolve(t *testing.T) {
	d := testDirectory(t)

	token, err := d.Authenticate("reader", "reader-pass")
	require.NoError(t, err)

	identity, err := d.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, "reader", identity.Username)
}
