package services

import (
	"testing"

	"parcel_market/internal/auth"
	"parcel_market/internal/repository"
	"parcel_market/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) UserService {
	db := testutil.OpenTestDB(t)
	return NewUserService(repository.NewUserRepository(db), auth.NewManager("test-secret"))
}

func TestRegisterPasswordBased(t *testing.T) {
	svc := newUserService(t)

	user, err := svc.Register("Amira", "amira@example.com", "0501112222", "secret123", "")
	require.NoError(t, err)
	require.NotNil(t, user.Phone)
	require.NotNil(t, user.Password)
	assert.Nil(t, user.GoogleID)
	assert.NotEqual(t, "secret123", *user.Password)
}

func TestRegisterFederated(t *testing.T) {
	svc := newUserService(t)

	user, err := svc.Register("Omar", "omar@example.com", "", "", "google-sub-1")
	require.NoError(t, err)
	require.NotNil(t, user.GoogleID)
	assert.Nil(t, user.Password)
	assert.Nil(t, user.Phone)
}

func TestRegisterRejectsBothOrNeither(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Register("Bad", "bad@example.com", "0501112222", "secret123", "google-sub-2")
	require.Error(t, err)
	svcErr, ok := err.(*ServiceError)
	require.True(t, ok)
	assert.Equal(t, CodeValidation, svcErr.Code)

	_, err = svc.Register("Bad", "bad@example.com", "", "", "")
	require.Error(t, err)
	svcErr, ok = err.(*ServiceError)
	require.True(t, ok)
	assert.Equal(t, CodeValidation, svcErr.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Register("Amira", "amira@example.com", "0501112222", "secret123", "")
	require.NoError(t, err)

	_, err = svc.Register("Amira Two", "amira@example.com", "0503334444", "secret123", "")
	require.Error(t, err)
	svcErr, ok := err.(*ServiceError)
	require.True(t, ok)
	assert.Equal(t, CodeConflict, svcErr.Code)
}

func TestLogin(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Register("Amira", "amira@example.com", "0501112222", "secret123", "")
	require.NoError(t, err)

	token, user, err := svc.Login("amira@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Amira", user.Name)

	_, _, err = svc.Login("amira@example.com", "wrong")
	require.Error(t, err)
	svcErr, ok := err.(*ServiceError)
	require.True(t, ok)
	assert.Equal(t, CodeUnauthorized, svcErr.Code)
}

func TestGoogleLoginRegistersOnFirstSignIn(t *testing.T) {
	svc := newUserService(t)

	token, user, err := svc.GoogleLogin("google-sub-9", "Lina", "lina@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// Second sign-in reuses the account instead of creating another.
	_, again, err := svc.GoogleLogin("google-sub-9", "Lina", "lina@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

func TestGoogleAccountCannotPasswordLogin(t *testing.T) {
	svc := newUserService(t)

	_, _, err := svc.GoogleLogin("google-sub-5", "Ziad", "ziad@example.com")
	require.NoError(t, err)

	_, _, err = svc.Login("ziad@example.com", "anything")
	require.Error(t, err)
	svcErr, ok := err.(*ServiceError)
	require.True(t, ok)
	assert.Equal(t, CodeUnauthorized, svcErr.Code)
}
