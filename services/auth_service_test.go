package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/malik-shaik/DevHub/config/environment"
	"github.com/malik-shaik/DevHub/utils"
)

func newAuthService(users *fakeUserStore) (*AuthService, *TokenService) {
	token := NewTokenService(&environment.Config{JWTSecret: "test-secret", JWTTTL: time.Hour})
	return NewAuthService(users, token), token
}

func TestRegisterIssuesVerifiableToken(t *testing.T) {
	users := newFakeUserStore()
	svc, tokenSvc := newAuthService(users)

	token, err := svc.Register(context.Background(), RegisterInput{
		Name: "John Doe", Email: "john@example.com", Password: "secret",
	})
	require.NoError(t, err)

	userID, err := tokenSvc.Verify(token)
	require.NoError(t, err)

	user, err := users.FindByID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", user.Name)
	assert.Equal(t, "john@example.com", user.Email)
	assert.Equal(t, utils.GravatarURL("john@example.com"), user.Avatar)
	assert.False(t, user.Date.IsZero())

	// The stored password is a hash of the input, never the plaintext.
	assert.NotEqual(t, "secret", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserStore()
	svc, _ := newAuthService(users)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "John Doe", Email: "john@example.com", Password: "secret",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterInput{
		Name: "Impostor", Email: "john@example.com", Password: "other",
	})
	assert.Equal(t, ErrUserExists, err)

	// First registration is untouched.
	user, err := users.FindByEmail(context.Background(), "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", user.Name)
}

func TestLoginCredentialSymmetry(t *testing.T) {
	users := newFakeUserStore()
	svc, _ := newAuthService(users)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "John Doe", Email: "john@example.com", Password: "secret",
	})
	require.NoError(t, err)

	_, wrongPassErr := svc.Login(context.Background(), LoginInput{
		Email: "john@example.com", Password: "wrong",
	})
	_, noUserErr := svc.Login(context.Background(), LoginInput{
		Email: "nobody@example.com", Password: "secret",
	})

	// Wrong password and unknown email are indistinguishable.
	assert.Equal(t, ErrInvalidCredentials, wrongPassErr)
	assert.Equal(t, ErrInvalidCredentials, noUserErr)
	assert.Equal(t, wrongPassErr, noUserErr)
}

func TestLoginSuccess(t *testing.T) {
	users := newFakeUserStore()
	svc, tokenSvc := newAuthService(users)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "John Doe", Email: "john@example.com", Password: "secret",
	})
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), LoginInput{
		Email: "john@example.com", Password: "secret",
	})
	require.NoError(t, err)

	userID, err := tokenSvc.Verify(token)
	require.NoError(t, err)
	user, err := users.FindByID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", user.Email)
}

func TestCurrentUserUnknownID(t *testing.T) {
	users := newFakeUserStore()
	svc, _ := newAuthService(users)

	_, err := svc.CurrentUser(context.Background(), "missing")
	assert.Equal(t, ErrUserNotFound, err)
}
