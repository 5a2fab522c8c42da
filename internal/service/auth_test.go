package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/backend/internal/datastore"
	"github.com/platewise/backend/internal/testutil"
	"github.com/platewise/backend/internal/types"
)

func newAuthService(t *testing.T) (*AuthService, *testutil.FakeStore) {
	store := testutil.NewFakeStore(t)
	client := datastore.New(store.URL(), 5*time.Second)
	return NewAuthService(client, "test-secret"), store
}

func sampleRegister() *types.RegisterRequest {
	return &types.RegisterRequest{
		Email:     "ada@example.com",
		Password:  "hunter22",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
}

func TestRegisterCreatesUserAndToken(t *testing.T) {
	svc, _ := newAuthService(t)

	user, token, err := svc.Register(context.Background(), sampleRegister())
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "Ada Lovelace", user.DisplayName)
	assert.False(t, user.IsAdmin)
	assert.NotEqual(t, "hunter22", user.PasswordHash)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, sampleRegister())
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, sampleRegister())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, sampleRegister())
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, sampleRegister())
	require.NoError(t, err)

	_, _, badPassword := svc.Login(ctx, "ada@example.com", "wrong")
	_, _, badEmail := svc.Login(ctx, "nobody@example.com", "hunter22")
	assert.ErrorIs(t, badPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, badEmail, ErrInvalidCredentials)
	assert.Equal(t, badPassword.Error(), badEmail.Error())
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc, _ := newAuthService(t)

	_, token, err := svc.Register(context.Background(), sampleRegister())
	require.NoError(t, err)

	other := NewAuthService(datastore.New("http://localhost:0", time.Second), "different-secret")
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestUpdateProfileIgnoresRestrictedFields(t *testing.T) {
	svc, store := newAuthService(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, sampleRegister())
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{
		DisplayName: "Countess of Computing",
	})
	require.NoError(t, err)
	assert.Equal(t, "Countess of Computing", updated.DisplayName)
	assert.Equal(t, "Ada", updated.FirstName)

	// Password hash and admin flag are untouched.
	doc := store.Doc("users", user.ID)
	require.NotNil(t, doc)
	assert.Equal(t, user.PasswordHash, doc["passwordHash"])
	assert.Equal(t, false, doc["isAdmin"])
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, sampleRegister())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ChangePassword(ctx, user.ID, "wrong", "newpass99"), ErrInvalidCredentials)
	require.NoError(t, svc.ChangePassword(ctx, user.ID, "hunter22", "newpass99"))

	_, _, err = svc.Login(ctx, "ada@example.com", "newpass99")
	assert.NoError(t, err)
	_, _, err = svc.Login(ctx, "ada@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
