package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"linguaquest/internal/apperr"
	"linguaquest/internal/models"
	"linguaquest/internal/security"
	"linguaquest/internal/testutil"
)

func newAuthService(store *testutil.MockUserStore) *AuthService {
	tokens := security.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(store, tokens, zap.NewNop())
}

func TestRegister(t *testing.T) {
	store := new(testutil.MockUserStore)
	store.On("FindByEmail", "learner@example.com").Return(nil, nil)
	store.On("Create", "learner@example.com", "Dana", mock.AnythingOfType("string")).
		Return(int64(42), nil)

	svc := newAuthService(store)
	user, token, err := svc.Register(" Learner@Example.com ", "Dana", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "learner@example.com", user.Email)
	assert.NotEmpty(t, token)

	// The stored hash must verify against the original password.
	hash := store.Calls[1].Arguments.String(2)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("correct horse")))
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthService(new(testutil.MockUserStore))

	_, _, err := svc.Register("not-an-email", "Dana", "correct horse")
	assert.True(t, apperr.IsValidation(err))

	_, _, err = svc.Register("a@b.com", "Dana", "short")
	assert.True(t, apperr.IsValidation(err))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := new(testutil.MockUserStore)
	store.On("FindByEmail", "learner@example.com").
		Return(&models.User{ID: 1, Email: "learner@example.com"}, nil)

	svc := newAuthService(store)
	_, _, err := svc.Register("learner@example.com", "Dana", "correct horse")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	store := new(testutil.MockUserStore)
	store.On("FindByEmail", "learner@example.com").Return(&models.User{
		ID:           42,
		Email:        "learner@example.com",
		PasswordHash: string(hash),
	}, nil)

	svc := newAuthService(store)
	user, token, err := svc.Login("learner@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.NotEmpty(t, token)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	store := new(testutil.MockUserStore)
	store.On("FindByEmail", "learner@example.com").Return(&models.User{
		ID:           42,
		Email:        "learner@example.com",
		PasswordHash: string(hash),
	}, nil)
	store.On("FindByEmail", "unknown@example.com").Return(nil, nil)

	svc := newAuthService(store)

	_, _, err = svc.Login("learner@example.com", "wrong password")
	assert.True(t, apperr.IsAuthorization(err))

	// Unknown user yields the same error shape as a wrong password.
	_, _, err = svc.Login("unknown@example.com", "correct horse")
	assert.True(t, apperr.IsAuthorization(err))
}
