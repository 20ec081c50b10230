package service

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldb "fieldtrack/internal/db"
	"fieldtrack/internal/db/repository"
	"fieldtrack/internal/domain"
	"fieldtrack/internal/middleware"
)

func setupAuth(t *testing.T) *AuthService {
	t.Helper()
	writeDB, _ := internaldb.OpenTestSQLite(t)
	return NewAuthService(repository.NewUserRepo(writeDB), "test-secret", time.Hour)
}

func TestAuthService_SignupSignin(t *testing.T) {
	auth := setupAuth(t)
	ctx := context.Background()

	u, err := auth.Signup(ctx, &domain.CreateUserRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct horse",
		Role:     "standard",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStandard, u.Role)
	assert.NotEqual(t, "correct horse", u.PasswordHash)

	signed, token, err := auth.Signin(ctx, "alice@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, u.ID, signed.ID)
	assert.NotEmpty(t, token)

	// The issued token round-trips through the HS256 validator.
	validator, err := middleware.NewHS256Validator("test-secret")
	require.NoError(t, err)
	claims, err := validator.Validate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.Subject)
	require.NotNil(t, claims.Email)
	assert.Equal(t, "alice@example.com", *claims.Email)
	require.NotNil(t, claims.Role)
	assert.Equal(t, "standard", *claims.Role)
}

func TestAuthService_SigninRejectsBadCredentials(t *testing.T) {
	auth := setupAuth(t)
	ctx := context.Background()

	_, err := auth.Signup(ctx, &domain.CreateUserRequest{
		Name: "Alice", Email: "alice@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	// Wrong password and unknown email produce the same error.
	var unauthorized *domain.UnauthorizedError
	_, _, err = auth.Signin(ctx, "alice@example.com", "wrong")
	require.ErrorAs(t, err, &unauthorized)
	wrongPw := err.Error()

	_, _, err = auth.Signin(ctx, "nobody@example.com", "correct horse")
	require.ErrorAs(t, err, &unauthorized)
	assert.Equal(t, wrongPw, err.Error())
}

func TestAuthService_SignupValidation(t *testing.T) {
	auth := setupAuth(t)
	ctx := context.Background()

	var validation *domain.ValidationError
	_, err := auth.Signup(ctx, &domain.CreateUserRequest{Name: "A", Email: "not-an-email", Password: "longenough"})
	require.ErrorAs(t, err, &validation)

	_, err = auth.Signup(ctx, &domain.CreateUserRequest{Name: "A", Email: "a@example.com", Password: "short"})
	require.ErrorAs(t, err, &validation)
}
