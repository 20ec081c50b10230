package repository

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldb "fieldtrack/internal/db"
	"fieldtrack/internal/domain"
)

func setupUserRepo(t *testing.T) *UserRepo {
	t.Helper()
	writeDB, _ := internaldb.OpenTestSQLite(t)
	return NewUserRepo(writeDB)
}

func TestUserRepo_CRUD(t *testing.T) {
	repo := setupUserRepo(t)
	ctx := context.Background()

	u, err := repo.Create(ctx, &domain.User{
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$fakehash",
		Role:         domain.RoleStandard,
	})
	require.NoError(t, err)
	assert.Greater(t, u.ID, int64(0))
	assert.Equal(t, "alice@example.com", u.Email)
	assert.False(t, u.CreatedAt.IsZero())

	found, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.Name)

	found, err = repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	users, total, err := repo.List(ctx, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, users, 1)

	err = repo.UpdateRole(ctx, u.ID, domain.RoleAdmin)
	require.NoError(t, err)
	found, err = repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, found.Role)
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	repo := setupUserRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.User{Name: "Alice", Email: "a@example.com", PasswordHash: "x", Role: domain.RoleStandard})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.User{Name: "Other", Email: "a@example.com", PasswordHash: "y", Role: domain.RoleStandard})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestUserRepo_NotFound(t *testing.T) {
	repo := setupUserRepo(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 12345)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)

	err = repo.UpdateRole(ctx, 12345, domain.RoleAdmin)
	require.ErrorAs(t, err, &notFound)
}
