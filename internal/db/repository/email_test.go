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

func setupEmailRepo(t *testing.T) (*EmailRepo, *domain.Client) {
	t.Helper()
	writeDB, _ := internaldb.OpenTestSQLite(t)
	ctx := context.Background()

	u, err := NewUserRepo(writeDB).Create(ctx, &domain.User{
		Name: "W", Email: "w@example.com", PasswordHash: "x", Role: domain.RoleStandard,
	})
	require.NoError(t, err)
	c, err := NewClientRepo(writeDB).Create(ctx, &domain.Client{Name: "Acme", Active: true}, u.ID)
	require.NoError(t, err)

	return NewEmailRepo(writeDB), c
}

func TestEmailRepo_CRUD(t *testing.T) {
	emails, client := setupEmailRepo(t)
	ctx := context.Background()

	e, err := emails.Create(ctx, &domain.ClientEmail{ClientID: client.ID, Email: "info@acme.example"})
	require.NoError(t, err)
	assert.Greater(t, e.ID, int64(0))
	assert.Equal(t, client.ID, e.ClientID)

	got, err := emails.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "info@acme.example", got.Email)

	got.Email = "billing@acme.example"
	updated, err := emails.Update(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, "billing@acme.example", updated.Email)

	list, total, err := emails.ListByClient(ctx, client.ID, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)

	require.NoError(t, emails.Delete(ctx, e.ID))
	var notFound *domain.NotFoundError
	_, err = emails.GetByID(ctx, e.ID)
	require.ErrorAs(t, err, &notFound)
}

func TestEmailRepo_CreateMissingClient(t *testing.T) {
	emails, _ := setupEmailRepo(t)

	var invalidRef *domain.InvalidReferenceError
	_, err := emails.Create(context.Background(), &domain.ClientEmail{ClientID: 999, Email: "x@y.example"})
	require.ErrorAs(t, err, &invalidRef)
}
