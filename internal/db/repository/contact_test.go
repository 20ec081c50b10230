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

func setupContactRepos(t *testing.T) (*ContactRepo, *ClientRepo, *domain.Client, *domain.Client) {
	t.Helper()
	writeDB, _ := internaldb.OpenTestSQLite(t)

	ctx := context.Background()
	users := NewUserRepo(writeDB)
	u, err := users.Create(ctx, &domain.User{Name: "W", Email: "w@example.com", PasswordHash: "x", Role: domain.RoleStandard})
	require.NoError(t, err)

	clients := NewClientRepo(writeDB)
	a, err := clients.Create(ctx, &domain.Client{Name: "A", Active: true}, u.ID)
	require.NoError(t, err)
	b, err := clients.Create(ctx, &domain.Client{Name: "B", Active: true}, u.ID)
	require.NoError(t, err)

	return NewContactRepo(writeDB), clients, a, b
}

func TestContactRepo_CreateLinksToClient(t *testing.T) {
	contacts, _, a, _ := setupContactRepos(t)
	ctx := context.Background()

	c, err := contacts.Create(ctx, &domain.Contact{
		Name: "Maria", JobTitle: "Ops", Email: "maria@a.example", WhatsApp: true, Active: true,
	}, a.ID)
	require.NoError(t, err)
	assert.Greater(t, c.ID, int64(0))

	linked, err := contacts.IsLinked(ctx, a.ID, c.ID)
	require.NoError(t, err)
	assert.True(t, linked)

	got, err := contacts.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria", got.Name)
	assert.True(t, got.WhatsApp)
}

func TestContactRepo_CreateMissingClient(t *testing.T) {
	contacts, _, _, _ := setupContactRepos(t)

	var notFound *domain.NotFoundError
	_, err := contacts.Create(context.Background(), &domain.Contact{Name: "X", Active: true}, 999)
	require.ErrorAs(t, err, &notFound)
}

func TestContactRepo_LinkIsIdempotent(t *testing.T) {
	contacts, _, a, b := setupContactRepos(t)
	ctx := context.Background()

	c, err := contacts.Create(ctx, &domain.Contact{Name: "Maria", Active: true}, a.ID)
	require.NoError(t, err)

	require.NoError(t, contacts.Link(ctx, b.ID, c.ID))
	require.NoError(t, contacts.Link(ctx, b.ID, c.ID))

	ids, err := contacts.ClientIDsOf(ctx, c.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{a.ID, b.ID}, ids)
}

func TestContactRepo_UnlinkRemovesOrphan(t *testing.T) {
	contacts, _, a, b := setupContactRepos(t)
	ctx := context.Background()

	c, err := contacts.Create(ctx, &domain.Contact{Name: "Maria", Active: true}, a.ID)
	require.NoError(t, err)
	require.NoError(t, contacts.Link(ctx, b.ID, c.ID))

	// Still linked to b, so the contact row survives.
	require.NoError(t, contacts.Unlink(ctx, a.ID, c.ID))
	_, err = contacts.GetByID(ctx, c.ID)
	require.NoError(t, err)

	// Last link removed: the contact goes with it.
	require.NoError(t, contacts.Unlink(ctx, b.ID, c.ID))
	var notFound *domain.NotFoundError
	_, err = contacts.GetByID(ctx, c.ID)
	require.ErrorAs(t, err, &notFound)
}

func TestContactRepo_UnlinkMissingPair(t *testing.T) {
	contacts, _, a, b := setupContactRepos(t)
	ctx := context.Background()

	c, err := contacts.Create(ctx, &domain.Contact{Name: "Maria", Active: true}, a.ID)
	require.NoError(t, err)

	var notFound *domain.NotFoundError
	err = contacts.Unlink(ctx, b.ID, c.ID)
	require.ErrorAs(t, err, &notFound)
}

func TestContactRepo_UnlinkKeepsSystemContact(t *testing.T) {
	contacts, _, a, _ := setupContactRepos(t)
	ctx := context.Background()

	// The system contact's only link to a is the bootstrap one. Unlinking must
	// not delete the row even though it ends up with zero links to a.
	require.NoError(t, contacts.Unlink(ctx, a.ID, domain.SystemContactID))
	_, err := contacts.GetByID(ctx, domain.SystemContactID)
	require.NoError(t, err)
}

func TestContactRepo_DeleteRemovesLinks(t *testing.T) {
	contacts, _, a, b := setupContactRepos(t)
	ctx := context.Background()

	c, err := contacts.Create(ctx, &domain.Contact{Name: "Maria", Active: true}, a.ID)
	require.NoError(t, err)
	require.NoError(t, contacts.Link(ctx, b.ID, c.ID))

	require.NoError(t, contacts.Delete(ctx, c.ID))

	var notFound *domain.NotFoundError
	_, err = contacts.GetByID(ctx, c.ID)
	require.ErrorAs(t, err, &notFound)

	linked, err := contacts.IsLinked(ctx, a.ID, c.ID)
	require.NoError(t, err)
	assert.False(t, linked)
}

func TestContactRepo_ListByClients(t *testing.T) {
	contacts, _, a, b := setupContactRepos(t)
	ctx := context.Background()

	ca, err := contacts.Create(ctx, &domain.Contact{Name: "OnA", Active: true}, a.ID)
	require.NoError(t, err)
	_, err = contacts.Create(ctx, &domain.Contact{Name: "OnB", Active: true}, b.ID)
	require.NoError(t, err)

	got, _, err := contacts.ListByClients(ctx, []int64{a.ID}, domain.PageRequest{})
	require.NoError(t, err)
	var names []string
	for _, c := range got {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "OnA")
	assert.NotContains(t, names, "OnB")

	// Shared contacts appear once even when reachable via several clients.
	require.NoError(t, contacts.Link(ctx, b.ID, ca.ID))
	got, _, err = contacts.ListByClients(ctx, []int64{a.ID, b.ID}, domain.PageRequest{})
	require.NoError(t, err)
	count := 0
	for _, c := range got {
		if c.ID == ca.ID {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
