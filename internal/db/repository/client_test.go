package repository

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldb "fieldtrack/internal/db"
	"fieldtrack/internal/domain"
)

// setupClientRepos wires the client, contact, record, and email repos onto one
// fresh migrated database plus a user to own the bootstrap records.
func setupClientRepos(t *testing.T) (*ClientRepo, *ContactRepo, *RecordRepo, *EmailRepo, *domain.User) {
	t.Helper()
	writeDB, _ := internaldb.OpenTestSQLite(t)

	users := NewUserRepo(writeDB)
	u, err := users.Create(context.Background(), &domain.User{
		Name: "Worker", Email: "worker@example.com", PasswordHash: "x", Role: domain.RoleStandard,
	})
	require.NoError(t, err)

	return NewClientRepo(writeDB), NewContactRepo(writeDB), NewRecordRepo(writeDB), NewEmailRepo(writeDB), u
}

func TestClientRepo_CreateFilesBootstrapRecord(t *testing.T) {
	clients, contacts, records, _, u := setupClientRepos(t)
	ctx := context.Background()

	c, err := clients.Create(ctx, &domain.Client{Name: "Acme", Active: true}, u.ID)
	require.NoError(t, err)
	assert.Greater(t, c.ID, int64(0))

	// The creator gets a system record against the new client, which is what
	// makes the client visible to them.
	ids, err := records.DistinctClientIDsByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{c.ID}, ids)

	recs, total, err := records.ListByClient(ctx, c.ID, domain.PageRequest{})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	rec := recs[0]
	assert.Equal(t, "system", rec.Status)
	assert.Equal(t, u.ID, rec.UserID)
	assert.Equal(t, domain.SystemContactID, rec.ContactID)
	assert.Equal(t, "00:00:01", rec.Duration)
	assert.True(t, rec.ExitTime.Equal(rec.EntryTime.Add(time.Second)))

	// The system contact is linked to the new client.
	linked, err := contacts.IsLinked(ctx, c.ID, domain.SystemContactID)
	require.NoError(t, err)
	assert.True(t, linked)
}

func TestClientRepo_UpdateAndExists(t *testing.T) {
	clients, _, _, _, u := setupClientRepos(t)
	ctx := context.Background()

	contractDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	c, err := clients.Create(ctx, &domain.Client{
		Name:         "Acme",
		City:         "Lisbon",
		Active:       true,
		HasContract:  true,
		ContractDate: &contractDate,
		MinimumHours: "10:00:00",
	}, u.ID)
	require.NoError(t, err)

	ok, err := clients.Exists(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = clients.Exists(ctx, c.ID+100)
	require.NoError(t, err)
	assert.False(t, ok)

	c.Name = "Acme Holdings"
	c.Active = false
	updated, err := clients.Update(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, "Acme Holdings", updated.Name)
	assert.False(t, updated.Active)
	require.NotNil(t, updated.ContractDate)
	assert.True(t, contractDate.Equal(*updated.ContractDate))
	assert.Equal(t, "10:00:00", updated.MinimumHours)
}

func TestClientRepo_ListByIDs(t *testing.T) {
	clients, _, _, _, u := setupClientRepos(t)
	ctx := context.Background()

	a, err := clients.Create(ctx, &domain.Client{Name: "A", Active: true}, u.ID)
	require.NoError(t, err)
	_, err = clients.Create(ctx, &domain.Client{Name: "B", Active: true}, u.ID)
	require.NoError(t, err)

	got, total, err := clients.ListByIDs(ctx, []int64{a.ID}, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Name)

	// Empty id set short-circuits to an empty page.
	got, total, err = clients.ListByIDs(ctx, nil, domain.PageRequest{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, got)
}

func TestClientRepo_DeleteCascades(t *testing.T) {
	clients, contacts, records, emails, u := setupClientRepos(t)
	ctx := context.Background()

	c, err := clients.Create(ctx, &domain.Client{Name: "Acme", Active: true}, u.ID)
	require.NoError(t, err)
	other, err := clients.Create(ctx, &domain.Client{Name: "Other", Active: true}, u.ID)
	require.NoError(t, err)

	// solo is only linked to the doomed client; shared is linked to both.
	solo, err := contacts.Create(ctx, &domain.Contact{Name: "Solo", Active: true}, c.ID)
	require.NoError(t, err)
	shared, err := contacts.Create(ctx, &domain.Contact{Name: "Shared", Active: true}, c.ID)
	require.NoError(t, err)
	require.NoError(t, contacts.Link(ctx, other.ID, shared.ID))

	_, err = emails.Create(ctx, &domain.ClientEmail{ClientID: c.ID, Email: "info@acme.example"})
	require.NoError(t, err)

	require.NoError(t, clients.Delete(ctx, c.ID))

	ok, err := clients.Exists(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	// The client's records are gone, including the bootstrap one.
	_, total, err := records.ListByClient(ctx, c.ID, domain.PageRequest{})
	require.NoError(t, err)
	assert.Zero(t, total)

	// Orphaned contact removed, shared contact survives.
	var notFound *domain.NotFoundError
	_, err = contacts.GetByID(ctx, solo.ID)
	require.ErrorAs(t, err, &notFound)
	_, err = contacts.GetByID(ctx, shared.ID)
	require.NoError(t, err)

	// The system contact is never swept by orphan cleanup.
	_, err = contacts.GetByID(ctx, domain.SystemContactID)
	require.NoError(t, err)

	// Emails are gone with the client.
	_, total, err = emails.ListByClient(ctx, c.ID, domain.PageRequest{})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestClientRepo_DeleteMissing(t *testing.T) {
	clients, _, _, _, _ := setupClientRepos(t)

	var notFound *domain.NotFoundError
	err := clients.Delete(context.Background(), 999)
	require.ErrorAs(t, err, &notFound)
}
