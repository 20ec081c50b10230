package service

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldtrack/internal/domain"
)

func TestContactService_ScopedVisibility(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	c := env.newClient(t, env.alice, "Acme")
	ct, err := env.contacts.Create(ctx, env.alice, &domain.CreateContactRequest{ClientID: c.ID, Name: "Maria", Active: true})
	require.NoError(t, err)

	got, err := env.contacts.GetScoped(ctx, env.alice, c.ID, ct.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria", got.Name)

	// Bob has no grant for the client, so the whole subtree is invisible.
	var notFound *domain.NotFoundError
	_, err = env.contacts.GetScoped(ctx, env.bob, c.ID, ct.ID)
	require.ErrorAs(t, err, &notFound)

	// A contact that exists but is linked elsewhere is not reachable under
	// this client.
	other := env.newClient(t, env.alice, "Other")
	elsewhere, err := env.contacts.Create(ctx, env.alice, &domain.CreateContactRequest{ClientID: other.ID, Name: "Wrong", Active: true})
	require.NoError(t, err)
	_, err = env.contacts.GetScoped(ctx, env.alice, c.ID, elsewhere.ID)
	require.ErrorAs(t, err, &notFound)
}

func TestContactService_GlobalVisibility(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	c := env.newClient(t, env.alice, "Acme")
	ct, err := env.contacts.Create(ctx, env.alice, &domain.CreateContactRequest{ClientID: c.ID, Name: "Maria", Active: true})
	require.NoError(t, err)

	// Alice reaches the contact through her granted client.
	got, err := env.contacts.Get(ctx, env.alice, ct.ID)
	require.NoError(t, err)
	assert.Equal(t, ct.ID, got.ID)

	// Bob does not.
	var notFound *domain.NotFoundError
	_, err = env.contacts.Get(ctx, env.bob, ct.ID)
	require.ErrorAs(t, err, &notFound)

	// List is scoped to the caller's accessible clients.
	list, _, err := env.contacts.List(ctx, env.bob, domain.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestContactService_LinkUnlink(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	a := env.newClient(t, env.alice, "A")
	b := env.newClient(t, env.alice, "B")
	ct, err := env.contacts.Create(ctx, env.alice, &domain.CreateContactRequest{ClientID: a.ID, Name: "Maria", Active: true})
	require.NoError(t, err)

	require.NoError(t, env.contacts.Link(ctx, env.alice, b.ID, ct.ID))

	clients, err := env.contacts.ClientsOf(ctx, env.alice, ct.ID)
	require.NoError(t, err)
	var ids []int64
	for _, c := range clients {
		ids = append(ids, c.ID)
	}
	assert.ElementsMatch(t, []int64{a.ID, b.ID}, ids)

	require.NoError(t, env.contacts.Unlink(ctx, env.alice, b.ID, ct.ID))

	// Unlinking a pair that does not exist reports NotFound.
	var notFound *domain.NotFoundError
	err = env.contacts.Unlink(ctx, env.alice, b.ID, ct.ID)
	require.ErrorAs(t, err, &notFound)
}

func TestContactService_DeleteGuardsSystemContact(t *testing.T) {
	env := setupServices(t)

	var validation *domain.ValidationError
	err := env.contacts.Delete(context.Background(), env.admin, domain.SystemContactID)
	require.ErrorAs(t, err, &validation)
}

func TestClientService_ListScopedByGrant(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	a := env.newClient(t, env.alice, "A")
	b := env.newClient(t, env.bob, "B")

	list, total, err := env.clients.List(ctx, env.alice, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].ID)

	_, total, err = env.clients.List(ctx, env.admin, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	// Deleting a client revokes the grant it carried.
	require.NoError(t, env.clients.Delete(ctx, env.bob, b.ID))
	list, _, err = env.clients.List(ctx, env.bob, domain.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEmailService_ScopedToClient(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	c := env.newClient(t, env.alice, "Acme")
	e, err := env.emails.Create(ctx, env.alice, c.ID, &domain.CreateClientEmailRequest{Email: "info@acme.example"})
	require.NoError(t, err)

	got, err := env.emails.Get(ctx, env.alice, c.ID, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "info@acme.example", got.Email)

	// The same email is not addressable under a different client.
	other := env.newClient(t, env.alice, "Other")
	var notFound *domain.NotFoundError
	_, err = env.emails.Get(ctx, env.alice, other.ID, e.ID)
	require.ErrorAs(t, err, &notFound)

	// Bob cannot reach the parent client at all.
	_, _, err = env.emails.List(ctx, env.bob, c.ID, domain.PageRequest{})
	require.ErrorAs(t, err, &notFound)
}
