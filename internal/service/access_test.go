package service

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldb "fieldtrack/internal/db"
	"fieldtrack/internal/db/repository"
	"fieldtrack/internal/domain"
)

// testEnv wires every service onto one fresh migrated database with an admin
// and two standard users.
type testEnv struct {
	clients  *ClientService
	contacts *ContactService
	records  *RecordService
	emails   *EmailService
	access   *AccessService

	clientRepo  *repository.ClientRepo
	contactRepo *repository.ContactRepo
	recordRepo  *repository.RecordRepo

	admin domain.Principal
	alice domain.Principal
	bob   domain.Principal
}

func setupServices(t *testing.T) *testEnv {
	t.Helper()
	writeDB, _ := internaldb.OpenTestSQLite(t)
	ctx := context.Background()

	users := repository.NewUserRepo(writeDB)
	mkUser := func(name, email string, role domain.Role) domain.Principal {
		u, err := users.Create(ctx, &domain.User{Name: name, Email: email, PasswordHash: "x", Role: role})
		require.NoError(t, err)
		return u.Principal()
	}

	clientRepo := repository.NewClientRepo(writeDB)
	contactRepo := repository.NewContactRepo(writeDB)
	recordRepo := repository.NewRecordRepo(writeDB)
	emailRepo := repository.NewEmailRepo(writeDB)

	access := NewAccessService(clientRepo, contactRepo, recordRepo)

	return &testEnv{
		clients:  NewClientService(clientRepo, access, nil),
		contacts: NewContactService(contactRepo, access, nil),
		records:  NewRecordService(recordRepo, clientRepo, contactRepo, access, nil),
		emails:   NewEmailService(emailRepo, access),
		access:   access,

		clientRepo:  clientRepo,
		contactRepo: contactRepo,
		recordRepo:  recordRepo,

		admin: mkUser("Admin", "admin@example.com", domain.RoleAdmin),
		alice: mkUser("Alice", "alice@example.com", domain.RoleStandard),
		bob:   mkUser("Bob", "bob@example.com", domain.RoleStandard),
	}
}

// newClient creates a client as the given principal and returns it.
func (e *testEnv) newClient(t *testing.T, p domain.Principal, name string) *domain.Client {
	t.Helper()
	c, err := e.clients.Create(context.Background(), p, &domain.CreateClientRequest{Name: name, Active: true})
	require.NoError(t, err)
	return c
}

func TestAccessService_IsAdmin(t *testing.T) {
	env := setupServices(t)

	assert.True(t, env.access.IsAdmin(env.admin))
	assert.False(t, env.access.IsAdmin(env.alice))
}

func TestAccessService_GrantsFollowRecords(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	// Alice created the client, so her bootstrap record grants her access.
	c := env.newClient(t, env.alice, "Acme")

	ok, err := env.access.CanAccessClient(ctx, env.alice, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// Bob has no record for it.
	ok, err = env.access.CanAccessClient(ctx, env.bob, c.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	// Admin sees everything without any record.
	ok, err = env.access.CanAccessClient(ctx, env.admin, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAccessService_RequireClientHidesExistence(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	c := env.newClient(t, env.alice, "Acme")

	// A denied client and a missing client are indistinguishable.
	var notFound *domain.NotFoundError
	_, err := env.access.RequireClient(ctx, env.bob, c.ID)
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), "not found")

	_, err = env.access.RequireClient(ctx, env.bob, c.ID+1000)
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), "not found")
}

func TestAccessService_ListAccessibleClientIDs(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	a := env.newClient(t, env.alice, "A")
	b := env.newClient(t, env.bob, "B")

	ids, err := env.access.ListAccessibleClientIDs(ctx, env.alice)
	require.NoError(t, err)
	assert.Equal(t, []int64{a.ID}, ids)

	ids, err = env.access.ListAccessibleClientIDs(ctx, env.admin)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{a.ID, b.ID}, ids)
}
