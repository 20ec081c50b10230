package cli

import (
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	internaldb "fieldtrack/internal/db"
	"fieldtrack/internal/db/repository"
)

// openUserRepo opens the database at path, applies pending migrations, and
// returns a user repository backed by the write pool. The returned closer
// must be called when the command finishes.
func openUserRepo(path string) (*repository.UserRepo, func(), error) {
	writeDB, readDB, err := internaldb.OpenSQLitePair(path, 1)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	closer := func() {
		_ = readDB.Close()
		_ = writeDB.Close()
	}
	if err := internaldb.RunMigrations(writeDB); err != nil {
		closer()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}
	return repository.NewUserRepo(writeDB), closer, nil
}
