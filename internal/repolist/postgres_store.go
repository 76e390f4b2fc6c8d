package repolist

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/corpinfra/cio/internal/repolist/migrations"
)

const (
	databaseDriverNameConstant    = "pgx"
	gooseDialectConstant          = "pgx"
	migrationsRootConstant        = "."
	listRepositoriesQueryConstant = `SELECT name, full_name, description, default_branch, private, archived FROM github_repos ORDER BY name`
	upsertRepositoryQueryConstant = `INSERT INTO github_repos (name, full_name, description, default_branch, private, archived)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (name) DO UPDATE SET
    full_name = EXCLUDED.full_name,
    description = EXCLUDED.description,
    default_branch = EXCLUDED.default_branch,
    private = EXCLUDED.private,
    archived = EXCLUDED.archived`
	deleteRepositoryQueryConstant = `DELETE FROM github_repos WHERE name = $1`
)

// OpenDatabase opens the mirror database through the pgx database/sql driver.
func OpenDatabase(databaseURL string) (*sql.DB, error) {
	return sql.Open(databaseDriverNameConstant, databaseURL)
}

// PostgresStore implements MirrorStore on a goose-managed github_repos table.
type PostgresStore struct {
	database *sql.DB
}

// NewPostgresStore binds a store to an open database handle.
func NewPostgresStore(database *sql.DB) *PostgresStore {
	return &PostgresStore{database: database}
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(executionContext context.Context, database *sql.DB, directory string, options ...goose.OptionsFunc) error {
	return goose.UpContext(executionContext, database, directory, options...)
}

// RunMigrations applies the embedded schema migrations.
func (store *PostgresStore) RunMigrations(executionContext context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if dialectError := goose.SetDialect(gooseDialectConstant); dialectError != nil {
		return dialectError
	}
	return gooseUpContext(executionContext, store.database, migrationsRootConstant)
}

// ListRepositories loads every mirrored repository row.
func (store *PostgresStore) ListRepositories(executionContext context.Context) ([]RepositoryDescriptor, error) {
	rows, queryError := store.database.QueryContext(executionContext, listRepositoriesQueryConstant)
	if queryError != nil {
		return nil, queryError
	}
	defer rows.Close()

	descriptors := []RepositoryDescriptor{}
	for rows.Next() {
		descriptor := RepositoryDescriptor{}
		scanError := rows.Scan(
			&descriptor.Name,
			&descriptor.FullName,
			&descriptor.Description,
			&descriptor.DefaultBranch,
			&descriptor.Private,
			&descriptor.Archived,
		)
		if scanError != nil {
			return nil, scanError
		}
		descriptors = append(descriptors, descriptor)
	}
	return descriptors, rows.Err()
}

// UpsertRepository inserts or refreshes one mirrored repository row.
func (store *PostgresStore) UpsertRepository(executionContext context.Context, descriptor RepositoryDescriptor) error {
	_, executionError := store.database.ExecContext(
		executionContext,
		upsertRepositoryQueryConstant,
		descriptor.Name,
		descriptor.FullName,
		descriptor.Description,
		descriptor.DefaultBranch,
		descriptor.Private,
		descriptor.Archived,
	)
	return executionError
}

// DeleteRepository removes one mirrored repository row by name.
func (store *PostgresStore) DeleteRepository(executionContext context.Context, repositoryName string) error {
	_, executionError := store.database.ExecContext(executionContext, deleteRepositoryQueryConstant, repositoryName)
	return executionError
}
