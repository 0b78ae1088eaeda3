package database

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func migrationFS() fstest.MapFS {
	return fstest.MapFS{
		"migrations/0001_tables.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE a (id INT);\n\nCREATE TABLE b (id INT);\n"),
		},
		"migrations/0002_index.sql": &fstest.MapFile{
			Data: []byte("-- add lookup index\nCREATE INDEX idx_a ON a (id);\n"),
		},
	}
}

func TestMigrate(t *testing.T) {
	t.Run("applies pending migrations in order", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM schema_migrations WHERE version = \\?").
			WithArgs("0001_tables.sql").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec("CREATE TABLE a").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE TABLE b").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO schema_migrations").
			WithArgs("0001_tables.sql").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM schema_migrations WHERE version = \\?").
			WithArgs("0002_index.sql").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec("CREATE INDEX idx_a").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO schema_migrations").
			WithArgs("0002_index.sql").
			WillReturnResult(sqlmock.NewResult(1, 1))

		err = Migrate(context.Background(), sqlx.NewDb(db, "mysql"), migrationFS())
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("skips applied migrations", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM schema_migrations WHERE version = \\?").
			WithArgs("0001_tables.sql").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM schema_migrations WHERE version = \\?").
			WithArgs("0002_index.sql").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		err = Migrate(context.Background(), sqlx.NewDb(db, "mysql"), migrationFS())
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stops on statement failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM schema_migrations WHERE version = \\?").
			WithArgs("0001_tables.sql").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec("CREATE TABLE a").WillReturnError(assert.AnError)

		err = Migrate(context.Background(), sqlx.NewDb(db, "mysql"), migrationFS())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "0001_tables.sql")
	})
}

func TestSplitStatements(t *testing.T) {
	stmts := splitStatements("-- header\nCREATE TABLE a (id INT);\n\n-- trailing comment\n;\nCREATE TABLE b (id INT);")
	require.Len(t, stmts, 2)
	assert.Contains(t, stmts[0], "CREATE TABLE a")
	assert.Contains(t, stmts[1], "CREATE TABLE b")
}
