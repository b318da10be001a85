package sqlite

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	migrate "github.com/rubenv/sql-migrate"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/iamwavecut/modbot/resources"
)

type sqliteClient struct {
	db    *sqlx.DB
	mutex sync.RWMutex
}

func NewSQLiteClient(ctx context.Context, dir string, dbName string) (*sqliteClient, error) {
	dbx, err := sqlx.Open("sqlite", filepath.Join(dir, dbName))
	if err != nil {
		return nil, errors.WithMessage(err, "cant open db")
	}
	dbx.SetMaxOpenConns(42)
	if err := dbx.PingContext(ctx); err != nil {
		return nil, errors.WithMessage(err, "cant ping db")
	}

	migrationsSource := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: resources.FS,
		Root:       "migrations",
	}
	n, err := migrate.Exec(dbx.DB, "sqlite3", migrationsSource, migrate.Up)
	if err != nil {
		return nil, errors.WithMessage(err, "migrate up failed")
	}
	if n > 0 {
		log.Infof("applied %d migrations!", n)
	}

	return &sqliteClient{db: dbx}, nil
}

func (s *sqliteClient) Close() error {
	return s.db.Close()
}
