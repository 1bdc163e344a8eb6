package postgres

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"log/slog"

	"marketplace/internal/errors"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// MigrationsFS returns the embedded goose migrations.
func MigrationsFS() (fs.FS, error) {
	sub, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return nil, errors.Wrap(err, "open embedded migrations")
	}

	return sub, nil
}

func runMigrations(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	fsys, err := MigrationsFS()
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return errors.Wrap(err, "create goose provider")
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return errors.Wrap(err, "apply migrations")
	}

	for _, r := range results {
		logger.Info("Applied migration",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}

	return nil
}
