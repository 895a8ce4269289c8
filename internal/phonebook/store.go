package phonebook

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Pylons/paginate"
	"github.com/Pylons/paginate/extgorm"
	"github.com/Pylons/paginate/extpgx"
)

// seedSize is the number of demo entries created by the memory and sqlite
// stores.
const seedSize = 500

// Store provides the phonebook entries as a pageable collection.
type Store struct {
	coll paginate.Collection[Entry]

	closeFn func()
}

// Collection returns the pageable view of the phonebook.
func (s *Store) Collection() paginate.Collection[Entry] {
	return s.coll
}

// Close releases the underlying database resources, if any.
func (s *Store) Close() {
	if s.closeFn != nil {
		s.closeFn()
	}
}

// Open builds the store for the configured driver: "memory" serves seeded
// in-process data, "sqlite" seeds a GORM-managed SQLite database and
// "postgres" expects an existing entries table reachable via dsn.
func Open(ctx context.Context, driver, sqlitePath, dsn string, log *slog.Logger) (*Store, error) {
	switch driver {
	case "memory":
		return &Store{coll: paginate.SliceCollection[Entry](Seed(seedSize))}, nil
	case "sqlite":
		return openSQLite(sqlitePath, log)
	case "postgres":
		return openPostgres(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}

func openSQLite(path string, log *slog.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("migrate entries table: %w", err)
	}

	// Seed once; reopened file databases keep their rows.
	var n int64
	if err := db.Model(&Entry{}).Count(&n).Error; err != nil {
		return nil, fmt.Errorf("count entries: %w", err)
	}
	if n == 0 {
		entries := Seed(seedSize)
		if err := db.CreateInBatches(&entries, 100).Error; err != nil {
			return nil, fmt.Errorf("seed entries: %w", err)
		}
		log.Info("seeded phonebook", "entries", seedSize)
	}

	return &Store{
		coll: extgorm.NewCollection[Entry](db.Model(&Entry{}).Order("name, id")),
	}, nil
}

func openPostgres(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	coll := extpgx.NewCollection(pool,
		"SELECT id, name, company, phone, email FROM entries ORDER BY name, id",
		nil, pgx.RowToStructByName[Entry])

	return &Store{coll: coll, closeFn: pool.Close}, nil
}
