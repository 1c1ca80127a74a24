package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/selmane/retailpos/config"
)

// Open connects to the embedded SQLite store. The busy timeout makes
// concurrent writers queue instead of failing with SQLITE_BUSY.
func Open(cfg *config.SQLiteConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d", cfg.Path, cfg.BusyTimeoutMS)

	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	return db, nil
}
