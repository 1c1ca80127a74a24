package database

import "github.com/jmoiron/sqlx"

var statements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		price      REAL NOT NULL,
		stock      INTEGER NOT NULL,
		category   TEXT NOT NULL DEFAULT '',
		barcode    TEXT NOT NULL UNIQUE,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id             TEXT PRIMARY KEY,
		product_id     TEXT NOT NULL,
		quantity       INTEGER NOT NULL,
		total          REAL NOT NULL,
		discount       REAL NOT NULL DEFAULT 0,
		date           DATETIME NOT NULL,
		staff_id       TEXT NOT NULL,
		payment_method TEXT NOT NULL,
		customer_id    TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id     TEXT PRIMARY KEY,
		name   TEXT NOT NULL,
		email  TEXT NOT NULL UNIQUE,
		points INTEGER NOT NULL DEFAULT 0,
		age    INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS staff (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		pin  TEXT NOT NULL UNIQUE,
		role TEXT NOT NULL DEFAULT 'staff'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_product_id ON sales(product_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_customer_id ON sales(customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_staff_id ON sales(staff_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_date ON sales(date)`,
}

// Migrate creates the schema. Safe to run on every startup.
func Migrate(db *sqlx.DB) error {
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
