package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB with healthbot-specific helpers.
type DB struct {
	*sql.DB
	mu   sync.RWMutex
	path string
}

// Open creates or opens a SQLite database at the given path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	d := &DB{DB: sqlDB, path: path}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return d, nil
}

// OpenMemory creates an in-memory SQLite database (useful for testing).
func OpenMemory() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}

	d := &DB{DB: sqlDB, path: ":memory:"}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return d, nil
}

// migrate runs all schema migrations.
func (d *DB) migrate() error {
	_, err := d.Exec(schema)
	return err
}

// schema contains the full database schema. New tables are added here.
const schema = `
CREATE TABLE IF NOT EXISTS products (
    product_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    price REAL NOT NULL DEFAULT 0,
    image TEXT NOT NULL DEFAULT '',
    rating REAL NOT NULL DEFAULT 0,
    in_stock INTEGER NOT NULL DEFAULT 1,
    description TEXT NOT NULL DEFAULT '',
    short_description TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT '',
    promoted INTEGER NOT NULL DEFAULT 0,
    active INTEGER NOT NULL DEFAULT 1,
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_products_name ON products(name);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_price ON products(price);
CREATE INDEX IF NOT EXISTS idx_products_active ON products(active);

CREATE TABLE IF NOT EXISTS chatbot_knowledge (
    id TEXT PRIMARY KEY,
    query_pattern TEXT NOT NULL,
    answer TEXT NOT NULL,
    intent TEXT NOT NULL DEFAULT 'general',
    confidence_score REAL NOT NULL DEFAULT 0.8,
    keywords TEXT NOT NULL DEFAULT '[]',
    is_approved INTEGER NOT NULL DEFAULT 0,
    usage_count INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_knowledge_approved ON chatbot_knowledge(is_approved, confidence_score DESC);

CREATE TABLE IF NOT EXISTS chatbot_unanswered_queries (
    query TEXT PRIMARY KEY,
    suggested_intent TEXT NOT NULL DEFAULT 'unknown',
    occurrence_count INTEGER NOT NULL DEFAULT 1,
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS chatbot_query_logs (
    id TEXT PRIMARY KEY,
    user_query TEXT NOT NULL,
    matched_pattern TEXT NOT NULL DEFAULT '',
    intent TEXT NOT NULL DEFAULT '',
    response TEXT NOT NULL DEFAULT '',
    confidence_score REAL NOT NULL DEFAULT 0,
    was_successful INTEGER NOT NULL DEFAULT 0,
    session_id TEXT NOT NULL DEFAULT 'default',
    needs_review INTEGER NOT NULL DEFAULT 0,
    user_feedback TEXT,
    created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_query_logs_success ON chatbot_query_logs(was_successful);
CREATE INDEX IF NOT EXISTS idx_query_logs_review ON chatbot_query_logs(needs_review);
CREATE INDEX IF NOT EXISTS idx_query_logs_created ON chatbot_query_logs(created_at);

CREATE TABLE IF NOT EXISTS chatbot_product_clicks (
    id TEXT PRIMARY KEY,
    product_id TEXT NOT NULL,
    product_name TEXT NOT NULL DEFAULT '',
    session_id TEXT NOT NULL DEFAULT 'default',
    created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_product_clicks_product ON chatbot_product_clicks(product_id);
`
