package session

import (
	"database/sql" // Local preference persistence
	"fmt"          // Error wrapping

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Defaults returned when no user has been saved yet.
const (
	DefaultUserID = -1        // No user logged in
	DefaultName   = "Guest"   // Display name fallback
	DefaultRole   = "No role" // Role fallback
	DefaultClass  = ""        // Class fallback
)

// Store persists the active user's id, name, role and class across runs.
// It holds a single row; reads never fail, they degrade to the defaults.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the preference database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open prefs: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping prefs: %w", err)
	}
	// Single-row table; id is pinned to 1 so SaveUser is a plain upsert
	const schema = `CREATE TABLE IF NOT EXISTS user_prefs (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		user_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		class TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate prefs: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveUser persists all user fields atomically as of the call.
func (s *Store) SaveUser(id int, name, role, class string) error {
	_, err := s.db.Exec(`INSERT INTO user_prefs (id, user_id, name, role, class)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET user_id=excluded.user_id, name=excluded.name,
			role=excluded.role, class=excluded.class`,
		id, name, role, class)
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// Clear removes the stored user, returning the store to its defaults.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM user_prefs WHERE id = 1`); err != nil {
		return fmt.Errorf("clear prefs: %w", err)
	}
	return nil
}

// UserID returns the stored user id, or -1 when unset.
func (s *Store) UserID() int {
	var id int
	if err := s.db.QueryRow(`SELECT user_id FROM user_prefs WHERE id = 1`).Scan(&id); err != nil {
		return DefaultUserID // Unset or unreadable: default
	}
	return id
}

// UserName returns the stored display name, or "Guest" when unset.
func (s *Store) UserName() string {
	var name string
	if err := s.db.QueryRow(`SELECT name FROM user_prefs WHERE id = 1`).Scan(&name); err != nil {
		return DefaultName
	}
	return name
}

// UserRole returns the stored role string, or "No role" when unset.
func (s *Store) UserRole() string {
	var role string
	if err := s.db.QueryRow(`SELECT role FROM user_prefs WHERE id = 1`).Scan(&role); err != nil {
		return DefaultRole
	}
	return role
}

// UserClass returns the stored class name, or "" when unset.
func (s *Store) UserClass() string {
	var class string
	if err := s.db.QueryRow(`SELECT class FROM user_prefs WHERE id = 1`).Scan(&class); err != nil {
		return DefaultClass
	}
	return class
}
