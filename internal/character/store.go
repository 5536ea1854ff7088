package character

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"charform/internal/form"
)

const createTable = `CREATE TABLE IF NOT EXISTS characters (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	gender TEXT NOT NULL,
	species TEXT NOT NULL,
	status TEXT NOT NULL,
	type TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
)`

// Store persists characters in a SQLite database
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// OpenStore opens (and if needed creates) the database at path
func OpenStore(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.ExecContext(ctx, createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create characters table: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Create inserts the record as a new character
func (s *Store) Create(ctx context.Context, rec form.Record) error {
	_, err := s.insert(ctx, FromRecord(rec))
	return err
}

func (s *Store) insert(ctx context.Context, c Character) (string, error) {
	id, err := newID()
	if err != nil {
		return "", err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO characters (id, name, gender, species, status, type, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, c.Name, c.Gender, c.Species, c.Status, c.Type, s.now().UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert character: %w", err)
	}
	return id, nil
}

// List returns stored characters, newest first
func (s *Store) List(ctx context.Context) ([]Stored, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, gender, species, status, type, created_at FROM characters ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	defer rows.Close()

	var out []Stored
	for rows.Next() {
		var (
			st      Stored
			created int64
		)
		c := &st.Character
		if err := rows.Scan(&st.ID, &c.Name, &c.Gender, &c.Species, &c.Status, &c.Type, &created); err != nil {
			return nil, fmt.Errorf("failed to scan character: %w", err)
		}
		st.CreatedAt = time.Unix(0, created)
		out = append(out, st)
	}
	return out, rows.Err()
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// MemoryStore keeps characters in process memory.
type MemoryStore struct {
	mu         sync.RWMutex
	characters []Stored
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Create(ctx context.Context, rec form.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id, err := newID()
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.characters = append(m.characters, Stored{
		ID:        id,
		Character: FromRecord(rec),
		CreatedAt: time.Now(),
	})
	return nil
}

func (m *MemoryStore) List(ctx context.Context) ([]Stored, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Stored, 0, len(m.characters))
	for i := len(m.characters) - 1; i >= 0; i-- {
		out = append(out, m.characters[i])
	}
	return out, nil
}

func (m *MemoryStore) Close() error {
	return nil
}

// newID creates a time-ordered UUIDv7 identifier
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return id.String(), nil
}
