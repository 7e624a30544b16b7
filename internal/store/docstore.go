package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"sync"
)

// Logical document keys. Each key holds one whole JSON document; there are no
// field-level writes anywhere in the system.
const (
	KeyStudents          = "students"
	KeyFaculty           = "faculty"
	KeyEvents            = "events"
	KeyAttendanceHistory = "attendanceHistory"
	KeyTimetable         = "timetable"
	KeyLiveAttendance    = "liveAttendanceState"
)

// Store is whole-document key-value storage. Get leaves out untouched on a
// missing key, a storage fault, or a parse failure; Set overwrites the entire
// document. Neither surfaces errors to the caller — faults are logged and the
// system degrades to empty defaults. There is no compare-and-swap: concurrent
// writers to the same key silently overwrite one another.
type Store interface {
	Get(ctx context.Context, key string, out any)
	Set(ctx context.Context, key string, val any)
}

// Postgres stores documents in a single jsonb table.
type Postgres struct {
	db *sql.DB
}

// NewPostgres creates a document store over an open connection.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Get reads one document into out.
func (p *Postgres) Get(ctx context.Context, key string, out any) {
	var raw []byte
	err := p.db.QueryRowContext(ctx, `SELECT doc FROM documents WHERE key = $1`, key).Scan(&raw)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("store: read %q failed: %v", key, err)
		}
		return
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("store: parse %q failed: %v", key, err)
	}
}

// Set overwrites one document.
func (p *Postgres) Set(ctx context.Context, key string, val any) {
	raw, err := json.Marshal(val)
	if err != nil {
		log.Printf("store: marshal %q failed: %v", key, err)
		return
	}
	_, err = p.db.ExecContext(ctx, `
		INSERT INTO documents (key, doc)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()
	`, key, raw)
	if err != nil {
		log.Printf("store: write %q failed: %v", key, err)
	}
}

// Memory is a map-backed document store for dev/testing and as the degraded
// mode when Postgres is unreachable at boot.
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

// Get reads one document into out.
func (m *Memory) Get(ctx context.Context, key string, out any) {
	m.mu.RLock()
	raw, ok := m.docs[key]
	m.mu.RUnlock()
	if !ok {
		return
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("store: parse %q failed: %v", key, err)
	}
}

// Set overwrites one document.
func (m *Memory) Set(ctx context.Context, key string, val any) {
	raw, err := json.Marshal(val)
	if err != nil {
		log.Printf("store: marshal %q failed: %v", key, err)
		return
	}
	m.mu.Lock()
	m.docs[key] = raw
	m.mu.Unlock()
}
