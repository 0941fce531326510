// Package storage persists the task collection to a local SQLite file used
// as a key-value store: the whole collection is one JSON array under a
// fixed key. Reads and writes are best effort; failures degrade to an
// empty collection or a dropped write, logged but never surfaced.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/JustSimplyTom/HACKATHON/internal/task"
)

const tasksKey = "planner-tasks"

type Store struct {
	db  *sql.DB
	log *zap.Logger
}

func Open(dbPath string, log *zap.Logger) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, err
	}
	dsn := sqliteDSN(dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db, log: log}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`
	_, err := s.db.Exec(ddl)
	return err
}

// Load reads the task collection. A missing key or malformed payload is
// swallowed: the caller always gets a usable (possibly empty) slice.
func (s *Store) Load() []task.Task {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?;`, tasksKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []task.Task{}
	}
	if err != nil {
		s.log.Warn("load failed, starting empty", zap.Error(err))
		return []task.Task{}
	}

	var tasks []task.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		s.log.Warn("stored tasks malformed, starting empty", zap.Error(err))
		return []task.Task{}
	}
	if tasks == nil {
		tasks = []task.Task{}
	}
	return tasks
}

// Save writes the whole collection under the fixed key. Fire and forget: a
// failed write is logged and dropped, never retried.
func (s *Store) Save(tasks []task.Task) {
	data, err := json.Marshal(tasks)
	if err != nil {
		s.log.Error("marshal tasks failed", zap.Error(err))
		return
	}
	_, err = s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value;`,
		tasksKey, string(data),
	)
	if err != nil {
		s.log.Error("save tasks failed", zap.Error(err), zap.Int("count", len(tasks)))
	}
}

func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
