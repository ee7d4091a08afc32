package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/storage"
	_ "github.com/tursodatabase/go-libsql"
	_ "modernc.org/sqlite"
)

// DBFileName is the database file created inside the data directory.
const DBFileName = "mood.db"

const schema = `
	CREATE TABLE IF NOT EXISTS moods (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT,
		mood      INTEGER,
		photoUri  TEXT,
		latitude  REAL,
		longitude REAL
	);
`

// Store implements storage.Storage on a single SQLite database file.
type Store struct {
	db *sql.DB
	// mu serializes inserts so concurrent saves never interleave.
	mu sync.Mutex
}

// New opens <dataDir>/mood.db with the libSQL driver.
func New(dataDir string) (*Store, error) {
	dbPath, err := prepare(dataDir)
	if err != nil {
		return nil, err
	}
	return open("libsql", "file:"+dbPath)
}

// NewPure opens <dataDir>/mood.db with the CGO-free modernc driver.
func NewPure(dataDir string) (*Store, error) {
	dbPath, err := prepare(dataDir)
	if err != nil {
		return nil, err
	}
	return open("sqlite", "file:"+filepath.ToSlash(dbPath))
}

// Open selects the driver for a configured backend name.
func Open(backend, dataDir string) (*Store, error) {
	switch backend {
	case storage.BackendSQLite:
		return New(dataDir)
	case storage.BackendSQLitePure:
		return NewPure(dataDir)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}

func prepare(dataDir string) (string, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", fmt.Errorf("%w: creating data directory: %v", storage.ErrStorage, err)
	}
	abs, err := filepath.Abs(filepath.Join(dataDir, DBFileName))
	if err != nil {
		return "", fmt.Errorf("%w: resolving database path: %v", storage.ErrStorage, err)
	}
	return abs, nil
}

func open(driver, dsn string) (*Store, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", storage.ErrStorage, err)
	}

	// Enable WAL mode
	var mode string
	if err := db.QueryRow("PRAGMA journal_mode=WAL").Scan(&mode); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: enabling WAL mode: %v", storage.ErrStorage, err)
	}

	return &Store{db: db}, nil
}

// EnsureSchema creates the moods table if it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: creating schema: %v", storage.ErrStorage, err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert persists a new mood entry in its own transaction.
func (s *Store) Insert(ctx context.Context, e mood.Entry) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", storage.ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: beginning transaction: %v", storage.ErrStorage, err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO moods (timestamp, mood, photoUri, latitude, longitude)
		 VALUES (?, ?, ?, ?, ?) RETURNING id`,
		e.Timestamp,
		int(e.Mood),
		e.PhotoURI,
		nullFloat(e.Latitude),
		nullFloat(e.Longitude),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%w: inserting entry: %v", storage.ErrStorage, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: committing: %v", storage.ErrStorage, err)
	}
	return id, nil
}

// ListAll returns all entries ordered by descending ID.
func (s *Store) ListAll(ctx context.Context) ([]mood.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, timestamp, mood, photoUri, latitude, longitude FROM moods ORDER BY id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("%w: listing entries: %v", storage.ErrStorage, err)
	}
	defer rows.Close()

	entries := []mood.Entry{}
	for rows.Next() {
		var (
			e         mood.Entry
			timestamp sql.NullString
			score     sql.NullInt64
			photo     sql.NullString
			lat, lon  sql.NullFloat64
		)
		if err := rows.Scan(&e.ID, &timestamp, &score, &photo, &lat, &lon); err != nil {
			return nil, fmt.Errorf("%w: scanning row: %v", storage.ErrStorage, err)
		}
		e.Timestamp = timestamp.String
		e.Mood = mood.Score(score.Int64)
		e.PhotoURI = photo.String
		// Rows with only one coordinate can only come from outside writers; drop both.
		if lat.Valid && lon.Valid {
			e.Latitude = &lat.Float64
			e.Longitude = &lon.Float64
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading rows: %v", storage.ErrStorage, err)
	}

	return entries, nil
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

var _ storage.Storage = (*Store)(nil)
