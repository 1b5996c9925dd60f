package board

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure Go driver, no cgo

	"github.com/GreenSheep01201/Claw-Kanban/internal/domain"
	appErrors "github.com/GreenSheep01201/Claw-Kanban/internal/errors"
)

const cardsSchema = `
CREATE TABLE IF NOT EXISTS cards (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL,
	role        TEXT,
	task_type   TEXT,
	created_at  INTEGER NOT NULL,
	updated_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cards_created_at ON cards (created_at);
`

// SQLiteClient reads and writes cards in a local SQLite file, for running
// without the board server.
type SQLiteClient struct {
	path  string
	db    *sql.DB
	now   func() time.Time
	newID func() string
}

// SQLiteOption configures a SQLiteClient.
type SQLiteOption func(*SQLiteClient)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) SQLiteOption {
	return func(c *SQLiteClient) { c.now = now }
}

// WithIDs overrides card id generation.
func WithIDs(gen func() string) SQLiteOption {
	return func(c *SQLiteClient) { c.newID = gen }
}

// NewSQLiteClient opens (creating if needed) the database at path and makes
// sure the cards table exists.
func NewSQLiteClient(ctx context.Context, path string, opts ...SQLiteOption) (*SQLiteClient, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, appErrors.New(appErrors.CodeConfigurationError, "sqlite board requires a database path", nil)
	}

	db, err := sql.Open("sqlite", buildSQLiteDSN(trimmed))
	if err != nil {
		return nil, storageFailed("open cards db", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, storageFailed("open cards db", err)
	}
	if _, err := db.ExecContext(ctx, cardsSchema); err != nil {
		_ = db.Close()
		return nil, storageFailed("create cards schema", err)
	}

	c := &SQLiteClient{
		path:  trimmed,
		db:    db,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func buildSQLiteDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("mode", "rwc")
	q.Add("_pragma", "busy_timeout(3000)")
	q.Add("_pragma", "journal_mode(WAL)")
	u.RawQuery = q.Encode()
	return u.String()
}

// Path returns the database file backing the client.
func (c *SQLiteClient) Path() string {
	return c.path
}

// Close releases the database handle.
func (c *SQLiteClient) Close() error {
	return c.db.Close()
}

// CreateCard inserts a new card with a fresh id.
func (c *SQLiteClient) CreateCard(ctx context.Context, req domain.CreateCardRequest) error {
	if err := Validate(req); err != nil {
		return err
	}
	stamp := c.now().UTC().UnixMilli()
	id := c.newID()
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO cards (id, title, description, status, role, task_type, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, req.Title, req.Description, string(req.Status),
		nullable(string(req.Role)), nullable(string(req.TaskType)), stamp, stamp)
	if err != nil {
		return storageFailed("insert card", err)
	}
	httpLog.Logf("sqlite insert card id=%s into %s", id, c.path)
	return nil
}

// ListCards returns every card, newest first.
func (c *SQLiteClient) ListCards(ctx context.Context) ([]domain.Card, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, title, description, status, role, task_type, created_at, updated_at
		FROM cards
		ORDER BY created_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, storageFailed("query cards", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	cards := []domain.Card{}
	for rows.Next() {
		var (
			card             domain.Card
			status           string
			role, taskType   sql.NullString
			created, updated int64
		)
		if err := rows.Scan(&card.ID, &card.Title, &card.Description, &status, &role, &taskType, &created, &updated); err != nil {
			return nil, storageFailed("scan card", err)
		}
		card.Status = domain.Status(status)
		card.Role = domain.Role(role.String)
		card.TaskType = domain.TaskType(taskType.String)
		card.CreatedAt = time.UnixMilli(created).UTC()
		card.UpdatedAt = time.UnixMilli(updated).UTC()
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, storageFailed("iterate cards", err)
	}
	return cards, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func (c *SQLiteClient) String() string {
	return fmt.Sprintf("sqlite:%s", c.path)
}
