package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/elivanov/inkwell/internal/client/models"
	"github.com/elivanov/inkwell/internal/client/session/migrations"
)

// Storage keys, mirroring the two durable entries the web client keeps.
const (
	keyToken = "authToken"
	keyUser  = "authUser"
)

// CredentialStore persists the bearer token and the serialized user as two
// key/value rows in a local sqlite database. Written on successful
// login/registration, read once at startup, cleared on logout.
type CredentialStore struct {
	db *sql.DB
}

// Open creates (or opens) the credentials database at dsn and applies the
// embedded schema migrations.
func Open(ctx context.Context, dsn string) (*CredentialStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open credentials db: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate credentials db: %w", err)
	}
	return &CredentialStore{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func (c *CredentialStore) set(ctx context.Context, key string, value []byte) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set credentials[%s]: %w", key, err)
	}
	return nil
}

func (c *CredentialStore) get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := c.db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get credentials[%s]: %w", key, err)
	}
	return value, nil
}

// Save persists the user/token pair. Both must be present; persisting one
// without the other would violate the session invariant.
func (c *CredentialStore) Save(ctx context.Context, user *models.User, token string) error {
	if user == nil || token == "" {
		return fmt.Errorf("refusing to persist incomplete credentials")
	}

	encoded, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := c.set(ctx, keyToken, []byte(token)); err != nil {
		return err
	}
	return c.set(ctx, keyUser, encoded)
}

// Load returns the persisted pair, or (nil, "", nil) when either entry is
// absent; a half-written pair is treated as absent rather than restored.
func (c *CredentialStore) Load(ctx context.Context) (*models.User, string, error) {
	token, err := c.get(ctx, keyToken)
	if err != nil {
		return nil, "", err
	}
	rawUser, err := c.get(ctx, keyUser)
	if err != nil {
		return nil, "", err
	}
	if len(token) == 0 || len(rawUser) == 0 {
		return nil, "", nil
	}

	var user models.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		return nil, "", fmt.Errorf("decode user: %w", err)
	}
	return &user, string(token), nil
}

// Clear wipes both entries.
func (c *CredentialStore) Clear(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM credentials`)
	if err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

func (c *CredentialStore) Close() error {
	return c.db.Close()
}
