package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/leomarzeuski/portfolio/internal/contact/domain"
)

const schema = `
	CREATE TABLE IF NOT EXISTS contact_messages (
		id         UUID PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL,
		message    TEXT NOT NULL,
		locale     TEXT,
		remote_ip  TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// MessageRepository archives relayed contact messages in PostgreSQL
type MessageRepository struct {
	db *sql.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// EnsureSchema creates the archive table when missing.
func (r *MessageRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create contact_messages: %w", err)
	}
	return nil
}

// Create inserts a submission
func (r *MessageRepository) Create(ctx context.Context, s domain.Submission) error {
	query := `
		INSERT INTO contact_messages (id, name, email, message, locale, remote_ip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	locale := sql.NullString{String: s.Locale, Valid: s.Locale != ""}
	remoteIP := sql.NullString{String: s.RemoteIP, Valid: s.RemoteIP != ""}

	if _, err := r.db.ExecContext(ctx, query,
		s.ID, s.Name, s.Email, s.Message, locale, remoteIP, s.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert contact message: %w", err)
	}
	return nil
}

// CountSince returns how many messages from email were archived at or after since.
func (r *MessageRepository) CountSince(ctx context.Context, email string, since time.Time) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM contact_messages WHERE email = $1 AND created_at >= $2`,
		email, since,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count contact messages: %w", err)
	}
	return n, nil
}
