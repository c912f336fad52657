package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/krishisahayak/pkg/models"
)

// MessageStore is the append-only conversation log. Messages are never
// updated or deleted; listing returns the most recent first.
type MessageStore interface {
	Append(ctx context.Context, msg models.Message) error
	List(ctx context.Context, farmerID string, limit int) ([]models.Message, error)
}

// DefaultMessageLimit caps a history listing when the caller passes no limit.
const DefaultMessageLimit = 50

// PostgresMessageStore stores conversation messages in the messages table.
type PostgresMessageStore struct {
	db *sql.DB
}

func NewPostgresMessageStore(db *sql.DB) *PostgresMessageStore {
	return &PostgresMessageStore{db: db}
}

func (s *PostgresMessageStore) Append(ctx context.Context, msg models.Message) error {
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}

	const query = `
		INSERT INTO messages (id, farmer_id, direction, content, language, audio_locator, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, query,
		msg.ID, msg.FarmerID, msg.Direction, msg.Content, msg.Language,
		msg.AudioLocator, msg.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

func (s *PostgresMessageStore) List(ctx context.Context, farmerID string, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = DefaultMessageLimit
	}

	const query = `
		SELECT id, farmer_id, direction, content, language, audio_locator, created_at
		FROM messages
		WHERE farmer_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, farmerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.FarmerID, &m.Direction, &m.Content,
			&m.Language, &m.AudioLocator, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read messages: %w", err)
	}
	return messages, nil
}
