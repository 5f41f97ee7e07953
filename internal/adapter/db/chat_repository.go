package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"workstream/internal/core/domain"
	"workstream/internal/core/ports"
)

const messageColumns = "id, team_id, sender, recipient, body, sent_at"

const nextMessageSeqQuery = `SELECT COALESCE(MAX(seq), 0) + 1 FROM chat_messages WHERE team_id = ?`

const insertMessageQuery = `
INSERT INTO chat_messages (team_id, seq, id, sender, recipient, body, sent_at)
VALUES (?, ?, ?, ?, ?, ?, ?);
`

const listDirectPeersQuery = `
SELECT peer, MAX(seq) AS last_seq
FROM (
  SELECT recipient AS peer, seq FROM chat_messages WHERE team_id = ? AND sender = ? AND recipient <> ''
  UNION ALL
  SELECT sender AS peer, seq FROM chat_messages WHERE team_id = ? AND recipient = ?
) AS conversations
GROUP BY peer
ORDER BY last_seq DESC;
`

const lastSeenQuery = `
SELECT COALESCE(MAX(last_seen_seq), 0)
FROM chat_reads
WHERE team_id = ? AND email = ? AND peer = ?
`

type ChatRepository struct {
	db *sqlx.DB
}

type messageRow struct {
	ID        string    `db:"id"`
	TeamID    string    `db:"team_id"`
	Sender    string    `db:"sender"`
	Recipient string    `db:"recipient"`
	Body      string    `db:"body"`
	SentAt    time.Time `db:"sent_at"`
}

type peerRow struct {
	Peer    string `db:"peer"`
	LastSeq int64  `db:"last_seq"`
}

var _ ports.ChatRepository = (*ChatRepository)(nil)

func NewChatRepository(db *sqlx.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// conversation returns the WHERE clause selecting the messages between email
// and peer, or the group chat when peer is domain.GroupChat.
func conversation(teamID, email, peer string) (string, []interface{}) {
	if peer == domain.GroupChat {
		return "team_id = ? AND recipient = ''", []interface{}{teamID}
	}
	return "team_id = ? AND ((sender = ? AND recipient = ?) OR (sender = ? AND recipient = ?))",
		[]interface{}{teamID, email, peer, peer, email}
}

func (r *ChatRepository) CreateMessage(ctx context.Context, message domain.Message) error {
	return withRetryTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var seq int64
		if err := tx.GetContext(ctx, &seq, nextMessageSeqQuery, message.TeamID); err != nil {
			return fmt.Errorf("next message seq: %w", err)
		}

		if _, err := tx.ExecContext(
			ctx,
			insertMessageQuery,
			message.TeamID,
			seq,
			message.ID,
			message.Sender,
			message.Recipient,
			message.Body,
			message.SentAt,
		); err != nil {
			return fmt.Errorf("insert chat message: %w", err)
		}
		return nil
	})
}

func (r *ChatRepository) ListMessages(ctx context.Context, teamID, email, peer string) ([]domain.Message, error) {
	where, args := conversation(teamID, email, peer)

	var rows []messageRow
	if err := r.db.SelectContext(
		ctx, &rows, "SELECT "+messageColumns+" FROM chat_messages WHERE "+where+" ORDER BY seq", args...,
	); err != nil {
		return nil, err
	}

	messages := make([]domain.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, mapMessageRowToDomainMessage(row))
	}
	return messages, nil
}

func (r *ChatRepository) LastMessage(ctx context.Context, teamID, email, peer string) (*domain.Message, error) {
	where, args := conversation(teamID, email, peer)

	var row messageRow
	if err := r.db.GetContext(
		ctx, &row, "SELECT "+messageColumns+" FROM chat_messages WHERE "+where+" ORDER BY seq DESC LIMIT 1", args...,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	message := mapMessageRowToDomainMessage(row)
	return &message, nil
}

func (r *ChatRepository) ListDirectPeers(ctx context.Context, teamID, email string) ([]string, error) {
	var rows []peerRow
	if err := r.db.SelectContext(ctx, &rows, listDirectPeersQuery, teamID, email, teamID, email); err != nil {
		return nil, err
	}

	peers := make([]string, 0, len(rows))
	for _, row := range rows {
		peers = append(peers, row.Peer)
	}
	return peers, nil
}

func (r *ChatRepository) CountUnseen(ctx context.Context, teamID, email, peer string) (int, error) {
	where, args := conversation(teamID, email, peer)

	var lastSeen int64
	if err := r.db.GetContext(ctx, &lastSeen, lastSeenQuery, teamID, email, peer); err != nil {
		return 0, fmt.Errorf("last seen message: %w", err)
	}

	var count int
	if err := r.db.GetContext(
		ctx,
		&count,
		"SELECT COUNT(*) FROM chat_messages WHERE "+where+" AND sender <> ? AND seq > ?",
		append(args, email, lastSeen)...,
	); err != nil {
		return 0, fmt.Errorf("count unseen messages: %w", err)
	}
	return count, nil
}

// MarkSeen records the latest message of the conversation as seen by email.
func (r *ChatRepository) MarkSeen(ctx context.Context, teamID, email, peer string) error {
	where, args := conversation(teamID, email, peer)

	return withRetryTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var latest int64
		if err := tx.GetContext(
			ctx, &latest, "SELECT COALESCE(MAX(seq), 0) FROM chat_messages WHERE "+where, args...,
		); err != nil {
			return fmt.Errorf("latest message: %w", err)
		}

		var count int
		if err := tx.GetContext(
			ctx,
			&count,
			"SELECT COUNT(*) FROM chat_reads WHERE team_id = ? AND email = ? AND peer = ?",
			teamID, email, peer,
		); err != nil {
			return fmt.Errorf("check chat read: %w", err)
		}

		if count > 0 {
			if _, err := tx.ExecContext(
				ctx,
				"UPDATE chat_reads SET last_seen_seq = ? WHERE team_id = ? AND email = ? AND peer = ?",
				latest, teamID, email, peer,
			); err != nil {
				return fmt.Errorf("update chat read: %w", err)
			}
			return nil
		}

		if _, err := tx.ExecContext(
			ctx,
			"INSERT INTO chat_reads (team_id, email, peer, last_seen_seq) VALUES (?, ?, ?, ?)",
			teamID, email, peer, latest,
		); err != nil {
			return fmt.Errorf("insert chat read: %w", err)
		}
		return nil
	})
}

func mapMessageRowToDomainMessage(row messageRow) domain.Message {
	return domain.Message{
		ID:        row.ID,
		TeamID:    row.TeamID,
		Sender:    row.Sender,
		Recipient: row.Recipient,
		Body:      row.Body,
		SentAt:    row.SentAt,
	}
}
