package ports

import (
	"context"

	"workstream/internal/core/domain"
)

// ChatRepository stores team chats. A peer equal to domain.GroupChat
// addresses the group chat, any other peer the direct chat between email
// and peer.
type ChatRepository interface {
	CreateMessage(ctx context.Context, message domain.Message) error
	ListMessages(ctx context.Context, teamID, email, peer string) ([]domain.Message, error)
	// LastMessage returns nil when the conversation is empty.
	LastMessage(ctx context.Context, teamID, email, peer string) (*domain.Message, error)
	// ListDirectPeers returns the peers email exchanged direct messages with,
	// most recent conversation first.
	ListDirectPeers(ctx context.Context, teamID, email string) ([]string, error)
	CountUnseen(ctx context.Context, teamID, email, peer string) (int, error)
	MarkSeen(ctx context.Context, teamID, email, peer string) error
}

type ChatService interface {
	ListChats(ctx context.Context, requester, teamID string) ([]domain.Chat, error)
	ListMessages(ctx context.Context, requester, teamID, peer string) ([]domain.Message, error)
	SendMessage(ctx context.Context, requester, teamID, peer, body string) (domain.Message, error)
	MarkSeen(ctx context.Context, requester, teamID, peer string) error
}
