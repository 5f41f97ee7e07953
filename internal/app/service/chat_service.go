package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"workstream/internal/core/domain"
	"workstream/internal/core/ports"
)

type ChatService struct {
	chatRepository ports.ChatRepository
	teamRepository ports.TeamRepository
	now            func() time.Time
	newID          func() string
}

func NewChatService(chatRepository ports.ChatRepository, teamRepository ports.TeamRepository) *ChatService {
	return &ChatService{
		chatRepository: chatRepository,
		teamRepository: teamRepository,
		now:            func() time.Time { return time.Now().UTC() },
		newID:          uuid.NewString,
	}
}

// ListChats returns the group chat followed by the direct chats of
// requester, most recently active first.
func (s *ChatService) ListChats(ctx context.Context, requester, teamID string) ([]domain.Chat, error) {
	if _, err := memberTeam(ctx, s.teamRepository, requester, teamID); err != nil {
		return nil, err
	}

	peers, err := s.chatRepository.ListDirectPeers(ctx, teamID, requester)
	if err != nil {
		return nil, fmt.Errorf("list chat peers: %w", err)
	}

	chats := make([]domain.Chat, 0, len(peers)+1)
	for _, peer := range append([]string{domain.GroupChat}, peers...) {
		chat, err := s.chat(ctx, requester, teamID, peer)
		if err != nil {
			return nil, err
		}
		chats = append(chats, chat)
	}
	return chats, nil
}

func (s *ChatService) chat(ctx context.Context, requester, teamID, peer string) (domain.Chat, error) {
	last, err := s.chatRepository.LastMessage(ctx, teamID, requester, peer)
	if err != nil {
		return domain.Chat{}, fmt.Errorf("last chat message: %w", err)
	}

	unseen, err := s.chatRepository.CountUnseen(ctx, teamID, requester, peer)
	if err != nil {
		return domain.Chat{}, fmt.Errorf("count unseen messages: %w", err)
	}

	return domain.Chat{Peer: peer, LastMessage: last, Unseen: unseen}, nil
}

func (s *ChatService) ListMessages(ctx context.Context, requester, teamID, peer string) ([]domain.Message, error) {
	if err := s.checkConversation(ctx, requester, teamID, peer); err != nil {
		return nil, err
	}
	return s.chatRepository.ListMessages(ctx, teamID, requester, peer)
}

// SendMessage posts body to the group chat, or to peer who must be a member
// of the team.
func (s *ChatService) SendMessage(ctx context.Context, requester, teamID, peer, body string) (domain.Message, error) {
	team, err := memberTeam(ctx, s.teamRepository, requester, teamID)
	if err != nil {
		return domain.Message{}, err
	}
	if peer != domain.GroupChat && (peer == requester || !team.HasMember(peer)) {
		return domain.Message{}, domain.ErrInvalidRecipient
	}

	body = strings.TrimSpace(body)
	if body == "" || utf8.RuneCountInString(body) > domain.MaxMessageLength {
		return domain.Message{}, domain.ErrInvalidMessage
	}

	message := domain.Message{
		ID:        s.newID(),
		TeamID:    teamID,
		Sender:    requester,
		Recipient: peer,
		Body:      body,
		SentAt:    s.now(),
	}
	if err := s.chatRepository.CreateMessage(ctx, message); err != nil {
		return domain.Message{}, fmt.Errorf("create chat message: %w", err)
	}

	zap.L().Debug("chat message sent",
		zap.String("team_id", teamID),
		zap.String("sender", requester),
		zap.Bool("group", message.IsGroup()),
	)
	return message, nil
}

func (s *ChatService) MarkSeen(ctx context.Context, requester, teamID, peer string) error {
	if err := s.checkConversation(ctx, requester, teamID, peer); err != nil {
		return err
	}
	if err := s.chatRepository.MarkSeen(ctx, teamID, requester, peer); err != nil {
		return fmt.Errorf("mark chat seen: %w", err)
	}
	return nil
}

// checkConversation allows reading direct chats with former members, so
// only a chat with oneself is rejected.
func (s *ChatService) checkConversation(ctx context.Context, requester, teamID, peer string) error {
	if _, err := memberTeam(ctx, s.teamRepository, requester, teamID); err != nil {
		return err
	}
	if peer == requester {
		return domain.ErrInvalidRecipient
	}
	return nil
}

var _ ports.ChatService = (*ChatService)(nil)
