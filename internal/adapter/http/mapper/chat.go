package mapper

import (
	"time"

	"workstream/internal/adapter/http/dto"
	"workstream/internal/core/domain"
)

func ToMessageItems(messages []domain.Message) []dto.MessageItem {
	items := make([]dto.MessageItem, 0, len(messages))
	for _, message := range messages {
		items = append(items, ToMessageItem(message))
	}
	return items
}

func ToMessageItem(message domain.Message) dto.MessageItem {
	item := dto.MessageItem{
		ID:     message.ID,
		TeamID: message.TeamID,
		Sender: message.Sender,
		Body:   message.Body,
		SentAt: message.SentAt.Format(time.RFC3339),
	}
	if !message.IsGroup() {
		value := message.Recipient
		item.Recipient = &value
	}
	return item
}

func ToChatList(chats []domain.Chat) dto.ChatList {
	items := make([]dto.ChatItem, 0, len(chats))
	for _, chat := range chats {
		item := dto.ChatItem{
			Group:  chat.IsGroup(),
			Unseen: chat.Unseen,
		}
		if !chat.IsGroup() {
			peer := chat.Peer
			item.Peer = &peer
		}
		if chat.LastMessage != nil {
			last := ToMessageItem(*chat.LastMessage)
			item.LastMessage = &last
		}
		items = append(items, item)
	}

	return dto.ChatList{Chats: items, UnseenTotal: domain.UnseenTotal(chats)}
}
