package dto

type MessageItem struct {
	ID        string  `json:"id"`
	TeamID    string  `json:"team_id"`
	Sender    string  `json:"sender"`
	Recipient *string `json:"recipient"`
	Body      string  `json:"body"`
	SentAt    string  `json:"sent_at"`
}

type ChatItem struct {
	// Peer is null for the team group chat.
	Peer        *string      `json:"peer"`
	Group       bool         `json:"group"`
	Unseen      int          `json:"unseen"`
	LastMessage *MessageItem `json:"last_message"`
}

type ChatList struct {
	Chats       []ChatItem `json:"chats"`
	UnseenTotal int        `json:"unseen_total"`
}

type SendMessageRequest struct {
	Body string `json:"body" binding:"required,max=8000"`
}
