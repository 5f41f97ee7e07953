package domain

import "time"

// MaxMessageLength bounds a chat message body, in characters.
const MaxMessageLength = 2000

// GroupChat is the peer of the conversation shared by the whole team.
const GroupChat = ""

type Message struct {
	ID     string
	TeamID string
	Sender string
	// Recipient is GroupChat for messages posted to the team.
	Recipient string
	Body      string
	SentAt    time.Time
}

func (m Message) IsGroup() bool {
	return m.Recipient == GroupChat
}

// Chat is a conversation as seen by one member: the team group chat or a
// direct chat with Peer.
type Chat struct {
	Peer        string
	LastMessage *Message
	// Unseen counts messages from others the member has not marked as seen.
	Unseen int
}

func (c Chat) IsGroup() bool {
	return c.Peer == GroupChat
}

// UnseenTotal is the badge count over all chats of a member.
func UnseenTotal(chats []Chat) int {
	total := 0
	for _, chat := range chats {
		total += chat.Unseen
	}
	return total
}
