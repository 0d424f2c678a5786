package model

import "time"

// Message senders.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// ChatMessage is one entry of a chatbot conversation.
type ChatMessage struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatRequest represents the request payload for sending a chat message.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatReply is the bot answer and any recommended products.
type ChatReply struct {
	Message         ChatMessage `json:"message"`
	Recommendations []Product   `json:"recommendations"`
}
