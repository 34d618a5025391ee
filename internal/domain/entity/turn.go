package entity

import "time"

// Turn is one completed request/response cycle: what the user said and what
// the assistant answered. An ordered slice of turns is the conversation
// history the caller supplies on every invocation; the advisor core treats it
// as read-only input.
type Turn struct {
	ID        string    `json:"id"`
	ChatID    int64     `json:"chat_id"`
	User      string    `json:"user"`
	Assistant string    `json:"assistant"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatContext groups the stored turns of one chat.
type ChatContext struct {
	ChatID   int64
	Turns    []Turn
	LastUsed time.Time
}
