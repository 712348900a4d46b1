package ws

import (
	"encoding/json"
)

// MessageType represents the kinds of messages pushed to board watchers
type MessageType string

const (
	MessageTypeBoardState MessageType = "boardState"
	MessageTypeError      MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}
