package models

// ChatTurn is one user message and the assistant reply to it.
type ChatTurn struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}
