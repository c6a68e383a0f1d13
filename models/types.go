package models

import "time"

// Live-update message type constants
const (
	MessageJoinPoll   = "joinPoll"
	MessagePollUpdate = "pollUpdate"
)

// Request types

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreatePollRequest struct {
	Question string              `json:"question"`
	Options  []CreateOptionInput `json:"options"`
}

type CreateOptionInput struct {
	Text string `json:"text"`
}

type VoteRequest struct {
	OptionIndex int `json:"optionIndex"`
}

// Response types

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Domain types

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	CreatedAt time.Time `json:"createdAt"`
}

type Option struct {
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

type Poll struct {
	ID              string    `json:"id"`
	Question        string    `json:"question"`
	Options         []Option  `json:"options"`
	Creator         string    `json:"creator"`
	VotedIdentities []string  `json:"votedIdentities"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Live-update channel messages

// ClientMessage is an inbound websocket frame.
type ClientMessage struct {
	Type   string `json:"type"`
	PollID string `json:"pollId,omitempty"`
}

// ServerMessage is an outbound websocket frame.
type ServerMessage struct {
	Type string `json:"type"`
	Poll *Poll  `json:"poll,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
