package domain

// Turn is a single entry in a session's conversation history.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
