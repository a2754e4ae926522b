package domain

import "time"

// Comment is authored by a todo's owner and deleted only by admins.
type Comment struct {
	ID        string    `json:"id"`
	TodoID    string    `json:"todo_id"`
	UserID    string    `json:"user_id"`
	Contents  string    `json:"contents"`
	User      *User     `json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
