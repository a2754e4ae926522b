package domain

import "time"

// Todo is a task. OwnerID is set at creation and never reassigned;
// Weather is an external snapshot taken at creation time.
// Owner is populated only by eager-joined repository reads.
type Todo struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Contents   string    `json:"contents"`
	Weather    string    `json:"weather"`
	OwnerID    string    `json:"owner_id"`
	Owner      *User     `json:"owner,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// Manager attaches one collaborator to one todo. The collaborator is
// never the todo's owner; ownership and collaboration are disjoint.
type Manager struct {
	ID        string    `json:"id"`
	TodoID    string    `json:"todo_id"`
	UserID    string    `json:"user_id"`
	User      *User     `json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
