package model

import "time"

type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	Ticket    int64     `json:"ticket"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteWithUser joins a note with its owner's username for list responses.
type NoteWithUser struct {
	Note
	Username string `json:"username"`
}
