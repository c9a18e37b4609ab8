package models

import "time"

// Like records a single user's like on a post. The likes list holds at
// most one entry per user id.
type Like struct {
	User string `firestore:"user" json:"user"`
}

// Post carries a snapshot of the author's name and avatar taken at
// creation time; it is not kept in sync with later user edits.
type Post struct {
	ID     string    `firestore:"-" json:"id"`
	Text   string    `firestore:"text" json:"text"`
	Name   string    `firestore:"name" json:"name"`
	Avatar string    `firestore:"avatar" json:"avatar"`
	User   string    `firestore:"user" json:"user"`
	Likes  []Like    `firestore:"likes" json:"likes"`
	Date   time.Time `firestore:"date" json:"date"`
}
