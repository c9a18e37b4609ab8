package models

import "time"

type User struct {
	ID       string    `firestore:"-" json:"id"`
	Name     string    `firestore:"name" json:"name"`
	Email    string    `firestore:"email" json:"email"`
	Password string    `firestore:"password" json:"-"` // Exclude password hash from JSON responses
	Avatar   string    `firestore:"avatar" json:"avatar"`
	Date     time.Time `firestore:"date" json:"date"`
}
