package models

import "time"

type Social struct {
	Youtube   string `firestore:"youtube,omitempty" json:"youtube,omitempty"`
	Twitter   string `firestore:"twitter,omitempty" json:"twitter,omitempty"`
	Facebook  string `firestore:"facebook,omitempty" json:"facebook,omitempty"`
	Linkedin  string `firestore:"linkedin,omitempty" json:"linkedin,omitempty"`
	Instagram string `firestore:"instagram,omitempty" json:"instagram,omitempty"`
}

type Experience struct {
	ID          string `firestore:"id" json:"id"`
	Title       string `firestore:"title" json:"title"`
	Company     string `firestore:"company" json:"company"`
	Location    string `firestore:"location,omitempty" json:"location,omitempty"`
	From        string `firestore:"from" json:"from"`
	To          string `firestore:"to,omitempty" json:"to,omitempty"`
	Current     bool   `firestore:"current" json:"current"`
	Description string `firestore:"description,omitempty" json:"description,omitempty"`
}

type Education struct {
	ID           string `firestore:"id" json:"id"`
	School       string `firestore:"school" json:"school"`
	Degree       string `firestore:"degree" json:"degree"`
	Fieldofstudy string `firestore:"fieldofstudy,omitempty" json:"fieldofstudy,omitempty"`
	From         string `firestore:"from" json:"from"`
	To           string `firestore:"to,omitempty" json:"to,omitempty"`
	Current      bool   `firestore:"current" json:"current"`
	Description  string `firestore:"description,omitempty" json:"description,omitempty"`
}

// Profile is linked to exactly one user. Experience and education lists
// are ordered most-recent-first by insertion.
type Profile struct {
	ID             string       `firestore:"-" json:"id"`
	User           string       `firestore:"user" json:"user"`
	Company        string       `firestore:"company,omitempty" json:"company,omitempty"`
	Website        string       `firestore:"website,omitempty" json:"website,omitempty"`
	Location       string       `firestore:"location,omitempty" json:"location,omitempty"`
	Status         string       `firestore:"status" json:"status"`
	Skills         []string     `firestore:"skills" json:"skills"`
	Bio            string       `firestore:"bio,omitempty" json:"bio,omitempty"`
	Githubusername string       `firestore:"githubusername,omitempty" json:"githubusername,omitempty"`
	Social         Social       `firestore:"social" json:"social"`
	Experience     []Experience `firestore:"experience" json:"experience"`
	Education      []Education  `firestore:"education" json:"education"`
	Date           time.Time    `firestore:"date" json:"date"`
}
