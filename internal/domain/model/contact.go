package model

import "time"

// ContactMessage is a submission of the contact form.
type ContactMessage struct {
	ID         int64
	Name       string
	Email      string
	Message    string
	RemoteAddr string
	CreatedAt  time.Time
}
