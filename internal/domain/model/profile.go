package model

import "time"

// Profile is the public GitHub profile of the site owner.
type Profile struct {
	Login       string
	Name        string
	Bio         string
	AvatarURL   string
	URL         string
	Location    string
	Blog        string
	Company     string
	PublicRepos int
	Followers   int
	Following   int
	CreatedAt   time.Time
}

// DisplayName returns Name, falling back to Login when no name is set.
func (p Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Login
}
