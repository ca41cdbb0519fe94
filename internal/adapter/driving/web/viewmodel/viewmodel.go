// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// ProjectCardViewModel holds presentation-ready data for one repository card.
type ProjectCardViewModel struct {
	Name           string
	Description    string
	URL            string
	Homepage       string
	Stars          string
	Forks          int
	Language       string
	LanguageColor  string
	Topics         []string
	MoreTopics     int
	UpdatedDisplay string
	Activity       string
}

// OptionViewModel is one entry of a select control.
type OptionViewModel struct {
	Value    string
	Label    string
	Selected bool
}

// ProjectGridViewModel holds the filter controls and visible cards.
type ProjectGridViewModel struct {
	Loading   bool
	Search    string
	Languages []OptionViewModel
	Sorts     []OptionViewModel
	Projects  []ProjectCardViewModel
	Total     int
	// PollURL reloads the grid with the current query while Loading.
	PollURL   string
}

// ProfileViewModel holds the hero section's profile data.
type ProfileViewModel struct {
	Login       string
	DisplayName string
	Bio         string
	AvatarURL   string
	URL         string
	Location    string
	Blog        string
	Company     string
	PublicRepos int
	Followers   int
	MemberSince string
}

// SummaryViewModel holds aggregate repository statistics for the about section.
type SummaryViewModel struct {
	Repositories int
	TotalStars   string
	TotalForks   int
	MedianStars  string
	TopLanguage  string
	TopColor     string
}

// PendulumViewModel is the initial pendulum frame.
type PendulumViewModel struct {
	Angle float64
	BobX  float64
	BobY  float64
}

// ParticleViewModel is one projectile position.
type ParticleViewModel struct {
	X float64
	Y float64
}

// PhysicsViewModel holds the first frame of each simulation so the gallery
// renders before client-side animation starts.
type PhysicsViewModel struct {
	Pendulum  PendulumViewModel
	WavePath  string
	Particles []ParticleViewModel
}

// ContactViewModel holds the contact form state.
type ContactViewModel struct {
	CSRFToken string
	Name      string
	Email     string
	Message   string
	Error     string
	Success   string
}

// PageViewModel holds everything the full home page renders.
type PageViewModel struct {
	Title       string
	Account     string
	GitHubURL   string
	Profile     *ProfileViewModel
	Projects    ProjectGridViewModel
	Summary     SummaryViewModel
	AboutHTML   string
	SandboxSrc  string
	SandboxHTML string
	Physics     PhysicsViewModel
	Contact     ContactViewModel
}
