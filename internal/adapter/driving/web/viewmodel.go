package web

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	vm "github.com/ericfisherdev/folio/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/folio/internal/application"
	"github.com/ericfisherdev/folio/internal/domain/format"
	"github.com/ericfisherdev/folio/internal/domain/model"
	"github.com/ericfisherdev/folio/internal/domain/physics"
)

const projectsPath = "/app/projects"

// maxCardTopics is how many topic chips a card shows before "+N".
const maxCardTopics = 3

// sortLabels is in select order.
var sortLabels = []struct {
	key   model.SortKey
	label string
}{
	{model.SortUpdated, "Recently updated"},
	{model.SortStars, "Most stars"},
	{model.SortName, "Name"},
}

func toProjectCardViewModel(r model.Repository, now time.Time) vm.ProjectCardViewModel {
	topics, more := format.Topics(r.Topics, maxCardTopics)

	return vm.ProjectCardViewModel{
		Name:           r.Name,
		Description:    r.Description,
		URL:            r.URL,
		Homepage:       r.Homepage,
		Stars:          format.Stars(r.Stars),
		Forks:          r.Forks,
		Language:       r.Language,
		LanguageColor:  format.LanguageColor(r.Language),
		Topics:         topics,
		MoreTopics:     more,
		UpdatedDisplay: format.Date(r.UpdatedAt),
		Activity:       string(application.ClassifyActivity(now, r.UpdatedAt)),
	}
}

// toProjectGridViewModel builds the grid from a settled (or still loading) session.
func toProjectGridViewModel(session *application.FeedSession, now time.Time) vm.ProjectGridViewModel {
	q := session.Query()
	visible := session.Visible()

	cards := make([]vm.ProjectCardViewModel, 0, len(visible))
	for _, r := range visible {
		cards = append(cards, toProjectCardViewModel(r, now))
	}

	facets := session.Facets()
	// Keep the selected language selectable while the feed loads or when it
	// matches no fetched record, so the next form event does not reset it.
	if !slices.Contains(facets, q.Language) {
		facets = append(facets, q.Language)
	}
	languages := make([]vm.OptionViewModel, 0, len(facets))
	for _, lang := range facets {
		label := lang
		if lang == model.LanguageAll {
			label = "All languages"
		}
		languages = append(languages, vm.OptionViewModel{
			Value:    lang,
			Label:    label,
			Selected: lang == q.Language,
		})
	}

	sorts := make([]vm.OptionViewModel, 0, len(sortLabels))
	for _, s := range sortLabels {
		sorts = append(sorts, vm.OptionViewModel{
			Value:    string(s.key),
			Label:    s.label,
			Selected: s.key == q.Sort,
		})
	}

	return vm.ProjectGridViewModel{
		Loading:   session.Loading(),
		Search:    q.Search,
		Languages: languages,
		Sorts:     sorts,
		Projects:  cards,
		Total:     len(session.Records()),
		PollURL:   projectsURL(q),
	}
}

// projectsURL is the grid fragment URL for q. Default values are omitted.
func projectsURL(q model.FeedQuery) string {
	v := url.Values{}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	if q.FiltersLanguage() {
		v.Set("language", q.Language)
	}
	if q.Sort != model.SortUpdated {
		v.Set("sort", string(q.Sort))
	}
	if len(v) == 0 {
		return projectsPath
	}
	return projectsPath + "?" + v.Encode()
}

// toProfileViewModel returns nil when the profile is unavailable.
func toProfileViewModel(p *model.Profile) *vm.ProfileViewModel {
	if p == nil {
		return nil
	}
	return &vm.ProfileViewModel{
		Login:       p.Login,
		DisplayName: p.DisplayName(),
		Bio:         p.Bio,
		AvatarURL:   p.AvatarURL,
		URL:         p.URL,
		Location:    p.Location,
		Blog:        p.Blog,
		Company:     p.Company,
		PublicRepos: p.PublicRepos,
		Followers:   p.Followers,
		MemberSince: format.Date(p.CreatedAt),
	}
}

func toSummaryViewModel(s model.FeedSummary) vm.SummaryViewModel {
	return vm.SummaryViewModel{
		Repositories: s.Repositories,
		TotalStars:   format.Stars(s.TotalStars),
		TotalForks:   s.TotalForks,
		MedianStars:  strconv.FormatFloat(s.MedianStars, 'f', -1, 64),
		TopLanguage:  s.TopLanguage,
		TopColor:     format.LanguageColor(s.TopLanguage),
	}
}

// Gallery defaults match the initial slider positions.
const (
	defaultPendulumAngle   = 30.0
	defaultWaveAmplitude   = 20.0
	defaultWaveFrequency   = 2.0
	defaultParticleSpeed   = 5.0
	svgCoordinatePrecision = 2
)

func toPhysicsViewModel() vm.PhysicsViewModel {
	out := vm.PhysicsViewModel{}

	if frames, err := physics.Pendulum(defaultPendulumAngle, 1); err == nil {
		f := frames[0]
		out.Pendulum = vm.PendulumViewModel{Angle: f.Angle, BobX: f.BobX, BobY: f.BobY}
	}

	out.WavePath = wavePath(physics.WavePoints(defaultWaveAmplitude, defaultWaveFrequency, 0))

	for _, p := range physics.InitialParticles(defaultParticleSpeed) {
		out.Particles = append(out.Particles, vm.ParticleViewModel{X: p.X, Y: p.Y})
	}

	return out
}

// wavePath renders points as an SVG path "M x y L x y ...".
func wavePath(points []physics.Point) string {
	var b strings.Builder
	for i, p := range points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s %s %s", cmd,
			strconv.FormatFloat(p.X, 'f', svgCoordinatePrecision, 64),
			strconv.FormatFloat(p.Y, 'f', svgCoordinatePrecision, 64),
		)
	}
	return b.String()
}
