// Package render produces the server-side HTML for public project pages.
// The markup is the site's legacy ClapAt theme; the admin-entered content is
// interpolated into it with contextual escaping.
package render

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/pro6vastgoed/cms-backend/internal/content"
)

// Generator renders complete, self-contained project pages.
type Generator struct {
	projects *content.ProjectsRepo
	settings *content.SettingsRepo
}

func NewGenerator(projects *content.ProjectsRepo, settings *content.SettingsRepo) *Generator {
	return &Generator{projects: projects, settings: settings}
}

// ProjectPage renders the page for one project slug. The project is fetched
// published or not (the admin preview path reaches drafts); navigation and
// the footer come from the published list and the settings singleton.
// Returns content.ErrNotFound for an unknown slug; no partial page is ever
// emitted.
func (g *Generator) ProjectPage(ctx context.Context, slug string) (string, error) {
	project, err := g.projects.BySlug(ctx, slug)
	if err != nil {
		return "", err
	}

	published, err := g.projects.Published(ctx)
	if err != nil {
		return "", err
	}

	settings, err := g.settings.Get(ctx)
	if errors.Is(err, content.ErrNotFound) {
		settings = nil
	} else if err != nil {
		return "", err
	}

	data := buildPageData(*project, published, settings)

	var buf bytes.Buffer
	if err := projectTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// NextProject picks the entry after the given slug in published order,
// wrapping to the first entry when the current project is last (or not in
// the list at all). Nil when there is nothing to link to.
func NextProject(published []content.Project, slug string) *content.Project {
	if len(published) == 0 {
		return nil
	}
	idx := -1
	for i, p := range published {
		if p.Slug == slug {
			idx = i
			break
		}
	}
	next := published[0]
	if idx >= 0 && idx < len(published)-1 {
		next = published[idx+1]
	}
	if next.Slug == slug {
		return nil
	}
	return &next
}

type nextLink struct {
	Slug  string
	Title string
}

type projectPageData struct {
	Title           string
	Location        string
	Subtitle        string
	Date            string
	HeroImage       string
	FirstImage      string
	Images          []string
	Description     string
	FullDescription string
	Next            *nextLink

	SiteName     string
	FooterStreet string
	FooterCity   string
	FooterPhone  string
	FooterEmail  string
	Socials      []content.SocialLink
}

// safeImageURL keeps root-relative and http(s) image URLs. Anything else
// (data:, javascript:, protocol-relative) is treated as absent, the same as
// an empty field, and the page omits the fragment.
func safeImageURL(u string) string {
	if strings.HasPrefix(u, "/") && !strings.HasPrefix(u, "//") {
		return u
	}
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return ""
}

func buildPageData(p content.Project, published []content.Project, s *content.SiteSettings) projectPageData {
	heroImage := safeImageURL(p.HeroImage)

	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		if u := safeImageURL(img); u != "" {
			images = append(images, u)
		}
	}

	firstImage := heroImage
	if len(images) > 0 {
		firstImage = images[0]
	}

	data := projectPageData{
		Title:           p.Title,
		Location:        p.Location,
		Subtitle:        p.Subtitle,
		Date:            p.Date,
		HeroImage:       heroImage,
		FirstImage:      firstImage,
		Images:          images,
		Description:     p.Description,
		FullDescription: p.FullDescription,

		// Footer fallbacks keep the page whole while settings are unseeded.
		SiteName:     "Pro6",
		FooterStreet: "Laat 88",
		FooterCity:   "1811 EK Alkmaar",
		FooterPhone:  "072 785 5228",
		FooterEmail:  "info@pro6vastgoed.nl",
		Socials: []content.SocialLink{
			{Platform: "linkedin", URL: "#", Label: "Li"},
			{Platform: "instagram", URL: "#", Label: "Ig"},
		},
	}

	if next := NextProject(published, p.Slug); next != nil {
		data.Next = &nextLink{Slug: next.Slug, Title: next.Title}
	}

	if s != nil {
		if s.SiteName != "" {
			data.SiteName = s.SiteName
		}
		if s.Footer.Address.Street != "" {
			data.FooterStreet = s.Footer.Address.Street
		}
		if s.Footer.Address.City != "" {
			data.FooterCity = s.Footer.Address.City
		}
		if s.Footer.Phone != "" {
			data.FooterPhone = s.Footer.Phone
		}
		if s.Footer.Email != "" {
			data.FooterEmail = s.Footer.Email
		}
		if len(s.Footer.SocialLinks) > 0 {
			data.Socials = s.Footer.SocialLinks
		}
	}

	return data
}
