// Package content holds the CMS entities and their repositories. Entities
// are plain records; cross-entity relations (a project's gallery pointing at
// uploaded media) are URL strings only, with no referential integrity
// enforced at this layer.
package content

import "time"

// Section is one block of page or project content. Section schemas (hero,
// zoom-gallery, text-block, ...) are a front-end union; this layer stores
// them verbatim and never interprets them.
type Section map[string]any

// Page is an editable site page. The home page uses the empty slug.
type Page struct {
	ID              string    `json:"id"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	MetaDescription string    `json:"metaDescription"`
	Sections        []Section `json:"sections"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Project is one building development in the portfolio. Only published
// projects are visible on the public site; Order drives display sequence,
// ascending, and need not be unique.
type Project struct {
	ID              string    `json:"id"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Subtitle        string    `json:"subtitle,omitempty"`
	Location        string    `json:"location"`
	Date            string    `json:"date,omitempty"`
	HeroImage       string    `json:"heroImage"`
	HeroVideo       string    `json:"heroVideo,omitempty"`
	Images          []string  `json:"images"`
	Description     string    `json:"description"`
	FullDescription string    `json:"fullDescription,omitempty"`
	Sections        []Section `json:"sections"`
	Order           int       `json:"order"`
	Published       bool      `json:"published"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type NavItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Label    string `json:"label"`
}

type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

type Footer struct {
	Address     Address      `json:"address"`
	Phone       string       `json:"phone"`
	Email       string       `json:"email"`
	SocialLinks []SocialLink `json:"socialLinks"`
}

// HomepageMedia configures the hero slideshow on the home page.
type HomepageMedia struct {
	Images []string `json:"images"`
	Video  string   `json:"video,omitempty"`
}

// SiteSettings is a singleton document (id "site"). Updates use merge
// semantics so a partial write never clobbers unmentioned top-level keys.
type SiteSettings struct {
	ID           string        `json:"id"`
	SiteName     string        `json:"siteName"`
	Logo         string        `json:"logo"`
	LogoWhite    string        `json:"logoWhite"`
	PrimaryColor string        `json:"primaryColor"`
	Navigation   []NavItem     `json:"navigation"`
	Homepage     HomepageMedia `json:"homepage"`
	Footer       Footer        `json:"footer"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// MediaFile is the metadata record for one uploaded blob. The blob itself
// lives in object storage under Path; deleting is two-phase (blob first,
// then this record) and a blob-delete failure never blocks the record's
// removal.
type MediaFile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Path      string    `json:"path"`
	Type      MediaType `json:"type"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
}
