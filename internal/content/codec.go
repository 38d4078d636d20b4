package content

import (
	"fmt"
	"time"

	"github.com/pro6vastgoed/cms-backend/internal/docstore"
)

// Collection names; together with the field names below they are the
// persisted wire format and must survive a backend swap field-for-field.
const (
	pagesCollection    = "pages"
	projectsCollection = "projects"
	settingsCollection = "settings"
	mediaCollection    = "media"

	// settingsDocID keys the SiteSettings singleton.
	settingsDocID = "site"
)

// ---- encode ----
//
// Optional string fields are written as docstore.Absent when empty so the
// sanitizer drops them instead of persisting empty strings the front end
// would have left undefined.

func optStr(s string) any {
	if s == "" {
		return docstore.Absent
	}
	return s
}

func sectionsValue(sections []Section) []any {
	out := make([]any, len(sections))
	for i, s := range sections {
		out[i] = map[string]any(s)
	}
	return out
}

func stringsValue(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func pageDoc(p Page) map[string]any {
	return map[string]any{
		"slug":            p.Slug,
		"title":           p.Title,
		"metaDescription": p.MetaDescription,
		"sections":        sectionsValue(p.Sections),
		"createdAt":       p.CreatedAt,
		"updatedAt":       p.UpdatedAt,
	}
}

func projectDoc(p Project) map[string]any {
	return map[string]any{
		"slug":            p.Slug,
		"title":           p.Title,
		"subtitle":        optStr(p.Subtitle),
		"location":        p.Location,
		"date":            optStr(p.Date),
		"heroImage":       p.HeroImage,
		"heroVideo":       optStr(p.HeroVideo),
		"images":          stringsValue(p.Images),
		"description":     p.Description,
		"fullDescription": optStr(p.FullDescription),
		"sections":        sectionsValue(p.Sections),
		"order":           p.Order,
		"published":       p.Published,
		"createdAt":       p.CreatedAt,
		"updatedAt":       p.UpdatedAt,
	}
}

func settingsDoc(s SiteSettings) map[string]any {
	nav := make([]any, len(s.Navigation))
	for i, n := range s.Navigation {
		nav[i] = map[string]any{"label": n.Label, "href": n.Href}
	}
	socials := make([]any, len(s.Footer.SocialLinks))
	for i, l := range s.Footer.SocialLinks {
		socials[i] = map[string]any{"platform": l.Platform, "url": l.URL, "label": l.Label}
	}
	return map[string]any{
		"siteName":     s.SiteName,
		"logo":         s.Logo,
		"logoWhite":    s.LogoWhite,
		"primaryColor": s.PrimaryColor,
		"navigation":   nav,
		"homepage": map[string]any{
			"images": stringsValue(s.Homepage.Images),
			"video":  optStr(s.Homepage.Video),
		},
		"footer": map[string]any{
			"address": map[string]any{
				"street": s.Footer.Address.Street,
				"city":   s.Footer.Address.City,
			},
			"phone":       s.Footer.Phone,
			"email":       s.Footer.Email,
			"socialLinks": socials,
		},
		"updatedAt": s.UpdatedAt,
	}
}

func mediaDoc(m MediaFile) map[string]any {
	return map[string]any{
		"name":      m.Name,
		"url":       m.URL,
		"path":      m.Path,
		"type":      string(m.Type),
		"size":      m.Size,
		"createdAt": m.CreatedAt,
	}
}

// ---- decode ----
//
// Stored documents are not trusted blindly: a field of the wrong type fails
// the decode, a missing field coerces to its zero value.

type docReader struct {
	collection string
	id         string
	data       map[string]any
	err        error
}

func newDocReader(collection string, d docstore.Doc) *docReader {
	return &docReader{collection: collection, id: d.ID, data: docstore.NormalizeRead(d.Data)}
}

func (r *docReader) fail(key, want string, got any) {
	if r.err == nil {
		r.err = fmt.Errorf("%s/%s: field %q: want %s, got %T", r.collection, r.id, key, want, got)
	}
}

func (r *docReader) str(key string) string {
	v, ok := r.data[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.fail(key, "string", v)
		return ""
	}
	return s
}

func (r *docReader) integer(key string) int {
	v, ok := r.data[key]
	if !ok || v == nil {
		return 0
	}
	// The backend has a single number kind; integers written through this
	// layer may read back as int64 or float64.
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		r.fail(key, "number", v)
		return 0
	}
}

func (r *docReader) int64Val(key string) int64 {
	v, ok := r.data[key]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case int:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	default:
		r.fail(key, "number", v)
		return 0
	}
}

func (r *docReader) boolean(key string) bool {
	v, ok := r.data[key]
	if !ok || v == nil {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		r.fail(key, "bool", v)
		return false
	}
	return b
}

func (r *docReader) timestamp(key string) time.Time {
	v, ok := r.data[key]
	if !ok || v == nil {
		return time.Time{}
	}
	t, ok := v.(time.Time)
	if !ok {
		r.fail(key, "timestamp", v)
		return time.Time{}
	}
	return t
}

func (r *docReader) strings(key string) []string {
	v, ok := r.data[key]
	if !ok || v == nil {
		return nil
	}
	switch list := v.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out
	case []any:
		out := make([]string, 0, len(list))
		for _, el := range list {
			s, ok := el.(string)
			if !ok {
				r.fail(key, "string list", el)
				return nil
			}
			out = append(out, s)
		}
		return out
	default:
		r.fail(key, "string list", v)
		return nil
	}
}

func (r *docReader) sections(key string) []Section {
	v, ok := r.data[key]
	if !ok || v == nil {
		return []Section{}
	}
	list, ok := v.([]any)
	if !ok {
		r.fail(key, "section list", v)
		return []Section{}
	}
	out := make([]Section, 0, len(list))
	for _, el := range list {
		m, ok := el.(map[string]any)
		if !ok {
			r.fail(key, "section", el)
			return []Section{}
		}
		out = append(out, Section(m))
	}
	return out
}

func (r *docReader) sub(key string) *docReader {
	v, ok := r.data[key]
	if !ok || v == nil {
		return &docReader{collection: r.collection, id: r.id, data: map[string]any{}}
	}
	m, ok := v.(map[string]any)
	if !ok {
		r.fail(key, "map", v)
		return &docReader{collection: r.collection, id: r.id, data: map[string]any{}}
	}
	return &docReader{collection: r.collection, id: r.id, data: m}
}

func (r *docReader) maps(key string) []map[string]any {
	v, ok := r.data[key]
	if !ok || v == nil {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		r.fail(key, "list", v)
		return nil
	}
	out := make([]map[string]any, 0, len(list))
	for _, el := range list {
		m, ok := el.(map[string]any)
		if !ok {
			r.fail(key, "map", el)
			return nil
		}
		out = append(out, m)
	}
	return out
}

func pageFromDoc(d docstore.Doc) (Page, error) {
	r := newDocReader(pagesCollection, d)
	p := Page{
		ID:              d.ID,
		Slug:            r.str("slug"),
		Title:           r.str("title"),
		MetaDescription: r.str("metaDescription"),
		Sections:        r.sections("sections"),
		CreatedAt:       r.timestamp("createdAt"),
		UpdatedAt:       r.timestamp("updatedAt"),
	}
	return p, r.err
}

func projectFromDoc(d docstore.Doc) (Project, error) {
	r := newDocReader(projectsCollection, d)
	p := Project{
		ID:              d.ID,
		Slug:            r.str("slug"),
		Title:           r.str("title"),
		Subtitle:        r.str("subtitle"),
		Location:        r.str("location"),
		Date:            r.str("date"),
		HeroImage:       r.str("heroImage"),
		HeroVideo:       r.str("heroVideo"),
		Images:          r.strings("images"),
		Description:     r.str("description"),
		FullDescription: r.str("fullDescription"),
		Sections:        r.sections("sections"),
		Order:           r.integer("order"),
		Published:       r.boolean("published"),
		CreatedAt:       r.timestamp("createdAt"),
		UpdatedAt:       r.timestamp("updatedAt"),
	}
	return p, r.err
}

func settingsFromDoc(d docstore.Doc) (SiteSettings, error) {
	r := newDocReader(settingsCollection, d)
	s := SiteSettings{
		ID:           d.ID,
		SiteName:     r.str("siteName"),
		Logo:         r.str("logo"),
		LogoWhite:    r.str("logoWhite"),
		PrimaryColor: r.str("primaryColor"),
		UpdatedAt:    r.timestamp("updatedAt"),
	}
	for _, m := range r.maps("navigation") {
		nr := &docReader{collection: r.collection, id: r.id, data: m}
		s.Navigation = append(s.Navigation, NavItem{Label: nr.str("label"), Href: nr.str("href")})
		if nr.err != nil && r.err == nil {
			r.err = nr.err
		}
	}
	home := r.sub("homepage")
	s.Homepage = HomepageMedia{Images: home.strings("images"), Video: home.str("video")}
	if home.err != nil && r.err == nil {
		r.err = home.err
	}
	footer := r.sub("footer")
	addr := footer.sub("address")
	s.Footer = Footer{
		Address: Address{Street: addr.str("street"), City: addr.str("city")},
		Phone:   footer.str("phone"),
		Email:   footer.str("email"),
	}
	for _, m := range footer.maps("socialLinks") {
		lr := &docReader{collection: r.collection, id: r.id, data: m}
		s.Footer.SocialLinks = append(s.Footer.SocialLinks, SocialLink{
			Platform: lr.str("platform"),
			URL:      lr.str("url"),
			Label:    lr.str("label"),
		})
		if lr.err != nil && r.err == nil {
			r.err = lr.err
		}
	}
	if footer.err != nil && r.err == nil {
		r.err = footer.err
	}
	if addr.err != nil && r.err == nil {
		r.err = addr.err
	}
	return s, r.err
}

func mediaFromDoc(d docstore.Doc) (MediaFile, error) {
	r := newDocReader(mediaCollection, d)
	m := MediaFile{
		ID:        d.ID,
		Name:      r.str("name"),
		URL:       r.str("url"),
		Path:      r.str("path"),
		Type:      MediaType(r.str("type")),
		Size:      r.int64Val("size"),
		CreatedAt: r.timestamp("createdAt"),
	}
	return m, r.err
}
