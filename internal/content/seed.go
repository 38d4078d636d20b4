package content

import (
	"context"
	"time"

	"github.com/pro6vastgoed/cms-backend/internal/docstore"
)

// SeedResult reports how many records a seeding run wrote.
type SeedResult struct {
	Pages    int `json:"pages"`
	Projects int `json:"projects"`
}

// Seeder populates an empty database with the site's default content.
type Seeder struct {
	store docstore.Client
	clock func() time.Time
}

func NewSeeder(store docstore.Client) *Seeder {
	return &Seeder{store: store, clock: time.Now}
}

// Run seeds default pages, projects and settings unless the pages
// collection already holds records, in which case it is a no-op.
//
// The emptiness check is advisory only: two concurrent first runs can both
// decide to seed. That is harmless because every seeded id is fixed, so the
// loser overwrites rather than duplicates. Each kind goes out as one atomic
// batch; a mid-batch failure commits nothing for that kind.
func (s *Seeder) Run(ctx context.Context) (SeedResult, error) {
	existing, err := s.store.GetAll(ctx, pagesCollection, docstore.Query{})
	if err != nil {
		return SeedResult{}, readErr(pagesCollection, err)
	}
	if len(existing) > 0 {
		return SeedResult{}, nil
	}

	now := s.clock()

	pages := defaultPages(now)
	pageDocs := make([]docstore.Doc, len(pages))
	for i, p := range pages {
		pageDocs[i] = docstore.Doc{ID: p.ID, Data: docstore.PrepareWrite(pageDoc(p))}
	}
	if err := s.store.BatchSet(ctx, pagesCollection, pageDocs); err != nil {
		return SeedResult{}, writeErr(pagesCollection, err)
	}

	projects := defaultProjects(now)
	projectDocs := make([]docstore.Doc, len(projects))
	for i, p := range projects {
		projectDocs[i] = docstore.Doc{ID: p.ID, Data: docstore.PrepareWrite(projectDoc(p))}
	}
	if err := s.store.BatchSet(ctx, projectsCollection, projectDocs); err != nil {
		return SeedResult{}, writeErr(projectsCollection, err)
	}

	settings := defaultSettings(now)
	if err := s.store.Set(ctx, settingsCollection, settingsDocID, docstore.PrepareWrite(settingsDoc(settings))); err != nil {
		return SeedResult{}, writeErr(settingsCollection, err)
	}

	return SeedResult{Pages: len(pages), Projects: len(projects)}, nil
}

func defaultPages(now time.Time) []Page {
	return []Page{
		{
			ID:              "home",
			Slug:            "",
			Title:           "Pro6 - Creating Living Spaces",
			MetaDescription: "Pro6 ontwikkelt én ontwerpt woningbouwprojecten in heel Nederland.",
			Sections:        []Section{},
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              "projecten",
			Slug:            "projecten",
			Title:           "Projecten - Pro6",
			MetaDescription: "Bekijk onze woningbouwprojecten.",
			Sections:        []Section{},
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              "over-ons",
			Slug:            "over-ons",
			Title:           "Over Ons - Pro6",
			MetaDescription: "Leer meer over Pro6 en ons team.",
			Sections:        []Section{},
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              "contact",
			Slug:            "contact",
			Title:           "Contact - Pro6",
			MetaDescription: "Neem contact met ons op.",
			Sections:        []Section{},
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
}

func defaultProjects(now time.Time) []Project {
	return []Project{
		{
			ID:        "dok6",
			Slug:      "dok6",
			Title:     "Dok6",
			Subtitle:  "Alkmaar",
			Location:  "Alkmaar",
			Date:      "2024",
			HeroImage: "/images/dok6-1.jpg",
			Images: []string{
				"/images/dok6-1.jpg", "/images/dok6-2.jpg",
				"/images/dok6-3.jpg", "/images/dok6-4.jpg",
			},
			Description:     "Bedrijventerrein Oudorp zal, als onderdeel van de Kanaalzone, de komende jaren gaan transformeren naar een woon-werk gebied.",
			FullDescription: "Het door DELVA vervaardigde stedenbouwkundig plan telt 230 wooneenheden, 4.000m2 aan commerciële ruimte, een parkeerhuis voor 190 auto's en maar liefst 5.000m2 aan hoogwaardig stadsgroen waarmee elke woning in het plan een directe relatie heeft.",
			Sections:        []Section{},
			Order:           1,
			Published:       true,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:        "project-2",
			Slug:      "project-2",
			Title:     "Project 2",
			Subtitle:  "Heerhugowaard",
			Location:  "Heerhugowaard",
			Date:      "2024",
			HeroImage: "/images/pro6-2.jpg",
			Images: []string{
				"/images/pro6-2.jpg", "/images/pro6-3.jpg", "/images/pro6-4.jpg",
			},
			Description:     "Een nieuw woningbouwproject in Heerhugowaard.",
			FullDescription: "Dit project in Heerhugowaard omvat de ontwikkeling van moderne woningen met aandacht voor duurzaamheid en leefbaarheid. Het ontwerp combineert hedendaagse architectuur met groene buitenruimtes, waardoor een prettige woonomgeving ontstaat voor bewoners van alle leeftijden.",
			Sections:        []Section{},
			Order:           2,
			Published:       true,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:        "project-3",
			Slug:      "project-3",
			Title:     "Project 3",
			Subtitle:  "Alkmaar",
			Location:  "Alkmaar",
			Date:      "2025",
			HeroImage: "/images/pro6-3.jpg",
			Images: []string{
				"/images/pro6-3.jpg", "/images/pro6-4.jpg", "/images/pro6-2.jpg",
			},
			Description:     "Een nieuw woningbouwproject in Alkmaar.",
			FullDescription: "In het hart van Alkmaar ontwikkelt Pro6 een uniek woonproject dat perfect aansluit bij de historische charme van de stad. Met ruime appartementen en penthouses biedt dit project een hoogwaardige woonervaring met alle moderne gemakken binnen handbereik.",
			Sections:        []Section{},
			Order:           3,
			Published:       true,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
}

func defaultSettings(now time.Time) SiteSettings {
	return SiteSettings{
		ID:           settingsDocID,
		SiteName:     "Pro6",
		Logo:         "/images/logo.png",
		LogoWhite:    "/images/logo-white.png",
		PrimaryColor: "#000",
		Navigation: []NavItem{
			{Label: "Home", Href: "/"},
			{Label: "Projecten", Href: "/projecten"},
			{Label: "Over ons", Href: "/over-ons"},
			{Label: "Contact", Href: "/contact"},
		},
		Homepage: HomepageMedia{
			Images: []string{
				"/images/pro6-1.jpg", "/images/pro6-2.jpg",
				"/images/pro6-3.jpg", "/images/pro6-4.jpg",
			},
		},
		Footer: Footer{
			Address: Address{Street: "Laat 88", City: "1811 EK Alkmaar"},
			Phone:   "072 785 5228",
			Email:   "info@pro6vastgoed.nl",
			SocialLinks: []SocialLink{
				{Platform: "linkedin", URL: "https://www.linkedin.com/", Label: "Li"},
				{Platform: "facebook", URL: "https://www.facebook.com/", Label: "Fb"},
				{Platform: "instagram", URL: "https://www.instagram.com/", Label: "In"},
			},
		},
		UpdatedAt: now,
	}
}
