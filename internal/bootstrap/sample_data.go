package bootstrap

import (
	"time"

	"anoa.com/lebenslauf/internal/entity"
	"github.com/google/uuid"
)

var (
	DefaultProfileID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	BackendProfileID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	MobileProfileID  = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

// SampleData is the complete demo data set written by SeedCv.
type SampleData struct {
	Profiles        []entity.Profile
	PersonalData    []entity.PersonalData
	Family          []entity.FamilyMember
	Education       []entity.Education
	Internships     []entity.Internship
	WorkExperiences []entity.WorkExperience
	SkillCategories []entity.SkillCategory
	Projects        []entity.Project

	ProfileSkills          []entity.ProfileSkill
	ProfileProjects        []entity.ProfileProject
	ProfileWorkExperiences []entity.ProfileWorkExperience
}

type subProjectData struct {
	name         string
	description  string
	framework    string
	technologies []string
}

type projectData struct {
	name             string
	description      string
	framework        string
	appStoreURL      string
	playStoreURL     string
	websiteURL       string
	start            time.Time
	end              *time.Time
	current          bool
	technologies     []string
	functions        []string
	technicalAspects []string
	subProjects      []subProjectData
}

type overlayData struct {
	name        string
	highlighted bool
	description string
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// NewSampleData builds the demo data set with fresh ids for every base row.
// Profile ids are fixed.
func NewSampleData() *SampleData {
	b := &sampleBuilder{
		skills:   map[string]uuid.UUID{},
		projects: map[string]uuid.UUID{},
		work:     map[string]uuid.UUID{},
	}
	b.profiles()
	b.personalData()
	b.career()
	b.skillCategories()
	b.projectList()
	b.overlays()
	return &b.data
}

type sampleBuilder struct {
	data SampleData

	skillOrder []string
	skills     map[string]uuid.UUID
	projects   map[string]uuid.UUID
	work       map[string]uuid.UUID
}

func (b *sampleBuilder) profiles() {
	b.data.Profiles = []entity.Profile{
		{
			ID:          DefaultProfileID,
			Slug:        "default",
			Name:        "Vollständiges Profil",
			Description: ptr("Zeigt alle Skills und Projekte"),
			IsDefault:   true,
		},
		{
			ID:          BackendProfileID,
			Slug:        "backend",
			Name:        "Backend Developer",
			Description: ptr("Fokus auf APIs, Datenbanken und Services"),
		},
		{
			ID:          MobileProfileID,
			Slug:        "mobile",
			Name:        "Mobile Developer",
			Description: ptr("Fokus auf Cross-Platform Mobile Entwicklung"),
		},
	}
}

func (b *sampleBuilder) personalData() {
	titles := map[uuid.UUID]string{
		DefaultProfileID: "Senior Cross-Platform Developer",
		BackendProfileID: "Senior Backend Developer",
		MobileProfileID:  "Senior Mobile App Developer",
	}

	for _, p := range b.data.Profiles {
		b.data.PersonalData = append(b.data.PersonalData, entity.PersonalData{
			ID:            uuid.New(),
			ProfileID:     p.ID,
			AcademicTitle: ptr("Ing."),
			Name:          "Daniel Muster",
			Title:         titles[p.ID],
			Email:         "daniel.muster@example.com",
			Phone:         "+43 660 0000000",
			Address:       "Musterstraße 1",
			City:          "Linz",
			PostalCode:    "4020",
			Country:       "Österreich",
			BirthDate:     date(1995, time.April, 12),
			Citizenship:   "Österreich",
		})
	}
}

func (b *sampleBuilder) career() {
	b.data.Family = []entity.FamilyMember{
		{ID: uuid.New(), Relationship: "Vater", Profession: "Elektroinstallateur", SortOrder: 1},
		{ID: uuid.New(), Relationship: "Mutter", Profession: "Vertriebsassistenz", SortOrder: 2},
		{ID: uuid.New(), Relationship: "Bruder", Profession: "Mechatroniker", BirthYear: ptr(1998), SortOrder: 3},
	}

	b.data.Education = []entity.Education{
		{
			ID:          uuid.New(),
			Institution: "HTL Linz",
			Degree:      "Informatik",
			StartYear:   2009,
			EndYear:     ptr(2014),
			Description: ptr("Diplomarbeit: Verwaltungssystem für Ärzte und Mitarbeiter."),
			SortOrder:   1,
		},
		{
			ID:          uuid.New(),
			Institution: "Volks- und Mittelschule Linz",
			Degree:      "Pflichtschule",
			StartYear:   2001,
			EndYear:     ptr(2009),
			SortOrder:   2,
		},
	}

	b.data.Internships = []entity.Internship{
		{ID: uuid.New(), Company: "Muster Software GmbH", Role: "Programmierpraktikum", Year: 2011, Month: ptr(7), EndMonth: ptr(7), Description: ptr("Programmierarbeiten"), SortOrder: 1},
		{ID: uuid.New(), Company: "Elektro Beispiel", Role: "Elektrotechnik Praktikum", Year: 2012, Month: ptr(7), EndMonth: ptr(8), Description: ptr("Elektrotechnische Arbeiten"), SortOrder: 2},
	}

	work := []struct {
		company, role, description string
		start                      time.Time
		end                        *time.Time
		current                    bool
	}{
		{
			company:     "Selbständig",
			role:        "Einzelunternehmer",
			description: "Cross-Platform App-Entwicklung und Backend-Services für Kunden aus Industrie und Handel.",
			start:       date(2019, time.November, 30),
			current:     true,
		},
		{
			company:     "Stempel Digital GmbH",
			role:        "Mobile Entwickler",
			description: "Entwicklung einer Editor-App für mehrfarbige Stempelabdrucke.",
			start:       date(2018, time.August, 20),
			end:         ptr(date(2019, time.November, 30)),
		},
		{
			company:     "Netzdaten GmbH",
			role:        "C# Entwickler und Trainer",
			description: "Datenverwaltung von Ver- und Entsorgungsnetzen, Trainer für C# Kurse.",
			start:       date(2017, time.November, 27),
			end:         ptr(date(2018, time.July, 15)),
		},
	}
	for i, w := range work {
		id := uuid.New()
		b.work[w.company] = id
		b.data.WorkExperiences = append(b.data.WorkExperiences, entity.WorkExperience{
			ID:          id,
			Company:     w.company,
			Role:        w.role,
			StartDate:   w.start,
			EndDate:     w.end,
			Description: ptr(w.description),
			IsCurrent:   w.current,
			SortOrder:   i + 1,
		})
	}
}

func (b *sampleBuilder) skillCategories() {
	categories := []struct {
		name   string
		skills []string
	}{
		{"Expertise", []string{"C#", ".NET", "Go", "MAUI", "Uno Platform", "ASP.NET Core", "Entity Framework Core", "XAML", "REST API Design"}},
		{"Grundkenntnisse", []string{"Java", "Swift", "Kotlin", "C++"}},
		{"DevOps & Tools", []string{"Git", "Docker", "GitHub Actions", "Azure DevOps", "Jira"}},
		{"Datenbanken & Backend", []string{"PostgreSQL", "SQLite", "Redis", "JWT Authentication", "Multi-Tenant Architektur"}},
		{"App Entwicklung", []string{"Bluetooth Drucker Anbindung", "Push Notifications", "Offline-First", "App Store Verwaltung"}},
	}

	for i, c := range categories {
		category := entity.SkillCategory{ID: uuid.New(), Name: c.name, SortOrder: i + 1}
		for j, name := range c.skills {
			id := uuid.New()
			b.skills[name] = id
			b.skillOrder = append(b.skillOrder, name)
			category.Skills = append(category.Skills, entity.Skill{
				ID:         id,
				Name:       name,
				SortOrder:  j + 1,
				CategoryID: category.ID,
			})
		}
		b.data.SkillCategories = append(b.data.SkillCategories, category)
	}
}

func (b *sampleBuilder) projectList() {
	projects := []projectData{
		{
			name:         "Kassa Pro",
			description:  "Kassensystem App: Rechnungen, Tischplan mit Drag & Drop, Reservierungen, Berichte und Multi-Device Sync.",
			framework:    "C# / MAUI",
			appStoreURL:  "https://apps.apple.com/app/id0000000001",
			playStoreURL: "https://play.google.com/store/apps/details?id=com.example.kassapro",
			websiteURL:   "https://kassapro.example.com",
			start:        date(2018, time.January, 1),
			current:      true,
			technologies: []string{"MAUI", "C#", "Prism", "ReactiveUI", "SQLite"},
			functions: []string{
				"Rechnungen erstellen und ausdrucken",
				"Tischplan selbst gestalten",
				"Tages-, Monats- und Jahresberichte",
				"Synchronisation zwischen mehreren Geräten",
			},
			technicalAspects: []string{
				"Design Pattern: MVVM",
				"Kommunikation mit dem Server: OpenAPI Generierung",
				"Datenbank: SQLite",
			},
			subProjects: []subProjectData{
				{name: "REST API", description: "Backend für Datensynchronisation", framework: "ASP.NET Core", technologies: []string{"PostgreSQL", "OpenAPI"}},
				{name: "Printing Service", description: "Druckserver für Bon- und Etikettendrucker", framework: ".NET", technologies: []string{"ESC/POS", "USB/Network"}},
			},
		},
		{
			name:         "Stempel Studio",
			description:  "Editor App für mehrfarbige Stempelabdrucke mit QR-Generator und WLAN-Druckerverbindung.",
			framework:    "C# / Xamarin.Forms",
			appStoreURL:  "https://apps.apple.com/app/id0000000002",
			playStoreURL: "https://play.google.com/store/apps/details?id=com.example.stempel",
			start:        date(2018, time.August, 20),
			end:          ptr(date(2019, time.November, 30)),
			technologies: []string{"Xamarin.Forms", "SkiaSharp", "SQLite"},
			functions:    []string{"Eigener Editor für Abdrucke", "QR- und Barcode Generator"},
			technicalAspects: []string{
				"Rendering: SkiaSharp",
				"Druckersteuerung über TCP",
			},
		},
		{
			name:             "Gemeinde Audit",
			description:      "Prüfsystem für Gemeindefinanzen mit Berichtsgenerierung.",
			framework:        "ASP.NET Core",
			websiteURL:       "https://audit.example.com",
			start:            date(2023, time.March, 1),
			current:          true,
			technologies:     []string{"ASP.NET Core", "PostgreSQL", "Entity Framework Core"},
			functions:        []string{"Kennzahlen je Gemeinde", "Export als PDF"},
			technicalAspects: []string{"Multi-Tenant Architektur", "JWT Authentication"},
		},
		{
			name:             "Lager Scan",
			description:      "Tablet-Lagerverwaltung mit Barcode-Scanning und Echtzeit-Bestand.",
			framework:        "C# / MAUI",
			start:            date(2021, time.May, 1),
			end:              ptr(date(2022, time.December, 31)),
			technologies:     []string{"MAUI", "SignalR", "SQLite"},
			functions:        []string{"Wareneingang und Umbuchung", "Inventur"},
			technicalAspects: []string{"Echtzeit-Updates: SignalR", "Offline-Fähigkeit"},
		},
		{
			name:         "Vereinsplaner",
			description:  "Termin- und Mitgliederverwaltung für Vereine.",
			framework:    "Uno Platform",
			technologies: []string{"Uno Platform", "Refit"},
			functions:    []string{"Kalender", "Push Notifications"},
		},
	}

	for i, p := range projects {
		id := uuid.New()
		b.projects[p.name] = id

		project := entity.Project{
			ID:           id,
			Name:         p.name,
			Description:  ptr(p.description),
			Framework:    optional(p.framework),
			SortOrder:    i + 1,
			EndDate:      p.end,
			IsCurrent:    p.current,
			AppStoreURL:  optional(p.appStoreURL),
			PlayStoreURL: optional(p.playStoreURL),
			WebsiteURL:   optional(p.websiteURL),
		}
		if !p.start.IsZero() {
			project.StartDate = ptr(p.start)
		}
		for j, t := range p.technologies {
			project.Technologies = append(project.Technologies, entity.ProjectTechnology{ID: uuid.New(), ProjectID: id, Name: t, SortOrder: j + 1})
		}
		for j, f := range p.functions {
			project.Functions = append(project.Functions, entity.ProjectFunction{ID: uuid.New(), ProjectID: id, Description: f, SortOrder: j + 1})
		}
		for j, a := range p.technicalAspects {
			project.TechnicalAspects = append(project.TechnicalAspects, entity.ProjectTechnicalAspect{ID: uuid.New(), ProjectID: id, Description: a, SortOrder: j + 1})
		}
		for j, sp := range p.subProjects {
			sub := entity.ProjectSubProject{
				ID:          uuid.New(),
				ProjectID:   id,
				Name:        sp.name,
				Description: optional(sp.description),
				Framework:   optional(sp.framework),
				SortOrder:   j + 1,
			}
			for k, t := range sp.technologies {
				sub.Technologies = append(sub.Technologies, entity.ProjectSubProjectTechnology{ID: uuid.New(), SubProjectID: sub.ID, Name: t, SortOrder: k + 1})
			}
			project.SubProjects = append(project.SubProjects, sub)
		}
		b.data.Projects = append(b.data.Projects, project)
	}
}

func (b *sampleBuilder) overlays() {
	for i, name := range b.skillOrder {
		b.data.ProfileSkills = append(b.data.ProfileSkills, entity.ProfileSkill{
			ProfileID: DefaultProfileID,
			SkillID:   b.skills[name],
			SortOrder: i + 1,
		})
	}
	b.linkSkills(BackendProfileID,
		[]string{"Go", "C#", ".NET", "ASP.NET Core", "Entity Framework Core", "REST API Design", "Git", "Docker", "GitHub Actions", "PostgreSQL", "Redis", "JWT Authentication", "Multi-Tenant Architektur"},
		"Go", "ASP.NET Core", "PostgreSQL")
	b.linkSkills(MobileProfileID,
		[]string{"C#", ".NET", "MAUI", "Uno Platform", "XAML", "Swift", "Kotlin", "Git", "SQLite", "Bluetooth Drucker Anbindung", "Push Notifications", "Offline-First", "App Store Verwaltung"},
		"MAUI", "Uno Platform")

	for i, p := range b.data.Projects {
		b.data.ProfileProjects = append(b.data.ProfileProjects, entity.ProfileProject{
			ProfileID: DefaultProfileID,
			ProjectID: p.ID,
			SortOrder: i + 1,
		})
	}
	b.linkProjects(BackendProfileID, []overlayData{
		{name: "Gemeinde Audit", highlighted: true, description: "REST API mit PostgreSQL und Entity Framework Core, Multi-Tenant Architektur und JWT Authentication."},
		{name: "Kassa Pro", highlighted: true, description: "Backend-Architektur mit REST API, Multi-Device Synchronisation und Druckservice."},
		{name: "Lager Scan", description: "Echtzeit-Updates über SignalR und REST-Anbindung an das ERP."},
	})
	b.linkProjects(MobileProfileID, []overlayData{
		{name: "Kassa Pro", highlighted: true, description: "Cross-Platform Kassensystem mit Drag & Drop UI und Bluetooth-Druckeranbindung."},
		{name: "Stempel Studio", highlighted: true, description: "Custom Editor mit SkiaSharp und Multi-Touch Gesten."},
		{name: "Lager Scan", description: "Barcode-Scanning und Offline-Fähigkeit auf Tablets."},
		{name: "Vereinsplaner"},
	})

	for i, w := range b.data.WorkExperiences {
		b.data.ProfileWorkExperiences = append(b.data.ProfileWorkExperiences, entity.ProfileWorkExperience{
			ProfileID:        DefaultProfileID,
			WorkExperienceID: w.ID,
			SortOrder:        i + 1,
		})
	}
	b.linkWork(BackendProfileID, []overlayData{
		{name: "Selbständig", highlighted: true, description: "Backend-Entwicklung mit ASP.NET Core und Go, API Design, Datenbankarchitektur und CI/CD."},
		{name: "Netzdaten GmbH", highlighted: true, description: "C# Backend-Entwicklung für Datenverwaltungssysteme mit SQL Server."},
		{name: "Stempel Digital GmbH"},
	})
	b.linkWork(MobileProfileID, []overlayData{
		{name: "Selbständig", highlighted: true, description: "Cross-Platform Mobile Entwicklung mit MAUI und Uno Platform, App Store Deployments."},
		{name: "Stempel Digital GmbH", highlighted: true},
		{name: "Netzdaten GmbH"},
	})
}

func (b *sampleBuilder) linkSkills(profileID uuid.UUID, names []string, highlighted ...string) {
	marked := map[string]bool{}
	for _, h := range highlighted {
		marked[h] = true
	}
	for i, name := range names {
		id, ok := b.skills[name]
		if !ok {
			continue
		}
		b.data.ProfileSkills = append(b.data.ProfileSkills, entity.ProfileSkill{
			ProfileID:     profileID,
			SkillID:       id,
			SortOrder:     i + 1,
			IsHighlighted: marked[name],
		})
	}
}

func (b *sampleBuilder) linkProjects(profileID uuid.UUID, overlays []overlayData) {
	for i, o := range overlays {
		id, ok := b.projects[o.name]
		if !ok {
			continue
		}
		b.data.ProfileProjects = append(b.data.ProfileProjects, entity.ProfileProject{
			ProfileID:           profileID,
			ProjectID:           id,
			SortOrder:           i + 1,
			IsHighlighted:       o.highlighted,
			DescriptionOverride: optional(o.description),
		})
	}
}

func (b *sampleBuilder) linkWork(profileID uuid.UUID, overlays []overlayData) {
	for i, o := range overlays {
		id, ok := b.work[o.name]
		if !ok {
			continue
		}
		b.data.ProfileWorkExperiences = append(b.data.ProfileWorkExperiences, entity.ProfileWorkExperience{
			ProfileID:           profileID,
			WorkExperienceID:    id,
			SortOrder:           i + 1,
			IsHighlighted:       o.highlighted,
			DescriptionOverride: optional(o.description),
		})
	}
}
