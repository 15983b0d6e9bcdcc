package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/bkerti/lycka-siteweb-sub000/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

var (
	projectCategories = []string{"residential", "commercial", "renovation", "urbanism"}

	serviceCatalog = []struct {
		title string
		icon  string
	}{
		{"Architectural Design", "blueprint"},
		{"Building Permits", "stamp"},
		{"Construction Supervision", "hard-hat"},
		{"Interior Design", "sofa"},
		{"Feasibility Studies", "chart"},
		{"3D Visualization", "cube"},
		{"Landscape Design", "tree"},
		{"Energy Audits", "bolt"},
	}

	reactionTypes = []string{"like", "love", "wow", "idea"}
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rnd *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// buildMedia generates a small gallery with stable opaque media ids, the
// same shape the admin UI produces when attaching uploads.
func (f *Factory) buildMedia(n int) models.MediaList {
	media := make(models.MediaList, 0, n)
	for i := 0; i < n; i++ {
		media = append(media, models.MediaItem{
			URL:  fmt.Sprintf("https://picsum.photos/seed/%s/1200/800", gofakeit.UUID()),
			Type: "image",
		})
	}
	return media
}

// CreateProjects persists n portfolio projects with realistic galleries.
func (f *Factory) CreateProjects(n int) ([]*models.Project, error) {
	projects := make([]*models.Project, 0, n)
	for i := 0; i < n; i++ {
		startYear := 2015 + f.rnd.Intn(10)
		year := fmt.Sprintf("%d", startYear)
		if f.rnd.Intn(3) == 0 {
			year = fmt.Sprintf("%d-%d", startYear, startYear+1+f.rnd.Intn(2))
		}
		projects = append(projects, &models.Project{
			Title:       fmt.Sprintf("%s %s", gofakeit.Adjective(), gofakeit.NounAbstract()),
			Description: gofakeit.Paragraph(2, 4, 8, "\n"),
			Category:    projectCategories[f.rnd.Intn(len(projectCategories))],
			Location:    fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.Country()),
			Year:        year,
			Media:       f.buildMedia(2 + f.rnd.Intn(4)),
		})
	}
	if err := f.db.Create(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateServices persists up to n entries from the fixed service catalog.
// Titles are unique so the catalog caps the count.
func (f *Factory) CreateServices(n int) ([]*models.Service, error) {
	if n > len(serviceCatalog) {
		n = len(serviceCatalog)
	}
	services := make([]*models.Service, 0, n)
	for i := 0; i < n; i++ {
		services = append(services, &models.Service{
			Title:       serviceCatalog[i].title,
			Description: gofakeit.Paragraph(1, 3, 10, "\n"),
			Icon:        serviceCatalog[i].icon,
			Price:       float64(gofakeit.Number(500, 20000)),
		})
	}
	if err := f.db.Create(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// CreateHomeModels persists n catalog house models.
func (f *Factory) CreateHomeModels(n int) ([]*models.HomeModel, error) {
	homeModels := make([]*models.HomeModel, 0, n)
	for i := 0; i < n; i++ {
		homeModels = append(homeModels, &models.HomeModel{
			Name:        fmt.Sprintf("Villa %s %d", gofakeit.LastName(), 100+i),
			Description: gofakeit.Paragraph(1, 4, 10, "\n"),
			Price:       float64(gofakeit.Number(80000, 450000)),
			Area:        fmt.Sprintf("%d m²", gofakeit.Number(70, 320)),
			Bedrooms:    gofakeit.Number(1, 6),
			Media:       f.buildMedia(3 + f.rnd.Intn(3)),
		})
	}
	if err := f.db.Create(&homeModels).Error; err != nil {
		return nil, err
	}
	return homeModels, nil
}

// CreateArticles persists n blog articles, each with a few reader comments.
func (f *Factory) CreateArticles(n int) ([]*models.BlogArticle, error) {
	articles := make([]*models.BlogArticle, 0, n)
	for i := 0; i < n; i++ {
		article := &models.BlogArticle{
			Title:     fmt.Sprintf("%s: %s", gofakeit.HackerVerb(), gofakeit.Sentence(4)),
			Content:   gofakeit.Paragraph(4, 6, 12, "\n\n"),
			Author:    gofakeit.Name(),
			Media:     f.buildMedia(1 + f.rnd.Intn(2)),
			CreatedAt: f.pastTime(120),
		}
		if err := f.db.Create(article).Error; err != nil {
			return nil, err
		}

		for j := 0; j < f.rnd.Intn(5); j++ {
			comment := &models.BlogComment{
				ArticleID:  article.ID,
				AuthorName: gofakeit.FirstName(),
				Content:    gofakeit.Sentence(8 + f.rnd.Intn(10)),
				CreatedAt:  f.pastTime(30),
			}
			if err := f.db.Create(comment).Error; err != nil {
				return nil, err
			}
		}
		articles = append(articles, article)
	}
	return articles, nil
}

// CreateTestimonials persists n client quotes.
func (f *Factory) CreateTestimonials(n int) ([]*models.Testimonial, error) {
	testimonials := make([]*models.Testimonial, 0, n)
	for i := 0; i < n; i++ {
		author := gofakeit.Name()
		if f.rnd.Intn(5) == 0 {
			author = "Anonyme"
		}
		testimonials = append(testimonials, &models.Testimonial{
			AuthorName: author,
			Content:    gofakeit.Sentence(10 + f.rnd.Intn(15)),
			Rating:     3 + f.rnd.Intn(3),
			CreatedAt:  f.pastTime(180),
		})
	}
	if err := f.db.Create(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

// CreateEngagement sprinkles comments and reactions over the galleries of
// the given projects and home models.
func (f *Factory) CreateEngagement(projects []*models.Project, homeModels []*models.HomeModel) error {
	var mediaIDs []string
	for _, p := range projects {
		for _, m := range p.Media {
			mediaIDs = append(mediaIDs, m.URL)
		}
	}
	for _, h := range homeModels {
		for _, m := range h.Media {
			mediaIDs = append(mediaIDs, m.URL)
		}
	}
	if len(mediaIDs) == 0 {
		return nil
	}

	for _, mediaID := range mediaIDs {
		for i := 0; i < f.rnd.Intn(3); i++ {
			comment := &models.MediaComment{
				MediaID:    mediaID,
				AuthorName: gofakeit.FirstName(),
				Content:    gofakeit.Sentence(6 + f.rnd.Intn(8)),
				CreatedAt:  f.pastTime(60),
			}
			if err := f.db.Create(comment).Error; err != nil {
				return err
			}
		}
		for i := 0; i < f.rnd.Intn(8); i++ {
			reaction := &models.MediaReaction{
				MediaID:      mediaID,
				ReactionType: reactionTypes[f.rnd.Intn(len(reactionTypes))],
			}
			if err := f.db.Create(reaction).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// CreateVisits writes a daily traffic curve over the trailing days so the
// dashboard charts show something other than a flat line.
func (f *Factory) CreateVisits(days int) error {
	if days <= 0 {
		return nil
	}
	now := time.Now().UTC()
	var visits []*models.Visit
	for d := 0; d < days; d++ {
		day := now.AddDate(0, 0, -d)
		// weekends dip
		perDay := 10 + f.rnd.Intn(30)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			perDay /= 2
		}
		for i := 0; i < perDay; i++ {
			visits = append(visits, &models.Visit{
				VisitedAt: time.Date(day.Year(), day.Month(), day.Day(),
					f.rnd.Intn(24), f.rnd.Intn(60), f.rnd.Intn(60), 0, time.UTC),
			})
		}
	}
	return f.db.CreateInBatches(&visits, 500).Error
}

func (f *Factory) pastTime(maxDays int) time.Time {
	return time.Now().UTC().
		Add(-time.Duration(f.rnd.Intn(maxDays*24)) * time.Hour).
		Add(-time.Duration(f.rnd.Intn(60)) * time.Minute)
}
