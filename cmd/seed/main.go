// Command main runs the database seeder for the Lycka Siteweb backend.
package main

import (
	"flag"
	"log"

	"github.com/bkerti/lycka-siteweb-sub000/internal/config"
	"github.com/bkerti/lycka-siteweb-sub000/internal/database"
	"github.com/bkerti/lycka-siteweb-sub000/internal/seed"
)

func main() {
	numProjects := flag.Int("projects", 12, "Number of projects to create")
	numServices := flag.Int("services", 6, "Number of services to create")
	numHomeModels := flag.Int("homemodels", 8, "Number of home models to create")
	numArticles := flag.Int("articles", 10, "Number of blog articles to create")
	numTestimonials := flag.Int("testimonials", 15, "Number of testimonials to create")
	visitDays := flag.Int("visit-days", 45, "Days of visit history to generate")
	shouldClean := flag.Bool("clean", true, "Clean content tables before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.Options{
		NumProjects:     *numProjects,
		NumServices:     *numServices,
		NumHomeModels:   *numHomeModels,
		NumArticles:     *numArticles,
		NumTestimonials: *numTestimonials,
		NumVisitDays:    *visitDays,
		ShouldClean:     *shouldClean,
	}
	if err := seed.Seed(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
