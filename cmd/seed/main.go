package main

import (
	"context"
	"fmt"
	"os"

	"github.com/skillpath/skillpath-backend/internal/data/db"
	catalogrepo "github.com/skillpath/skillpath-backend/internal/data/repos/catalog"
	"github.com/skillpath/skillpath-backend/internal/pkg/envutil"
	"github.com/skillpath/skillpath-backend/internal/pkg/logger"
	"github.com/skillpath/skillpath-backend/internal/seed"
)

func main() {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	path := envutil.Get("SEED_FILE", "seeds/example_map.yaml", log)
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	fixture, err := seed.Load(path)
	if err != nil {
		log.Fatal("Could not load fixture", "path", path, "error", err)
	}

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	theDB := pg.DB()

	loader := seed.NewLoader(log,
		catalogrepo.NewSkillMapRepo(theDB, log),
		catalogrepo.NewSkillRepo(theDB, log),
		catalogrepo.NewLearningUnitRepo(theDB, log),
	)

	skillMapID, err := loader.Apply(context.Background(), fixture)
	if err != nil {
		log.Fatal("Seed failed", "error", err)
	}
	log.Info("Seed complete", "skill_map_id", skillMapID)
}
