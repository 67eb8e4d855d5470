package app

import (
	"gorm.io/gorm"

	"github.com/skillpath/skillpath-backend/internal/events"
	"github.com/skillpath/skillpath-backend/internal/pkg/logger"
	"github.com/skillpath/skillpath-backend/internal/services"
)

type Services struct {
	Catalog    services.CatalogService
	Path       services.PathService
	Enrollment services.EnrollmentService
	Learner    services.LearnerService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos, bus events.Bus) Services {
	log.Info("Wiring services...")

	source := services.NewGraphSource(repos.Skill, repos.LearningUnit)

	return Services{
		Catalog: services.NewCatalogService(log, repos.SkillMap),
		Path:    services.NewPathService(log, source, cfg.ExtensionMode, repos.LearnedSkill),
		Enrollment: services.NewEnrollmentService(
			db, log, source, cfg.ExtensionMode, cfg.PassingThreshold, bus,
			repos.Learner, repos.LearnedSkill, repos.PathDefinition,
			repos.PersonalizedPath, repos.UnitInstance, repos.LearningUnit,
		),
		Learner: services.NewLearnerService(log, repos.Learner, repos.LearnedSkill, repos.PersonalizedPath),
	}
}
