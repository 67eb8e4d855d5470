package db

import (
	"gorm.io/gorm"

	types "github.com/skillpath/skillpath-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(

		// =========================
		// Catalog (skill maps + units)
		// =========================
		&types.SkillMap{},
		&types.Skill{},
		&types.SkillNesting{},
		&types.LearningUnit{},
		&types.UnitRequirement{},
		&types.UnitGoal{},

		// =========================
		// Learners + learning history
		// =========================
		&types.Learner{},
		&types.LearnedSkill{},

		// =========================
		// Enrollment
		// =========================
		&types.PathDefinition{},
		&types.PersonalizedPath{},
		&types.UnitInstance{},
	)
}
