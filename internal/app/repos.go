package app

import (
	"gorm.io/gorm"

	catalogrepo "github.com/skillpath/skillpath-backend/internal/data/repos/catalog"
	learnerrepo "github.com/skillpath/skillpath-backend/internal/data/repos/learner"
	"github.com/skillpath/skillpath-backend/internal/pkg/logger"
)

type Repos struct {
	SkillMap         catalogrepo.SkillMapRepo
	Skill            catalogrepo.SkillRepo
	LearningUnit     catalogrepo.LearningUnitRepo
	Learner          learnerrepo.LearnerRepo
	LearnedSkill     learnerrepo.LearnedSkillRepo
	PathDefinition   learnerrepo.PathDefinitionRepo
	PersonalizedPath learnerrepo.PersonalizedPathRepo
	UnitInstance     learnerrepo.UnitInstanceRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		SkillMap:         catalogrepo.NewSkillMapRepo(db, log),
		Skill:            catalogrepo.NewSkillRepo(db, log),
		LearningUnit:     catalogrepo.NewLearningUnitRepo(db, log),
		Learner:          learnerrepo.NewLearnerRepo(db, log),
		LearnedSkill:     learnerrepo.NewLearnedSkillRepo(db, log),
		PathDefinition:   learnerrepo.NewPathDefinitionRepo(db, log),
		PersonalizedPath: learnerrepo.NewPersonalizedPathRepo(db, log),
		UnitInstance:     learnerrepo.NewUnitInstanceRepo(db, log),
	}
}
