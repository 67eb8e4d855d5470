package domain

import (
	"github.com/skillpath/skillpath-backend/internal/domain/catalog"
	"github.com/skillpath/skillpath-backend/internal/domain/enrollment"
	"github.com/skillpath/skillpath-backend/internal/domain/learner"
)

// Catalog (skill maps, skills, learning units).
type (
	SkillMap        = catalog.SkillMap
	Skill           = catalog.Skill
	SkillNesting    = catalog.SkillNesting
	LearningUnit    = catalog.LearningUnit
	UnitRequirement = catalog.UnitRequirement
	UnitGoal        = catalog.UnitGoal
)

const (
	UnitLifecycleDraft    = catalog.UnitLifecycleDraft
	UnitLifecyclePool     = catalog.UnitLifecyclePool
	UnitLifecycleArchived = catalog.UnitLifecycleArchived
)

// Learner + learning history.
type (
	Learner      = learner.Learner
	LearnedSkill = learner.LearnedSkill
)

// Enrollment (path definitions, personalized paths, unit instances).
type (
	PathDefinition   = enrollment.PathDefinition
	PersonalizedPath = enrollment.PersonalizedPath
	UnitInstance     = enrollment.UnitInstance
	PathStatus       = enrollment.PathStatus
	InstanceStatus   = enrollment.InstanceStatus
)

const (
	PathOpen       = enrollment.PathOpen
	PathInProgress = enrollment.PathInProgress
	PathFinished   = enrollment.PathFinished

	InstanceOpen       = enrollment.InstanceOpen
	InstanceInProgress = enrollment.InstanceInProgress
	InstanceFinished   = enrollment.InstanceFinished
)
