package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LearningUnit lifecycle states used by the search-extension personality.
const (
	UnitLifecycleDraft    = "draft"
	UnitLifecyclePool     = "pool"
	UnitLifecycleArchived = "archived"
)

type LearningUnit struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	Title    string `gorm:"column:title;not null" json:"title"`
	Language string `gorm:"column:language;not null;default:'en'" json:"language"`

	// Self-learn personality payload.
	Description string `gorm:"column:description;type:text" json:"description,omitempty"`

	// Search personality payload.
	Lifecycle             string `gorm:"column:lifecycle;not null;default:'draft';index" json:"lifecycle"`
	ProcessingTimeMinutes int    `gorm:"column:processing_time_minutes;not null;default:0" json:"processing_time_minutes"`

	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb" json:"metadata,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (LearningUnit) TableName() string { return "learning_unit" }

// UnitRequirement links a unit to a skill the learner must already hold.
type UnitRequirement struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	LearningUnitID uuid.UUID `gorm:"type:uuid;not null;index:idx_unit_requirement,unique,priority:1" json:"learning_unit_id"`
	SkillID        uuid.UUID `gorm:"type:uuid;not null;index:idx_unit_requirement,unique,priority:2;index" json:"skill_id"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (UnitRequirement) TableName() string { return "unit_requirement" }

// UnitGoal links a unit to a skill it grants on completion.
type UnitGoal struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	LearningUnitID uuid.UUID `gorm:"type:uuid;not null;index:idx_unit_goal,unique,priority:1" json:"learning_unit_id"`
	SkillID        uuid.UUID `gorm:"type:uuid;not null;index:idx_unit_goal,unique,priority:2;index" json:"skill_id"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (UnitGoal) TableName() string { return "unit_goal" }
