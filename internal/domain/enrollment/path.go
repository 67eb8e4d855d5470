package enrollment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PathDefinition is a curated, shareable path: a named goal skill set that
// learners can enroll into without supplying ad-hoc goals.
type PathDefinition struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SkillMapID uuid.UUID `gorm:"type:uuid;not null;index" json:"skill_map_id"`

	Title       string `gorm:"column:title;not null" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description,omitempty"`

	// Skill id arrays, resolved against the owning skill map at enroll time.
	GoalSkillIDs     datatypes.JSON `gorm:"column:goal_skill_ids;type:jsonb" json:"goal_skill_ids,omitempty"`
	RequiredSkillIDs datatypes.JSON `gorm:"column:required_skill_ids;type:jsonb" json:"required_skill_ids,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (PathDefinition) TableName() string { return "path_definition" }
