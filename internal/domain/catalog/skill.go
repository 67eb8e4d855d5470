package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SkillMap is the repository scope for graph construction. Edges never cross
// skill maps.
type SkillMap struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string         `gorm:"column:name;not null" json:"name"`
	Description string         `gorm:"column:description;type:text" json:"description,omitempty"`
	OwnerID     *uuid.UUID     `gorm:"type:uuid;column:owner_id;index" json:"owner_id,omitempty"`
	Metadata    datatypes.JSON `gorm:"column:metadata;type:jsonb" json:"metadata,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (SkillMap) TableName() string { return "skill_map" }

type Skill struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SkillMapID uuid.UUID `gorm:"type:uuid;not null;index" json:"skill_map_id"`
	SkillMap   *SkillMap `gorm:"constraint:OnDelete:CASCADE;foreignKey:SkillMapID;references:ID" json:"skill_map,omitempty"`

	Name        string `gorm:"column:name;not null" json:"name"`
	Level       int    `gorm:"column:level;not null;default:0" json:"level"`
	Description string `gorm:"column:description;type:text" json:"description,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Skill) TableName() string { return "skill" }

// SkillNesting links a child skill to the parent skill it contributes to.
type SkillNesting struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ParentSkillID uuid.UUID `gorm:"type:uuid;not null;index:idx_skill_nesting,unique,priority:1" json:"parent_skill_id"`
	ChildSkillID  uuid.UUID `gorm:"type:uuid;not null;index:idx_skill_nesting,unique,priority:2" json:"child_skill_id"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (SkillNesting) TableName() string { return "skill_nesting" }
