package enrollment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PathStatus string

const (
	PathOpen       PathStatus = "open"
	PathInProgress PathStatus = "in_progress"
	PathFinished   PathStatus = "finished"
)

type InstanceStatus string

const (
	InstanceOpen       InstanceStatus = "open"
	InstanceInProgress InstanceStatus = "in_progress"
	InstanceFinished   InstanceStatus = "finished"
)

// PersonalizedPath is a learner-owned enrollment: one ordered copy of a
// computed or curated path with per-unit progress. Repeated enrollments for
// the same learner and definition are intentionally independent rows.
type PersonalizedPath struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	LearnerID uuid.UUID `gorm:"type:uuid;not null;index" json:"learner_id"`

	SourcePathID *uuid.UUID      `gorm:"type:uuid;column:source_path_id;index" json:"source_path_id,omitempty"`
	SourcePath   *PathDefinition `gorm:"foreignKey:SourcePathID;references:ID" json:"source_path,omitempty"`

	SkillMapID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"skill_map_id"`
	GoalSkillIDs datatypes.JSON `gorm:"column:goal_skill_ids;type:jsonb" json:"goal_skill_ids,omitempty"`

	// Derived from the instance statuses, never set directly.
	Status PathStatus `gorm:"column:status;type:text;not null;default:'open';index" json:"status"`

	Instances []*UnitInstance `gorm:"foreignKey:PersonalizedPathID;references:ID" json:"instances,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (PersonalizedPath) TableName() string { return "personalized_path" }

// UnitInstance tracks one learner's progress on one unit of a personalized
// path. Identity is (personalized_path_id, learning_unit_id); rows are only
// deleted together with the owning path.
type UnitInstance struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PersonalizedPathID uuid.UUID `gorm:"type:uuid;not null;index:idx_unit_instance,unique,priority:1" json:"personalized_path_id"`
	LearningUnitID     uuid.UUID `gorm:"type:uuid;not null;index:idx_unit_instance,unique,priority:2;index" json:"learning_unit_id"`

	Position int            `gorm:"column:position;not null" json:"position"`
	Status   InstanceStatus `gorm:"column:status;type:text;not null;default:'open'" json:"status"`

	ProcessingTimeSeconds *int     `gorm:"column:processing_time_seconds" json:"processing_time_seconds,omitempty"`
	Score                 *float64 `gorm:"column:score" json:"score,omitempty"`
	MaxScore              *float64 `gorm:"column:max_score" json:"max_score,omitempty"`

	StartedAt  *time.Time `gorm:"column:started_at" json:"started_at,omitempty"`
	FinishedAt *time.Time `gorm:"column:finished_at" json:"finished_at,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (UnitInstance) TableName() string { return "unit_instance" }
