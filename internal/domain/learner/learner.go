package learner

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Learner struct {
	ID    uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name  string    `gorm:"column:name;not null" json:"name"`
	Email string    `gorm:"column:email;uniqueIndex" json:"email,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Learner) TableName() string { return "learner" }

// LearnedSkill is one entry in a learner's learning history. The table is
// append-only: finishing a unit that teaches an already-known skill adds
// another timestamped row rather than failing.
type LearnedSkill struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	LearnerID uuid.UUID `gorm:"type:uuid;not null;index:idx_learned_skill_learner,priority:1" json:"learner_id"`
	SkillID   uuid.UUID `gorm:"type:uuid;not null;index:idx_learned_skill_learner,priority:2;index" json:"skill_id"`

	AcquiredAt time.Time `gorm:"column:acquired_at;not null;default:now();index" json:"acquired_at"`
}

func (LearnedSkill) TableName() string { return "learned_skill" }
