package pathgraph

import (
	"time"

	"github.com/google/uuid"

	types "github.com/skillpath/skillpath-backend/internal/domain"
)

// ExtensionMode selects which learning unit personality the deployment
// speaks. Chosen once at service construction, never per call.
type ExtensionMode string

const (
	ModeSelfLearn ExtensionMode = "self_learn"
	ModeSearch    ExtensionMode = "search"
)

type UnitSummary struct {
	ID             uuid.UUID     `json:"id"`
	Title          string        `json:"title"`
	Language       string        `json:"language"`
	Detail         string        `json:"detail,omitempty"`
	ProcessingTime time.Duration `json:"processing_time,omitempty"`
}

// UnitView abstracts over the two unit extension personalities so the path
// computation never type-switches on unit payloads.
type UnitView interface {
	Summarize(u *types.LearningUnit) UnitSummary
}

// ViewFor returns the view for a mode, defaulting to self-learn.
func ViewFor(mode ExtensionMode) UnitView {
	if mode == ModeSearch {
		return SearchView{}
	}
	return SelfLearnView{}
}

// SelfLearnView describes units by their free-text description.
type SelfLearnView struct{}

func (SelfLearnView) Summarize(u *types.LearningUnit) UnitSummary {
	return UnitSummary{
		ID:       u.ID,
		Title:    u.Title,
		Language: u.Language,
		Detail:   u.Description,
	}
}

// SearchView describes units by lifecycle and measured processing time.
type SearchView struct{}

func (SearchView) Summarize(u *types.LearningUnit) UnitSummary {
	return UnitSummary{
		ID:             u.ID,
		Title:          u.Title,
		Language:       u.Language,
		Detail:         u.Lifecycle,
		ProcessingTime: time.Duration(u.ProcessingTimeMinutes) * time.Minute,
	}
}
