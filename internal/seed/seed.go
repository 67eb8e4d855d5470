package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	catalogrepo "github.com/skillpath/skillpath-backend/internal/data/repos/catalog"
	types "github.com/skillpath/skillpath-backend/internal/domain"
	"github.com/skillpath/skillpath-backend/internal/pkg/dbctx"
	"github.com/skillpath/skillpath-backend/internal/pkg/logger"
)

// Fixture is the YAML shape for a dev skill map. Skills and units refer to
// each other by key, resolved to generated ids on apply.
type Fixture struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	Skills []SkillFixture `yaml:"skills"`
	Units  []UnitFixture  `yaml:"units"`
}

type SkillFixture struct {
	Key         string   `yaml:"key"`
	Name        string   `yaml:"name"`
	Level       int      `yaml:"level"`
	Description string   `yaml:"description"`
	Children    []string `yaml:"children"`
}

type UnitFixture struct {
	Title                 string   `yaml:"title"`
	Language              string   `yaml:"language"`
	Description           string   `yaml:"description"`
	Lifecycle             string   `yaml:"lifecycle"`
	ProcessingTimeMinutes int      `yaml:"processing_time_minutes"`
	Requires              []string `yaml:"requires"`
	Teaches               []string `yaml:"teaches"`
}

func Load(path string) (*Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var f Fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	if f.Name == "" {
		return nil, fmt.Errorf("fixture has no skill map name")
	}
	return &f, nil
}

type Loader struct {
	log     *logger.Logger
	mapRepo catalogrepo.SkillMapRepo
	skills  catalogrepo.SkillRepo
	units   catalogrepo.LearningUnitRepo
}

func NewLoader(baseLog *logger.Logger, mapRepo catalogrepo.SkillMapRepo, skills catalogrepo.SkillRepo, units catalogrepo.LearningUnitRepo) *Loader {
	return &Loader{
		log:     baseLog.With("component", "SeedLoader"),
		mapRepo: mapRepo,
		skills:  skills,
		units:   units,
	}
}

// Apply creates the fixture's skill map, skills, nestings and units.
// Skills go in sequentially so key resolution is complete before units are
// inserted concurrently.
func (l *Loader) Apply(ctx context.Context, f *Fixture) (uuid.UUID, error) {
	dbc := dbctx.Context{Ctx: ctx}

	maps, err := l.mapRepo.Create(dbc, []*types.SkillMap{{
		ID:          uuid.New(),
		Name:        f.Name,
		Description: f.Description,
	}})
	if err != nil {
		return uuid.Nil, fmt.Errorf("create skill map: %w", err)
	}
	skillMapID := maps[0].ID

	byKey := make(map[string]uuid.UUID, len(f.Skills))
	rows := make([]*types.Skill, 0, len(f.Skills))
	for _, s := range f.Skills {
		if s.Key == "" {
			return uuid.Nil, fmt.Errorf("skill %q has no key", s.Name)
		}
		if _, dup := byKey[s.Key]; dup {
			return uuid.Nil, fmt.Errorf("duplicate skill key %q", s.Key)
		}
		id := uuid.New()
		byKey[s.Key] = id
		rows = append(rows, &types.Skill{
			ID:          id,
			SkillMapID:  skillMapID,
			Name:        s.Name,
			Level:       s.Level,
			Description: s.Description,
		})
	}
	if _, err := l.skills.Create(dbc, rows); err != nil {
		return uuid.Nil, fmt.Errorf("create skills: %w", err)
	}

	var nestings []*types.SkillNesting
	for _, s := range f.Skills {
		for _, childKey := range s.Children {
			childID, ok := byKey[childKey]
			if !ok {
				return uuid.Nil, fmt.Errorf("skill %q nests unknown child %q", s.Key, childKey)
			}
			nestings = append(nestings, &types.SkillNesting{
				ID:            uuid.New(),
				ParentSkillID: byKey[s.Key],
				ChildSkillID:  childID,
			})
		}
	}
	if len(nestings) > 0 {
		if err := l.skills.CreateNestings(dbc, nestings); err != nil {
			return uuid.Nil, fmt.Errorf("create nestings: %w", err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, u := range f.Units {
		u := u
		g.Go(func() error {
			return l.applyUnit(gctx, u, byKey)
		})
	}
	if err := g.Wait(); err != nil {
		return uuid.Nil, err
	}

	l.log.Info("fixture applied",
		"skill_map_id", skillMapID, "skills", len(f.Skills), "units", len(f.Units))
	return skillMapID, nil
}

func (l *Loader) applyUnit(ctx context.Context, u UnitFixture, byKey map[string]uuid.UUID) error {
	dbc := dbctx.Context{Ctx: ctx}

	lifecycle := u.Lifecycle
	if lifecycle == "" {
		lifecycle = types.UnitLifecyclePool
	}
	language := u.Language
	if language == "" {
		language = "en"
	}

	unit := &types.LearningUnit{
		ID:                    uuid.New(),
		Title:                 u.Title,
		Language:              language,
		Description:           u.Description,
		Lifecycle:             lifecycle,
		ProcessingTimeMinutes: u.ProcessingTimeMinutes,
	}
	if _, err := l.units.Create(dbc, []*types.LearningUnit{unit}); err != nil {
		return fmt.Errorf("create unit %q: %w", u.Title, err)
	}

	var reqs []*types.UnitRequirement
	for _, key := range u.Requires {
		id, ok := byKey[key]
		if !ok {
			return fmt.Errorf("unit %q requires unknown skill %q", u.Title, key)
		}
		reqs = append(reqs, &types.UnitRequirement{ID: uuid.New(), LearningUnitID: unit.ID, SkillID: id})
	}
	if len(reqs) > 0 {
		if err := l.units.CreateRequirements(dbc, reqs); err != nil {
			return fmt.Errorf("create requirements for %q: %w", u.Title, err)
		}
	}

	var goals []*types.UnitGoal
	for _, key := range u.Teaches {
		id, ok := byKey[key]
		if !ok {
			return fmt.Errorf("unit %q teaches unknown skill %q", u.Title, key)
		}
		goals = append(goals, &types.UnitGoal{ID: uuid.New(), LearningUnitID: unit.ID, SkillID: id})
	}
	if len(goals) > 0 {
		if err := l.units.CreateGoals(dbc, goals); err != nil {
			return fmt.Errorf("create goals for %q: %w", u.Title, err)
		}
	}
	return nil
}
