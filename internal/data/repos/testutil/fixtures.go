package testutil

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/skillpath/skillpath-backend/internal/domain"
)

func SeedSkillMap(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.SkillMap {
	tb.Helper()
	m := &types.SkillMap{
		ID:       uuid.New(),
		Name:     name,
		Metadata: datatypes.JSON([]byte("{}")),
	}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed skill map: %v", err)
	}
	return m
}

func SeedSkill(tb testing.TB, ctx context.Context, tx *gorm.DB, skillMapID uuid.UUID, name string) *types.Skill {
	tb.Helper()
	s := &types.Skill{
		ID:         uuid.New(),
		SkillMapID: skillMapID,
		Name:       name,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed skill: %v", err)
	}
	return s
}

func SeedUnit(tb testing.TB, ctx context.Context, tx *gorm.DB, title string, requires, teaches []uuid.UUID) *types.LearningUnit {
	tb.Helper()
	u := &types.LearningUnit{
		ID:        uuid.New(),
		Title:     title,
		Language:  "en",
		Lifecycle: types.UnitLifecyclePool,
		Metadata:  datatypes.JSON([]byte("{}")),
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed unit: %v", err)
	}
	for _, sid := range requires {
		row := &types.UnitRequirement{ID: uuid.New(), LearningUnitID: u.ID, SkillID: sid}
		if err := tx.WithContext(ctx).Create(row).Error; err != nil {
			tb.Fatalf("seed unit requirement: %v", err)
		}
	}
	for _, sid := range teaches {
		row := &types.UnitGoal{ID: uuid.New(), LearningUnitID: u.ID, SkillID: sid}
		if err := tx.WithContext(ctx).Create(row).Error; err != nil {
			tb.Fatalf("seed unit goal: %v", err)
		}
	}
	return u
}

func SeedLearner(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.Learner {
	tb.Helper()
	l := &types.Learner{
		ID:    uuid.New(),
		Name:  "learner",
		Email: email,
	}
	if err := tx.WithContext(ctx).Create(l).Error; err != nil {
		tb.Fatalf("seed learner: %v", err)
	}
	return l
}

func SeedPathDefinition(tb testing.TB, ctx context.Context, tx *gorm.DB, skillMapID uuid.UUID, title string, goalSkillIDs, requiredSkillIDs []uuid.UUID) *types.PathDefinition {
	tb.Helper()
	goals, err := json.Marshal(goalSkillIDs)
	if err != nil {
		tb.Fatalf("encode goal skills: %v", err)
	}
	required, err := json.Marshal(requiredSkillIDs)
	if err != nil {
		tb.Fatalf("encode required skills: %v", err)
	}
	def := &types.PathDefinition{
		ID:               uuid.New(),
		SkillMapID:       skillMapID,
		Title:            title,
		GoalSkillIDs:     datatypes.JSON(goals),
		RequiredSkillIDs: datatypes.JSON(required),
	}
	if err := tx.WithContext(ctx).Create(def).Error; err != nil {
		tb.Fatalf("seed path definition: %v", err)
	}
	return def
}

func SeedPersonalizedPath(tb testing.TB, ctx context.Context, tx *gorm.DB, learnerID, skillMapID uuid.UUID, unitIDs []uuid.UUID) *types.PersonalizedPath {
	tb.Helper()
	p := &types.PersonalizedPath{
		ID:           uuid.New(),
		LearnerID:    learnerID,
		SkillMapID:   skillMapID,
		GoalSkillIDs: datatypes.JSON([]byte("[]")),
		Status:       types.PathOpen,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed personalized path: %v", err)
	}
	for i, uid := range unitIDs {
		inst := &types.UnitInstance{
			ID:                 uuid.New(),
			PersonalizedPathID: p.ID,
			LearningUnitID:     uid,
			Position:           i,
			Status:             types.InstanceOpen,
		}
		if err := tx.WithContext(ctx).Create(inst).Error; err != nil {
			tb.Fatalf("seed unit instance: %v", err)
		}
	}
	return p
}
