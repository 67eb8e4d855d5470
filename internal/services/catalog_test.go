package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	catalogrepo "github.com/skillpath/skillpath-backend/internal/data/repos/catalog"
	"github.com/skillpath/skillpath-backend/internal/data/repos/testutil"
	types "github.com/skillpath/skillpath-backend/internal/domain"
	apperrors "github.com/skillpath/skillpath-backend/internal/pkg/errors"
)

func TestCatalogSkillMaps(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	ctx := context.Background()

	svc := NewCatalogService(log, catalogrepo.NewSkillMapRepo(tx, log))

	m1 := testutil.SeedSkillMap(t, ctx, tx, "backend")
	m2 := testutil.SeedSkillMap(t, ctx, tx, "frontend")

	listed := func(id uuid.UUID) bool {
		maps, err := svc.ListSkillMaps(ctx)
		if err != nil {
			t.Fatalf("ListSkillMaps: %v", err)
		}
		for _, m := range maps {
			if m.ID == id {
				return true
			}
		}
		return false
	}
	if !listed(m1.ID) || !listed(m2.ID) {
		t.Fatalf("seeded skill maps missing from listing")
	}

	got, err := svc.GetSkillMap(ctx, m1.ID)
	if err != nil || got.Name != "backend" {
		t.Fatalf("GetSkillMap: got=%+v err=%v", got, err)
	}
	if _, err := svc.GetSkillMap(ctx, uuid.New()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("GetSkillMap unknown id: err=%v, want ErrNotFound", err)
	}

	if err := svc.DeleteSkillMap(ctx, m2.ID); err != nil {
		t.Fatalf("DeleteSkillMap: %v", err)
	}
	if listed(m2.ID) {
		t.Fatalf("deleted skill map still listed")
	}
	if !listed(m1.ID) {
		t.Fatalf("unrelated skill map disappeared")
	}
	var gone *types.SkillMap
	gone, err = svc.GetSkillMap(ctx, m2.ID)
	if !errors.Is(err, apperrors.ErrNotFound) || gone != nil {
		t.Fatalf("GetSkillMap after delete: got=%+v err=%v", gone, err)
	}
	if err := svc.DeleteSkillMap(ctx, m2.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("repeated DeleteSkillMap: err=%v, want ErrNotFound", err)
	}
}
