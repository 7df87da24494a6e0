package usecase

import (
	"context"
	"testing"

	"winestudy/internal/database/seeder"
	"winestudy/internal/domain/catalog"
	"winestudy/internal/domain/study"
)

func TestSeed_Core(t *testing.T) {
	cat := &fakeCatalogRepo{}
	st := &fakeStudyRepo{}
	uc := NewSeedUsecase(cat, st)

	report, err := uc.SeedCore(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.Message != "Database seeded successfully" {
		t.Fatalf("unexpected message %q", report.Message)
	}

	want := map[string]int{
		"countries":      10,
		"regions":        10,
		"grapes":         12,
		"aroma_tags":     24,
		"study_tracks":   3,
		"lessons":        5,
		"quiz_questions": 6,
	}
	for k, v := range want {
		if report.Counts[k] != v {
			t.Fatalf("count %s: expected %d, got %d", k, v, report.Counts[k])
		}
	}
}

func TestSeed_Core_AlreadySeeded(t *testing.T) {
	cat := &fakeCatalogRepo{countries: seeder.Countries}
	st := &fakeStudyRepo{}
	uc := NewSeedUsecase(cat, st)

	report, err := uc.SeedCore(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.Message != "Database already seeded" {
		t.Fatalf("unexpected message %q", report.Message)
	}
	if len(report.Counts) != 0 {
		t.Fatalf("no inserts expected, got %v", report.Counts)
	}
	if len(cat.countries) != len(seeder.Countries) {
		t.Fatalf("seed ran twice")
	}
}

func TestSeed_Expand_GuardedByIntermediateLessons(t *testing.T) {
	st := &fakeStudyRepo{}
	uc := NewSeedUsecase(&fakeCatalogRepo{}, st)

	report, err := uc.SeedExpand(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.Counts["lessons"] != len(seeder.ExpandedLessons) {
		t.Fatalf("expected %d lessons, got %d", len(seeder.ExpandedLessons), report.Counts["lessons"])
	}

	report, err = uc.SeedExpand(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.Message != "Study content already expanded" {
		t.Fatalf("unexpected message %q", report.Message)
	}
}

func TestSeed_GrapesComplete_InsertsOnlyMissing(t *testing.T) {
	cat := &fakeCatalogRepo{grapes: append([]catalog.Grape{}, seeder.CompleteGrapes[:3]...)}
	uc := NewSeedUsecase(cat, &fakeStudyRepo{})

	report, err := uc.SeedGrapesComplete(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	wantMissing := len(seeder.CompleteGrapes) - 3
	if report.Counts["grapes"] != wantMissing {
		t.Fatalf("expected %d inserts, got %d", wantMissing, report.Counts["grapes"])
	}

	report, err = uc.SeedGrapesComplete(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.Message != "Grape catalog already complete" {
		t.Fatalf("unexpected message %q", report.Message)
	}
}

func TestSeed_RegionsComplete_InsertsOnlyMissing(t *testing.T) {
	cat := &fakeCatalogRepo{regions: append([]catalog.Region{}, seeder.Regions...)}
	uc := NewSeedUsecase(cat, &fakeStudyRepo{})

	report, err := uc.SeedRegionsComplete(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.Counts["regions"] != len(seeder.CompleteRegions) {
		t.Fatalf("expected %d inserts, got %d", len(seeder.CompleteRegions), report.Counts["regions"])
	}
}

func TestSeed_ExpandCoversBothUpperTracks(t *testing.T) {
	found := map[string]bool{}
	for _, l := range seeder.ExpandedLessons {
		found[l.TrackID] = true
	}
	if !found[study.LevelIntermediate] || !found[study.LevelAdvanced] {
		t.Fatalf("expanded lessons missing a track: %v", found)
	}
}
