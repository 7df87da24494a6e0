package usecase

import (
	"context"

	"winestudy/internal/database/seeder"
	"winestudy/internal/domain/catalog"
	"winestudy/internal/domain/study"
)

// SeedReport is the wire response of every seeding endpoint.
type SeedReport struct {
	Message string         `json:"message"`
	Counts  map[string]int `json:"counts,omitempty"`
}

type SeedUsecase interface {
	SeedCore(ctx context.Context) (SeedReport, error)
	SeedExpand(ctx context.Context) (SeedReport, error)
	SeedGrapesComplete(ctx context.Context) (SeedReport, error)
	SeedRegionsComplete(ctx context.Context) (SeedReport, error)
}

// Seed performs the one-time bulk loads. Each operation is guarded by a
// does-the-collection-already-have-rows check rather than a transaction;
// concurrent invocations can race, which is accepted for an admin action.
type Seed struct {
	catalog catalog.Repository
	study   study.Repository
}

func NewSeedUsecase(cat catalog.Repository, st study.Repository) *Seed {
	return &Seed{catalog: cat, study: st}
}

func (s *Seed) SeedCore(ctx context.Context) (SeedReport, error) {
	n, err := s.catalog.CountCountries(ctx)
	if err != nil {
		return SeedReport{}, err
	}
	if n > 0 {
		return SeedReport{Message: "Database already seeded"}, nil
	}

	counts := map[string]int{}

	inserted, err := s.catalog.InsertCountries(ctx, seeder.Countries)
	if err != nil {
		return SeedReport{}, err
	}
	counts["countries"] = inserted

	if inserted, err = s.catalog.InsertRegions(ctx, seeder.Regions); err != nil {
		return SeedReport{}, err
	}
	counts["regions"] = inserted

	if inserted, err = s.catalog.InsertGrapes(ctx, seeder.Grapes); err != nil {
		return SeedReport{}, err
	}
	counts["grapes"] = inserted

	if inserted, err = s.catalog.InsertAromas(ctx, seeder.AromaTags); err != nil {
		return SeedReport{}, err
	}
	counts["aroma_tags"] = inserted

	if inserted, err = s.study.InsertTracks(ctx, seeder.StudyTracks); err != nil {
		return SeedReport{}, err
	}
	counts["study_tracks"] = inserted

	if inserted, err = s.study.InsertLessons(ctx, seeder.BasicLessons); err != nil {
		return SeedReport{}, err
	}
	counts["lessons"] = inserted

	if inserted, err = s.study.InsertQuestions(ctx, seeder.BasicQuestions); err != nil {
		return SeedReport{}, err
	}
	counts["quiz_questions"] = inserted

	return SeedReport{Message: "Database seeded successfully", Counts: counts}, nil
}

// SeedExpand loads the intermediate and advanced study content; it is guarded
// by the presence of any intermediate-track lesson.
func (s *Seed) SeedExpand(ctx context.Context) (SeedReport, error) {
	n, err := s.study.CountLessonsByTrack(ctx, study.LevelIntermediate)
	if err != nil {
		return SeedReport{}, err
	}
	if n > 0 {
		return SeedReport{Message: "Study content already expanded"}, nil
	}

	counts := map[string]int{}

	inserted, err := s.study.InsertLessons(ctx, seeder.ExpandedLessons)
	if err != nil {
		return SeedReport{}, err
	}
	counts["lessons"] = inserted

	if inserted, err = s.study.InsertQuestions(ctx, seeder.ExpandedQuestions); err != nil {
		return SeedReport{}, err
	}
	counts["quiz_questions"] = inserted

	return SeedReport{Message: "Study content expanded", Counts: counts}, nil
}

// SeedGrapesComplete inserts only the catalog entries whose grape_id is not
// yet present, so re-running after a partial load fills the gaps.
func (s *Seed) SeedGrapesComplete(ctx context.Context) (SeedReport, error) {
	existing, err := s.catalog.ExistingGrapeIDs(ctx)
	if err != nil {
		return SeedReport{}, err
	}

	missing := make([]catalog.Grape, 0, len(seeder.CompleteGrapes))
	for _, g := range seeder.CompleteGrapes {
		if !existing[g.GrapeID] {
			missing = append(missing, g)
		}
	}
	if len(missing) == 0 {
		return SeedReport{Message: "Grape catalog already complete"}, nil
	}

	inserted, err := s.catalog.InsertGrapes(ctx, missing)
	if err != nil {
		return SeedReport{}, err
	}
	return SeedReport{Message: "Grape catalog expanded", Counts: map[string]int{"grapes": inserted}}, nil
}

func (s *Seed) SeedRegionsComplete(ctx context.Context) (SeedReport, error) {
	existing, err := s.catalog.ExistingRegionIDs(ctx)
	if err != nil {
		return SeedReport{}, err
	}

	missing := make([]catalog.Region, 0, len(seeder.CompleteRegions))
	for _, r := range seeder.CompleteRegions {
		if !existing[r.RegionID] {
			missing = append(missing, r)
		}
	}
	if len(missing) == 0 {
		return SeedReport{Message: "Region catalog already complete"}, nil
	}

	inserted, err := s.catalog.InsertRegions(ctx, missing)
	if err != nil {
		return SeedReport{}, err
	}
	return SeedReport{Message: "Region catalog expanded", Counts: map[string]int{"regions": inserted}}, nil
}
